package main

import (
	"path/filepath"

	"github.com/gorewood/daylog/internal/config"
	"github.com/gorewood/daylog/internal/envfile"
	"github.com/gorewood/daylog/internal/export"
	"github.com/gorewood/daylog/internal/journal"
	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

// serviceFactory builds the journal service. Commands call it only once they
// know they have work to do, so --help never touches the configuration.
type serviceFactory func() (*journal.Service, error)

// defaultServiceFactory reads the env file and configuration from the config
// directory and wires the JSON store and vault sink.
func defaultServiceFactory() (*journal.Service, error) {
	dir := config.Dir()
	if dir != "" {
		// Values already set in the environment win over the env file.
		if err := envfile.Load(filepath.Join(dir, config.EnvFileName)); err != nil {
			return nil, output.NewSystemErrorWithCause(err.Error(), err)
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	return newService(cfg, journal.SystemClock{}), nil
}

// newService wires a service for cfg.
func newService(cfg *config.Config, clock journal.Clock) *journal.Service {
	return journal.NewService(
		ledger.NewFileStore(cfg.StorePath),
		export.NewVaultSink(cfg.VaultPath),
		clock,
	)
}
