// Package journal orchestrates the daily log: it loads the store, applies
// single and batch additions, exports touched days to the vault, and saves.
//
// Every operation is one load, mutate, export, save cycle. Export failures
// never abort an operation; they are returned as ExportResult values for the
// caller to report.
package journal

import (
	"fmt"

	"github.com/gorewood/daylog/internal/ledger"
	"github.com/gorewood/daylog/internal/output"
)

// Store loads and saves the whole log.
type Store interface {
	Load() (ledger.Log, error)
	Save(log ledger.Log) error
}

// Sink exports one day's entry and returns the path it wrote (or tried to).
type Sink interface {
	Export(date string, entry *ledger.Entry) (string, error)
}

// ExportResult reports the outcome of exporting one date.
type ExportResult struct {
	Date string
	Path string
	Err  error
}

// OK reports whether the export succeeded.
func (r ExportResult) OK() bool {
	return r.Err == nil
}

// AddResult is the outcome of AddEntry.
type AddResult struct {
	Date   string
	Entry  *ledger.Entry
	Export ExportResult
}

// BatchResult is the outcome of BatchAdd. Dates and Exports follow batch order.
type BatchResult struct {
	Dates   []string
	Exports []ExportResult
}

// Failed returns the exports that did not succeed.
func (r *BatchResult) Failed() []ExportResult {
	var failed []ExportResult
	for _, result := range r.Exports {
		if !result.OK() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Service is the entry service. It owns no state between calls.
type Service struct {
	store Store
	sink  Sink
	clock Clock
}

// NewService creates a Service. If clock is nil, SystemClock is used.
func NewService(store Store, sink Sink, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{store: store, sink: sink, clock: clock}
}

// Today returns the current date key in local time.
func (s *Service) Today() string {
	return ledger.DateKey(s.clock.Now())
}

// AddEntry records a task and/or reflection for today.
// A non-empty task is appended; a non-empty reflection replaces the existing
// one. With neither, today's entry is still created and re-exported.
// The store is saved before the export runs.
func (s *Service) AddEntry(task, reflection string) (*AddResult, error) {
	date := s.Today()

	log, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	entry := log.GetOrCreate(date)
	entry.AddTask(task)
	entry.SetReflection(reflection)

	if err := s.store.Save(log); err != nil {
		return nil, err
	}

	return &AddResult{
		Date:   date,
		Entry:  entry,
		Export: s.export(date, entry),
	}, nil
}

// BatchAdd merges every item of batch into the log in batch order.
// Each date is exported right after it is merged; the store is saved once
// after the loop. Export failures are collected, not returned as errors.
func (s *Service) BatchAdd(batch ledger.Batch) (*BatchResult, error) {
	log, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Dates:   make([]string, 0, len(batch)),
		Exports: make([]ExportResult, 0, len(batch)),
	}
	for _, item := range batch {
		entry := log.GetOrCreate(item.Date)
		entry.Merge(item.Entry)

		result.Dates = append(result.Dates, item.Date)
		result.Exports = append(result.Exports, s.export(item.Date, entry))
	}

	if err := s.store.Save(log); err != nil {
		return nil, err
	}
	return result, nil
}

// List returns the whole log.
func (s *Service) List() (ledger.Log, error) {
	return s.store.Load()
}

// Day returns the entry for date without creating it.
func (s *Service) Day(date string) (*ledger.Entry, bool, error) {
	if err := ledger.ValidateDateKey(date); err != nil {
		return nil, false, output.NewUserError(err.Error())
	}

	log, err := s.store.Load()
	if err != nil {
		return nil, false, err
	}

	entry, ok := log[date]
	return entry, ok, nil
}

// ExportAll re-exports the given dates, or every date in ascending order when
// none are given. The store is read but never written. Unknown dates are user
// errors and nothing is exported when one is found.
func (s *Service) ExportAll(dates ...string) ([]ExportResult, error) {
	log, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if len(dates) == 0 {
		dates = log.Dates()
	}
	for _, date := range dates {
		if err := ledger.ValidateDateKey(date); err != nil {
			return nil, output.NewUserError(err.Error())
		}
		if _, ok := log[date]; !ok {
			return nil, output.NewUserError(fmt.Sprintf("no entry for %s", date))
		}
	}

	results := make([]ExportResult, 0, len(dates))
	for _, date := range dates {
		results = append(results, s.export(date, log[date]))
	}
	return results, nil
}

// export runs the sink and captures its outcome.
func (s *Service) export(date string, entry *ledger.Entry) ExportResult {
	path, err := s.sink.Export(date, entry)
	return ExportResult{Date: date, Path: path, Err: err}
}
