package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/daylog/internal/ledger"
)

// VaultSink writes rendered notes into a vault directory.
type VaultSink struct {
	root string
}

// NewVaultSink creates a sink rooted at the given vault directory.
func NewVaultSink(root string) *VaultSink {
	return &VaultSink{root: root}
}

// NotePath returns the note file path for a date.
func (s *VaultSink) NotePath(date string) string {
	return filepath.Join(s.root, date+".md")
}

// Export renders the entry and writes it to <root>/<date>.md, replacing any
// existing note. Returns the path written.
func (s *VaultSink) Export(date string, entry *ledger.Entry) (string, error) {
	path := s.NotePath(date)

	info, err := os.Stat(s.root)
	if err != nil {
		return path, fmt.Errorf("vault directory %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return path, fmt.Errorf("vault path %s is not a directory", s.root)
	}

	content := FormatMarkdown(date, entry)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return path, fmt.Errorf("writing note %s: %w", path, err)
	}
	return path, nil
}
