package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorewood/daylog/internal/output"
)

// FileStore persists the whole Log as one indented JSON document.
// Every operation reads or rewrites the full file; nothing is cached.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the store file path.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the log from disk.
// A missing file is an empty log. Any other read or parse failure is a
// system error; malformed state is never silently replaced.
func (fs *FileStore) Load() (Log, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Log{}, nil
		}
		return nil, output.NewSystemErrorWithCause("failed to read log store: "+fs.path, err)
	}

	log, err := FromJSON(data)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to parse log store "+fs.path+": "+err.Error(), err)
	}
	return log, nil
}

// Save overwrites the store file with the full log.
// The parent directory is created if needed and the write goes through a
// temp file in the same directory followed by a rename.
func (fs *FileStore) Save(log Log) error {
	data, err := log.ToJSON()
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize log store", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create store directory", err)
	}

	if err := atomicWrite(fs.path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write log store: "+fs.path, err)
	}
	return nil
}

// ToJSON serializes the log with four-space indentation and a trailing newline.
// Dates come out sorted because encoding/json sorts map keys.
func (l Log) ToJSON() ([]byte, error) {
	if l == nil {
		l = Log{}
	}
	data, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("serializing log to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// FromJSON deserializes a log and normalizes its entries.
// An empty document is treated as an empty log.
func FromJSON(data []byte) (Log, error) {
	log := Log{}
	if len(data) == 0 {
		return log, nil
	}
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parsing log JSON: %w", err)
	}
	if log == nil {
		// The document was a literal null.
		log = Log{}
	}
	log.normalize()
	return log, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
