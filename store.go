package pft

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultConfigFilename is the configuration file name used when none is
// specified on the command line.
const DefaultConfigFilename = "config.json"

// Store persists the Config document at a fixed path. It is the only
// component touching the configuration file; the Manager owns the in-memory
// document and asks the store to load and save it.
type Store struct {
	path string
}

// NewStore returns a store persisting at the given path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the path of the backing file.
func (s *Store) Path() string { return s.path }

// DefaultConfigPath resolves the default configuration file next to the
// executable, not in the invocation directory, so the same portfolio is found
// regardless of where the tool is run from. It falls back to the working
// directory when the executable path cannot be determined.
func DefaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(filepath.Dir(exe), DefaultConfigFilename)
}

// Load reads the Config document from the backing file.
//
// If the file does not exist, the default document is created, written to the
// path, and returned. If the file exists but cannot be parsed, a
// *PersistenceError is returned: a corrupt portfolio must never be silently
// replaced by an empty one.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := NewConfig()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		log.Printf("create-config-file name=%q", s.path)
		return cfg, nil
	}
	if err != nil {
		return nil, &PersistenceError{Path: s.path, Err: err}
	}

	cfg := new(Config)
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &PersistenceError{Path: s.path, Err: fmt.Errorf("format error: %w", err)}
	}
	if cfg.Portfolio.Stocks == nil {
		cfg.Portfolio.Stocks = []string{}
	}
	return cfg, nil
}

// Save serializes the full Config document and overwrites the backing file
// with stable, human-readable formatting. The write goes through a temporary
// file renamed into place, so a crash mid-write cannot leave a truncated
// configuration behind.
func (s *Store) Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return &PersistenceError{Path: s.path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
