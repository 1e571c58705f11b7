package pft

import "fmt"

// PersistenceError reports a failure to read, parse or write the
// configuration file. A corrupt existing file is a PersistenceError, never a
// silent reset to defaults: only the absence of the file triggers
// default-creation.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("configuration file %q: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// EnrichmentError reports that the stock-info service could not resolve or
// populate a ticker. An add operation hitting an EnrichmentError leaves the
// portfolio untouched.
type EnrichmentError struct {
	Ticker string
	Err    error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("cannot enrich ticker %q: %v", e.Ticker, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }
