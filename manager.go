package pft

// Manager enforces the portfolio invariants (normalization, uniqueness,
// order) and sequences the read/enrich/mutate/persist steps of every
// operation. It never persists without an accompanying mutation.
//
// Operation outcomes are values, not printed text: the command-line verbs,
// the interactive menu and the tests all consume the same results.
type Manager struct {
	store *Store
	cfg   *Config
	info  StockInfoService
}

// NewManager loads the configuration through the store (creating the default
// one if the backing file does not exist) and returns a manager bound to the
// given stock-info service.
func NewManager(store *Store, info StockInfoService) (*Manager, error) {
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, cfg: cfg, info: info}, nil
}

// AddResult is the outcome of an Add operation.
type AddResult struct {
	Ticker  string
	Already bool      // the ticker was already tracked; nothing changed
	Info    StockInfo // enrichment received, zero when Already
}

// RemoveResult is the outcome of a Remove operation.
type RemoveResult struct {
	Ticker string
	Found  bool // false: the ticker was not tracked; nothing changed
}

// Entry pairs a tracked ticker with its current info record.
type Entry struct {
	Ticker string
	Info   StockInfo
}

// Add tracks a new ticker. The raw symbol is normalized first; adding an
// already-tracked ticker is reported, not an error, and performs no write.
//
// Enrichment happens before the portfolio is mutated: when the service cannot
// resolve the ticker, the returned *EnrichmentError guarantees the stored
// list is exactly as it was.
func (m *Manager) Add(raw string) (AddResult, error) {
	ticker := NormalizeTicker(raw)
	if m.cfg.Portfolio.Has(ticker) {
		return AddResult{Ticker: ticker, Already: true}, nil
	}

	info, err := m.info.UpdateTicker(ticker)
	if err != nil {
		return AddResult{}, &EnrichmentError{Ticker: ticker, Err: err}
	}

	m.cfg.Portfolio.Append(ticker)
	if err := m.store.Save(m.cfg); err != nil {
		return AddResult{}, err
	}
	return AddResult{Ticker: ticker, Info: info}, nil
}

// Remove stops tracking a ticker. Removal is case-insensitive through the
// same normalization as Add; removing an unknown ticker is reported, not an
// error, and performs no write.
func (m *Manager) Remove(raw string) (RemoveResult, error) {
	ticker := NormalizeTicker(raw)
	if !m.cfg.Portfolio.Remove(ticker) {
		return RemoveResult{Ticker: ticker}, nil
	}
	if err := m.store.Save(m.cfg); err != nil {
		return RemoveResult{}, err
	}
	return RemoveResult{Ticker: ticker, Found: true}, nil
}

// List returns one entry per tracked ticker, in stored order, with the
// current (non-forced) info record for each. An empty portfolio yields an
// empty, non-nil slice.
func (m *Manager) List() ([]Entry, error) {
	entries := make([]Entry, 0, len(m.cfg.Portfolio.Stocks))
	for _, ticker := range m.cfg.Portfolio.Stocks {
		info, err := m.info.GetInfo(ticker)
		if err != nil {
			return nil, &EnrichmentError{Ticker: ticker, Err: err}
		}
		entries = append(entries, Entry{Ticker: ticker, Info: info})
	}
	return entries, nil
}

// UpdateAll force-refreshes the info records of every tracked ticker in one
// batch call. It returns the number of tickers refreshed; zero means the
// portfolio was empty and nothing was done.
func (m *Manager) UpdateAll() (int, error) {
	tickers := m.cfg.Portfolio.Tickers()
	if len(tickers) == 0 {
		return 0, nil
	}
	if err := m.info.UpdatePortfolio(tickers, true); err != nil {
		return 0, err
	}
	return len(tickers), nil
}

// Export asks the stock-info service for its human-readable export and
// returns the path written.
func (m *Manager) Export() (string, error) {
	return m.info.ExportReadable()
}

// Tickers returns the tracked tickers in display order.
func (m *Manager) Tickers() []string { return m.cfg.Portfolio.Tickers() }
