// Package stockinfo implements the stock-info service backing the portfolio
// tracker: it resolves tickers against a Finnhub-style market data API,
// keeps the records in a local JSON cache, and can export them in a
// human-readable form.
package stockinfo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/stockcorr/pft"
)

const cacheFilename = "stock_info.json"
const exportFilename = "stock_info_readable.json"

// DefaultBaseURL is the provider endpoint used when none is configured.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// Manager maintains the per-ticker info records. Records are fetched from
// the provider on demand and persisted in a JSON cache file, so repeated
// lookups are free; HTTP responses are additionally cached on disk with a
// daily expiry to spare the provider's rate limit.
type Manager struct {
	dir     string // data directory holding the cache and export files
	apiKey  string
	baseURL string
	client  *http.Client

	records map[string]pft.StockInfo
}

// New returns a manager storing its cache files under dir.
func New(dir, apiKey string) *Manager {
	return &Manager{
		dir:     dir,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client:  newDailyCachingClient(),
	}
}

// load reads the cache file once. A missing file is an empty cache.
func (m *Manager) load() error {
	if m.records != nil {
		return nil
	}
	m.records = make(map[string]pft.StockInfo)

	path := filepath.Join(m.dir, cacheFilename)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open info cache %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &m.records); err != nil {
		return fmt.Errorf("format error in info cache %q: %w", path, err)
	}
	return nil
}

// persist rewrites the cache file. Map keys are tickers, so the standard
// marshaler gives a stable, sorted order.
func (m *Manager) persist() error {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", m.dir, err)
	}
	path := filepath.Join(m.dir, cacheFilename)
	data, err := json.MarshalIndent(m.records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode info cache: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write info cache %q: %w", path, err)
	}
	return nil
}

// UpdateTicker forces (re)population of one ticker's record from the
// provider. It fails if the symbol is unknown to the provider, leaving the
// cache untouched.
func (m *Manager) UpdateTicker(ticker string) (pft.StockInfo, error) {
	if err := m.load(); err != nil {
		return pft.StockInfo{}, err
	}
	if m.apiKey == "" {
		return pft.StockInfo{}, fmt.Errorf("no API token configured (set %s or use -api-token)", APITokenEnv)
	}

	if err := m.resolve(ticker); err != nil {
		return pft.StockInfo{}, err
	}

	profile, err := m.fetchProfile(ticker)
	if err != nil {
		return pft.StockInfo{}, err
	}
	peers, err := m.fetchPeers(ticker)
	if err != nil {
		return pft.StockInfo{}, err
	}
	// The provider lists the ticker among its own peers.
	peers = slices.DeleteFunc(peers, func(p string) bool {
		return strings.EqualFold(p, ticker)
	})

	sector, etf := classify(profile.Industry)
	info := pft.StockInfo{
		Company:   profile.Name,
		Industry:  profile.Industry,
		Sector:    sector,
		Peers:     peers,
		SectorETF: etf,
		MarketCap: profile.MarketCap,
		Currency:  profile.Currency,
	}

	m.records[ticker] = info
	if err := m.persist(); err != nil {
		return pft.StockInfo{}, err
	}
	return info, nil
}

// GetInfo returns the cached record for a ticker, fetching it only on a
// cache miss.
func (m *Manager) GetInfo(ticker string) (pft.StockInfo, error) {
	if err := m.load(); err != nil {
		return pft.StockInfo{}, err
	}
	if info, ok := m.records[ticker]; ok {
		return info, nil
	}
	return m.UpdateTicker(ticker)
}

// UpdatePortfolio refreshes the records of a batch of tickers. Each ticker
// is independent: a failure does not stop the batch, all failures are
// reported together.
func (m *Manager) UpdatePortfolio(tickers []string, forceUpdate bool) error {
	var errs []error
	for _, ticker := range tickers {
		var err error
		if forceUpdate {
			_, err = m.UpdateTicker(ticker)
		} else {
			_, err = m.GetInfo(ticker)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ExportReadable writes all known records, indented and sorted by ticker,
// to a file next to the cache and returns its path.
func (m *Manager) ExportReadable() (string, error) {
	if err := m.load(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create data directory %q: %w", m.dir, err)
	}

	// The export flattens each record for humans: peers become one string.
	type readable struct {
		Company   string `json:"company"`
		Industry  string `json:"industry"`
		Sector    string `json:"sector"`
		Peers     string `json:"peers"`
		SectorETF string `json:"sector_etf"`
		MarketCap string `json:"market_cap"`
	}
	out := make(map[string]readable, len(m.records))
	for ticker, info := range m.records {
		out[ticker] = readable{
			Company:   info.Company,
			Industry:  info.Industry,
			Sector:    info.Sector,
			Peers:     strings.Join(info.Peers, ", "),
			SectorETF: info.SectorETF,
			MarketCap: info.MarketCapString(),
		}
	}

	path := filepath.Join(m.dir, exportFilename)
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot encode export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("cannot write export %q: %w", path, err)
	}
	return path, nil
}
