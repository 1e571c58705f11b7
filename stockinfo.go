package pft

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// StockInfo is the descriptive record a stock-info service maintains for one
// ticker. It is consumed read-only here; caching and refresh policies belong
// entirely to the service.
type StockInfo struct {
	Company   string          `json:"company"`
	Industry  string          `json:"industry"`
	Sector    string          `json:"sector"`
	Peers     []string        `json:"peers"`
	SectorETF string          `json:"sector_etf"`
	MarketCap decimal.Decimal `json:"market_cap"` // in millions of Currency
	Currency  string          `json:"currency"`
}

// MarketCapString renders the market capitalization as a currency amount in
// millions, e.g. "$2,950,000.00M". It returns "-" when the value is unknown.
func (s StockInfo) MarketCapString() string {
	if s.MarketCap.IsZero() || s.Currency == "" {
		return "-"
	}
	cur := *money.New(0, s.Currency).Currency()
	cents := s.MarketCap.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.IntPart()) + "M"
}

// StockInfoService is the stock-info collaborator consumed by the Manager.
//
// Implementations own all lookup, caching and refresh logic. The reference
// implementation lives in the stockinfo package.
type StockInfoService interface {
	// UpdateTicker forces (re)population of one ticker's record and returns
	// it. It fails if the ticker cannot be resolved.
	UpdateTicker(ticker string) (StockInfo, error)

	// GetInfo returns the best-effort record for one ticker without forcing
	// a refresh.
	GetInfo(ticker string) (StockInfo, error)

	// UpdatePortfolio refreshes the records for a batch of tickers.
	UpdatePortfolio(tickers []string, forceUpdate bool) error

	// ExportReadable writes a human-readable export of all known records and
	// returns the path written.
	ExportReadable() (string, error)
}
