package pft

import "strings"

// Config is the persisted configuration document. Its only content today is
// the portfolio itself, but the envelope leaves room for more sections.
type Config struct {
	Portfolio Portfolio `json:"portfolio"`
}

// Portfolio holds the ordered, duplicate-free list of tracked tickers.
// Order is insertion order and is meaningful: it is the display order.
type Portfolio struct {
	Stocks []string `json:"stocks"`
}

// NewConfig returns the default configuration: an empty portfolio.
func NewConfig() *Config {
	return &Config{Portfolio: Portfolio{Stocks: []string{}}}
}

// NormalizeTicker canonicalizes a user-supplied ticker symbol.
// Tickers are stored and compared in their normalized form.
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Has reports whether ticker (already normalized) is in the portfolio.
func (p *Portfolio) Has(ticker string) bool {
	for _, s := range p.Stocks {
		if s == ticker {
			return true
		}
	}
	return false
}

// Append adds a normalized ticker at the end of the portfolio.
// The caller is responsible for the uniqueness check.
func (p *Portfolio) Append(ticker string) {
	p.Stocks = append(p.Stocks, ticker)
}

// Remove deletes a normalized ticker, preserving the order of the remaining
// ones. It reports whether the ticker was present.
func (p *Portfolio) Remove(ticker string) bool {
	for i, s := range p.Stocks {
		if s == ticker {
			p.Stocks = append(p.Stocks[:i], p.Stocks[i+1:]...)
			return true
		}
	}
	return false
}

// Tickers returns a copy of the stored tickers in display order.
func (p *Portfolio) Tickers() []string {
	out := make([]string, len(p.Stocks))
	copy(out, p.Stocks)
	return out
}
