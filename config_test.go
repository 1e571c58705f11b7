package pft

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeTicker(t *testing.T) {
	cases := []struct{ raw, want string }{
		{"aapl", "AAPL"},
		{" msft ", "MSFT"},
		{"GOOG", "GOOG"},
		{"brk.b", "BRK.B"},
	}
	for _, c := range cases {
		if got := NormalizeTicker(c.raw); got != c.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestPortfolioRemovePreservesOrder(t *testing.T) {
	p := Portfolio{Stocks: []string{"AAPL", "MSFT", "GOOG"}}
	if !p.Remove("MSFT") {
		t.Fatal("Remove(MSFT) = false, want true")
	}
	if len(p.Stocks) != 2 || p.Stocks[0] != "AAPL" || p.Stocks[1] != "GOOG" {
		t.Errorf("after Remove, stocks = %v, want [AAPL GOOG]", p.Stocks)
	}
	if p.Remove("MSFT") {
		t.Error("second Remove(MSFT) = true, want false")
	}
}

func TestMarketCapString(t *testing.T) {
	info := StockInfo{MarketCap: decimal.NewFromInt(2950000), Currency: "USD"}
	if got := info.MarketCapString(); got != "$2,950,000.00M" {
		t.Errorf("MarketCapString() = %q, want %q", got, "$2,950,000.00M")
	}

	if got := (StockInfo{}).MarketCapString(); got != "-" {
		t.Errorf("zero MarketCapString() = %q, want \"-\"", got)
	}
}
