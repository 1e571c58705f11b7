package renderer

import (
	"strings"
	"testing"

	"github.com/stockcorr/pft"
)

func sampleInfo() pft.StockInfo {
	return pft.StockInfo{
		Company:   "Apple Inc",
		Industry:  "Technology",
		Sector:    "Information Technology",
		Peers:     []string{"MSFT", "GOOG", "DELL", "HPQ", "IBM", "SONY", "WDC"},
		SectorETF: "XLK",
	}
}

func TestNewStockTruncatesPeers(t *testing.T) {
	s := NewStock("AAPL", sampleInfo())
	if len(s.Peers) != maxDisplayedPeers {
		t.Errorf("view has %d peers, want %d", len(s.Peers), maxDisplayedPeers)
	}
}

func TestListingMarkdown(t *testing.T) {
	l := NewListing([]pft.Entry{{Ticker: "AAPL", Info: sampleInfo()}})
	md := ListingMarkdown(l)

	for _, want := range []string{"# Portfolio", "| AAPL |", "Apple Inc", "XLK", "MSFT, GOOG, DELL, HPQ, IBM"} {
		if !strings.Contains(md, want) {
			t.Errorf("listing markdown misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "SONY") {
		t.Errorf("listing markdown shows more than %d peers:\n%s", maxDisplayedPeers, md)
	}
}

func TestEmptyListingMarkdown(t *testing.T) {
	md := ListingMarkdown(NewListing(nil))
	if !strings.Contains(md, "empty") {
		t.Errorf("empty listing must say so, got:\n%s", md)
	}
	if strings.Contains(md, "| Ticker |") {
		t.Errorf("empty listing must not render the table header:\n%s", md)
	}
}

func TestStockMarkdown(t *testing.T) {
	s := NewStock("AAPL", sampleInfo())
	md := StockMarkdown(&s)
	for _, want := range []string{"# AAPL: Apple Inc", "* Sector: Information Technology", "* Sector ETF: XLK"} {
		if !strings.Contains(md, want) {
			t.Errorf("stock markdown misses %q:\n%s", want, md)
		}
	}
}
