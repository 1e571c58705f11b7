package renderer

import "github.com/stockcorr/pft"

// maxDisplayedPeers caps the peer list in reports. This is display-only:
// the stored record keeps the full list.
const maxDisplayedPeers = 5

// Stock is the view of one tracked ticker, ready for templating.
type Stock struct {
	Ticker    string
	Company   string
	Industry  string
	Sector    string
	SectorETF string
	MarketCap string
	Peers     []string
}

// Listing is the view of the whole portfolio.
type Listing struct {
	Stocks []Stock
}

// NewStock builds the view of one entry, truncating the peer list for
// display.
func NewStock(ticker string, info pft.StockInfo) Stock {
	peers := info.Peers
	if len(peers) > maxDisplayedPeers {
		peers = peers[:maxDisplayedPeers]
	}
	return Stock{
		Ticker:    ticker,
		Company:   info.Company,
		Industry:  info.Industry,
		Sector:    info.Sector,
		SectorETF: info.SectorETF,
		MarketCap: info.MarketCapString(),
		Peers:     peers,
	}
}

// NewListing builds the view of the portfolio in display order.
func NewListing(entries []pft.Entry) *Listing {
	l := &Listing{Stocks: make([]Stock, 0, len(entries))}
	for _, e := range entries {
		l.Stocks = append(l.Stocks, NewStock(e.Ticker, e.Info))
	}
	return l
}
