package stockinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// APITokenEnv is the environment variable holding the provider API token.
// A .env file in the working directory is honored too.
const APITokenEnv = "FINNHUB_TOKEN"

// profile is the subset of the provider's company profile the tracker uses.
type profile struct {
	Name      string          `json:"name"`
	Industry  string          `json:"finnhubIndustry"`
	MarketCap decimal.Decimal `json:"marketCapitalization"` // in millions
	Currency  string          `json:"currency"`
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// resolve checks the ticker against the provider's symbol search. An unknown
// symbol fails here, before any record is touched.
func (m *Manager) resolve(ticker string) error {
	addr := fmt.Sprintf("%s/search?q=%s&token=%s", m.baseURL, url.QueryEscape(ticker), url.QueryEscape(m.apiKey))
	var jobj any
	if err := jwget(m.client, addr, &jobj); err != nil {
		return fmt.Errorf("symbol search for %q failed: %w", ticker, err)
	}

	// The search reply is plucked untyped: only the symbols matter here.
	jval, err := jsonpath.Get("$.result[*].symbol", jobj)
	if err != nil {
		return fmt.Errorf("ticker %q not found by provider", ticker)
	}
	symbols, ok := jval.([]interface{})
	if !ok {
		return fmt.Errorf("ticker %q not found by provider", ticker)
	}
	for _, s := range symbols {
		if sym, ok := s.(string); ok && strings.EqualFold(sym, ticker) {
			return nil
		}
	}
	return fmt.Errorf("ticker %q not found by provider", ticker)
}

// fetchProfile retrieves the company profile for a resolved ticker.
func (m *Manager) fetchProfile(ticker string) (profile, error) {
	addr := fmt.Sprintf("%s/stock/profile2?symbol=%s&token=%s", m.baseURL, url.QueryEscape(ticker), url.QueryEscape(m.apiKey))
	var p profile
	if err := jwget(m.client, addr, &p); err != nil {
		return profile{}, fmt.Errorf("cannot fetch profile for %q: %w", ticker, err)
	}
	// The provider answers an empty object for unlisted symbols.
	if p.Name == "" {
		return profile{}, fmt.Errorf("provider has no profile for %q", ticker)
	}
	return p, nil
}

// fetchPeers retrieves the peer tickers for a resolved ticker.
func (m *Manager) fetchPeers(ticker string) ([]string, error) {
	addr := fmt.Sprintf("%s/stock/peers?symbol=%s&token=%s", m.baseURL, url.QueryEscape(ticker), url.QueryEscape(m.apiKey))
	var peers []string
	if err := jwget(m.client, addr, &peers); err != nil {
		return nil, fmt.Errorf("cannot fetch peers for %q: %w", ticker, err)
	}
	return peers, nil
}
