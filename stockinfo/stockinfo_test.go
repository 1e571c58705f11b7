package stockinfo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// newTestServer serves a provider knowing exactly one symbol, AAPL, and
// counts the requests it receives.
func newTestServer(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if strings.EqualFold(r.URL.Query().Get("q"), "AAPL") {
			fmt.Fprint(w, `{"count":1,"result":[{"symbol":"AAPL","description":"APPLE INC"}]}`)
			return
		}
		fmt.Fprint(w, `{"count":0,"result":[]}`)
	})
	mux.HandleFunc("/stock/profile2", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		if r.URL.Query().Get("symbol") != "AAPL" {
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprint(w, `{"name":"Apple Inc","finnhubIndustry":"Technology","marketCapitalization":2950000,"currency":"USD","ticker":"AAPL"}`)
	})
	mux.HandleFunc("/stock/peers", func(w http.ResponseWriter, r *http.Request) {
		*hits++
		fmt.Fprint(w, `["AAPL","MSFT","GOOG","DELL","HPQ"]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestManager(t *testing.T, srv *httptest.Server) *Manager {
	t.Helper()
	m := New(t.TempDir(), "test-token")
	m.baseURL = srv.URL
	m.client = srv.Client() // no disk cache in tests
	return m
}

func TestUpdateTicker(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)

	info, err := m.UpdateTicker("AAPL")
	if err != nil {
		t.Fatalf("UpdateTicker(AAPL) has error %v", err)
	}
	if info.Company != "Apple Inc" {
		t.Errorf("company = %q, want %q", info.Company, "Apple Inc")
	}
	if info.Sector != "Information Technology" || info.SectorETF != "XLK" {
		t.Errorf("sector/etf = %q/%q, want Information Technology/XLK", info.Sector, info.SectorETF)
	}
	// The ticker itself is dropped from its peer list.
	want := []string{"MSFT", "GOOG", "DELL", "HPQ"}
	if !reflect.DeepEqual(info.Peers, want) {
		t.Errorf("peers = %v, want %v", info.Peers, want)
	}
	if got := info.MarketCapString(); got != "$2,950,000.00M" {
		t.Errorf("market cap = %q, want $2,950,000.00M", got)
	}

	// The record must be in the cache file now.
	if _, err := os.Stat(filepath.Join(m.dir, cacheFilename)); err != nil {
		t.Errorf("cache file missing after update: %v", err)
	}
}

func TestUnknownTickerFails(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)

	if _, err := m.UpdateTicker("NOPE"); err == nil {
		t.Fatal("UpdateTicker(NOPE) must fail")
	}
	// No cache file must appear for a failed update.
	if _, err := os.Stat(filepath.Join(m.dir, cacheFilename)); err == nil {
		t.Error("cache file created for an unresolvable ticker")
	}
}

func TestGetInfoUsesCache(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)

	if _, err := m.UpdateTicker("AAPL"); err != nil {
		t.Fatal(err)
	}
	before := hits

	info, err := m.GetInfo("AAPL")
	if err != nil {
		t.Fatalf("GetInfo(AAPL) has error %v", err)
	}
	if info.Company != "Apple Inc" {
		t.Errorf("company = %q, want %q", info.Company, "Apple Inc")
	}
	if hits != before {
		t.Errorf("GetInfo on a cached ticker made %d extra requests, want 0", hits-before)
	}
}

func TestCacheSurvivesRestart(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)
	if _, err := m.UpdateTicker("AAPL"); err != nil {
		t.Fatal(err)
	}

	// A fresh manager on the same directory, with no working provider.
	m2 := New(m.dir, "test-token")
	m2.baseURL = "http://127.0.0.1:0"
	info, err := m2.GetInfo("AAPL")
	if err != nil {
		t.Fatalf("GetInfo from persisted cache has error %v", err)
	}
	if info.SectorETF != "XLK" {
		t.Errorf("persisted sector ETF = %q, want XLK", info.SectorETF)
	}
}

func TestExportReadable(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)
	if _, err := m.UpdateTicker("AAPL"); err != nil {
		t.Fatal(err)
	}

	path, err := m.ExportReadable()
	if err != nil {
		t.Fatalf("ExportReadable() has error %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read export %q: %v", path, err)
	}

	var out map[string]map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if out["AAPL"]["peers"] != "MSFT, GOOG, DELL, HPQ" {
		t.Errorf("exported peers = %q, want joined string", out["AAPL"]["peers"])
	}
}

func TestUpdatePortfolioBatchIndependence(t *testing.T) {
	var hits int
	srv := newTestServer(t, &hits)
	m := newTestManager(t, srv)

	err := m.UpdatePortfolio([]string{"NOPE", "AAPL"}, true)
	if err == nil {
		t.Fatal("UpdatePortfolio with an unknown ticker must report it")
	}
	// The good ticker was still refreshed.
	if _, ok := m.records["AAPL"]; !ok {
		t.Error("AAPL was not refreshed because NOPE failed")
	}
	if _, ok := m.records["NOPE"]; ok {
		t.Error("NOPE must not get a record")
	}
}

func TestClassifyFallback(t *testing.T) {
	sector, etf := classify("Underwater Basket Weaving")
	if sector != "Underwater Basket Weaving" || etf != "SPY" {
		t.Errorf("classify fallback = %q/%q, want industry itself and SPY", sector, etf)
	}
}
