package stockinfo

import (
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"
)

// The provider reports an industry per company but no sector. The table in
// sectors.yaml maps each known industry to its GICS sector and the matching
// SPDR sector ETF.

//go:embed sectors.yaml
var sectorsYAML []byte

type sectorEntry struct {
	Sector string `yaml:"sector"`
	ETF    string `yaml:"etf"`
}

var sectorTable map[string]sectorEntry

// classify maps a provider industry to its sector and sector ETF. Unknown
// industries fall back to the industry name itself and the broad-market ETF.
func classify(industry string) (sector, etf string) {
	if sectorTable == nil {
		if err := yaml.Unmarshal(sectorsYAML, &sectorTable); err != nil {
			// The table is embedded; failing to parse it is a programming error.
			log.Fatalf("invalid sectors.yaml: %v", err)
		}
	}
	if e, ok := sectorTable[industry]; ok {
		return e.Sector, e.ETF
	}
	return industry, "SPY"
}
