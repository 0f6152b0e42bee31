package client

import (
	"strings"

	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

// availableEngines is the hardcoded fallback list of rendering engine
// names, used when neither a browser-specific engine table nor the
// standalone engine regex table recognizes the user agent.
var availableEngines = []string{
	"WebKit", "Blink", "Trident", "Text-based", "Dillo", "iCab", "Elektra",
	"Presto", "Gecko", "KHTML", "NetFront", "Edge", "NetSurf", "Servo",
	"Goanna", "EkiohFlow",
}

type engineRow struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

type engineEntry struct {
	regex *regexutil.LazyRegex
	name  string
}

// EngineTable is the standalone (name, regex) engine table used as a
// last resort when a browser entry has no engine or engine-versions map
// of its own.
type EngineTable struct {
	entries []engineEntry
}

// LoadEngineTable decodes a browser_engine.yml document.
func LoadEngineTable(data []byte) (*EngineTable, error) {
	rows, err := ruleset.Load[engineRow](data)
	if err != nil {
		return nil, err
	}
	t := &EngineTable{}
	for _, row := range rows {
		t.entries = append(t.entries, engineEntry{
			regex: regexutil.NewUserAgentMatch(row.Regex),
			name:  row.Name,
		})
	}
	return t, nil
}

// Lookup returns the engine name matching ua, trying the regex table
// first, then an exact case-insensitive match against the hardcoded
// fallback list (so a caller passing an engine name through finds it
// unchanged).
func (t *EngineTable) Lookup(ua string) string {
	for _, e := range t.entries {
		if e.regex.MatchString(ua) {
			return e.name
		}
	}
	for _, e := range availableEngines {
		if strings.EqualFold(e, ua) {
			return e
		}
	}
	return ""
}
