package client

import (
	"fmt"

	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

// genericRow is the shape shared by every simple "regex, name, version"
// rule table: feed readers, libraries, media players, PIM clients, and
// (before the app-hint override) mobile apps.
type genericRow struct {
	Name    string `yaml:"name"`
	Regex   string `yaml:"regex"`
	Version string `yaml:"version"`
}

type genericEntry struct {
	regex   *regexutil.LazyRegex
	name    string
	version string
}

// GenericTable is an ordered, first-match-wins rule table producing a
// Client of a fixed Type.
type GenericTable struct {
	entries    []genericEntry
	clientType Type
}

// NewGenericTable builds a GenericTable from already-decoded rows.
func NewGenericTable(rows []genericRow, clientType Type) *GenericTable {
	t := &GenericTable{clientType: clientType}
	for _, row := range rows {
		t.entries = append(t.entries, genericEntry{
			regex:   regexutil.NewUserAgentMatch(row.Regex),
			name:    row.Name,
			version: row.Version,
		})
	}
	return t
}

// LoadGenericTable decodes a rule table document and builds a
// GenericTable from it.
func LoadGenericTable(data []byte, clientType Type) (*GenericTable, error) {
	rows, err := ruleset.Load[genericRow](data)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}
	return NewGenericTable(rows, clientType), nil
}

// Lookup scans the table in file order and returns the first matching
// Client, or nil.
func (t *GenericTable) Lookup(ua string) *Client {
	for _, e := range t.entries {
		groups := e.regex.FindSubmatch(ua)
		if groups == nil {
			continue
		}
		version := regexutil.TrimVersion(regexutil.Expand(e.version, groups))
		name := regexutil.Expand(e.name, groups)
		return &Client{Name: name, Version: version, Type: t.clientType}
	}
	return nil
}
