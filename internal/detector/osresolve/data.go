package osresolve

import (
	_ "embed"
)

//go:embed oss.yml
var defaultOSsYAML []byte

// DefaultTable builds a Table from the bundled oss.yml corpus and a fresh
// known-OS table.
func DefaultTable() (*Table, error) {
	return LoadTable(defaultOSsYAML, NewKnownOSTable())
}
