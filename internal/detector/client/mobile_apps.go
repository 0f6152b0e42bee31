package client

import (
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

// MobileAppTable resolves native mobile-app clients: an ordered
// UA-pattern table, overridden by the X-Requested-With app hint when
// present, per spec.md §4.6.1.
type MobileAppTable struct {
	table    *GenericTable
	appHints ruleset.HintDict
}

// NewMobileAppTable wires a generic mobile-app rule table to the app-hint
// dictionary used for the override.
func NewMobileAppTable(table *GenericTable, appHints ruleset.HintDict) *MobileAppTable {
	return &MobileAppTable{table: table, appHints: appHints}
}

// Lookup resolves the mobile-app client from the user agent, then
// overrides it with the X-Requested-With hint's mapped app name when the
// hint disagrees with (or supersedes) the UA-derived result.
func (t *MobileAppTable) Lookup(ua string, ch *hints.ClientHint) *Client {
	client := t.table.Lookup(ua)

	if ch != nil && ch.App != "" {
		if appName, ok := t.appHints.Get(ch.App); ok {
			if client == nil || client.Name != appName {
				client = &Client{Name: appName, Type: TypeMobileApp}
			}
		}
	}

	return client
}
