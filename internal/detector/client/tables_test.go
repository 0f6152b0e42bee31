package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTablesWiresEveryRuleTable(t *testing.T) {
	tables, err := NewTables(Config{
		FeedReadersYAML:   []byte("- regex: \"FeedDemon\"\n  name: \"FeedDemon\"\n"),
		MobileAppsYAML:    []byte("- regex: \"Instagram\"\n  name: \"Instagram\"\n"),
		MediaPlayersYAML:  []byte("- regex: \"QuickTime\"\n  name: \"QuickTime\"\n"),
		PimYAML:           []byte("- regex: \"Thunderbird\"\n  name: \"Thunderbird\"\n"),
		BrowsersYAML:      []byte(chromeYAML),
		LibrariesYAML:     []byte("- regex: \"curl\"\n  name: \"curl\"\n"),
		BrowserEngineYAML: []byte("- name: \"Blink\"\n  regex: \"Chrome/\"\n"),
		HintAppsYAML:      []byte("every.browser.inc: \"Every Browser\"\n"),
		EngineVersionSoft: 40,
	})
	require.NoError(t, err)

	c := tables.Resolve("Mozilla/5.0 Chrome/115.0.5790.110 Safari/537.36", nil)
	require.NotNil(t, c)
	assert.Equal(t, "Chrome", c.Name)
}

func TestResolveProbesFeedReadersBeforeBrowsers(t *testing.T) {
	tables, err := NewTables(Config{
		FeedReadersYAML:   []byte("- regex: \"FeedDemon\"\n  name: \"FeedDemon\"\n"),
		MobileAppsYAML:    []byte("[]"),
		MediaPlayersYAML:  []byte("[]"),
		PimYAML:           []byte("[]"),
		BrowsersYAML:      []byte("- name: \"Chrome\"\n  regex: \"FeedDemon\"\n"),
		LibrariesYAML:     []byte("[]"),
		BrowserEngineYAML: []byte("[]"),
		HintAppsYAML:      []byte("{}"),
		EngineVersionSoft: 40,
	})
	require.NoError(t, err)

	c := tables.Resolve("Mozilla/4.0 FeedDemon/4.1", nil)
	require.NotNil(t, c)
	assert.Equal(t, TypeFeedReader, c.Type)
	assert.Equal(t, "FeedDemon", c.Name)
}

func TestResolveReturnsNilWhenNoTableMatches(t *testing.T) {
	tables, err := NewTables(Config{
		FeedReadersYAML:   []byte("[]"),
		MobileAppsYAML:    []byte("[]"),
		MediaPlayersYAML:  []byte("[]"),
		PimYAML:           []byte("[]"),
		BrowsersYAML:      []byte("[]"),
		LibrariesYAML:     []byte("[]"),
		BrowserEngineYAML: []byte("[]"),
		HintAppsYAML:      []byte("{}"),
		EngineVersionSoft: 40,
	})
	require.NoError(t, err)

	assert.Nil(t, tables.Resolve("SomeUnknownClient/1.0", nil))
}
