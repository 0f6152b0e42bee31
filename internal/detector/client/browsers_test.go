package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

func testBrowserTable(t *testing.T, browsersYAML string) *BrowserTable {
	t.Helper()

	engines, err := LoadEngineTable([]byte(`
- name: "Gecko"
  regex: "Gecko/[0-9]{8,10}"
`))
	require.NoError(t, err)

	appHints, err := ruleset.LoadHintDict([]byte("every.browser.inc: \"Every Browser\"\n"))
	require.NoError(t, err)

	table, err := LoadBrowserTable([]byte(browsersYAML), engines, appHints, 40, nil)
	require.NoError(t, err)
	return table
}

const chromeYAML = `
- name: "Chrome"
  regex: "(?:Chrome|CriOS)/([0-9.]+)"
  version: "$1"
  engine:
    default: "Blink"
`

func TestBrowserTableResolvesNameVersionEngineAndEngineVersionFromUA(t *testing.T) {
	table := testBrowserTable(t, chromeYAML)

	c := table.Lookup("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.5790.110 Safari/537.36", nil)
	require.NotNil(t, c)
	assert.Equal(t, "Chrome", c.Name)
	assert.Equal(t, "115.0.5790.110", c.Version)
	assert.Equal(t, "Blink", c.Engine)
	assert.Equal(t, "115.0.5790.110", c.EngineVersion)
	require.NotNil(t, c.Browser())
	assert.Equal(t, "Chrome", c.Browser().Family)
}

func TestBrowserTableLookupReturnsNilOnNoMatch(t *testing.T) {
	table := testBrowserTable(t, chromeYAML)
	assert.Nil(t, table.Lookup("SomeUnknownClient/1.0", nil))
}

func TestBrowserTableClientHintsOverrideVersionAndPreferNonLast(t *testing.T) {
	table := testBrowserTable(t, chromeYAML)

	ch := &hints.ClientHint{
		FullVersionList: []hints.Brand{
			{Name: "Chromium", Version: "115.0.5790.110"},
			{Name: "Google Chrome", Version: "115.0.5790.110"},
			{Name: "Not;A=Brand", Version: "99.0.0.0"},
		},
	}
	c := table.Lookup("Mozilla/5.0 Chrome/115.0.5790.110 Safari/537.36", ch)
	require.NotNil(t, c)
	assert.Equal(t, "Chrome", c.Name)
}

func TestBrowserTableUAFullVersionOverridesBrandVersion(t *testing.T) {
	table := testBrowserTable(t, chromeYAML)

	ch := &hints.ClientHint{
		UAFullVersion: "115.0.5790.170",
		FullVersionList: []hints.Brand{
			{Name: "Google Chrome", Version: "115.0.5790.110"},
		},
	}
	c := table.Lookup("Mozilla/5.0 Chrome/115.0.5790.110 Safari/537.36", ch)
	require.NotNil(t, c)
	assert.Equal(t, "115.0.5790.170", c.Version)
}

func TestBrowserTableEngineVersionMapSelectsByMinimumVersion(t *testing.T) {
	table := testBrowserTable(t, `
- name: "Opera"
  regex: "OPR/([0-9.]+)"
  version: "$1"
  engine:
    default: "Presto"
    versions:
      "15": "Blink"
`)

	c := table.Lookup("Mozilla/5.0 Chrome/100.0 Safari/537.36 OPR/15.0", nil)
	require.NotNil(t, c)
	assert.Equal(t, "Blink", c.Engine)

	c = table.Lookup("Mozilla/5.0 Chrome/100.0 Safari/537.36 OPR/12.0", nil)
	require.NotNil(t, c)
	assert.Equal(t, "Presto", c.Engine)
}

func TestBrowserTableGeckoEngineVersionParsedFromRV(t *testing.T) {
	table := testBrowserTable(t, `
- name: "Firefox"
  regex: "Firefox/([0-9.]+)"
  version: "$1"
`)

	c := table.Lookup("Mozilla/5.0 (Windows NT 10.0; rv:115.0) Gecko/20100101 Firefox/115.0", nil)
	require.NotNil(t, c)
	assert.Equal(t, "Gecko", c.Engine)
	assert.Equal(t, "115.0", c.EngineVersion)
}

func TestBrowserTableAppHintOverridesNameWhenBlinkDetected(t *testing.T) {
	table := testBrowserTable(t, chromeYAML)

	ch := &hints.ClientHint{App: "every.browser.inc"}
	c := table.Lookup("Mozilla/5.0 Chrome/115.0 Safari/537.36", ch)
	require.NotNil(t, c)
	assert.Equal(t, "Every Browser", c.Name)
	assert.Equal(t, "Blink", c.Engine)
	assert.Empty(t, c.EngineVersion)
}
