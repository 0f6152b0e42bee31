package osresolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
)

func testTable(t *testing.T, doc string) *Table {
	t.Helper()
	table, err := LoadTable([]byte(doc), NewKnownOSTable())
	require.NoError(t, err)
	return table
}

func TestLookupResolvesNameVersionAndFamilyFromUA(t *testing.T) {
	table := testTable(t, `
- regex: "Windows NT (10\\.0)"
  name: "Windows"
  version: "$1"
`)

	os := table.Lookup("Mozilla/5.0 (Windows NT 10.0; Win64; x64)", nil)
	require.NotNil(t, os)
	assert.Equal(t, "Windows", os.Name)
	assert.Equal(t, "10.0", os.Version)
	assert.Equal(t, "Windows", os.Family)
	assert.True(t, os.Desktop())
}

func TestLookupUsesVersionsSubtableWhenTopLevelVersionEmpty(t *testing.T) {
	table := testTable(t, `
- regex: "Android"
  name: "Android"
  versions:
    - regex: "Android (1[0-5])"
      version: "$1"
`)

	os := table.Lookup("Mozilla/5.0 (Linux; Android 13; Pixel 7)", nil)
	require.NotNil(t, os)
	assert.Equal(t, "Android", os.Name)
	assert.Equal(t, "13", os.Version)
	assert.False(t, os.Desktop())
}

func TestLookupReturnsNilWhenNothingMatches(t *testing.T) {
	table := testTable(t, `
- regex: "Windows NT"
  name: "Windows"
`)
	assert.Nil(t, table.Lookup("Mozilla/5.0 (X11; Linux x86_64)", nil))
}

func TestLookupPrefersClientHintPlatformAndReconcilesUAVersion(t *testing.T) {
	table := testTable(t, `
- regex: "Mac OS X (10[_.]\\d+)"
  name: "Mac"
  version: "$1"
`)

	ch := &hints.ClientHint{Platform: "macOS"}
	os := table.Lookup("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)", ch)
	require.NotNil(t, os)
	assert.Equal(t, "Mac", os.Name)
	assert.Equal(t, "10.15.7", os.Version)
}

func TestLookupWindowsPlatformVersionMapsMajorToWindows10Or11(t *testing.T) {
	table := testTable(t, `
- regex: "Windows NT"
  name: "Windows"
`)

	os := table.Lookup("Mozilla/5.0 (Windows NT 10.0)", &hints.ClientHint{Platform: "Windows", PlatformVersion: "5.0"})
	require.NotNil(t, os)
	assert.Equal(t, "10", os.Version)

	os = table.Lookup("Mozilla/5.0 (Windows NT 10.0)", &hints.ClientHint{Platform: "Windows", PlatformVersion: "15.0"})
	require.NotNil(t, os)
	assert.Equal(t, "11", os.Version)
}

func TestLookupAndroidAppHintForcesAndroid(t *testing.T) {
	table := testTable(t, `
- regex: "Linux"
  name: "GNU/Linux"
`)

	ch := &hints.ClientHint{App: "com.hisense.odinbrowser"}
	os := table.Lookup("Mozilla/5.0 (Linux)", ch)
	require.NotNil(t, os)
	assert.Equal(t, "Android", os.Name)
	assert.Equal(t, "Android", os.Family)
	assert.Empty(t, os.Version)
}

func TestLookupDerivesARMPlatformFromUA(t *testing.T) {
	table := testTable(t, `
- regex: "Linux"
  name: "GNU/Linux"
`)
	os := table.Lookup("Mozilla/5.0 (Linux; arm; Android 13)", nil)
	require.NotNil(t, os)
	assert.Equal(t, "ARM", os.Platform)
}

func TestLookupDerivesPlatformFromClientHintArchitecture(t *testing.T) {
	table := testTable(t, `
- regex: "Linux"
  name: "GNU/Linux"
`)
	os := table.Lookup("Mozilla/5.0 (Linux)", &hints.ClientHint{Architecture: "x86", Bitness: "64"})
	require.NotNil(t, os)
	assert.Equal(t, "x64", os.Platform)
}

func TestKnownOSTableSearchByNameIsCaseAndSpaceInsensitive(t *testing.T) {
	known := NewKnownOSTable()

	os, ok := known.SearchByName("gnu / linux")
	require.True(t, ok)
	assert.Equal(t, "GNU/Linux", os.Name)

	os, ok = known.SearchByName("GNU/Linux")
	require.True(t, ok)
	assert.True(t, os.Desktop)
	assert.Equal(t, "GNU/Linux", os.Family)

	os, ok = known.SearchByName("android")
	require.True(t, ok)
	assert.False(t, os.Desktop)
	assert.Equal(t, "Android", os.Family)
}

func TestDefaultTableLoadsEmbeddedCorpus(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)

	os := table.Lookup("Mozilla/5.0 (Windows NT 10.0; Win64; x64)", nil)
	require.NotNil(t, os)
	assert.Equal(t, "Windows", os.Name)
}
