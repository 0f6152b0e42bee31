package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecastapps/go-device-detector/internal/detector/client"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/osresolve"
)

func emptyTables() *Tables {
	return &Tables{
		Televisions:          &CategoryTable{},
		ShellTVs:             &CategoryTable{},
		Notebooks:            &CategoryTable{},
		Consoles:             &CategoryTable{},
		CarBrowsers:          &CategoryTable{},
		Cameras:              &CategoryTable{},
		PortableMediaPlayers: &CategoryTable{},
		Mobiles:              &CategoryTable{},
		VendorFragments:      &VendorFragments{},
	}
}

func TestResolveTelevisionGateForcesTypeWithoutTableMatch(t *testing.T) {
	dev := emptyTables().Resolve(
		"Mozilla/5.0 (SMART-TV; Linux; Tizen 6.0) HbbTV/1.5.1 (+DRM)",
		nil, nil, nil,
	)
	assert.Equal(t, TypeTelevision, dev.DeviceType)
}

func TestResolveShellTVGateForcesType(t *testing.T) {
	dev := emptyTables().Resolve(
		"Mozilla/5.0 (Linux; U; tclwebkit2.5) AppleWebKit/537.36 some_Shell_abcdef",
		nil, nil, nil,
	)
	assert.Equal(t, TypeTelevision, dev.DeviceType)
}

func TestResolveAndroidVRWearable(t *testing.T) {
	dev := emptyTables().Resolve(
		"Mozilla/5.0 (Linux; Android 7.1.1; Mobile VR; rv:60.0) Gecko/60.0 Firefox/60.0",
		nil, nil, nil,
	)
	assert.Equal(t, TypeWearable, dev.DeviceType)
}

func TestResolveChromeAndroidMobileAndTablet(t *testing.T) {
	osAndroid := &osresolve.OS{Name: "Android", Family: "Android", Version: "12"}

	mobile := emptyTables().Resolve(
		"Mozilla/5.0 (Linux; Android 12) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0 Mobile Safari/537.36",
		nil, nil, osAndroid,
	)
	assert.Equal(t, TypeSmartPhone, mobile.DeviceType)

	tablet := emptyTables().Resolve(
		"Mozilla/5.0 (Linux; Android 12) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0 Safari/537.36",
		nil, nil, osAndroid,
	)
	assert.Equal(t, TypeTablet, tablet.DeviceType)
}

func TestResolvePadOverridesSmartPhoneToTablet(t *testing.T) {
	tables := emptyTables()
	tables.Mobiles = mustLoadCategoryTable(t, `
- vendor: Generic
  device: smartphone
  regex: "Pad\\/"
`)
	dev := tables.Resolve("Mozilla/5.0 (Linux; Pad/1.0)", nil, nil, nil)
	assert.Equal(t, TypeTablet, dev.DeviceType)
}

func TestResolveAndroidVersionInfersSmartPhoneAndTablet(t *testing.T) {
	phone := emptyTables().Resolve("Mozilla/5.0 (Linux; Android 1.5)", nil, nil,
		&osresolve.OS{Name: "Android", Family: "Android", Version: "1.5"})
	assert.Equal(t, TypeSmartPhone, phone.DeviceType)

	tablet := emptyTables().Resolve("Mozilla/5.0 (Linux; Android 3.2)", nil, nil,
		&osresolve.OS{Name: "Android", Family: "Android", Version: "3.2"})
	assert.Equal(t, TypeTablet, tablet.DeviceType)
}

func TestResolveFeaturePhoneOnAndroidPromotedToSmartPhone(t *testing.T) {
	tables := emptyTables()
	tables.Mobiles = mustLoadCategoryTable(t, `
- vendor: Nokia
  device: "feature phone"
  regex: "Nokia6303"
`)
	dev := tables.Resolve("Nokia6303/2.0", nil, nil,
		&osresolve.OS{Name: "Android", Family: "Android", Version: "4.4"})
	assert.Equal(t, TypeSmartPhone, dev.DeviceType)
}

func TestResolveJavaMEFeaturePhone(t *testing.T) {
	dev := emptyTables().Resolve("Some/UA", nil, nil, &osresolve.OS{Name: "Java ME"})
	assert.Equal(t, TypeFeaturePhone, dev.DeviceType)
}

func TestResolveWindowsRTTablet(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 (Windows RT)", nil, nil, &osresolve.OS{Name: "Windows RT"})
	assert.Equal(t, TypeTablet, dev.DeviceType)
}

func TestResolveTouchWindows8Tablet(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 (Windows NT 6.2; Touch)", nil, nil,
		&osresolve.OS{Name: "Windows", Version: "8.0"})
	assert.Equal(t, TypeTablet, dev.DeviceType)
	assert.True(t, dev.TouchEnabled)
}

func TestResolveGenericTVAndBRAVIA(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 BRAVIA VH1", nil, nil, nil)
	assert.Equal(t, TypeTelevision, dev.DeviceType)
}

func TestResolveDesktopFragmentForced(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 (Windows NT 10.0; Desktop; Win64; x64)", nil, nil, nil)
	assert.Equal(t, TypeDesktop, dev.DeviceType)
}

func TestResolveDesktopFallbackUsesRealOS(t *testing.T) {
	osTable, err := osresolve.DefaultTable()
	require.NoError(t, err)

	ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0 Safari/537.36"
	resolvedOS := osTable.Lookup(ua, &hints.ClientHint{})
	require.NotNil(t, resolvedOS)
	require.True(t, resolvedOS.Desktop())

	dev := emptyTables().Resolve(ua, nil, nil, resolvedOS)
	assert.Equal(t, TypeDesktop, dev.DeviceType)
}

func TestResolveClientHintModelAndMobile(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 (Linux; Android 12)",
		nil, &hints.ClientHint{Model: "Pixel 7", Mobile: true}, nil)
	assert.Equal(t, "Pixel 7", dev.Model)
	assert.True(t, dev.MobileClientHint)
}

func TestResolveVendorFragmentBrandFallback(t *testing.T) {
	tables := emptyTables()
	tables.VendorFragments = mustLoadVendorFragments(t, `
- vendor: LG
  fragments:
    - "LG-"
`)
	dev := tables.Resolve("Mozilla/5.0 (Linux; U; Android 9; LG-M255)", nil, nil, nil)
	assert.Equal(t, "LG", dev.Brand)
}

func TestResolveAppleBrandClearedWhenOSInconsistent(t *testing.T) {
	tables := emptyTables()
	tables.VendorFragments = mustLoadVendorFragments(t, `
- vendor: Apple
  fragments:
    - "iPhone"
`)
	dev := tables.Resolve("Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X)",
		nil, nil, &osresolve.OS{Name: "Android", Family: "Android"})
	assert.Empty(t, dev.Brand)
	assert.False(t, dev.HasType())
}

func TestResolveAppleBrandInferredFromOS(t *testing.T) {
	dev := emptyTables().Resolve("Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)",
		nil, nil, &osresolve.OS{Name: "iPadOS", Family: "iPadOS"})
	assert.Equal(t, "Apple", dev.Brand)
}

func TestResolveAndroidKRewriteAdoptsClientHintModel(t *testing.T) {
	dev := emptyTables().Resolve(
		"Mozilla/5.0 (Linux; Android 10; K Build/QP1A.190711.020)",
		nil, &hints.ClientHint{Model: "Pixel 4"}, &osresolve.OS{Name: "Android", Family: "Android", Version: "10"})
	assert.Equal(t, "Pixel 4", dev.Model)
}

func TestUsesMobileBrowserRequiresBrowserType(t *testing.T) {
	assert.False(t, UsesMobileBrowser(&client.Client{Type: client.TypeLibrary}))
}

func mustLoadCategoryTable(t *testing.T, yamlDoc string) *CategoryTable {
	t.Helper()
	tbl, err := LoadCategoryTable([]byte(yamlDoc))
	require.NoError(t, err)
	return tbl
}

func mustLoadVendorFragments(t *testing.T, yamlDoc string) *VendorFragments {
	t.Helper()
	vf, err := LoadVendorFragments([]byte(yamlDoc))
	require.NoError(t, err)
	return vf
}
