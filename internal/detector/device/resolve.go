package device

import (
	"fmt"
	"strings"

	"github.com/simplecastapps/go-device-detector/internal/detector/client"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/osresolve"
	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"github.com/simplecastapps/go-device-detector/internal/detector/semver"
)

// Tables bundles the ordered category probe chain and the vendor
// fragment fallback table, per spec.md §4.7.
type Tables struct {
	Televisions          *CategoryTable
	ShellTVs             *CategoryTable
	Notebooks            *CategoryTable
	Consoles             *CategoryTable
	CarBrowsers          *CategoryTable
	Cameras              *CategoryTable
	PortableMediaPlayers *CategoryTable
	Mobiles              *CategoryTable
	VendorFragments      *VendorFragments
}

var appleOSNames = map[string]bool{
	"iPadOS": true, "tvOS": true, "watchOS": true, "iOS": true, "Mac": true,
}

var tvClientNames = map[string]bool{
	"Kylo": true, "Espial TV Browser": true, "LUJO TV Browser": true,
	"LogicUI TV Browser": true, "Open TV Browser": true, "Seraphic Sraf": true,
	"Opera Devices": true, "Crow Browser": true, "Vewd Browser": true,
	"TiviMate": true, "Quick Search TV": true, "QJY TV Browser": true, "TV Bro": true,
}

// Resolve runs the category probe chain, then applies the full
// reconciliation/classification chain of spec.md §4.7.
func (t *Tables) Resolve(ua string, cl *client.Client, ch *hints.ClientHint, os *osresolve.OS) Device {
	ua = rewriteAndroidK(ua, ch, os)

	dev := t.probeCategories(ua)

	if touchRegex.MatchString(ua) {
		dev.TouchEnabled = true
	}

	if ch != nil {
		if dev.Model == "" && ch.Model != "" {
			dev.Model = ch.Model
		}
		if ch.Mobile {
			dev.MobileClientHint = true
		}
	}

	if dev.Brand == "" {
		if brand := t.VendorFragments.Lookup(ua); brand != "" {
			dev.Brand = brand
		}
	}

	if os != nil {
		if dev.Brand == "Apple" && !appleOSNames[os.Name] {
			dev.DeviceType = ""
			dev.Brand = ""
			dev.Model = ""
		} else if dev.Brand == "" && appleOSNames[os.Name] {
			dev.Brand = "Apple"
		}
	}

	if !dev.HasType() && androidVRRegex.MatchString(ua) {
		dev.DeviceType = TypeWearable
	}

	if os != nil && os.Family == "Android" && chromeVersionRegex.MatchString(ua) {
		switch {
		case chromeMobileRegex.MatchString(ua):
			dev.DeviceType = TypeSmartPhone
		case safariNotMobileRegex.MatchString(ua):
			dev.DeviceType = TypeTablet
		}
	}

	if dev.DeviceType == TypeSmartPhone && padRegex.MatchString(ua) {
		dev.DeviceType = TypeTablet
	}

	if !dev.HasType() && (androidTabletOrGenericRegex.MatchString(ua) || operaTabletRegex.MatchString(ua)) {
		dev.DeviceType = TypeTablet
	}
	if !dev.HasType() && androidMobileOrGenericRegex.MatchString(ua) {
		dev.DeviceType = TypeSmartPhone
	}

	if os != nil {
		if !dev.HasType() && os.Name == "Android" && os.Version != "" {
			switch {
			case semver.Compare(os.Version, "2.0") < 0:
				dev.DeviceType = TypeSmartPhone
			case semver.Compare(os.Version, "3.0") >= 0 && semver.Compare(os.Version, "4.0") < 0:
				dev.DeviceType = TypeTablet
			}
		}

		if dev.DeviceType == TypeFeaturePhone && os.Family == "Android" {
			dev.DeviceType = TypeSmartPhone
		}

		if !dev.HasType() && os.Name == "Java ME" {
			dev.DeviceType = TypeFeaturePhone
		}

		if !dev.HasType() {
			if os.Name == "Windows RT" {
				dev.DeviceType = TypeTablet
			}
			if os.Version != "" && os.Name == "Windows" && semver.Compare(os.Version, "8.0") >= 0 && touchRegex.MatchString(ua) {
				dev.DeviceType = TypeTablet
			}
		}
	}

	if operaTVRegex.MatchString(ua) || andr0idTVRegex.MatchString(ua) {
		dev.DeviceType = TypeTelevision
	}
	if !dev.HasType() && tizenTVRegex.MatchString(ua) {
		dev.DeviceType = TypeTelevision
	}

	if cl != nil && tvClientNames[cl.Name] {
		dev.DeviceType = TypeTelevision
	}

	if !dev.HasType() && genericTVRegex.MatchString(ua) {
		dev.DeviceType = TypeTelevision
	}

	if desktopFragmentRegex.MatchString(ua) {
		dev.DeviceType = TypeDesktop
	}

	if !dev.HasType() && isDesktop(os, cl) {
		dev.DeviceType = TypeDesktop
	}

	return dev
}

// probeCategories runs the ordered, first-hit-wins category scan of
// spec.md §4.7. Televisions, shell-TVs, and notebooks are gated by a
// prerequisite UA fragment; the television-family probes additionally
// force a type-only Television record when their gate matches but no
// table entry does.
func (t *Tables) probeCategories(ua string) Device {
	if televisionGate.MatchString(ua) {
		if d := t.Televisions.Lookup(ua); d != nil {
			d.DeviceType = TypeTelevision
			return *d
		}
		return Device{DeviceType: TypeTelevision}
	}

	if shellTVGate.MatchString(ua) {
		if d := t.ShellTVs.Lookup(ua); d != nil {
			d.DeviceType = TypeTelevision
			return *d
		}
		return Device{DeviceType: TypeTelevision}
	}

	if notebookGate.MatchString(ua) {
		if d := t.Notebooks.Lookup(ua); d != nil {
			return *d
		}
	}

	for _, table := range []*CategoryTable{t.Consoles, t.CarBrowsers, t.Cameras, t.PortableMediaPlayers, t.Mobiles} {
		if d := table.Lookup(ua); d != nil {
			return *d
		}
	}
	return Device{}
}

// androidKFragment is the literal fragment rewriteAndroidK substitutes,
// e.g. "Android 10; K".
var androidKFragment = regexutil.New(`(Android 10[.0-9]*; K)(?: Build/|[;)])`)

// rewriteAndroidK implements spec.md §4.7's "Android 10; K" UA
// preprocessing step: some Chrome-on-Android builds anonymize their
// device model behind the literal token "K", relying on the
// sec-ch-ua-model hint to recover it.
func rewriteAndroidK(ua string, ch *hints.ClientHint, os *osresolve.OS) string {
	if ch == nil || ch.Model == "" {
		return ua
	}
	groups := androidKFragment.FindSubmatch(ua)
	if groups == nil {
		return ua
	}
	version := "10"
	if os != nil && os.Version != "" {
		version = os.Version
	}
	replacement := fmt.Sprintf("Android %s; %s", version, ch.Model)
	return strings.Replace(ua, groups[1], replacement, 1)
}

func isDesktop(os *osresolve.OS, cl *client.Client) bool {
	if os == nil {
		return false
	}
	if cl != nil && UsesMobileBrowser(cl) {
		return false
	}
	return os.Desktop()
}

// UsesMobileBrowser reports whether the client is a browser known to run
// only on mobile devices, per spec.md §4.7/§4.8.
func UsesMobileBrowser(cl *client.Client) bool {
	if cl.Type != client.TypeBrowser {
		return false
	}
	if b := cl.Browser(); b != nil {
		return b.MobileOnly
	}
	return false
}

var (
	televisionGate = regexutil.NewUserAgentMatch(`HbbTV/([1-9](?:\.[0-9]){1,2})`)
	shellTVGate    = regexutil.NewUserAgentMatch(`[a-z]+[ _]Shell[ _]\w{6}|tclwebkit(\d+[.\d]*)`)
	notebookGate   = regexutil.NewUserAgentMatch(`FBMD/`)

	touchRegex = regexutil.NewUserAgentMatch(`Touch`)

	androidVRRegex = regexutil.NewUserAgentMatch(`Android( [.0-9]+)?; Mobile VR;| VR `)

	chromeVersionRegex   = regexutil.NewUserAgentMatch(`Chrome/[.0-9]*`)
	chromeMobileRegex    = regexutil.NewUserAgentMatch(`(?:Mobile|eliboM)`)
	safariNotMobileRegex = regexutil.NewUserAgentMatch(`(?!Mobile )Safari`)

	padRegex = regexutil.NewUserAgentMatch(`Pad\/|APad`)

	androidTabletOrGenericRegex = regexutil.NewUserAgentMatch(`Android( [.0-9]+)?; Tablet;|Tablet(?! PC)|.*-tablet$`)
	androidMobileOrGenericRegex = regexutil.NewUserAgentMatch(`Android( [.0-9]+)?; Mobile;|.*-mobile$`)
	operaTabletRegex            = regexutil.NewUserAgentMatch(`Opera Tablet`)

	operaTVRegex   = regexutil.NewUserAgentMatch(`Opera TV Store| OMI/`)
	andr0idTVRegex = regexutil.NewUserAgentMatch(`Andr0id|(?:Android(?: UHD)?|Google) TV|\(lite\) TV|BRAVIA`)
	tizenTVRegex   = regexutil.NewUserAgentMatch(`SmartTV|Tizen.+ TV .+$`)
	genericTVRegex = regexutil.NewUserAgentMatch(`\(TV;`)

	desktopFragmentRegex = regexutil.NewUserAgentMatch(`Desktop(?: (x(?:32|64)|WOW64))?;`)
)
