package client

import "strings"

// knownBrowsers groups common browsers by engine/rendering family, used
// when reconciling Client-Hints-reported brands against UA-derived
// clients (spec.md §4.6.2): two clients in the same family can safely
// swap engine/engine_version between them.
var knownBrowsers = map[string]BrowserMeta{
	"chrome":                    {Name: "Chrome", Family: "Chrome"},
	"chromium":                  {Name: "Chromium", Family: "Chrome"},
	"chromewebview":             {Name: "Chrome Webview", Family: "Chrome"},
	"microsoftedge":             {Name: "Microsoft Edge", Family: "Chrome"},
	"edgewebview":               {Name: "Edge WebView", Family: "Chrome"},
	"opera":                     {Name: "Opera", Family: "Chrome"},
	"operamini":                 {Name: "Opera Mini", Family: "Chrome", MobileOnly: true},
	"vivaldi":                   {Name: "Vivaldi", Family: "Chrome"},
	"bravebrowser":              {Name: "Brave", Family: "Chrome"},
	"samsunginternet":           {Name: "Samsung Internet", Family: "Chrome"},
	"yandexbrowser":             {Name: "Yandex Browser", Family: "Chrome"},
	"360securebrowser":          {Name: "360 Secure Browser", Family: "Chrome"},
	"huaweibrowser":             {Name: "Huawei Browser", Family: "Chrome"},
	"atom":                      {Name: "Atom", Family: "Chrome"},
	"iridium":                   {Name: "Iridium", Family: "Chrome"},
	"vewdbrowser":               {Name: "Vewd Browser", Family: ""},
	"vewdcore":                  {Name: "Vewd Core", Family: ""},
	"duckduckgoprivacybrowser":  {Name: "DuckDuckGo Privacy Browser", Family: ""},
	"everybrowser":              {Name: "Every Browser", Family: ""},
	"flowbrowser":               {Name: "Flow Browser", Family: "Chrome"},
	"firefox":                   {Name: "Firefox", Family: "Firefox"},
	"firefoxfocus":              {Name: "Firefox Focus", Family: "Firefox"},
	"waterfox":                  {Name: "Waterfox", Family: "Firefox"},
	"safari":                    {Name: "Safari", Family: "Safari"},
	"mobilesafari":              {Name: "Mobile Safari", Family: "Safari", MobileOnly: true},
	"chromemobile":              {Name: "Chrome Mobile", Family: "Chrome", MobileOnly: true},
	"internetexplorer":          {Name: "Internet Explorer", Family: "Internet Explorer"},
	"nortonsecurebrowser":       {Name: "Norton Secure Browser", Family: "Chrome"},
	"nortonprivatebrowser":      {Name: "Norton Private Browser", Family: "Chrome"},
}

func normalizeBrowserName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// searchBrowserByName returns the known browser metadata for name,
// case- and space-insensitively.
func searchBrowserByName(name string) (BrowserMeta, bool) {
	m, ok := knownBrowsers[normalizeBrowserName(name)]
	return m, ok
}
