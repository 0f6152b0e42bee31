package client

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
	"github.com/simplecastapps/go-device-detector/internal/detector/semver"
	"gopkg.in/yaml.v3"
)

// clientHintBrandMapping maps a Client-Hints-reported brand name to the
// canonical browser name the rule corpus uses.
var clientHintBrandMapping = map[string]string{
	"google chrome":             "Chrome",
	"android webview":           "Chrome Webview",
	"duckduckgo":                "DuckDuckGo Privacy Browser",
	"microsoft edge webview2":   "Edge WebView",
	"edge":                      "Microsoft Edge",
	"norton secure browser":     "Norton Private Browser",
	"vewd core":                 "Vewd Browser",
}

func applyClientHintBrandMapping(name string) string {
	if canonical, ok := clientHintBrandMapping[strings.ToLower(name)]; ok {
		return canonical
	}
	return name
}

type browserEngineYAML struct {
	Default  string            `yaml:"default"`
	Versions map[string]string `yaml:"versions"`
}

type browserRow struct {
	Name    string             `yaml:"name"`
	Regex   string             `yaml:"regex"`
	Version string             `yaml:"version"`
	Engine  *browserEngineYAML `yaml:"engine"`
}

type browserEntry struct {
	regex   *regexutil.LazyRegex
	name    string
	version string
	engine  *browserEngineYAML
}

// BrowserTable is the ordered browser rule table plus the hints
// reconciliation logic of spec.md §4.6.2/§4.6.3.
type BrowserTable struct {
	entries       []browserEntry
	engines       *EngineTable
	engineVersion *regexutil.EngineVersionCache
	appHints      ruleset.HintDict
}

// LoadBrowserTable decodes a browsers.yml document and wires it to the
// given standalone engine table, app-hint dictionary, and engine-version
// cache (shared across the process per spec.md §5).
func LoadBrowserTable(data []byte, engines *EngineTable, appHints ruleset.HintDict, engineVersionSoftLimit int, logger *slog.Logger) (*BrowserTable, error) {
	var rows []browserRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("client: decoding browsers.yml: %w", err)
	}

	t := &BrowserTable{
		engines:       engines,
		engineVersion: regexutil.NewEngineVersionCache(engineVersionSoftLimit, logger),
		appHints:      appHints,
	}
	for _, row := range rows {
		t.entries = append(t.entries, browserEntry{
			regex:   regexutil.NewUserAgentMatch(row.Regex),
			name:    row.Name,
			version: row.Version,
			engine:  row.Engine,
		})
	}
	return t, nil
}

func (t *BrowserTable) fromUA(ua string) *Client {
	for _, e := range t.entries {
		groups := e.regex.FindSubmatch(ua)
		if groups == nil {
			continue
		}

		version := regexutil.TrimVersion(regexutil.Expand(e.version, groups))
		name := regexutil.Expand(e.name, groups)

		engine := t.resolveEngine(ua, e.engine, version)
		var engineVersion string
		if engine != "" {
			engineVersion = t.resolveEngineVersion(ua, engine)
		}

		c := &Client{
			Name:          name,
			Version:       version,
			Type:          TypeBrowser,
			Engine:        engine,
			EngineVersion: engineVersion,
		}
		if meta, ok := searchBrowserByName(name); ok {
			c.browser = &meta
		}
		return c
	}
	return nil
}

func (t *BrowserTable) resolveEngine(ua string, entryEngine *browserEngineYAML, version string) string {
	var engine string

	if entryEngine != nil {
		type kv struct{ version, engine string }
		var versions []kv
		for v, e := range entryEngine.Versions {
			versions = append(versions, kv{v, e})
		}
		sort.Slice(versions, func(i, j int) bool { return semver.Compare(versions[i].version, versions[j].version) < 0 })

		for _, v := range versions {
			if semver.GreaterOrEqual(version, v.version) {
				engine = v.engine
			}
		}
		if engine == "" {
			engine = entryEngine.Default
		}
	}

	if engine == "" {
		engine = t.engines.Lookup(ua)
	}
	return engine
}

func (t *BrowserTable) resolveEngineVersion(ua, engine string) string {
	if engine == "" {
		return ""
	}

	if engine == "Gecko" || engine == "Clecko" {
		if groups := geckoVersionRegex.FindSubmatch(ua); groups != nil {
			return groups[1]
		}
	}

	token := engine
	switch engine {
	case "Blink":
		token = `(?:Chrome|Cronet)`
	case "Arachne":
		token = `(?:Arachne\/5\.)`
	case "LibWeb":
		token = `(?:LibWeb\+LibJs)`
	}

	re, err := t.engineVersion.Regex(token)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(ua)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

var geckoVersionRegex = regexutil.New(`(?i:[ ](?:rv[: ]([0-9\.]+)).*(?:g|cl)ecko/[0-9]{8,10})`)
var blinkRegex = regexutil.New(`Chrome/.+ Safari/537.36`)

func (t *BrowserTable) fromHints(ua string, ch *hints.ClientHint, uaClient *Client) *Client {
	if ch == nil || len(ch.FullVersionList) == 0 {
		return nil
	}

	type candidate struct {
		brand        string
		brandVersion string
		meta         BrowserMeta
	}
	var candidates []candidate
	for _, b := range ch.FullVersionList {
		mapped := applyClientHintBrandMapping(b.Name)
		if meta, ok := searchBrowserByName(strings.TrimSpace(mapped)); ok {
			candidates = append(candidates, candidate{brand: mapped, brandVersion: b.Version, meta: meta})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		iLast := candidates[i].brand == "Chromium" || candidates[i].brand == "Microsoft Edge"
		jLast := candidates[j].brand == "Chromium" || candidates[j].brand == "Microsoft Edge"
		return !iLast && jLast
	})

	best := candidates[0]
	version := best.brandVersion
	if ch.UAFullVersion != "" {
		version = ch.UAFullVersion
	}

	meta := best.meta
	return &Client{
		Name:    meta.Name,
		Version: version,
		Type:    TypeBrowser,
		browser: &meta,
	}
}

// Lookup resolves the browser client from a user agent and optional
// client hints, applying the full reconciliation chain of spec.md
// §4.6.2.
func (t *BrowserTable) Lookup(ua string, ch *hints.ClientHint) *Client {
	fromUA := t.fromUA(ua)
	fromHints := t.fromHints(ua, ch, fromUA)

	if fromHints != nil {
		reconcileBrowser(fromHints, fromUA)
	}

	res := fromHints
	if res == nil {
		res = fromUA
	}
	if res == nil {
		return nil
	}

	if ch != nil && ch.App != "" {
		if appName, ok := t.appHints.Get(ch.App); ok && appName != res.Name {
			res.Name = appName
			res.Version = ""
			if meta, ok := searchBrowserByName(appName); ok {
				if blinkRegex.MatchString(ua) {
					res.Engine = "Blink"
					res.EngineVersion = t.resolveEngineVersion(ua, "Blink")
					if meta.Family == "" {
						meta.Family = "Chrome"
					}
					res.browser = &meta
				}
			}
		}
	}

	if res.Engine == "Blink" && res.Name == "Flow Browser" {
		res.EngineVersion = ""
	}
	if res.Name == "Every Browser" {
		res.Engine = "Blink"
		res.EngineVersion = ""
	}

	return res
}

var iridiumYears = []string{"2020", "2021", "2022", "2023", "2024"}

func reconcileBrowser(fromHints, fromUA *Client) {
	if fromHints.Version != "" {
		for _, year := range iridiumYears {
			if strings.HasPrefix(fromHints.Version, year) {
				fromHints.Name = "Iridium"
				break
			}
		}

		if fromUA != nil && fromUA.Version != "" &&
			strings.HasPrefix(fromHints.Version, "15") && strings.HasPrefix(fromUA.Version, "114") {
			fromHints.Name = "360 Secure Browser"
			fromHints.Engine = fromUA.Engine
			fromHints.EngineVersion = fromUA.EngineVersion
		}
	}

	if fromHints.Name == "Atom" || fromHints.Name == "Huawei Browser" {
		if fromUA != nil {
			fromHints.Version = fromUA.Version
		} else {
			fromHints.Version = ""
		}
	}

	if fromHints.Name == "DuckDuckGo Privacy Browser" {
		fromHints.Version = ""
	}

	if fromHints.Name == "Vewd Browser" {
		if fromUA != nil {
			fromHints.Engine = fromUA.Engine
			fromHints.EngineVersion = fromUA.EngineVersion
		} else {
			fromHints.Engine = ""
			fromHints.EngineVersion = ""
		}
	}

	if fromHints.Name == "Chromium" && fromUA != nil && fromUA.Name != "Chromium" {
		fromHints.Name = fromUA.Name
		fromHints.Version = fromUA.Version
	}

	if fromUA != nil && fromUA.Name == fromHints.Name+" Mobile" {
		fromHints.Name = fromUA.Name
	}

	if fromUA != nil && fromHints.Name != fromUA.Name {
		if fromHints.browser != nil && fromHints.browser.Family != "" &&
			fromUA.browser != nil && fromHints.browser.Family == fromUA.browser.Family {
			fromHints.Engine = fromUA.Engine
			fromHints.EngineVersion = fromUA.EngineVersion
		}
	}

	if fromUA != nil && fromHints.Name == fromUA.Name {
		fromHints.Engine = fromUA.Engine
		fromHints.EngineVersion = fromUA.EngineVersion

		if fromUA.Version != "" && fromHints.Version != "" && strings.HasPrefix(fromUA.Version, fromHints.Version) {
			if semver.Compare(fromHints.Version, fromUA.Version) < 0 {
				fromHints.Version = fromUA.Version
			}
		}
	}
}
