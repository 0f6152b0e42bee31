// Package osresolve resolves the operating system of a request from its
// User-Agent and Client Hints, per spec.md §4.5 and §4.5.1.
package osresolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"gopkg.in/yaml.v3"
)

// OS is the resolved operating system record.
type OS struct {
	Name     string
	Version  string
	Platform string
	Family   string

	desktop bool
}

// Desktop reports whether the OS's family is considered a desktop
// platform (used by the device resolver's final fallback).
func (o OS) Desktop() bool { return o.desktop }

var clientHintPlatformMapping = map[string][]string{
	"GNU/Linux": {"Linux"},
	"Mac":       {"MacOS"},
}
var clientHintPlatformOrder = []string{"GNU/Linux", "Mac"}

var androidAppHints = []string{
	"com.hisense.odinbrowser",
	"com.seraphic.openinet.pre",
	"com.appssppa.idesktoppcbrowser",
	"every.browser.inc",
}

var fireOSVersionTable = map[string]string{
	"11": "8", "10": "7", "9": "7", "7": "6", "5": "5",
	"4.4.3": "4.5.1", "4.4.2": "4", "4.2.2": "3", "4.0.3": "3", "4.0.2": "3",
	"4": "2", "2": "1",
}

// yamlVersion mirrors a single entry of an OS's "versions" list, which may
// be a bare version string (reusing the entry's top-level regex) or an
// object with its own regex.
type yamlVersion struct {
	Regex   string
	Version string
}

func (v *yamlVersion) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.Version = node.Value
		return nil
	}
	var obj struct {
		Regex   string `yaml:"regex"`
		Version string `yaml:"version"`
	}
	if err := node.Decode(&obj); err != nil {
		return err
	}
	v.Regex = obj.Regex
	v.Version = obj.Version
	return nil
}

type yamlOSEntry struct {
	Name     string        `yaml:"name"`
	Regex    string        `yaml:"regex"`
	Version  string        `yaml:"version"`
	Versions []yamlVersion `yaml:"versions"`
}

type osVersionRule struct {
	regex   *regexutil.LazyRegex
	version string
}

type entry struct {
	regex    *regexutil.LazyRegex
	name     string
	version  string
	versions []osVersionRule
}

// Table is the loaded, ordered OS rule table.
type Table struct {
	entries []entry
	known   *KnownOSTable
}

// LoadTable decodes an oss.yml document and builds a Table.
func LoadTable(data []byte, known *KnownOSTable) (*Table, error) {
	var rows []yamlOSEntry
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("osresolve: decoding rule table: %w", err)
	}

	t := &Table{known: known}
	for _, row := range rows {
		e := entry{
			regex:   regexutil.NewUserAgentMatch(row.Regex),
			name:    row.Name,
			version: row.Version,
		}
		for _, v := range row.Versions {
			pattern := row.Regex
			if v.Regex != "" {
				pattern = v.Regex
			}
			e.versions = append(e.versions, osVersionRule{
				regex:   regexutil.NewUserAgentMatch(pattern),
				version: v.Version,
			})
		}
		t.entries = append(t.entries, e)
	}
	return t, nil
}

func normalizeVersion(v string) string {
	v = strings.ReplaceAll(v, "_", ".")
	v = strings.Trim(v, ". ")
	return v
}

// lookupUA scans the table in file order for the first matching OS.
func (t *Table) lookupUA(ua string) (OS, bool) {
	for i := range t.entries {
		e := &t.entries[i]
		groups := e.regex.FindSubmatch(ua)
		if groups == nil {
			continue
		}

		name := regexutil.Expand(e.name, groups)
		if known, ok := t.known.SearchByName(name); ok {
			name = known.Name
		}

		var version string
		for _, vr := range e.versions {
			if vg := vr.regex.FindSubmatch(ua); vg != nil {
				version = regexutil.Expand(vr.version, vg)
				break
			}
		}
		if version == "" && e.version != "" {
			version = regexutil.Expand(e.version, groups)
		}
		version = normalizeVersion(version)

		os := OS{Name: name, Version: version}
		if known, ok := t.known.SearchByName(name); ok {
			os.Family = known.Family
			os.desktop = known.Desktop
		}
		return os, true
	}
	return OS{}, false
}

// Lookup resolves the OS from a user agent and optional client hints,
// applying the full hint/UA reconciliation chain of spec.md §4.5.
func (t *Table) Lookup(ua string, ch *hints.ClientHint) *OS {
	osFromHints, haveHints := t.fromHints(ch)
	osFromUA, haveUA := t.lookupUA(ua)

	if haveHints && haveUA {
		reconcile(&osFromHints, &osFromUA)
	}

	var res OS
	switch {
	case haveHints:
		res = osFromHints
	case haveUA:
		res = osFromUA
	default:
		return nil
	}

	if platform := parsePlatform(ua, ch); platform != "" {
		res.Platform = platform
	}

	if known, ok := t.known.SearchByName(res.Name); ok {
		if known.Family != "" {
			res.Family = known.Family
			res.desktop = known.Desktop
		}
	}

	if ch != nil && res.Name != "Android" && ch.App != "" {
		for _, app := range androidAppHints {
			if app == ch.App {
				res.Name = "Android"
				res.Family = "Android"
				res.Version = ""
				break
			}
		}
	}

	return &res
}

func (t *Table) fromHints(ch *hints.ClientHint) (OS, bool) {
	if ch == nil || ch.Platform == "" {
		return OS{}, false
	}

	hint := ch.Platform
	for _, canonical := range clientHintPlatformOrder {
		for _, alias := range clientHintPlatformMapping[canonical] {
			if strings.EqualFold(alias, ch.Platform) {
				hint = canonical
			}
		}
	}

	known, ok := t.known.SearchByName(hint)
	if !ok {
		return OS{}, false
	}

	version := ch.PlatformVersion
	if version != "" && known.Name == "Windows" {
		if major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0]); err == nil {
			switch {
			case major > 0 && major < 11:
				version = "10"
			case major > 10:
				version = "11"
			}
		}
	}

	return OS{
		Name:    known.Name,
		Version: version,
		Family:  known.Family,
		desktop: known.Desktop,
	}, true
}

// reconcile applies the UA-derived overrides onto the hint-derived OS, in
// place, mirroring original_source/src/parsers/oss.rs::lookup.
func reconcile(fromHints, fromUA *OS) {
	if fromHints.Version == "" && fromUA.Version != "" && fromHints.Family == fromUA.Family {
		fromHints.Version = fromUA.Version
	}

	if fromUA.Family != "" && fromUA.Family == fromHints.Name {
		fromHints.Name = fromUA.Name

		if fromHints.Name == "HarmonyOS" {
			fromHints.Version = ""
		}

		if fromHints.Name == "Fire OS" && fromHints.Version != "" {
			major := fromHints.Version
			if idx := strings.IndexByte(major, '.'); idx >= 0 {
				major = major[:idx]
			}
			if v, ok := fireOSVersionTable[fromHints.Version]; ok {
				fromHints.Version = v
			} else if v, ok := fireOSVersionTable[major]; ok {
				fromHints.Version = v
			} else {
				fromHints.Version = ""
			}
		}
	}

	if fromHints.Name == "GNU/Linux" && fromUA.Name == "Chrome OS" && fromHints.Version == fromUA.Version {
		fromHints.Name = fromUA.Name
	}
}

func parsePlatform(ua string, ch *hints.ClientHint) string {
	if ch != nil && ch.Architecture != "" {
		arch := strings.ToLower(ch.Architecture)
		switch {
		case strings.Contains(arch, "arm"):
			return "ARM"
		case strings.Contains(arch, "mips"):
			return "MIPS"
		case strings.Contains(arch, "sh4"):
			return "SuperH"
		case strings.Contains(arch, "x64"):
			return "x64"
		case strings.Contains(arch, "x86"):
			if ch.Bitness == "64" {
				return "x64"
			}
			return "x86"
		}
	}

	if armRegex.MatchString(ua) {
		return "ARM"
	}
	if mipsRegex.MatchString(ua) {
		return "MIPS"
	}
	if sh4Regex.MatchString(ua) {
		return "SuperH"
	}
	if x64Regex.MatchString(ua) {
		return "x64"
	}
	if x86Regex.MatchString(ua) {
		return "x86"
	}
	return ""
}

var (
	armRegex  = regexutil.NewUserAgentMatch(`arm|aarch64|Apple ?TV|Watch ?OS|Watch1,[12]`)
	mipsRegex = regexutil.NewUserAgentMatch(`mips`)
	sh4Regex  = regexutil.NewUserAgentMatch(`sh4`)
	x64Regex  = regexutil.NewUserAgentMatch(`64-?bit|WOW64|(?:Intel)?x64|WINDOWS_64|win64|amd64|x86_?64`)
	x86Regex  = regexutil.NewUserAgentMatch(`.+32bit|.+win32|(?:i[0-9]|x)86|i86pc`)
)
