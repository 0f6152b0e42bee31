// Package hints parses the Sec-CH-UA-* Client Hints header family into a
// structured ClientHint value, per spec.md §4.3.
package hints

import (
	"regexp"
	"strings"
)

// Brand is one entry of a full-version-list (brand name + its version).
type Brand struct {
	Name    string
	Version string
}

// ClientHint holds every Client Hint field the resolvers reconcile
// against User-Agent-derived data. Fields absent from the request are the
// zero value (empty string / nil slice / false for Mobile).
type ClientHint struct {
	Architecture    string
	Bitness         string
	Mobile          bool
	Model           string
	UAFullVersion   string
	Platform        string
	PlatformVersion string
	FormFactors     []string
	FullVersionList []Brand
	App             string
}

var brandRegex = regexp.MustCompile(`"([^"]+)";\s*v="?([^"]+)"?`)

func parseBrandList(value string) []Brand {
	var out []Brand
	for _, m := range brandRegex.FindAllStringSubmatch(value, -1) {
		out = append(out, Brand{Name: m[1], Version: m[2]})
	}
	return out
}

func splitFormFactors(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.Trim(strings.TrimSpace(part), `"`)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Header is a single raw request header (name, value) pair, matching the
// original ingestion shape (a plain ordered list, not a map, since the
// same logical header may repeat and the last value wins for some keys).
type Header struct {
	Name  string
	Value string
}

// FromHeaders parses a ClientHint out of the request's raw headers. Header
// names are matched case-insensitively and with '_'/'-' interchangeable,
// mirroring proxies and FFI callers that normalize headers differently.
func FromHeaders(headers []Header) ClientHint {
	var ch ClientHint

	for _, h := range headers {
		name := strings.ToLower(strings.ReplaceAll(h.Name, "_", "-"))
		name = strings.TrimSpace(name)
		value := h.Value

		switch name {
		case "http-sec-ch-ua-arch", "sec-ch-ua-arch", "arch", "architecture":
			ch.Architecture = strings.Trim(value, `"`)

		case "http-sec-ch-ua-bitness", "sec-ch-ua-bitness", "bitness":
			ch.Bitness = strings.Trim(value, `"`)

		case "http-sec-ch-ua-mobile", "sec-ch-ua-mobile", "mobile":
			if value == "1" || value == "true" || value == "yes" || value == "?1" {
				ch.Mobile = true
			}

		case "http-sec-ch-ua-model", "sec-ch-ua-model", "model":
			trimmed := strings.Trim(value, `"`)
			if trimmed != "" {
				ch.Model = trimmed
			}

		case "http-sec-ch-ua-platform", "sec-ch-ua-platform", "platform":
			ch.Platform = strings.Trim(value, `"`)

		case "http-sec-ch-ua-platform-version", "sec-ch-ua-platform-version", "platformversion":
			ch.PlatformVersion = strings.Trim(value, `"`)

		case "http-sec-ch-ua-form-factors", "sec-ch-ua-form-factors", "formfactors":
			ch.FormFactors = splitFormFactors(value)

		case "http-x-requested-with", "x-requested-with":
			if value != "xmlhttprequest" {
				ch.App = value
			}

		case "http-sec-ch-ua-full-version", "sec-ch-ua-full-version":
			ch.UAFullVersion = strings.Trim(value, `"`)

		case "http-sec-ch-ua", "sec-ch-ua":
			if len(ch.FullVersionList) == 0 {
				ch.FullVersionList = parseBrandList(value)
			}

		case "http-sec-ch-ua-full-version-list", "sec-ch-ua-full-version-list":
			ch.FullVersionList = parseBrandList(value)
		}
	}

	return ch
}

// Mapping is a case-insensitive "canonical name <- any of these aliases"
// table, used to normalize a Client-Hint-reported brand/platform name to
// the name the UA-derived rule tables use (e.g. "Linux" -> "GNU/Linux").
type Mapping struct {
	entries []mappingEntry
}

type mappingEntry struct {
	canonical string
	aliases   []string
}

// NewMapping builds a Mapping from canonical name -> alias list pairs,
// applied in the given order (first matching entry wins).
func NewMapping(canonicalToAliases map[string][]string, order []string) *Mapping {
	m := &Mapping{}
	for _, canonical := range order {
		m.entries = append(m.entries, mappingEntry{canonical: canonical, aliases: canonicalToAliases[canonical]})
	}
	return m
}

// Apply returns the canonical name for name if it matches one of the
// mapping's aliases (case-insensitively), else name unchanged.
func (m *Mapping) Apply(name string) string {
	for _, e := range m.entries {
		for _, alias := range e.aliases {
			if strings.EqualFold(alias, name) {
				return e.canonical
			}
		}
	}
	return name
}
