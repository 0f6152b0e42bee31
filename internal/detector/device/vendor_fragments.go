package device

import (
	"fmt"

	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"gopkg.in/yaml.v3"
)

// vendorFragmentRow is one entry of vendorfragments.yml: a vendor name
// and the UA substrings that identify it. Each fragment gets
// "[^a-z0-9]+" appended before the anchored-prefix wrapper is applied,
// so "LG[^a-z0-9]+" matches "LG-P500" but not "LGE".
type vendorFragmentRow struct {
	Vendor    string   `yaml:"vendor"`
	Fragments []string `yaml:"fragments"`
}

type vendorFragmentEntry struct {
	vendor    string
	fragments []*regexutil.LazyRegex
}

// VendorFragments is the ordered vendor-substring fallback table used
// when a device's brand could not be determined from a category table
// match, per spec.md §4.7. Unlike the original implementation (which
// loads this table into an unordered map), this table preserves file
// order deterministically — see DESIGN.md.
type VendorFragments struct {
	entries []vendorFragmentEntry
}

// LoadVendorFragments decodes a vendorfragments.yml document.
func LoadVendorFragments(data []byte) (*VendorFragments, error) {
	var rows []vendorFragmentRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("device: decoding vendor fragments: %w", err)
	}

	vf := &VendorFragments{}
	for _, row := range rows {
		e := vendorFragmentEntry{vendor: row.Vendor}
		for _, frag := range row.Fragments {
			e.fragments = append(e.fragments, regexutil.NewUserAgentMatch(frag+"[^a-z0-9]+"))
		}
		vf.entries = append(vf.entries, e)
	}
	return vf, nil
}

// Lookup returns the first vendor whose fragment matches ua, or "".
func (vf *VendorFragments) Lookup(ua string) string {
	for _, e := range vf.entries {
		for _, frag := range e.fragments {
			if frag.MatchString(ua) {
				return e.vendor
			}
		}
	}
	return ""
}
