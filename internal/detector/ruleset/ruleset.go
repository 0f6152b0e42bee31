// Package ruleset loads the YAML rule tables (bots, browsers, engines,
// operating systems, devices, hint dictionaries) that drive the detection
// engine. Every table preserves on-disk file order: the corpus is
// evaluated first-match-wins, so re-sorting entries changes behavior.
package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load decodes raw YAML bytes into a slice of T, preserving file order.
// It is used for every simple "list of rule entries" table (bots,
// vendor fragments, feed readers, libraries, mobile apps, PIM clients,
// media players, car browsers, cameras, consoles, notebooks, portable
// media players, shell TVs, televisions).
func Load[T any](data []byte) ([]T, error) {
	var entries []T
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ruleset: decoding rule table: %w", err)
	}
	return entries, nil
}

// HintDict is a flat string→string dictionary, used for the app-hint and
// browser-hint lookup tables (hints/apps.yml, hints/browsers.yml).
type HintDict map[string]string

// LoadHintDict decodes a flat YAML mapping into a HintDict.
func LoadHintDict(data []byte) (HintDict, error) {
	var dict HintDict
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("ruleset: decoding hint dictionary: %w", err)
	}
	return dict, nil
}

// Get returns the mapped value for key, case-sensitive, and whether it
// was present.
func (d HintDict) Get(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

// MustLoad panics if loading fails. Rule tables are embedded at compile
// time and loaded once at process start: a malformed table is a build
// defect, not a runtime condition callers should handle, so this mirrors
// the corpus's own "expect() at load time" idiom translated to Go.
func MustLoad[T any](data []byte) []T {
	entries, err := Load[T](data)
	if err != nil {
		panic(err)
	}
	return entries
}

// MustLoadHintDict panics if loading fails, for the same reason as
// MustLoad.
func MustLoadHintDict(data []byte) HintDict {
	dict, err := LoadHintDict(data)
	if err != nil {
		panic(err)
	}
	return dict
}
