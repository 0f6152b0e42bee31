package device

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"gopkg.in/yaml.v3"
)

// modelRow is a single model entry: either a bare model-name string, or
// an object refining it with its own regex/device/brand.
type modelRow struct {
	Regex  string
	Device string
	Model  string
	Brand  string
}

func (m *modelRow) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		m.Model = node.Value
		return nil
	}
	var obj struct {
		Regex  string `yaml:"regex"`
		Device string `yaml:"device"`
		Model  string `yaml:"model"`
		Brand  string `yaml:"brand"`
	}
	if err := node.Decode(&obj); err != nil {
		return err
	}
	m.Regex = obj.Regex
	m.Device = obj.Device
	m.Model = obj.Model
	m.Brand = obj.Brand
	return nil
}

// vendorRow is one top-level entry of a device category file: a vendor
// (brand) name, an optional device type applying to every match under
// it, a regex that must match before any model is considered, and an
// ordered list of model refinements.
type vendorRow struct {
	Vendor string     `yaml:"vendor"`
	Device string     `yaml:"device"`
	Regex  string     `yaml:"regex"`
	Model  *modelRow  `yaml:"model"`
	Models []modelRow `yaml:"models"`
}

type modelEntry struct {
	regex  *regexutil.LazyRegex
	device Type
	model  string
	brand  string
}

type vendorEntry struct {
	vendor string
	device Type
	regex  *regexutil.LazyRegex
	models []modelEntry
}

// CategoryTable is one of the eight ordered device-category rule tables
// (televisions, shell TVs, notebooks, consoles, car browsers, cameras,
// portable media players, mobiles). Table order, and the order of
// vendor entries within it, determines which device wins on an
// ambiguous match: earlier entries take priority.
type CategoryTable struct {
	entries []vendorEntry
}

// LoadCategoryTable decodes a device-category rule document and builds a
// CategoryTable from it.
func LoadCategoryTable(data []byte) (*CategoryTable, error) {
	var rows []vendorRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("device: decoding category table: %w", err)
	}

	t := &CategoryTable{}
	for _, row := range rows {
		ve := vendorEntry{
			vendor: row.Vendor,
			device: Type(row.Device),
			regex:  regexutil.NewUserAgentMatch(row.Regex),
		}

		var models []modelRow
		if row.Model != nil {
			models = append(models, *row.Model)
		}
		models = append(models, row.Models...)

		for _, m := range models {
			me := modelEntry{device: Type(m.Device), model: m.Model, brand: m.Brand}
			if m.Regex != "" {
				me.regex = regexutil.NewUserAgentMatch(m.Regex)
			}
			ve.models = append(ve.models, me)
		}

		t.entries = append(t.entries, ve)
	}
	return t, nil
}

var trailingTD = regexp.MustCompile(` [Tt][Dd]$`)

// Lookup scans the table in file order and returns the first matching
// Device, or nil.
func (t *CategoryTable) Lookup(ua string) *Device {
	for _, ve := range t.entries {
		groups := ve.regex.FindSubmatch(ua)
		if groups == nil {
			continue
		}

		deviceType := ve.device
		model := ""
		brand := ve.vendor

		for _, me := range ve.models {
			if me.regex != nil {
				mgroups := me.regex.FindSubmatch(ua)
				if mgroups == nil {
					continue
				}
				model = regexutil.Expand(me.model, mgroups)
			} else {
				model = me.model
			}
			if me.device != "" {
				deviceType = me.device
			}
			if me.brand != "" {
				brand = me.brand
			}
			break
		}

		model = strings.ReplaceAll(model, "_", " ")
		model = strings.TrimSpace(model)
		model = trailingTD.ReplaceAllString(model, "")
		if model == "Build" {
			model = ""
		}
		if brand == "Unknown" {
			brand = ""
		}

		return &Device{DeviceType: deviceType, Model: model, Brand: brand}
	}
	return nil
}
