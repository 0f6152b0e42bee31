// Package bot implements the bot detector: an ordered, first-match-wins
// scan of the bot rule table, per spec.md §4.4.
package bot

import (
	"fmt"

	"github.com/simplecastapps/go-device-detector/internal/detector/regexutil"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

// Producer identifies the company or project behind a bot, when known.
type Producer struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Bot is the classification result for an automated client.
type Bot struct {
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	URL      string    `yaml:"url"`
	Producer *Producer `yaml:"producer"`
}

// entry is one rule-table row: a compiled match pattern plus the Bot it
// produces on a hit.
type entry struct {
	Regex    string    `yaml:"regex"`
	Name     string    `yaml:"name"`
	URL      string    `yaml:"url"`
	Category string    `yaml:"category"`
	Producer *Producer `yaml:"producer"`

	compiled *regexutil.LazyRegex
}

// Table is the loaded, ordered bot rule table.
type Table struct {
	entries []*entry
}

// NewTable builds a Table from already-decoded rule rows. Each regex is
// compiled lazily on first match attempt, not here.
func NewTable(rows []entry) *Table {
	t := &Table{entries: make([]*entry, len(rows))}
	for i := range rows {
		e := rows[i]
		if e.Producer != nil && (e.Producer.Name == "" && e.Producer.URL == "") {
			e.Producer = nil
		}
		e.compiled = regexutil.NewUserAgentMatch(e.Regex)
		t.entries[i] = &e
	}
	return t
}

// LoadTable decodes a bots.yml document and builds a Table from it.
func LoadTable(data []byte) (*Table, error) {
	rows, err := ruleset.Load[entry](data)
	if err != nil {
		return nil, fmt.Errorf("bot: %w", err)
	}
	return NewTable(rows), nil
}

// Lookup scans the table in file order and returns the first matching
// Bot, or nil if the user agent does not match any bot rule.
func (t *Table) Lookup(ua string) *Bot {
	for _, e := range t.entries {
		if e.compiled.MatchString(ua) {
			return &Bot{
				Name:     e.Name,
				Category: e.Category,
				URL:      e.URL,
				Producer: e.Producer,
			}
		}
	}
	return nil
}
