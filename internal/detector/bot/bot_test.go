package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTableDecodesRowsInOrder(t *testing.T) {
	table, err := LoadTable([]byte(`
- regex: "Googlebot"
  name: "Googlebot"
  category: "Search bot"
  url: "https://www.google.com/bot.html"
  producer:
    name: "Google Inc."
    url: "https://www.google.com"
- regex: "bingbot"
  name: "Bingbot"
  category: "Search bot"
`))
	require.NoError(t, err)

	bot := table.Lookup("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	require.NotNil(t, bot)
	assert.Equal(t, "Googlebot", bot.Name)
	assert.Equal(t, "Search bot", bot.Category)
	require.NotNil(t, bot.Producer)
	assert.Equal(t, "Google Inc.", bot.Producer.Name)
}

func TestLookupReturnsFirstMatchWins(t *testing.T) {
	table, err := LoadTable([]byte(`
- regex: "bot"
  name: "GenericBot"
- regex: "Googlebot"
  name: "Googlebot"
`))
	require.NoError(t, err)

	bot := table.Lookup("Mozilla/5.0 (compatible; Googlebot/2.1)")
	require.NotNil(t, bot)
	assert.Equal(t, "GenericBot", bot.Name)
}

func TestLookupReturnsNilWhenNoRuleMatches(t *testing.T) {
	table, err := LoadTable([]byte(`
- regex: "Googlebot"
  name: "Googlebot"
`))
	require.NoError(t, err)

	assert.Nil(t, table.Lookup("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
}

func TestNewTableClearsEmptyProducer(t *testing.T) {
	table := NewTable([]entry{
		{Regex: "Foo", Name: "Foo", Producer: &Producer{}},
	})
	bot := table.Lookup("Mozilla/5.0 Foo/1.0")
	require.NotNil(t, bot)
	assert.Nil(t, bot.Producer)
}

func TestLoadTableRejectsMalformedYAML(t *testing.T) {
	_, err := LoadTable([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestDefaultTableLoadsEmbeddedCorpus(t *testing.T) {
	table, err := DefaultTable()
	require.NoError(t, err)
	require.NotEmpty(t, table.entries)

	bot := table.Lookup("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	require.NotNil(t, bot)
	assert.Equal(t, "Googlebot", bot.Name)
}
