package bot

import (
	_ "embed"
)

//go:embed bots.yml
var defaultBotsYAML []byte

// DefaultTable returns the built-in Table loaded from the bundled
// bots.yml corpus. It is built fresh each call; callers that need a
// process-wide singleton should cache it themselves (see
// internal/detector.New).
func DefaultTable() (*Table, error) {
	return LoadTable(defaultBotsYAML)
}
