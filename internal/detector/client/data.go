package client

import (
	_ "embed"
	"log/slog"
)

//go:embed feed_readers.yml
var defaultFeedReadersYAML []byte

//go:embed mobile_apps.yml
var defaultMobileAppsYAML []byte

//go:embed media_players.yml
var defaultMediaPlayersYAML []byte

//go:embed pim.yml
var defaultPimYAML []byte

//go:embed browsers.yml
var defaultBrowsersYAML []byte

//go:embed libraries.yml
var defaultLibrariesYAML []byte

//go:embed browser_engine.yml
var defaultBrowserEngineYAML []byte

//go:embed hints_apps.yml
var defaultHintAppsYAML []byte

// DefaultTables builds a Tables instance from the bundled rule corpus,
// using the given engine-version cache soft limit (0 selects the
// package default of 40) and logger.
func DefaultTables(engineVersionSoft int, logger *slog.Logger) (*Tables, error) {
	return NewTables(Config{
		FeedReadersYAML:   defaultFeedReadersYAML,
		MobileAppsYAML:    defaultMobileAppsYAML,
		MediaPlayersYAML:  defaultMediaPlayersYAML,
		PimYAML:           defaultPimYAML,
		BrowsersYAML:      defaultBrowsersYAML,
		LibrariesYAML:     defaultLibrariesYAML,
		BrowserEngineYAML: defaultBrowserEngineYAML,
		HintAppsYAML:      defaultHintAppsYAML,
		EngineVersionSoft: engineVersionSoft,
		Logger:            logger,
	})
}
