package client

import (
	"fmt"
	"log/slog"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/ruleset"
)

// Tables bundles every rule table the client resolver consults, in the
// probe order of spec.md §4.6: feed readers, mobile apps, media players,
// PIM clients, browsers, libraries.
type Tables struct {
	FeedReaders  *GenericTable
	MobileApps   *MobileAppTable
	MediaPlayers *GenericTable
	Pim          *GenericTable
	Browsers     *BrowserTable
	Libraries    *GenericTable
}

// Config holds the raw rule-table bytes and tuning parameters needed to
// build a Tables instance.
type Config struct {
	FeedReadersYAML     []byte
	MobileAppsYAML      []byte
	MediaPlayersYAML    []byte
	PimYAML             []byte
	BrowsersYAML        []byte
	LibrariesYAML       []byte
	BrowserEngineYAML   []byte
	HintAppsYAML        []byte
	EngineVersionSoft   int
	Logger              *slog.Logger
}

// NewTables loads every client rule table from the given raw YAML
// documents.
func NewTables(cfg Config) (*Tables, error) {
	feedReaders, err := LoadGenericTable(cfg.FeedReadersYAML, TypeFeedReader)
	if err != nil {
		return nil, fmt.Errorf("client: feed readers: %w", err)
	}

	mobileAppsRaw, err := LoadGenericTable(cfg.MobileAppsYAML, TypeMobileApp)
	if err != nil {
		return nil, fmt.Errorf("client: mobile apps: %w", err)
	}

	mediaPlayers, err := LoadGenericTable(cfg.MediaPlayersYAML, TypeMediaPlayer)
	if err != nil {
		return nil, fmt.Errorf("client: media players: %w", err)
	}

	pim, err := LoadGenericTable(cfg.PimYAML, TypePim)
	if err != nil {
		return nil, fmt.Errorf("client: pim: %w", err)
	}

	libraries, err := LoadGenericTable(cfg.LibrariesYAML, TypeLibrary)
	if err != nil {
		return nil, fmt.Errorf("client: libraries: %w", err)
	}

	engines, err := LoadEngineTable(cfg.BrowserEngineYAML)
	if err != nil {
		return nil, fmt.Errorf("client: browser engines: %w", err)
	}

	appHints, err := ruleset.LoadHintDict(cfg.HintAppsYAML)
	if err != nil {
		return nil, fmt.Errorf("client: hint apps: %w", err)
	}

	browsers, err := LoadBrowserTable(cfg.BrowsersYAML, engines, appHints, cfg.EngineVersionSoft, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("client: browsers: %w", err)
	}

	return &Tables{
		FeedReaders:  feedReaders,
		MobileApps:   NewMobileAppTable(mobileAppsRaw, appHints),
		MediaPlayers: mediaPlayers,
		Pim:          pim,
		Browsers:     browsers,
		Libraries:    libraries,
	}, nil
}

// Resolve runs the ordered client probe chain of spec.md §4.6 and
// returns the first match, or nil if the request matches no known
// client.
func (t *Tables) Resolve(ua string, ch *hints.ClientHint) *Client {
	if c := t.FeedReaders.Lookup(ua); c != nil {
		return c
	}
	if c := t.MobileApps.Lookup(ua, ch); c != nil {
		return c
	}
	if c := t.MediaPlayers.Lookup(ua); c != nil {
		return c
	}
	if c := t.Pim.Lookup(ua); c != nil {
		return c
	}
	if c := t.Browsers.Lookup(ua, ch); c != nil {
		return c
	}
	if c := t.Libraries.Lookup(ua); c != nil {
		return c
	}
	return nil
}
