// Package detector composes the bot, OS, client, and device resolvers
// into the single pipeline entry point `Detect`, per spec.md §2.
package detector

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/simplecastapps/go-device-detector/internal/detector/bot"
	"github.com/simplecastapps/go-device-detector/internal/detector/client"
	"github.com/simplecastapps/go-device-detector/internal/detector/device"
	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
	"github.com/simplecastapps/go-device-detector/internal/detector/osresolve"
)

// Config tunes the rule corpus source and engine-version cache bound for
// a Detector. The zero value selects the embedded default corpus and a
// soft limit of 40.
type Config struct {
	// RuleCorpusDir, when non-empty, is read once at construction time
	// in place of the embedded default corpus. Every file the corpus
	// defines must be present under this directory using the same
	// names as the embedded files (bots.yml, oss.yml, browsers.yml,
	// ...). This is a build/deployment-time substitution, not a
	// runtime rule extension: after New returns, the tables are
	// immutable for the process lifetime, same as the embedded corpus.
	RuleCorpusDir string

	// EngineVersionCacheSoftLimit bounds the shared browser
	// engine-version regex cache (§5). 0 selects the package default
	// of 40; the hard abort limit is always 2x this value.
	EngineVersionCacheSoftLimit int

	// Logger receives engine-version cache soft-limit warnings. Never
	// used on the hot detection path itself, which stays a pure
	// function per §5.
	Logger *slog.Logger
}

// Detector holds the immutable, process-lifetime rule tables backing
// Detect.
type Detector struct {
	bots    *bot.Table
	os      *osresolve.Table
	clients *client.Tables
	devices *device.Tables
}

// New builds a Detector from the given configuration.
func New(cfg Config) (*Detector, error) {
	if cfg.RuleCorpusDir != "" {
		return newFromDir(cfg)
	}
	return newFromEmbedded(cfg)
}

func newFromEmbedded(cfg Config) (*Detector, error) {
	bots, err := bot.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("detector: loading bot table: %w", err)
	}

	osTable, err := osresolve.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("detector: loading os table: %w", err)
	}

	clients, err := client.DefaultTables(cfg.EngineVersionCacheSoftLimit, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("detector: loading client tables: %w", err)
	}

	devices, err := device.DefaultTables()
	if err != nil {
		return nil, fmt.Errorf("detector: loading device tables: %w", err)
	}

	return &Detector{bots: bots, os: osTable, clients: clients, devices: devices}, nil
}

func newFromDir(cfg Config) (*Detector, error) {
	dir := cfg.RuleCorpusDir

	read := func(name string) ([]byte, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("detector: reading rule corpus override %q: %w", name, err)
		}
		return data, nil
	}

	botsYAML, err := read("bots.yml")
	if err != nil {
		return nil, err
	}
	bots, err := bot.LoadTable(botsYAML)
	if err != nil {
		return nil, fmt.Errorf("detector: loading bot table: %w", err)
	}

	ossYAML, err := read("oss.yml")
	if err != nil {
		return nil, err
	}
	osTable, err := osresolve.LoadTable(ossYAML, osresolve.NewKnownOSTable())
	if err != nil {
		return nil, fmt.Errorf("detector: loading os table: %w", err)
	}

	clientCfg := client.Config{EngineVersionSoft: cfg.EngineVersionCacheSoftLimit, Logger: cfg.Logger}
	for name, dst := range map[string]*[]byte{
		"feed_readers.yml":  &clientCfg.FeedReadersYAML,
		"mobile_apps.yml":   &clientCfg.MobileAppsYAML,
		"media_players.yml": &clientCfg.MediaPlayersYAML,
		"pim.yml":           &clientCfg.PimYAML,
		"browsers.yml":      &clientCfg.BrowsersYAML,
		"libraries.yml":     &clientCfg.LibrariesYAML,
		"browser_engine.yml": &clientCfg.BrowserEngineYAML,
		"hints_apps.yml":    &clientCfg.HintAppsYAML,
	} {
		data, err := read(name)
		if err != nil {
			return nil, err
		}
		*dst = data
	}
	clients, err := client.NewTables(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("detector: loading client tables: %w", err)
	}

	deviceCfg := device.Config{}
	for name, dst := range map[string]*[]byte{
		"televisions.yml":           &deviceCfg.TelevisionsYAML,
		"shell_tvs.yml":             &deviceCfg.ShellTVsYAML,
		"notebooks.yml":             &deviceCfg.NotebooksYAML,
		"consoles.yml":              &deviceCfg.ConsolesYAML,
		"car_browsers.yml":          &deviceCfg.CarBrowsersYAML,
		"cameras.yml":               &deviceCfg.CamerasYAML,
		"portable_media_players.yml": &deviceCfg.PortableMediaPlayersYAML,
		"mobiles.yml":               &deviceCfg.MobilesYAML,
		"vendorfragments.yml":       &deviceCfg.VendorFragmentsYAML,
	} {
		data, err := read(name)
		if err != nil {
			return nil, err
		}
		*dst = data
	}
	devices, err := device.NewTables(deviceCfg)
	if err != nil {
		return nil, fmt.Errorf("detector: loading device tables: %w", err)
	}

	return &Detector{bots: bots, os: osTable, clients: clients, devices: devices}, nil
}

// Detect runs the full seven-stage pipeline of spec.md §2 against a user
// agent and its associated request headers, returning a Detection. The
// result is either a Bot or a Known (client/os/device) record, never
// both.
func (d *Detector) Detect(ua string, headers ...hints.Header) Detection {
	if b := d.bots.Lookup(ua); b != nil {
		return Detection{Bot: b}
	}

	ch := hints.FromHeaders(headers)

	os := d.os.Lookup(ua, &ch)
	cl := d.clients.Resolve(ua, &ch)
	dev := d.devices.Resolve(ua, cl, &ch, os)

	known := KnownDevice{Client: cl, OS: os}
	if dev.HasType() || dev.Brand != "" || dev.Model != "" {
		known.Device = &dev
	}

	if known.Client == nil && known.OS == nil && known.Device == nil {
		return Detection{}
	}
	return Detection{Known: &known}
}
