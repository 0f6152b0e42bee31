// Package client resolves the requesting application from a User-Agent
// and Client Hints: a browser, feed reader, mobile app, PIM client,
// media player, or library, per spec.md §4.6.
package client

// Type discriminates the kind of client an HTTP request originated from.
type Type string

const (
	TypeBrowser     Type = "browser"
	TypeFeedReader  Type = "feed reader"
	TypeMobileApp   Type = "mobile app"
	TypePim         Type = "pim"
	TypeLibrary     Type = "library"
	TypeMediaPlayer Type = "mediaplayer"
)

// BrowserMeta is the known-browser metadata attached to a resolved
// browser Client: its canonical name and the engine family it belongs
// to, when recognized.
type BrowserMeta struct {
	Name       string
	Family     string
	MobileOnly bool
}

// Client is the resolved requesting application.
type Client struct {
	Name          string
	Version       string
	Type          Type
	Engine        string
	EngineVersion string

	browser *BrowserMeta
}

// Browser returns the known-browser metadata attached during resolution,
// or nil if the client isn't a recognized browser (or isn't a browser at
// all).
func (c *Client) Browser() *BrowserMeta { return c.browser }
