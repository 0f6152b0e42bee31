package device

import _ "embed"

//go:embed televisions.yml
var televisionsYAML []byte

//go:embed shell_tvs.yml
var shellTVsYAML []byte

//go:embed notebooks.yml
var notebooksYAML []byte

//go:embed consoles.yml
var consolesYAML []byte

//go:embed car_browsers.yml
var carBrowsersYAML []byte

//go:embed cameras.yml
var camerasYAML []byte

//go:embed portable_media_players.yml
var portableMediaPlayersYAML []byte

//go:embed mobiles.yml
var mobilesYAML []byte

//go:embed vendorfragments.yml
var vendorFragmentsYAML []byte

// DefaultTables builds a Tables value from the bundled sample rule
// corpus.
func DefaultTables() (*Tables, error) {
	return NewTables(Config{
		TelevisionsYAML:          televisionsYAML,
		ShellTVsYAML:             shellTVsYAML,
		NotebooksYAML:            notebooksYAML,
		ConsolesYAML:             consolesYAML,
		CarBrowsersYAML:          carBrowsersYAML,
		CamerasYAML:              camerasYAML,
		PortableMediaPlayersYAML: portableMediaPlayersYAML,
		MobilesYAML:              mobilesYAML,
		VendorFragmentsYAML:      vendorFragmentsYAML,
	})
}
