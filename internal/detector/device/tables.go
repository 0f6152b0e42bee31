package device

// Config holds the raw YAML documents for every device category table
// plus the vendor fragment fallback, per spec.md §4.7.
type Config struct {
	TelevisionsYAML          []byte
	ShellTVsYAML             []byte
	NotebooksYAML            []byte
	ConsolesYAML             []byte
	CarBrowsersYAML          []byte
	CamerasYAML              []byte
	PortableMediaPlayersYAML []byte
	MobilesYAML              []byte
	VendorFragmentsYAML      []byte
}

// NewTables loads every category table and the vendor fragments table
// from cfg, returning an error naming the first table that failed to
// parse.
func NewTables(cfg Config) (*Tables, error) {
	load := func(data []byte) (*CategoryTable, error) {
		return LoadCategoryTable(data)
	}

	televisions, err := load(cfg.TelevisionsYAML)
	if err != nil {
		return nil, err
	}
	shellTVs, err := load(cfg.ShellTVsYAML)
	if err != nil {
		return nil, err
	}
	notebooks, err := load(cfg.NotebooksYAML)
	if err != nil {
		return nil, err
	}
	consoles, err := load(cfg.ConsolesYAML)
	if err != nil {
		return nil, err
	}
	carBrowsers, err := load(cfg.CarBrowsersYAML)
	if err != nil {
		return nil, err
	}
	cameras, err := load(cfg.CamerasYAML)
	if err != nil {
		return nil, err
	}
	portableMediaPlayers, err := load(cfg.PortableMediaPlayersYAML)
	if err != nil {
		return nil, err
	}
	mobiles, err := load(cfg.MobilesYAML)
	if err != nil {
		return nil, err
	}
	vendorFragments, err := LoadVendorFragments(cfg.VendorFragmentsYAML)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Televisions:          televisions,
		ShellTVs:             shellTVs,
		Notebooks:            notebooks,
		Consoles:             consoles,
		CarBrowsers:          carBrowsers,
		Cameras:              cameras,
		PortableMediaPlayers: portableMediaPlayers,
		Mobiles:              mobiles,
		VendorFragments:      vendorFragments,
	}, nil
}
