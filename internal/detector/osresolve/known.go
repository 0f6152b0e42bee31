package osresolve

import "strings"

// AvailableOS is one entry of the known-operating-system table: its
// canonical display name, whether its family is considered a desktop
// platform, and the family name it belongs to (if any).
type AvailableOS struct {
	Name    string
	Desktop bool
	Family  string
}

// shortCodeNames maps the three-letter OS codes used throughout the rule
// corpus to their canonical display name.
var shortCodeNames = map[string]string{
	"AIX": "AIX", "AND": "Android", "ADR": "Android TV", "AMZ": "Amazon Linux",
	"AMG": "AmigaOS", "ATV": "tvOS", "ARL": "Arch Linux", "BTR": "BackTrack",
	"SBA": "Bada", "BEO": "BeOS", "BLB": "BlackBerry OS", "QNX": "BlackBerry Tablet OS",
	"BOS": "Bliss OS", "BMP": "Brew", "CAI": "Caixa Mágica", "CES": "CentOS",
	"CST": "CentOS Stream", "CLR": "ClearOS Mobile", "COS": "Chrome OS", "CRS": "Chromium OS",
	"CHN": "China OS", "CYN": "CyanogenMod", "DEB": "Debian", "DEE": "Deepin",
	"DFB": "DragonFly", "DVK": "DVKBuntu", "FED": "Fedora", "FEN": "Fenix",
	"FOS": "Firefox OS", "FIR": "Fire OS", "FOR": "Foresight Linux", "FRE": "Freebox",
	"BSD": "FreeBSD", "FYD": "FydeOS", "FUC": "Fuchsia", "GNT": "Gentoo",
	"GRI": "GridOS", "GTV": "Google TV", "HPX": "HP-UX", "HAI": "Haiku OS",
	"IPA": "iPadOS", "HAR": "HarmonyOS", "HAS": "HasCodingOS", "IRI": "IRIX",
	"INF": "Inferno", "JME": "Java ME", "KOS": "KaiOS", "KAL": "Kali",
	"KAN": "Kanotix", "KNO": "Knoppix", "KTV": "KreaTV", "KBT": "Kubuntu",
	"LIN": "GNU/Linux", "LND": "LindowsOS", "LNS": "Linspire", "LEN": "Lineage OS",
	"LBT": "Lubuntu", "LOS": "Lumin OS", "LUN": "LuneOS", "VLN": "VectorLinux",
	"MAC": "Mac", "MAE": "Maemo", "MAG": "Mageia", "MDR": "Mandriva",
	"SMG": "MeeGo", "MCD": "MocorDroid", "MON": "moonOS", "MIN": "Mint",
	"MLD": "MildWild", "MOR": "MorphOS", "NBS": "NetBSD", "MTK": "MTK / Nucleus",
	"MRE": "MRE", "WII": "Nintendo", "NDS": "Nintendo Mobile", "NOV": "Nova",
	"OS2": "OS/2", "T64": "OSF1", "OBS": "OpenBSD", "OWR": "OpenWrt",
	"OTV": "Opera TV", "ORA": "Oracle Linux", "ORD": "Ordissimo", "PAR": "Pardus",
	"PCL": "PCLinuxOS", "PIC": "PICO OS", "PLA": "Plasma Mobile", "PSP": "PlayStation Portable",
	"PS3": "PlayStation", "PUR": "PureOS", "RHT": "Red Hat", "RED": "RedOS",
	"REV": "Revenge OS", "ROS": "RISC OS", "ROK": "Roku OS", "RSO": "Rosa",
	"ROU": "RouterOS", "REM": "Remix OS", "RRS": "Resurrection Remix OS", "REX": "REX",
	"RZD": "RazoDroiD", "SAB": "Sabayon", "SSE": "SUSE", "SAF": "Sailfish OS",
	"SEE": "SeewoOS", "SIR": "Sirin OS", "SLW": "Slackware", "SOS": "Solaris",
	"SYL": "Syllable", "SYM": "Symbian", "SYS": "Symbian OS", "S40": "Symbian OS Series 40",
	"S60": "Symbian OS Series 60", "SY3": "Symbian^3", "TEN": "TencentOS", "TDX": "ThreadX",
	"TIZ": "Tizen", "TIV": "TiVo OS", "TOS": "TmaxOS", "UBT": "Ubuntu",
	"VID": "VIDAA", "WAS": "watchOS", "WER": "Wear OS", "WTV": "WebTV",
	"WHS": "Whale OS", "WIN": "Windows", "WCE": "Windows CE", "WIO": "Windows IoT",
	"WMO": "Windows Mobile", "WPH": "Windows Phone", "WRT": "Windows RT", "XBX": "Xbox",
	"XBT": "Xubuntu", "YNS": "YunOS", "ZEN": "Zenwalk", "ZOR": "ZorinOS",
	"IOS": "iOS", "POS": "palmOS", "WOS": "webOS",
}

// familyCodes groups short codes by the family they belong to.
var familyCodes = map[string][]string{
	"Android": {
		"AND", "CYN", "FIR", "REM", "RZD", "MLD", "MCD", "YNS", "GRI", "HAR", "ADR", "CLR",
		"BOS", "REV", "LEN", "SIR", "RRS", "WER", "PIC",
	},
	"AmigaOS":     {"AMG", "MOR"},
	"BlackBerry":  {"BLB", "QNX"},
	"Brew":        {"BMP"},
	"BeOS":        {"BEO", "HAI"},
	"Chrome OS":   {"COS", "CRS", "FYD", "SEE"},
	"Firefox OS":  {"FOS", "KOS"},
	"Gaming Console": {"WII", "PS3"},
	"Google TV":   {"GTV"},
	"IBM":         {"OS2"},
	"iOS":         {"IOS", "ATV", "WAS", "IPA"},
	"RISC OS":     {"ROS"},
	"GNU/Linux": {
		"LIN", "ARL", "DEB", "KNO", "MIN", "UBT", "KBT", "XBT", "LBT", "FED", "RHT", "VLN",
		"MDR", "GNT", "SAB", "SLW", "SSE", "CES", "BTR", "SAF", "ORD", "TOS", "RSO", "DEE",
		"FRE", "MAG", "FEN", "CAI", "PCL", "HAS", "LOS", "DVK", "ROK", "OWR", "OTV", "KTV",
		"PUR", "PLA", "FUC", "PAR", "FOR", "MON", "KAN", "ZEN", "LND", "LNS", "CHN", "AMZ",
		"TEN", "CST", "NOV", "ROU", "ZOR", "RED", "KAL", "ORA", "VID", "TIV",
	},
	"Mac":                    {"MAC"},
	"Mobile Gaming Console":  {"PSP", "NDS", "XBX"},
	"Real-time OS":           {"MTK", "TDX", "MRE", "JME", "REX"},
	"Other Mobile":           {"WOS", "POS", "SBA", "TIZ", "SMG", "MAE", "LUN"},
	"Symbian":                {"SYM", "SYS", "SY3", "S60", "S40"},
	"Unix":                   {"SOS", "AIX", "HPX", "BSD", "NBS", "OBS", "DFB", "SYL", "IRI", "T64", "INF"},
	"WebTV":                  {"WTV"},
	"Windows":                {"WIN"},
	"Windows Mobile":         {"WPH", "WMO", "WCE", "WRT", "WIO"},
	"Other Smart TV":         {"WHS"},
}

// desktopFamilies is the set of OS families considered desktop platforms.
var desktopFamilies = map[string]bool{
	"AmigaOS": true, "IBM": true, "GNU/Linux": true, "Mac": true, "Unix": true,
	"Windows": true, "BeOS": true, "Chrome OS": true, "Chromium OS": true,
}

// KnownOSTable is a case- and space-insensitive lookup from OS display
// name to its AvailableOS metadata.
type KnownOSTable struct {
	byName map[string]AvailableOS
}

func normalizeOSName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// NewKnownOSTable builds the known-OS table once; callers typically hold
// a single shared instance.
func NewKnownOSTable() *KnownOSTable {
	shortToFamily := make(map[string]string)
	for family, shorts := range familyCodes {
		for _, short := range shorts {
			shortToFamily[short] = family
		}
	}

	byName := make(map[string]AvailableOS, len(shortCodeNames))
	for short, name := range shortCodeNames {
		family := shortToFamily[short]
		byName[normalizeOSName(name)] = AvailableOS{
			Name:    name,
			Desktop: desktopFamilies[family],
			Family:  family,
		}
	}

	return &KnownOSTable{byName: byName}
}

// SearchByName looks up an AvailableOS by its display name, case- and
// space-insensitively.
func (t *KnownOSTable) SearchByName(name string) (AvailableOS, bool) {
	os, ok := t.byName[normalizeOSName(name)]
	return os, ok
}
