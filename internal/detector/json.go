package detector

import "encoding/json"

type botJSON struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	URL      string `json:"url,omitempty"`
	Producer *struct {
		Name string `json:"name,omitempty"`
		URL  string `json:"url,omitempty"`
	} `json:"producer,omitempty"`
}

type clientJSON struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Version       string `json:"version,omitempty"`
	Engine        string `json:"engine,omitempty"`
	EngineVersion string `json:"engine_version,omitempty"`
}

type osJSON struct {
	Name     string `json:"name"`
	Version  string `json:"version,omitempty"`
	Platform string `json:"platform,omitempty"`
	Family   string `json:"family,omitempty"`
}

type deviceJSON struct {
	Type  string `json:"type,omitempty"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

type classificationJSON struct {
	Desktop             bool `json:"desktop"`
	Mobile              bool `json:"mobile"`
	TouchEnabled        bool `json:"touch_enabled"`
	SmartPhone          bool `json:"smart_phone"`
	FeaturePhone        bool `json:"feature_phone"`
	Browser             bool `json:"browser"`
	Camera              bool `json:"camera"`
	CarBrowser          bool `json:"car_browser"`
	FeedReader          bool `json:"feed_reader"`
	Console             bool `json:"console"`
	Library             bool `json:"library"`
	MediaPlayer         bool `json:"media_player"`
	PortableMediaPlayer bool `json:"portable_media_player"`
	MobileApp           bool `json:"mobile_app"`
	Television          bool `json:"television"`
	SmartDisplay        bool `json:"smart_display"`
	Tablet              bool `json:"tablet"`
	SmartSpeaker        bool `json:"smart_speaker"`
	Pim                 bool `json:"pim"`
	Peripheral          bool `json:"peripheral"`
	Wearable            bool `json:"wearable"`
	Phablet             bool `json:"phablet"`
	Robot               bool `json:"robot"`
}

type detectionJSON struct {
	Bot    *botJSON            `json:"bot,omitempty"`
	Client *clientJSON         `json:"client,omitempty"`
	OS     *osJSON             `json:"os,omitempty"`
	Device *deviceJSON         `json:"device,omitempty"`
	Is     *classificationJSON `json:"is,omitempty"`
}

// MarshalJSON encodes the Detection per spec.md §6's JSON shape: a bot
// record, or a known-device record with its sub-entities and the full
// set of boolean classifiers.
func (d Detection) MarshalJSON() ([]byte, error) {
	var out detectionJSON

	if d.Bot != nil {
		bj := &botJSON{Name: d.Bot.Name, Category: d.Bot.Category, URL: d.Bot.URL}
		if d.Bot.Producer != nil {
			bj.Producer = &struct {
				Name string `json:"name,omitempty"`
				URL  string `json:"url,omitempty"`
			}{Name: d.Bot.Producer.Name, URL: d.Bot.Producer.URL}
		}
		out.Bot = bj
		return json.Marshal(out)
	}

	if d.Known != nil {
		if c := d.Known.Client; c != nil {
			out.Client = &clientJSON{
				Type: string(c.Type), Name: c.Name, Version: c.Version,
				Engine: c.Engine, EngineVersion: c.EngineVersion,
			}
		}
		if o := d.Known.OS; o != nil {
			out.OS = &osJSON{Name: o.Name, Version: o.Version, Platform: o.Platform, Family: o.Family}
		}
		if dv := d.Known.Device; dv != nil {
			out.Device = &deviceJSON{Type: string(dv.DeviceType), Brand: dv.Brand, Model: dv.Model}
		}
	}

	out.Is = &classificationJSON{
		Desktop:             d.IsDesktop(),
		Mobile:              d.IsMobile(),
		TouchEnabled:        d.IsTouchEnabled(),
		SmartPhone:          d.IsSmartPhone(),
		FeaturePhone:        d.IsFeaturePhone(),
		Browser:             d.IsBrowser(),
		Camera:              d.IsCamera(),
		CarBrowser:          d.IsCarBrowser(),
		FeedReader:          d.IsFeedReader(),
		Console:             d.IsConsole(),
		Library:             d.IsLibrary(),
		MediaPlayer:         d.IsMediaPlayer(),
		PortableMediaPlayer: d.IsPortableMediaPlayer(),
		MobileApp:           d.IsMobileApp(),
		Television:          d.IsTelevision(),
		SmartDisplay:        d.IsSmartDisplay(),
		Tablet:              d.IsTablet(),
		SmartSpeaker:        d.IsSmartSpeaker(),
		Pim:                 d.IsPim(),
		Peripheral:          d.IsPeripheral(),
		Wearable:            d.IsWearable(),
		Phablet:             d.IsPhablet(),
		Robot:               false,
	}

	return json.Marshal(out)
}
