package config

// Defaults reproduce the behavior of the shell when no config file is
// present: the translator overlay in its frameless, translucent form.
var defaultConfig = Config{
	Title:      "Translator",
	URL:        "https://translator.my-uam.com",
	Frameless:  true,
	Width:      800,
	Height:     300,
	Opacity:    0.95,
	BandHeight: 32,
}

type Config struct {
	// UUID identifies this shell instance across restarts. Assigned by
	// Normalize when empty.
	UUID string `json:"uuid" yaml:"uuid"`
	// Title is the window title.
	Title string `json:"title" yaml:"title"`
	// URL is the navigation target.
	URL string `json:"url" yaml:"url"`
	// Frameless strips native window decorations and enables the drag
	// band and control buttons.
	Frameless bool `json:"frameless" yaml:"frameless"`
	Width     int  `json:"width" yaml:"width"`
	Height    int  `json:"height" yaml:"height"`
	// Opacity is the compositor level window opacity in (0, 1].
	Opacity float64 `json:"opacity" yaml:"opacity"`
	// BandHeight is the height in pixels of the draggable band at the
	// top of the frameless window.
	BandHeight int `json:"band_height" yaml:"band_height"`
}
