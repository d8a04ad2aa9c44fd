package config

import "github.com/spf13/pflag"

// Overrides are command line values that win over the config file
type Overrides struct {
	Width      int
	MaxVisible int
	NoMouse    bool
}

// AddFlags registers the override flags on fs
func (o *Overrides) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Width, "width", 0, "widget width in cells (0 keeps the config value)")
	fs.IntVar(&o.MaxVisible, "max-visible", 0, "rows shown before the option list scrolls (0 keeps the config value)")
	fs.BoolVar(&o.NoMouse, "no-mouse", false, "disable mouse support")
}

// Apply copies the set overrides into cfg
func (o Overrides) Apply(cfg *Config) {
	if o.Width > 0 {
		cfg.UISettings.Width = o.Width
	}
	if o.MaxVisible > 0 {
		cfg.UISettings.MaxVisible = o.MaxVisible
	}
	if o.NoMouse {
		cfg.UISettings.DisableMouse = true
	}
}
