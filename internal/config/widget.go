package config

import (
	"fmt"
	"time"

	"multiselect/multiselect"
)

// WidgetConfig describes one widget on the demo screen. Options lists
// primitive values; Records with DisplayField lists keyed values. Selected
// holds labels in either case.
type WidgetConfig struct {
	ID              string           `toml:"id" yaml:"id"`
	Name            string           `toml:"name,omitempty" yaml:"name,omitempty"`
	Label           string           `toml:"label,omitempty" yaml:"label,omitempty"`
	Placeholder     string           `toml:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HidePlaceholder bool             `toml:"hide_placeholder,omitempty" yaml:"hide_placeholder,omitempty"`
	Disabled        bool             `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	EmptyRecordMsg  string           `toml:"empty_message,omitempty" yaml:"empty_message,omitempty"`
	LoadingMessage  string           `toml:"loading_message,omitempty" yaml:"loading_message,omitempty"`
	LoadDelay       string           `toml:"load_delay,omitempty" yaml:"load_delay,omitempty"`
	CloseIcon       string           `toml:"close_icon,omitempty" yaml:"close_icon,omitempty"`
	Arrow           string           `toml:"arrow,omitempty" yaml:"arrow,omitempty"`
	ArrowOpen       string           `toml:"arrow_open,omitempty" yaml:"arrow_open,omitempty"`
	HideArrow       bool             `toml:"hide_arrow,omitempty" yaml:"hide_arrow,omitempty"`
	Options         []string         `toml:"options,omitempty" yaml:"options,omitempty"`
	Selected        []string         `toml:"selected,omitempty" yaml:"selected,omitempty"`
	DisplayField    string           `toml:"display_field,omitempty" yaml:"display_field,omitempty"`
	Records         []map[string]any `toml:"records,omitempty" yaml:"records,omitempty"`
}

// BuildOptions converts the entry into widget options and the initial
// selection. Selected labels that match no option are an error.
func (w WidgetConfig) BuildOptions() (options, selected []multiselect.Option, err error) {
	if len(w.Records) > 0 {
		options, err = multiselect.Records(w.DisplayField, w.Records...)
		if err != nil {
			return nil, nil, fmt.Errorf("widget %q: %w", w.ID, err)
		}
	} else {
		options = multiselect.Strings(w.Options...)
	}

	for _, label := range w.Selected {
		found := false
		for _, o := range options {
			if o.Label() == label {
				selected = append(selected, o)
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("widget %q: selected value %q is not an option", w.ID, label)
		}
	}
	return options, selected, nil
}

// Delay is how long the demo keeps the widget loading before delivering its
// options. Zero means the options are available immediately.
func (w WidgetConfig) Delay() (time.Duration, error) {
	if w.LoadDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(w.LoadDelay)
	if err != nil {
		return 0, fmt.Errorf("widget %q: invalid load_delay: %w", w.ID, err)
	}
	return d, nil
}

// MultiselectConfig builds the multiselect configuration for the entry, without
// options. The demo host supplies options and OnSelect.
func (w WidgetConfig) MultiselectConfig(ui UISettings) multiselect.Config {
	return multiselect.Config{
		ID:              w.ID,
		Name:            w.Name,
		Placeholder:     w.Placeholder,
		HidePlaceholder: w.HidePlaceholder,
		Disabled:        w.Disabled,
		EmptyRecordMsg:  w.EmptyRecordMsg,
		LoadingMessage:  w.LoadingMessage,
		CustomCloseIcon: w.CloseIcon,
		CustomArrow:     w.Arrow,
		CustomArrowOpen: w.ArrowOpen,
		HideArrow:       w.HideArrow,
		Width:           ui.Width,
		MaxVisible:      ui.MaxVisible,
	}
}
