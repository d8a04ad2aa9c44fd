package multiselect

import "fmt"

const (
	DefaultID             = "artisan-multi-select"
	DefaultPlaceholder    = "Select"
	DefaultEmptyRecordMsg = "No Option Available"
	DefaultLoadingMessage = "loading..."
	DefaultWidth          = 40
	DefaultMaxVisible     = 8
)

// Config is everything a host hands the widget at construction. After
// construction the host changes options, selection, loading and disabled
// through the Model setters.
type Config struct {
	// Options is the full list the dropdown draws from. Use Strings for
	// primitive values and Records for keyed records.
	Options []Option
	// SelectedValues seeds the selection.
	SelectedValues []Option

	Placeholder     string
	HidePlaceholder bool // hide the placeholder once something is selected
	Disabled        bool

	Loading        bool
	LoadingMessage string
	// LoadingView, when set, replaces LoadingMessage with custom content.
	LoadingView func() string

	EmptyRecordMsg string

	CustomCloseIcon string
	CustomArrow     string
	// CustomArrowOpen replaces CustomArrow while the panel is open. Unset,
	// the custom arrow is drawn the same in both states.
	CustomArrowOpen string
	HideArrow       bool

	// ID identifies the widget in messages and names its elements. Name is
	// used for the input's name.
	ID   string
	Name string

	Width      int // content width of the shell, excluding its frame
	MaxVisible int // rows shown in the panel before it scrolls

	Styles *Styles
	KeyMap *KeyMap

	// OnSelect is invoked with the full selection after every add or
	// remove made by the user.
	OnSelect func([]Option)
}

func (c Config) withDefaults() Config {
	if c.Placeholder == "" {
		c.Placeholder = DefaultPlaceholder
	}
	if c.EmptyRecordMsg == "" {
		c.EmptyRecordMsg = DefaultEmptyRecordMsg
	}
	if c.LoadingMessage == "" {
		c.LoadingMessage = DefaultLoadingMessage
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.MaxVisible <= 0 {
		c.MaxVisible = DefaultMaxVisible
	}
	if c.Styles == nil {
		s := DefaultStyles()
		c.Styles = &s
	}
	if c.KeyMap == nil {
		k := DefaultKeyMap()
		c.KeyMap = &k
	}
	return c
}

// id falls back to DefaultID.
func (c Config) id() string {
	if c.ID == "" {
		return DefaultID
	}
	return c.ID
}

func (c Config) inputID() string {
	if c.ID == "" {
		return "search_input"
	}
	return c.ID + "_input"
}

func (c Config) inputName() string {
	if c.Name == "" {
		return "search_name_input"
	}
	return c.Name + "_input"
}

// OptionElementID names the i-th row of the options list.
func OptionElementID(i int) string {
	return fmt.Sprintf("lists_label%d", i)
}
