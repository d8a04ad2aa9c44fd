// Package multiselect is a searchable multi-select dropdown for Bubble Tea
// programs.
//
// The widget draws a shell holding one chip per selected option, a search
// field and an arrow, and below it a panel listing the options that are
// neither selected nor filtered out by the search text. It reports every
// user-driven change through Config.OnSelect and a SelectMsg.
//
// Hosts that render more than one widget, or anything else clickable,
// create a Document, Mount each widget on it and forward every
// tea.MouseMsg to Document.Dispatch so that presses outside an open widget
// close it.
package multiselect

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectMsg is emitted after every add or remove made by the user.
type SelectMsg struct {
	ID        string
	Selection []Option
}

// FocusMsg is emitted when a click gives the widget keyboard focus, so a
// host can blur its other inputs.
type FocusMsg struct {
	ID string
}

// Model is the widget. Use New to build one.
type Model struct {
	cfg    Config
	state  *State
	input  textinput.Model
	keys   KeyMap
	styles Styles

	focused bool

	// screen origin and size of the last render
	x, y          int
	width, height int
	regions       []region

	release func()
}

// New builds a widget from cfg.
func New(cfg Config) *Model {
	cfg = cfg.withDefaults()

	ti := textinput.New()
	ti.Prompt = ""
	ti.TextStyle = cfg.Styles.Input

	return &Model{
		cfg:    cfg,
		state:  NewState(cfg.Options, cfg.SelectedValues),
		input:  ti,
		keys:   *cfg.KeyMap,
		styles: *cfg.Styles,
	}
}

// Mount registers the widget's outside-press listener on doc. Mounting an
// already mounted widget does nothing.
func (m *Model) Mount(doc *Document) {
	if m.release != nil {
		return
	}
	m.release = doc.AddListener(m.handleDocumentPress)
}

// Unmount releases the listener acquired by Mount.
func (m *Model) Unmount() {
	if m.release == nil {
		return
	}
	m.release()
	m.release = nil
}

// Mounted reports whether the widget holds a document listener.
func (m *Model) Mounted() bool {
	return m.release != nil
}

func (m *Model) handleDocumentPress(msg tea.MouseMsg) {
	if !m.state.IsOpen() || m.Contains(msg.X, msg.Y) {
		return
	}
	m.state.SetOpen(false)
	m.state.Reconcile()
	m.Blur()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.cfg.Disabled || !m.focused {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.state.SetOpen(false)
		return nil
	case key.Matches(msg, m.keys.Up):
		m.openOrMove(-1)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.openOrMove(1)
		return nil
	case key.Matches(msg, m.keys.Select):
		if !m.state.IsOpen() {
			m.state.SetOpen(true)
			return nil
		}
		if o, ok := m.state.Highlighted(); ok {
			m.state.Toggle(o)
			return m.notify()
		}
		return nil
	case key.Matches(msg, m.keys.RemoveLast) && m.input.Value() == "":
		if _, ok := m.state.PopLast(); ok {
			return m.notify()
		}
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.state.SetSearch(after)
	}
	return cmd
}

func (m *Model) openOrMove(delta int) {
	if !m.state.IsOpen() {
		m.state.SetOpen(true)
		return
	}
	m.state.MoveCursor(delta)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.cfg.Disabled || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if !m.Contains(msg.X, msg.Y) {
		return nil
	}
	return m.click(msg.X-m.x, msg.Y-m.y)
}

func (m *Model) click(x, y int) tea.Cmd {
	r, ok := hitTest(m.regions, x, y)
	if !ok {
		return nil
	}
	switch r.kind {
	case hitChipClose:
		if _, removed := m.state.RemoveAt(r.index); !removed {
			return nil
		}
		m.state.SetOpen(true)
		return tea.Batch(m.notify(), m.focusCmd())
	case hitOption:
		filtered := m.state.filtered
		if r.index >= len(filtered) {
			return nil
		}
		m.state.SetCursor(r.index)
		m.state.Toggle(filtered[r.index])
		return m.notify()
	case hitPanel:
		return nil
	default:
		return m.toggleOpen()
	}
}

// toggleOpen flips the panel and moves focus with it.
func (m *Model) toggleOpen() tea.Cmd {
	wasOpen := m.state.IsOpen()
	m.state.SetOpen(!wasOpen)
	if wasOpen {
		m.Blur()
		return nil
	}
	return m.focusCmd()
}

func (m *Model) focusCmd() tea.Cmd {
	id := m.ID()
	return tea.Batch(m.Focus(), func() tea.Msg { return FocusMsg{ID: id} })
}

func (m *Model) notify() tea.Cmd {
	selection := m.state.Selection()
	if m.cfg.OnSelect != nil {
		m.cfg.OnSelect(selection)
	}
	id := m.ID()
	return func() tea.Msg {
		return SelectMsg{ID: id, Selection: selection}
	}
}

// Focus gives the search field keyboard focus.
func (m *Model) Focus() tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	m.focused = true
	return m.input.Focus()
}

// Blur drops keyboard focus. The panel stays as it is.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m *Model) Focused() bool { return m.focused }

// Open shows the panel.
func (m *Model) Open() { m.state.SetOpen(true) }

// Close hides the panel.
func (m *Model) Close() { m.state.SetOpen(false) }

// IsOpen reports whether the panel is showing.
func (m *Model) IsOpen() bool { return m.state.IsOpen() }

// SetOptions replaces the options and reconciles the filtered view.
func (m *Model) SetOptions(options []Option) {
	m.cfg.Options = cloneOptions(options)
	m.state.SetOptions(options)
}

// SetSelectedValues replaces the selection from the host side. OnSelect
// is not called.
func (m *Model) SetSelectedValues(selected []Option) {
	m.cfg.SelectedValues = cloneOptions(selected)
	m.state.SetSelection(selected)
}

func (m *Model) SetLoading(loading bool) { m.cfg.Loading = loading }

func (m *Model) Loading() bool { return m.cfg.Loading }

// SetDisabled turns interaction off or on. Disabling drops focus and closes
// the panel.
func (m *Model) SetDisabled(disabled bool) {
	m.cfg.Disabled = disabled
	if disabled {
		m.state.SetOpen(false)
		m.Blur()
	}
}

func (m *Model) Disabled() bool { return m.cfg.Disabled }

// Selection returns the selected options in selection order.
func (m *Model) Selection() []Option { return m.state.Selection() }

// Filtered returns the options the panel currently lists.
func (m *Model) Filtered() []Option { return m.state.Filtered() }

// Search returns the search text.
func (m *Model) Search() string { return m.state.Search() }

// SetSearch replaces the search text as if the user had typed it.
func (m *Model) SetSearch(text string) {
	m.input.SetValue(text)
	m.state.SetSearch(text)
}

// ID identifies the widget.
func (m *Model) ID() string { return m.cfg.id() }

// InputID names the search field.
func (m *Model) InputID() string { return m.cfg.inputID() }

// InputName is the search field's name.
func (m *Model) InputName() string { return m.cfg.inputName() }

// KeyMap returns the widget's bindings, for a host's help view.
func (m *Model) KeyMap() KeyMap { return m.keys }

// SetPosition tells the widget where its top-left corner sits on screen.
// Hosts call it while laying out their view.
func (m *Model) SetPosition(x, y int) {
	m.x, m.y = x, y
}

// Bounds returns the screen rectangle of the last render.
func (m *Model) Bounds() (x, y, width, height int) {
	return m.x, m.y, m.width, m.height
}

// Contains reports whether the screen cell (x, y) lies inside the last
// render.
func (m *Model) Contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.height
}
