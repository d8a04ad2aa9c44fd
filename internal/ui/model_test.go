package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
	"multiselect/multiselect"
)

func testConfig() *config.Config {
	return &config.Config{
		Title: "demo",
		Widgets: []config.WidgetConfig{
			{ID: "fruits", Label: "Fruits", Options: []string{"Apple", "Banana", "Cherry"}},
			{ID: "locked", Disabled: true, Options: []string{"x"}},
			{
				ID:           "people",
				DisplayField: "name",
				LoadDelay:    "10ms",
				Selected:     []string{"Bob"},
				Records:      []map[string]any{{"name": "Alice"}, {"name": "Bob"}},
			},
		},
	}
}

func newTestModel(t *testing.T, cfg *config.Config) (*Model, eventbus.EventBus) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	m, err := NewModel(bus, cfg)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	m.Init()
	return m, bus
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelMountsWidgets(t *testing.T) {
	m, err := NewModel(nil, testConfig())
	require.NoError(t, err)
	require.Len(t, m.widgets, 3)
	assert.Equal(t, 3, m.doc.Len())

	m.Close()
	assert.Equal(t, 0, m.doc.Len())
	for _, w := range m.widgets {
		assert.False(t, w.model.Mounted())
	}
}

func TestNewModelRejectsBadConfig(t *testing.T) {
	cfg := &config.Config{Widgets: []config.WidgetConfig{{ID: "a", LoadDelay: "later"}}}
	_, err := NewModel(nil, cfg)
	assert.Error(t, err)
}

func TestFocusCyclesOverEnabledWidgets(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	assert.Equal(t, 0, m.focus)
	assert.True(t, m.widgets[0].model.Focused())

	m.widgets[0].model.Open()
	m.Update(keyMsg("tab"))
	assert.Equal(t, 2, m.focus, "disabled widget is skipped")
	assert.False(t, m.widgets[0].model.Focused())
	assert.False(t, m.widgets[0].model.IsOpen(), "leaving a widget closes it")
	assert.True(t, m.widgets[2].model.Focused())

	m.Update(keyMsg("tab"))
	assert.Equal(t, 0, m.focus)

	m.Update(keyMsg("shift+tab"))
	assert.Equal(t, 2, m.focus)
}

func TestKeysGoToFocusedWidget(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	m.Update(keyMsg("an"))
	assert.Equal(t, "an", m.widgets[0].model.Search())
	assert.Equal(t, []string{"Banana"}, multiselect.Labels(m.widgets[0].model.Filtered()))
	assert.Empty(t, m.widgets[2].model.Search())
}

func TestSelectMsgPublishesEvent(t *testing.T) {
	m, bus := newTestModel(t, testConfig())

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) { got <- e })

	m.Update(multiselect.SelectMsg{ID: "fruits", Selection: multiselect.Strings("Apple", "Cherry")})
	assert.Equal(t, "fruits: Apple, Cherry", m.status)

	select {
	case e := <-got:
		ev := e.(eventbus.SelectionChangedEvent)
		assert.Equal(t, "fruits", ev.WidgetID)
		assert.Equal(t, []string{"Apple", "Cherry"}, ev.Labels)
	case <-time.After(2 * time.Second):
		t.Fatal("no SelectionChanged event")
	}
}

func TestDelayedOptionsArrive(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	w := m.widgets[2]
	assert.True(t, w.model.Loading())
	assert.Empty(t, w.model.Filtered())
	assert.Contains(t, ansi.Strip(viewOpen(m, 2)), multiselect.DefaultLoadingMessage)

	m.Update(optionsLoadedMsg{index: 2, options: w.options, selected: w.selected})

	assert.False(t, w.model.Loading())
	assert.Equal(t, []string{"Bob"}, multiselect.Labels(w.model.Selection()))
	assert.Equal(t, []string{"Alice"}, multiselect.Labels(w.model.Filtered()))
}

func viewOpen(m *Model, i int) string {
	m.widgets[i].model.Open()
	return m.View()
}

func TestOutsidePressClosesOpenWidget(t *testing.T) {
	cfg := testConfig()
	cfg.Widgets[1].Disabled = false
	m, _ := newTestModel(t, cfg)

	viewOpen(m, 0)
	require.True(t, m.widgets[0].model.IsOpen())

	x, y, _, _ := m.widgets[1].model.Bounds()
	_, cmd := m.Update(press(x+1, y+1))

	assert.False(t, m.widgets[0].model.IsOpen())
	assert.False(t, m.widgets[0].model.Focused())
	assert.True(t, m.widgets[1].model.IsOpen())
	assert.NotNil(t, cmd)

	m.Update(multiselect.FocusMsg{ID: "locked"})
	assert.Equal(t, 1, m.focus)
}

func TestClosingClickDropsHostFocus(t *testing.T) {
	m, _ := newTestModel(t, testConfig())
	m.View()

	x, y, _, _ := m.widgets[0].model.Bounds()
	m.Update(press(x+1, y+1))
	require.True(t, m.widgets[0].model.IsOpen())
	m.Update(multiselect.FocusMsg{ID: "fruits"})
	assert.Equal(t, 0, m.focus)

	m.View()
	m.Update(press(x+1, y+1))
	assert.False(t, m.widgets[0].model.IsOpen())
	assert.False(t, m.widgets[0].model.Focused())
	assert.Equal(t, -1, m.focus, "label no longer shows focus")
	assert.Nil(t, m.focused())

	m.Update(keyMsg("tab"))
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.widgets[0].model.Focused())
}

func TestPressOutsideDropsHostFocus(t *testing.T) {
	m, _ := newTestModel(t, testConfig())
	viewOpen(m, 0)
	require.Equal(t, 0, m.focus)

	m.Update(press(0, 0))
	assert.False(t, m.widgets[0].model.IsOpen())
	assert.Equal(t, -1, m.focus)
}

func TestPressInsideKeepsWidgetOpen(t *testing.T) {
	m, _ := newTestModel(t, testConfig())
	viewOpen(m, 0)

	x, y, width, height := m.widgets[0].model.Bounds()
	m.doc.Dispatch(press(x+width-1, y+height-1))
	assert.True(t, m.widgets[0].model.IsOpen())

	m.doc.Dispatch(press(0, 0))
	assert.False(t, m.widgets[0].model.IsOpen())
}

func TestFocusMsgBlursOthers(t *testing.T) {
	m, _ := newTestModel(t, testConfig())
	require.True(t, m.widgets[0].model.Focused())

	m.widgets[2].model.Focus()
	m.Update(multiselect.FocusMsg{ID: "people"})

	assert.Equal(t, 2, m.focus)
	assert.False(t, m.widgets[0].model.Focused())
	assert.True(t, m.widgets[2].model.Focused())
}

func TestEventsUpdateStatus(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	m.Update(EventMsg{Event: eventbus.ConfigSavedEvent{Path: "demo.toml"}})
	assert.Equal(t, "saved demo.toml", m.status)

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "disk full"}})
	assert.Equal(t, "disk full", m.status)
}

func TestHelpWithoutProgram(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	_, cmd := m.Update(keyMsg("f1"))
	assert.Nil(t, cmd)
	assert.Equal(t, "help pager unavailable", m.status)
}

func TestPagerModeBlanksView(t *testing.T) {
	m, _ := newTestModel(t, testConfig())

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())

	m.Update(resumeRenderingMsg{})
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "demo")
	assert.Contains(t, view, "Fruits")
	assert.Contains(t, view, "locked")
}

func TestHelpContent(t *testing.T) {
	content := ansi.Strip(NewHelpRenderer(newKeyMap(multiselect.DefaultKeyMap())).Render())

	for _, want := range []string{"multiselect Help", "next widget", "toggle option", "remove last", "quit"} {
		assert.Contains(t, content, want)
	}
}
