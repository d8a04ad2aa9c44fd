package multiselect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateScenarioPrimitive(t *testing.T) {
	s := NewState(Strings("A", "B", "C"), nil)

	assert.True(t, s.Toggle(Primitive("B")))
	assert.Equal(t, []string{"B"}, Labels(s.Selection()))
	assert.Equal(t, []string{"A", "C"}, Labels(s.Filtered()))

	s.SetSearch("c")
	assert.Equal(t, []string{"C"}, Labels(s.Filtered()))

	assert.True(t, s.Toggle(Primitive("C")))
	assert.Equal(t, []string{"B", "C"}, Labels(s.Selection()))
	assert.Empty(t, s.Filtered())
}

func TestStateScenarioKeyed(t *testing.T) {
	options, err := Records("name",
		map[string]any{"name": "X"},
		map[string]any{"name": "Y"},
	)
	require.NoError(t, err)
	s := NewState(options, nil)

	assert.True(t, s.Toggle(options[0]))
	assert.Equal(t, []string{"X"}, Labels(s.Selection()))

	again := MustKeyed("name", map[string]any{"name": "X", "extra": true})
	assert.False(t, s.Toggle(again), "re-selecting by display field removes")
	assert.Empty(t, s.Selection())
	assert.Equal(t, []string{"X", "Y"}, Labels(s.Filtered()))
}

func TestStateToggleRestoresSubjectToSearch(t *testing.T) {
	s := NewState(Strings("apple", "banana", "cherry"), Strings("apple", "banana"))
	s.SetSearch("AN")
	assert.Empty(t, s.Filtered())

	s.Toggle(Primitive("banana"))
	assert.Equal(t, []string{"banana"}, Labels(s.Filtered()))

	s.Toggle(Primitive("apple"))
	assert.Equal(t, []string{"banana"}, Labels(s.Filtered()), "apple does not match the search text")
	assert.False(t, s.IsSelected(Primitive("apple")))
}

func TestStatePopLastRemovesMostRecent(t *testing.T) {
	s := NewState(Strings("A", "B", "C"), nil)
	s.Toggle(Primitive("C"))
	s.Toggle(Primitive("A"))

	o, ok := s.PopLast()
	require.True(t, ok)
	assert.Equal(t, "A", o.Label())
	assert.Equal(t, []string{"C"}, Labels(s.Selection()))

	s.PopLast()
	_, ok = s.PopLast()
	assert.False(t, ok)
}

func TestStateInitialSelectionExcludedFromView(t *testing.T) {
	s := NewState(Strings("A", "B", "C"), Strings("B"))
	assert.Equal(t, []string{"A", "C"}, Labels(s.Filtered()))
}

func TestStateReconcileOnSameLengthChange(t *testing.T) {
	s := NewState(Strings("A", "B", "C"), Strings("B"))

	s.SetOptions(Strings("X", "B", "Z"))
	assert.Equal(t, []string{"X", "Z"}, Labels(s.Filtered()))

	s.SetSelection(Strings("Z"))
	assert.Equal(t, []string{"X", "B"}, Labels(s.Filtered()))
}

func TestStateFilteredInvariant(t *testing.T) {
	s := NewState(Strings("Alpha", "beta", "GAMMA", "delta", "alphabet"), nil)
	steps := []func(){
		func() { s.Toggle(Primitive("beta")) },
		func() { s.SetSearch("A") },
		func() { s.Toggle(Primitive("alphabet")) },
		func() { s.SetSearch("ph") },
		func() { s.PopLast() },
		func() { s.SetOptions(Strings("Alpha", "beta", "gamma", "phi")) },
		func() { s.SetSearch("") },
	}
	for i, step := range steps {
		step()
		query := strings.ToLower(s.Search())
		for _, o := range s.Filtered() {
			assert.False(t, s.IsSelected(o), "step %d: %s is selected and listed", i, o)
			assert.Contains(t, strings.ToLower(o.Label()), query, "step %d", i)
		}
		for _, o := range s.Options() {
			if s.IsSelected(o) || !strings.Contains(strings.ToLower(o.Label()), query) {
				continue
			}
			assert.Contains(t, Labels(s.Filtered()), o.Label(), "step %d: eligible option missing", i)
		}
	}
}

func TestStateCursorAndWindow(t *testing.T) {
	s := NewState(Strings("a", "b", "c", "d", "e"), nil)

	s.MoveCursor(-1)
	assert.Equal(t, 4, s.Cursor(), "wraps to the bottom")
	start, end := s.Window(3)
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	s.MoveCursor(1)
	assert.Equal(t, 0, s.Cursor())
	start, end = s.Window(3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	o, ok := s.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "a", o.Label())

	s.SetCursor(4)
	s.Toggle(Primitive("e"))
	assert.Equal(t, 3, s.Cursor(), "cursor clamps when the list shrinks")
}

func TestStateSearchOpensPanel(t *testing.T) {
	s := NewState(Strings("a"), nil)
	assert.False(t, s.IsOpen())
	s.SetSearch("a")
	assert.True(t, s.IsOpen())
}
