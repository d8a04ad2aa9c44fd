package ui

import (
	"multiselect/internal/eventbus"
	"multiselect/multiselect"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// optionsLoadedMsg delivers a widget's options once its load delay passed
type optionsLoadedMsg struct {
	index    int
	options  []multiselect.Option
	selected []multiselect.Option
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
