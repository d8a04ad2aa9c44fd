package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventOptionsRequested EventType = "OptionsRequested"
	EventOptionsLoaded    EventType = "OptionsLoaded"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after the user adds or removes a value
type SelectionChangedEvent struct {
	WidgetID string
	Labels   []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// OptionsRequestedEvent asks the option source to deliver a widget's options
type OptionsRequestedEvent struct {
	WidgetID string
}

func (e OptionsRequestedEvent) Type() EventType { return EventOptionsRequested }

// OptionsLoadedEvent is emitted when a widget's options arrive
type OptionsLoadedEvent struct {
	WidgetID string
	Count    int
}

func (e OptionsLoadedEvent) Type() EventType { return EventOptionsLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Widgets int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the demo has mounted its widgets
type AppReadyEvent struct {
	Widgets int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
