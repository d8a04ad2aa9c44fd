package domain

// Selection is the persisted choice of one widget
type Selection struct {
	WidgetID string
	Labels   []string
}
