package models

// Action snippet categories shown in the landing page ticker.
const (
	SnippetTypeEvent    = "event"
	SnippetTypeUrgent   = "urgent"
	SnippetTypeAdoption = "adoption"
	SnippetTypeInfo     = "info"
	SnippetTypeError    = "error"
)

// ActionSnippet is a short rotating headline on the landing page.
type ActionSnippet struct {
	ID   int    `json:"id"`
	Type string `json:"type"` // event|urgent|adoption|info|error
	Text string `json:"text"`
}
