package models

// Action board post categories and statuses.
const (
	PostTypeTransport  = "transport"
	PostTypeLost       = "lost"
	PostTypeFound      = "found"
	PostTypeUrgentHelp = "urgentHelp"

	PostStatusActive   = "active"
	PostStatusResolved = "resolved"
)

// ActionBoardPost is a short-lived community request (transport,
// lost/found, urgent help). PostedTime is human-readable free text
// ("2 hours ago"), not machine-sortable.
type ActionBoardPost struct {
	ID          int    `json:"id"`
	Type        string `json:"type"` // transport|lost|found|urgentHelp
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	PostedBy    string `json:"postedBy"`
	PostedTime  string `json:"postedTime"`
	Status      string `json:"status"` // active|resolved
}
