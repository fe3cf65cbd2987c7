package models

// LocalGroup is a community meetup group record.
// NextMeetup is nil for groups without a scheduled meetup.
type LocalGroup struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Members     int     `json:"members"`
	NextMeetup  *string `json:"nextMeetup"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}
