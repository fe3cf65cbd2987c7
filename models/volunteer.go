package models

// VolunteerInterest records a volunteer sign-up submitted through the
// volunteer page. Kept in memory only; nothing reads it back out over
// the API.
type VolunteerInterest struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Message      string   `json:"message"`
}
