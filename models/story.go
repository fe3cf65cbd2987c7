package models

// ImpactStory is a narrative case study of a rescue or adoption outcome.
// Date is always the canonical ISO form (YYYY-MM-DD).
type ImpactStory struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"location"`
	Summary   string `json:"summary"`
	FullStory string `json:"fullStory"`
	Image     string `json:"image"`
	Author    string `json:"author"`
	Date      string `json:"date"`
}
