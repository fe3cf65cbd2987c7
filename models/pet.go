package models

// AdoptablePet is a listing of an animal seeking a home. Age and
// contact are free text, the way community members submit them.
type AdoptablePet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Contact     string `json:"contact"`
	Location    string `json:"location"`
}
