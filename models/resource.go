package models

// Map resource categories.
const (
	ResourceTypeVet   = "vet"
	ResourceTypePark  = "park"
	ResourceTypeStore = "store"
	ResourceTypeOther = "other"
)

// MapResource is a point of interest on the community resource map.
type MapResource struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"` // vet|park|store|other
	Address     string  `json:"address"`
	Contact     string  `json:"contact"`
	Hours       string  `json:"hours"`
	Description string  `json:"description"`
	AddedBy     string  `json:"addedBy"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
