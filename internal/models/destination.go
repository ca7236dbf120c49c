package models

// Destination is an admin-curated airport showcased by the app.
type Destination struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
