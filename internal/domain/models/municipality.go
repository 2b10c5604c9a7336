// internal/domain/models/municipality.go
package models

// Municipality belongs to a country and owns zero or more clubs.
//
// CountryName is denormalized by the backend for list rendering; treat it
// as display-only.
type Municipality struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Country     int64  `json:"country"`
	CountryName string `json:"country_name,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
