// internal/domain/models/club.go
package models

// Club is a youth club inside a municipality.
//
// SocialMedia is deliberately untyped: depending on backend version it
// arrives as an object, a JSON string, or is absent. Decode it with
// normalize.DecodeSocialLinks before use. Description is Markdown.
type Club struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Municipality     int64         `json:"municipality"`
	MunicipalityName string        `json:"municipality_name,omitempty"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	Address          string        `json:"address,omitempty"`
	PostalCode       string        `json:"postal_code,omitempty"`
	City             string        `json:"city,omitempty"`
	Description      string        `json:"description,omitempty"`
	HeroImage        string        `json:"hero_image,omitempty"`
	SocialMedia      any           `json:"social_media,omitempty"`
	Latitude         string        `json:"latitude,omitempty"`
	Longitude        string        `json:"longitude,omitempty"`
	Status           string        `json:"status,omitempty"`
	OpeningHours     []OpeningHour `json:"opening_hours,omitempty"`
	CreatedAt        string        `json:"created_at,omitempty"`
	UpdatedAt        string        `json:"updated_at,omitempty"`
}
