// internal/domain/models/event.go
package models

// Event is an activity hosted by a club.
//
// Status is untyped because some backend versions wrap it in a
// single-element array or a stringified list; unwrap it with
// normalize.Scalar. Times are the backend's ISO 8601 strings, rendered
// as-is or reformatted in templates.
type Event struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Club         int64           `json:"club,omitempty"`
	ClubName     string          `json:"club_name,omitempty"`
	Status       any             `json:"status,omitempty"`
	StartTime    string          `json:"start_time,omitempty"`
	EndTime      string          `json:"end_time,omitempty"`
	Location     string          `json:"location,omitempty"`
	Capacity     int             `json:"capacity,omitempty"`
	HeroImage    string          `json:"hero_image,omitempty"`
	Images       []EventImage    `json:"images,omitempty"`
	Documents    []EventDocument `json:"documents,omitempty"`
	TargetGroups []Group         `json:"target_groups,omitempty"`
	Interests    []Interest      `json:"interests,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

// EventImage is one gallery image attached to an event.
type EventImage struct {
	ID    int64  `json:"id"`
	Event int64  `json:"event,omitempty"`
	Image string `json:"image"`
}

// EventDocument is a downloadable file attached to an event.
type EventDocument struct {
	ID       int64  `json:"id"`
	Event    int64  `json:"event,omitempty"`
	Name     string `json:"name,omitempty"`
	Document string `json:"document"`
}
