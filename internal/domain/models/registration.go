// internal/domain/models/registration.go
package models

// Registration links a youth to an event they signed up for.
type Registration struct {
	ID        int64  `json:"id"`
	Event     int64  `json:"event"`
	Youth     int64  `json:"user,omitempty"`
	YouthName string `json:"user_name,omitempty"`
	Status    any    `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
