// internal/domain/models/group.go
package models

// Group is an audience segment events can target (age bands, programs).
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
