// internal/domain/models/interest.go
package models

// Interest is a name-only tag youths pick and events can target.
type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
