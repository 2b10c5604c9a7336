// internal/domain/models/openinghour.go
package models

// OpeningHour is one weekday entry of a club's schedule. Weekday follows
// the backend convention: 0 = Monday through 6 = Sunday.
type OpeningHour struct {
	ID       int64  `json:"id,omitempty"`
	Club     int64  `json:"club,omitempty"`
	Weekday  int    `json:"weekday"`
	OpensAt  string `json:"opens_at,omitempty"`
	ClosesAt string `json:"closes_at,omitempty"`
	Closed   bool   `json:"closed,omitempty"`
}

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the English weekday label, or "" when out of range.
func (h OpeningHour) WeekdayName() string {
	if h.Weekday < 0 || h.Weekday >= len(weekdayNames) {
		return ""
	}
	return weekdayNames[h.Weekday]
}
