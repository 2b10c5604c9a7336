// internal/app/features/events/types.go
package events

import (
	"html/template"

	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// eventStatuses are the backend's event states, in display order.
var eventStatuses = []string{"DRAFT", "SCHEDULED", "ONGOING", "COMPLETED", "CANCELLED"}

// listItem is a single row in the events list.
type listItem struct {
	ID        int64
	Name      string
	ClubName  string
	Status    string
	StartTime string
	Location  string
}

// listData is the view model for the events list page.
type listData struct {
	formutil.Base

	Search   string
	Status   string
	ClubID   string
	DateFrom string
	DateTo   string

	Clubs    []models.Club
	Statuses []string

	Items   []listItem
	Filters filters.Set
	Pager   paging.Pager
}

// formData is the view model for the new/edit event forms.
type formData struct {
	formutil.Base

	ID           int64
	Name         string
	Description  string
	ClubID       string
	Status       string
	StartTime    string
	EndTime      string
	Location     string
	Capacity     string
	HeroImageURL string

	SelectedGroups    map[string]bool
	SelectedInterests map[string]bool

	Clubs     []models.Club
	Groups    []models.Group
	Interests []models.Interest
	Statuses  []string

	// Existing attachments, shown on edit with per-item delete forms.
	Images    []galleryImage
	Documents []models.EventDocument

	SubmitURL string
	IsEdit    bool
}

// galleryImage is one gallery entry with its resolved URL.
type galleryImage struct {
	ID  int64
	URL string
}

// viewData is the view model for the event detail page.
type viewData struct {
	formutil.Base

	Event           models.Event
	Status          string
	HeroImageURL    string
	DescriptionHTML template.HTML
	Images          []galleryImage
	Documents       []documentLink
	Registrations   []registrationRow
}

// documentLink is one downloadable attachment with its resolved URL.
type documentLink struct {
	ID   int64
	Name string
	URL  string
}

// registrationRow is one signup on the event view page.
type registrationRow struct {
	ID        int64
	YouthID   int64
	YouthName string
	Status    string
	CreatedAt string
}
