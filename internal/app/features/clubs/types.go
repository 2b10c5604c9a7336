// internal/app/features/clubs/types.go
package clubs

import (
	"html/template"

	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// listItem is a single row in the clubs list.
type listItem struct {
	ID               int64
	Name             string
	MunicipalityName string
	City             string
	HeroImageURL     string
	Initials         string
}

// listData is the view model for the clubs list page.
type listData struct {
	formutil.Base

	Search         string
	CountryID      string
	MunicipalityID string
	Countries      []models.Country
	Municipalities []models.Municipality

	Items   []listItem
	Filters filters.Set
	Pager   paging.Pager
}

// formData is the view model for the new/edit club forms.
type formData struct {
	formutil.Base

	ID             int64
	Name           string
	MunicipalityID string
	Email          string
	Phone          string
	Address        string
	PostalCode     string
	City           string
	Description    string
	Facebook       string
	Instagram      string
	Latitude       string
	Longitude      string
	HeroImageURL   string
	OpeningHours   []models.OpeningHour

	Municipalities []models.Municipality
	Weekdays       []int

	SubmitURL string
	IsEdit    bool
}

// viewData is the view model for the club detail page.
type viewData struct {
	formutil.Base

	Club            models.Club
	HeroImageURL    string
	Initials        string
	DescriptionHTML template.HTML
	Social          normalize.SocialLinks
	OpeningHours    []models.OpeningHour

	// MapEmbedURL is set only when a maps key is configured; MapLinkURL
	// always points at an external maps page when coordinates exist.
	MapEmbedURL string
	MapLinkURL  string
}
