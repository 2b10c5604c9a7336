// internal/app/features/municipalities/types.go
package municipalities

import (
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// listData is the view model for the municipalities list page.
type listData struct {
	formutil.Base

	Search    string
	CountryID string
	Countries []models.Country
	Items     []models.Municipality
	Filters   filters.Set
	Pager     paging.Pager
}

// formData is the view model for the new/edit municipality forms.
type formData struct {
	formutil.Base

	ID        int64
	Name      string
	CountryID string
	Countries []models.Country

	SubmitURL string
	IsEdit    bool
}

// viewData is the view model for the municipality detail page.
type viewData struct {
	formutil.Base

	Municipality models.Municipality
	Clubs        []models.Club
}
