// internal/app/features/countries/types.go
package countries

import (
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// listData is the view model for the countries list page.
type listData struct {
	formutil.Base

	Search  string
	Items   []models.Country
	Filters filters.Set
	Pager   paging.Pager
}

// formData is the view model for the new/edit country forms.
type formData struct {
	formutil.Base

	ID   int64
	Name string
	Code string

	SubmitURL string
	IsEdit    bool
}

// viewData is the view model for the country detail page.
type viewData struct {
	formutil.Base

	Country        models.Country
	Municipalities []models.Municipality
}
