// internal/app/features/youth/types.go
package youth

import (
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// verificationStatuses are the backend's verification states, in display
// order.
var verificationStatuses = []string{"PENDING", "VERIFIED", "REJECTED"}

// legalGenders are the backend's legal gender codes.
var legalGenders = []string{"FEMALE", "MALE", "OTHER"}

// listItem is a single row in the youth list.
type listItem struct {
	ID                 int64
	Name               string
	Age                int
	Grade              int
	ClubName           string
	VerificationStatus string
	AvatarURL          string
	Initials           string
}

// listData is the view model for the youth list page.
type listData struct {
	formutil.Base

	Search             string
	ClubID             string
	AgeFrom            string
	AgeTo              string
	GradeFrom          string
	GradeTo            string
	VerificationStatus string
	LegalGender        string

	Clubs    []models.Club
	Statuses []string
	Genders  []string

	Items   []listItem
	Filters filters.Set
	Pager   paging.Pager
}

// formData is the view model for the new/edit youth forms.
type formData struct {
	formutil.Base

	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	BirthDate   string
	Grade       string
	LegalGender string
	ClubID      string
	AvatarURL   string

	// SelectedGuardians and SelectedInterests carry the chosen ids as
	// strings for option matching in the template.
	SelectedGuardians map[string]bool
	SelectedInterests map[string]bool

	Clubs     []models.Club
	Guardians []models.Guardian
	Interests []models.Interest
	Genders   []string

	SubmitURL string
	IsEdit    bool
}

// viewData is the view model for the youth detail page.
type viewData struct {
	formutil.Base

	Youth              models.Youth
	AvatarURL          string
	Initials           string
	VerificationStatus string
}
