// internal/app/features/rewards/types.go
package rewards

import (
	"github.com/klubbportal/klubbportal/internal/app/system/filters"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/paging"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// listItem is a single row in the rewards list.
type listItem struct {
	ID       int64
	Name     string
	Points   int
	ClubName string
	Status   string
	ImageURL string
}

// listData is the view model for the rewards list page.
type listData struct {
	formutil.Base

	Search string
	ClubID string
	Clubs  []models.Club

	Items   []listItem
	Filters filters.Set
	Pager   paging.Pager
}

// claimRow is one redemption on the reward view page.
type claimRow struct {
	ID        int64
	YouthID   int64
	YouthName string
	Status    string
	ClaimedAt string
}

// viewData is the view model for the reward detail page.
type viewData struct {
	formutil.Base

	Reward   models.Reward
	ImageURL string
	Claims   []claimRow
}
