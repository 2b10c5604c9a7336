// internal/app/features/clubs/view.go
package clubs

import (
	"context"
	"net/http"
	"net/url"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/klubbportal/klubbportal/internal/app/api"
	"github.com/klubbportal/klubbportal/internal/app/media"
	"github.com/klubbportal/klubbportal/internal/app/system/formutil"
	"github.com/klubbportal/klubbportal/internal/app/system/normalize"
	"github.com/klubbportal/klubbportal/internal/app/system/render"
	"github.com/klubbportal/klubbportal/internal/app/system/richtext"
	"github.com/klubbportal/klubbportal/internal/app/system/timeouts"
	"github.com/klubbportal/klubbportal/internal/domain/models"
)

// ServeView renders a club's detail page. GET /clubs/{id}/view
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, err := api.GetOne[models.Club](ctx, h.API, "/clubs/"+id+"/")
	if err != nil {
		h.ErrLog.LogAPIError(w, r, "load club failed", err, "Unable to load the club.", "/clubs")
		return
	}

	hours := append([]models.OpeningHour(nil), club.OpeningHours...)
	sort.Slice(hours, func(i, j int) bool { return hours[i].Weekday < hours[j].Weekday })

	data := viewData{
		Club:            club,
		HeroImageURL:    h.Media.Resolve(club.HeroImage),
		Initials:        media.Initials(club.Name),
		DescriptionHTML: richtext.Render(club.Description),
		Social:          normalize.DecodeSocialLinks(club.SocialMedia),
		OpeningHours:    hours,
	}
	if club.Latitude != "" && club.Longitude != "" {
		coords := club.Latitude + "," + club.Longitude
		data.MapLinkURL = "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(coords)
		if h.MapsAPIKey != "" {
			data.MapEmbedURL = "https://www.google.com/maps/embed/v1/place?key=" +
				url.QueryEscape(h.MapsAPIKey) + "&q=" + url.QueryEscape(coords)
		}
	}
	formutil.SetBase(&data.Base, w, r, club.Name, "/clubs")

	render.Page(w, r, "club_view", data)
}
