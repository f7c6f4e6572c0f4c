package repository

import (
	"context"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// ShowtimeRepo reads showtimes.  The backend only offers the full list,
// so per-movie views filter it by the denormalised title.
type ShowtimeRepo struct{ api *api.Client }

func NewShowtimeRepo(c *api.Client) *ShowtimeRepo { return &ShowtimeRepo{api: c} }

// ForMovie returns the showtimes whose title equals title, in server order.
func (r *ShowtimeRepo) ForMovie(ctx context.Context, title string) ([]model.Showtime, error) {
	all, err := r.api.Showtimes(ctx)
	if err != nil {
		return nil, translate(err)
	}
	out := make([]model.Showtime, 0, len(all))
	for _, s := range all {
		if s.Title == title {
			out = append(out, s)
		}
	}
	return out, nil
}

// GroupByVenue groups showtimes by theater.  Venues appear in the order
// their first showtime appears; showtimes keep their relative order.
func GroupByVenue(list []model.Showtime) []model.VenueShowtimes {
	idx := map[string]int{}
	var out []model.VenueShowtimes
	for _, s := range list {
		i, ok := idx[s.Theater]
		if !ok {
			i = len(out)
			idx[s.Theater] = i
			out = append(out, model.VenueShowtimes{Venue: s.Theater})
		}
		out[i].Showtimes = append(out[i].Showtimes, s)
	}
	return out
}
