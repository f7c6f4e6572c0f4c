// Package catalog filters the movie list shown on the main page.  The
// whole catalog is held in memory and scanned once per request.
package catalog

import (
	"strconv"
	"strings"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

// All disables the genre or rating criterion.
const All = "All"

// RatingOptions are the choices of the minimum-rating selector.
var RatingOptions = []string{All, "9", "8", "7", "6", "5", "0"}

// Query holds the three filter inputs as typed by the user.
type Query struct {
	Search string // title substring
	Genre  string // genre substring, "All" or "" for any
	Rating string // minimum IMDb rating, "All" or "" for any
}

// predicate reports whether a movie passes one criterion.
type predicate func(model.Movie) bool

// predicates returns the active criteria of q.  Inactive criteria are
// left out, so an empty query keeps every movie.
func (q Query) predicates() []predicate {
	var ps []predicate
	if strings.TrimSpace(q.Search) != "" {
		needle := strings.ToLower(q.Search)
		ps = append(ps, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Title), needle)
		})
	}
	if q.Genre != "" && q.Genre != All {
		needle := strings.ToLower(q.Genre)
		ps = append(ps, func(m model.Movie) bool {
			return strings.Contains(strings.ToLower(m.Genre), needle)
		})
	}
	if min, ok := q.MinRating(); ok {
		ps = append(ps, func(m model.Movie) bool { return m.Rating() >= min })
	}
	return ps
}

// MinRating returns the rating threshold and whether one is set.  An
// unparseable value sets none.
func (q Query) MinRating() (float64, bool) {
	r := strings.TrimSpace(q.Rating)
	if r == "" || r == All {
		return 0, false
	}
	v, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Filter returns the movies, in input order, that satisfy every active
// criterion of q.  The input slice is not modified.
func Filter(movies []model.Movie, q Query) []model.Movie {
	ps := q.predicates()
	out := make([]model.Movie, 0, len(movies))
next:
	for _, m := range movies {
		for _, p := range ps {
			if !p(m) {
				continue next
			}
		}
		out = append(out, m)
	}
	return out
}

// Genres lists the distinct genre names found in the catalog, in the
// order they first appear.
func Genres(movies []model.Movie) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range movies {
		for _, g := range m.Genres() {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}
