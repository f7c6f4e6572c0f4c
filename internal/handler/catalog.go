package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/catalog"
)

// Main renders the movie grid.  Filters come from the query string
// (q, genre, rating) so a filtered view can be bookmarked.
func (h *Handler) Main(c echo.Context) error {
	q := catalog.Query{
		Search: c.QueryParam("q"),
		Genre:  queryOr(c, "genre", catalog.All),
		Rating: queryOr(c, "rating", catalog.All),
	}
	data := echo.Map{"Query": q, "RatingOptions": catalog.RatingOptions}

	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("list movies: %v", err)
		data["Error"] = "Failed to load movies."
		return h.render(c, http.StatusBadGateway, "main", data)
	}
	data["Genres"] = catalog.Genres(movies)
	data["Movies"] = catalog.Filter(movies, q)
	return h.render(c, http.StatusOK, "main", data)
}

func queryOr(c echo.Context, name, def string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return def
}
