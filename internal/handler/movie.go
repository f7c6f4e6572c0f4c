package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/booking"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
	"github.com/iliyamo/cinetrack-web/internal/model"
	"github.com/iliyamo/cinetrack-web/internal/queue"
	"github.com/iliyamo/cinetrack-web/internal/repository"
)

type bookForm struct {
	ShowtimeID uint64 `form:"showtime_id"`
	SeatID     uint64 `form:"seat_id"`
}

// moviePage is the state of one movie detail page.
type moviePage struct {
	movie     model.Movie
	showtimes []model.Showtime
	flow      *booking.Flow
	data      echo.Map
}

// showtime returns the listed showtime with id.
func (p *moviePage) showtime(id uint64) (model.Showtime, bool) {
	for _, s := range p.showtimes {
		if s.ID == id {
			return s, true
		}
	}
	return model.Showtime{}, false
}

// selectShowtime loads the seats of the listed showtime id.  Failures end
// up as the page's error message.
func (p *moviePage) selectShowtime(ctx context.Context, id uint64) bool {
	st, ok := p.showtime(id)
	if !ok {
		p.data["Error"] = "Showtime not found."
		return false
	}
	if err := p.flow.SelectShowtime(ctx, st); err != nil {
		p.data["Error"] = api.DetailOr(err, "Failed to load seats.")
		return false
	}
	return true
}

// loadMovie fetches the movie named by the :id path parameter and its
// showtimes.  The returned error is already an HTTP error page.
func (h *Handler) loadMovie(c echo.Context) (*moviePage, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, h.renderError(c, http.StatusNotFound, "Movie not found.")
	}
	ctx := c.Request().Context()

	m, err := h.Movies.Get(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, h.renderError(c, http.StatusNotFound, "Movie not found.")
	case err != nil:
		c.Logger().Errorf("load movie %d: %v", id, err)
		return nil, h.renderError(c, http.StatusBadGateway, "Failed to load movie details.")
	}

	p := &moviePage{movie: m, flow: booking.NewFlow(h.Seats), data: echo.Map{"Movie": m}}
	p.showtimes, err = h.Showtimes.ForMovie(ctx, m.Title)
	if err != nil {
		c.Logger().Errorf("load showtimes of %q: %v", m.Title, err)
		p.data["Error"] = "Failed to load showtimes."
	}
	return p, nil
}

func (h *Handler) renderMovie(c echo.Context, status int, p *moviePage) error {
	p.data["Venues"] = repository.GroupByVenue(p.showtimes)
	p.data["Flow"] = p.flow
	p.data["SeatsLoaded"] = p.flow.State() == booking.SeatsLoaded
	return h.render(c, status, "movie", p.data)
}

// Movie renders the detail page.  ?showtime= loads a seat map and
// ?seat= asks to confirm a free seat of it; reserved seats do nothing.
func (h *Handler) Movie(c echo.Context) error {
	p, err := h.loadMovie(c)
	if p == nil {
		return err
	}

	showID, err := strconv.ParseUint(c.QueryParam("showtime"), 10, 64)
	if err != nil || !p.selectShowtime(c.Request().Context(), showID) {
		return h.renderMovie(c, http.StatusOK, p)
	}

	if seatID, err := strconv.ParseUint(c.QueryParam("seat"), 10, 64); err == nil {
		if prompt, err := p.flow.SelectSeat(seatID); err == nil {
			p.data["Prompt"] = &prompt
		}
	}
	return h.renderMovie(c, http.StatusOK, p)
}

// Book reserves the confirmed seat and shows the refreshed seat map.
func (h *Handler) Book(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Sessions.Flash(c, "Please log in before booking a seat.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	p, err := h.loadMovie(c)
	if p == nil {
		return err
	}
	var f bookForm
	if err := c.Bind(&f); err != nil {
		return h.renderError(c, http.StatusBadRequest, "invalid form")
	}
	ctx := c.Request().Context()
	if !p.selectShowtime(ctx, f.ShowtimeID) {
		return h.renderMovie(c, http.StatusBadGateway, p)
	}

	res, prompt, err := p.flow.Confirm(ctx, user, f.SeatID)
	switch {
	case errors.Is(err, booking.ErrNotLoggedIn):
		h.Sessions.Flash(c, "Please log in before booking a seat.")
		return c.Redirect(http.StatusSeeOther, "/login")
	case errors.Is(err, booking.ErrSeatReserved):
		return h.renderMovie(c, http.StatusOK, p)
	case errors.Is(err, booking.ErrSeatNotFound):
		p.data["Error"] = "Booking failed"
		return h.renderMovie(c, http.StatusBadRequest, p)
	case errors.Is(err, repository.ErrConflict):
		// Taken since the page was rendered; reload so it shows as reserved.
		c.Logger().Infof("seat %d already taken: %v", f.SeatID, err)
		if rerr := p.flow.SelectShowtime(ctx, p.flow.Showtime()); rerr != nil {
			c.Logger().Warnf("reload seats of showtime %d: %v", f.ShowtimeID, rerr)
		}
		p.data["Error"] = api.DetailOr(err, "Booking failed")
		return h.renderMovie(c, http.StatusConflict, p)
	case errors.Is(err, booking.ErrRefresh):
		c.Logger().Warnf("booking %d: %v", res.BookingID, err)
	case err != nil:
		c.Logger().Warnf("book seat %d for user %d: %v", f.SeatID, user.ID, err)
		p.data["Error"] = api.DetailOr(err, "Booking failed")
		return h.renderMovie(c, failureStatus(err), p)
	}

	p.data["Flash"] = fmt.Sprintf("Seat %s booked successfully for %s!", prompt.Seat.SeatNumber, user.Name)
	queue.PublishAsync(h.Events, queue.BookingEvent{
		Type:       "confirmed",
		BookingID:  res.BookingID,
		UserID:     user.ID,
		UserName:   user.Name,
		ShowtimeID: prompt.Showtime.ID,
		SeatID:     prompt.Seat.ID,
		SeatLabel:  prompt.Seat.SeatNumber,
		MovieTitle: p.movie.Title,
		Theater:    prompt.Showtime.Theater,
		ShowTime:   prompt.Showtime.ShowTime,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return h.renderMovie(c, http.StatusOK, p)
}
