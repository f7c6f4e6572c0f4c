package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/bookings"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
	"github.com/iliyamo/cinetrack-web/internal/model"
	"github.com/iliyamo/cinetrack-web/internal/queue"
)

// MyBookings lists the bookings of the logged-in user.
func (h *Handler) MyBookings(c echo.Context) error {
	user, _ := middleware.CurrentUser(c)
	list, err := bookings.Load(c.Request().Context(), h.Bookings, user)
	if err != nil {
		return h.bookingsFailed(c, user, err)
	}
	return h.render(c, http.StatusOK, "bookings", echo.Map{"Bookings": list.Items()})
}

func (h *Handler) bookingsFailed(c echo.Context, user model.User, err error) error {
	c.Logger().Errorf("bookings of user %d: %v", user.ID, err)
	return h.render(c, http.StatusBadGateway, "bookings", echo.Map{"Error": "Failed to load bookings."})
}

// CancelPage asks the user to confirm a cancellation.
func (h *Handler) CancelPage(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Booking not found.")
	}
	user, _ := middleware.CurrentUser(c)
	list, err := bookings.Load(c.Request().Context(), h.Bookings, user)
	if err != nil {
		return h.bookingsFailed(c, user, err)
	}
	b, ok := list.Find(id)
	if !ok {
		return h.renderError(c, http.StatusNotFound, "Booking not found.")
	}
	return h.render(c, http.StatusOK, "cancel", echo.Map{"Booking": b})
}

// Cancel deletes one of the user's bookings and shows the remaining ones.
// Ids outside the user's list are rejected before anything is sent.  The
// list is not fetched again after the delete.
func (h *Handler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return h.renderError(c, http.StatusNotFound, "Booking not found.")
	}
	user, _ := middleware.CurrentUser(c)
	ctx := c.Request().Context()

	list, err := bookings.Load(ctx, h.Bookings, user)
	if err != nil {
		return h.bookingsFailed(c, user, err)
	}
	b, ok := list.Find(id)
	if !ok {
		return h.renderError(c, http.StatusNotFound, "Booking not found.")
	}

	if err := list.Cancel(ctx, id); err != nil {
		c.Logger().Warnf("cancel booking %d: %v", id, err)
		return h.render(c, failureStatus(err), "bookings", echo.Map{
			"Bookings": list.Items(),
			"Error":    "Failed to cancel booking.",
		})
	}

	queue.PublishAsync(h.Events, queue.BookingEvent{
		Type:       "cancelled",
		BookingID:  b.ID,
		UserID:     user.ID,
		UserName:   user.Name,
		SeatLabel:  b.SeatNumber,
		MovieTitle: b.Title,
		Theater:    b.Theater,
		ShowTime:   b.ShowTime,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return h.render(c, http.StatusOK, "bookings", echo.Map{
		"Bookings": list.Items(),
		"Flash":    "Booking cancelled successfully!",
	})
}
