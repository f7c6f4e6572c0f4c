package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/handler"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
)

// RegisterCustomer registers the pages of a logged-in user.  Without a
// session every one of them redirects to /login.  Booking and cancelling
// are rate limited.
func RegisterCustomer(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
	auth := middleware.RequireSession

	e.GET("/main", h.Main, auth)
	e.GET("/movie/:id", h.Movie, auth)
	e.POST("/movie/:id/book", h.Book, auth, limit)

	e.GET("/my-bookings", h.MyBookings, auth)
	e.GET("/my-bookings/:id/cancel", h.CancelPage, auth)
	e.POST("/my-bookings/:id/cancel", h.Cancel, auth, limit)
}
