// Package handler implements the pages of the CineTrack web client.  Every
// handler follows the same shape: read the session, call the backend
// through a repository, render a page.  Backend failures are shown to the
// user as a message and never retried.
package handler

import (
	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/queue"
	"github.com/iliyamo/cinetrack-web/internal/repository"
	"github.com/iliyamo/cinetrack-web/internal/session"
)

// Handler bundles the dependencies of all pages.
type Handler struct {
	API       *api.Client
	Sessions  *session.Store
	Users     *repository.UserRepo
	Movies    *repository.MovieRepo
	Showtimes *repository.ShowtimeRepo
	Seats     *repository.SeatRepo
	Bookings  *repository.BookingRepo
	Events    queue.Publisher
}

// New constructs a Handler and panics if any dependency is nil.
func New(c *api.Client, sessions *session.Store, movies *repository.MovieRepo, events queue.Publisher) *Handler {
	if c == nil || sessions == nil || movies == nil {
		panic("nil dependency passed to handler.New")
	}
	if events == nil {
		events = queue.Nop{}
	}
	return &Handler{
		API:       c,
		Sessions:  sessions,
		Users:     repository.NewUserRepo(c),
		Movies:    movies,
		Showtimes: repository.NewShowtimeRepo(c),
		Seats:     repository.NewSeatRepo(c),
		Bookings:  repository.NewBookingRepo(c),
		Events:    events,
	}
}
