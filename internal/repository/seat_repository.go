package repository

import (
	"context"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// SeatRepo reads seat layouts and places reservations.  Nothing here is
// cached: a layout is only as fresh as the call that fetched it.
type SeatRepo struct{ api *api.Client }

func NewSeatRepo(c *api.Client) *SeatRepo { return &SeatRepo{api: c} }

// Layout fetches the seat layout of a showtime.
func (r *SeatRepo) Layout(ctx context.Context, showtimeID uint64) (model.SeatLayout, error) {
	l, err := r.api.Seats(ctx, showtimeID)
	return l, translate(err)
}

// Reserve books seatID for userID.  ErrConflict means the backend found
// the seat already reserved.
func (r *SeatRepo) Reserve(ctx context.Context, seatID, userID uint64) (model.Reservation, error) {
	res, err := r.api.Book(ctx, seatID, userID)
	return res, translate(err)
}
