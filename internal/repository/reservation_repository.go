package repository

import (
	"context"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/model"
)

// BookingRepo lists and cancels a user's bookings.
type BookingRepo struct{ api *api.Client }

func NewBookingRepo(c *api.Client) *BookingRepo { return &BookingRepo{api: c} }

// ListByUser returns the bookings of userID, newest first as the backend
// orders them.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	list, err := r.api.Bookings(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// Cancel deletes a booking.
func (r *BookingRepo) Cancel(ctx context.Context, bookingID uint64) error {
	return translate(r.api.CancelBooking(ctx, bookingID))
}
