// Package bookings holds a user's reservations for the "My Bookings" page.
package bookings

import (
	"context"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

// Service lists and cancels bookings on the backend.
type Service interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	Cancel(ctx context.Context, bookingID uint64) error
}

// List is the set of bookings currently displayed.
type List struct {
	svc   Service
	items []model.Booking
}

// Load fetches the bookings of user.
func Load(ctx context.Context, svc Service, user model.User) (*List, error) {
	items, err := svc.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &List{svc: svc, items: items}, nil
}

// Items returns the displayed bookings.
func (l *List) Items() []model.Booking { return l.items }

// Find returns the displayed booking with id.
func (l *List) Find(id uint64) (model.Booking, bool) {
	for _, b := range l.items {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Cancel deletes the booking on the backend and, once that succeeded,
// drops the entry with the same id from the list.  Other entries are kept
// as they are; nothing is re-fetched.
func (l *List) Cancel(ctx context.Context, id uint64) error {
	if err := l.svc.Cancel(ctx, id); err != nil {
		return err
	}
	kept := make([]model.Booking, 0, len(l.items))
	for _, b := range l.items {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	l.items = kept
	return nil
}
