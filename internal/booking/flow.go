// Package booking drives seat selection for one movie page: pick a
// showtime, load its seat layout, pick a free seat, confirm, reserve and
// reload the layout.  The layout is whatever the backend reported at the
// last fetch; two users racing for a seat are sorted out by the backend
// and the loser only sees its error.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

// State is the position of a Flow in its state machine.
type State int

const (
	NoShowtime   State = iota // nothing selected yet
	SeatsLoading              // showtime chosen, layout request in flight
	SeatsLoaded               // layout available for seat selection
)

func (s State) String() string {
	switch s {
	case NoShowtime:
		return "no showtime selected"
	case SeatsLoading:
		return "seats loading"
	case SeatsLoaded:
		return "seats loaded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrNoShowtime   = errors.New("no showtime selected")
	ErrSeatNotFound = errors.New("seat not found in layout")
	ErrSeatReserved = errors.New("seat already reserved")
	ErrNotLoggedIn  = errors.New("please log in before booking a seat")
	// ErrRefresh wraps a failed layout reload after a successful
	// reservation.  The reservation stands.
	ErrRefresh = errors.New("seat layout refresh failed")
)

// SeatService is what the flow needs from the backend.
type SeatService interface {
	Layout(ctx context.Context, showtimeID uint64) (model.SeatLayout, error)
	Reserve(ctx context.Context, seatID, userID uint64) (model.Reservation, error)
}

// Prompt is the confirmation question asked before reserving a seat.
type Prompt struct {
	Seat     model.Seat
	Showtime model.Showtime
}

// Message is the text shown to the user.
func (p Prompt) Message() string {
	return fmt.Sprintf("Confirm booking for seat %s at %s on %s?",
		p.Seat.SeatNumber, p.Showtime.Theater, p.Showtime.Label())
}

// Flow is the booking state machine of a single movie page.
type Flow struct {
	seats    SeatService
	state    State
	showtime model.Showtime
	layout   model.SeatLayout
}

// NewFlow returns a flow with no showtime selected.
func NewFlow(seats SeatService) *Flow {
	return &Flow{seats: seats, state: NoShowtime}
}

func (f *Flow) State() State { return f.state }
func (f *Flow) Showtime() model.Showtime { return f.showtime }
func (f *Flow) Layout() model.SeatLayout { return f.layout }
func (f *Flow) Selected(id uint64) bool { return f.state != NoShowtime && f.showtime.ID == id }

// SelectShowtime fetches the layout of st.  On failure the flow keeps the
// showtime and layout it had before.
func (f *Flow) SelectShowtime(ctx context.Context, st model.Showtime) error {
	prevState, prevShow, prevLayout := f.state, f.showtime, f.layout
	f.state, f.showtime = SeatsLoading, st

	layout, err := f.seats.Layout(ctx, st.ID)
	if err != nil {
		f.state, f.showtime, f.layout = prevState, prevShow, prevLayout
		return err
	}
	f.layout = layout
	f.state = SeatsLoaded
	return nil
}

// SelectSeat asks for confirmation of a free seat.  Reserved seats yield
// ErrSeatReserved and nothing else happens.
func (f *Flow) SelectSeat(seatID uint64) (Prompt, error) {
	if f.state != SeatsLoaded {
		return Prompt{}, ErrNoShowtime
	}
	seat, ok := f.layout.Find(seatID)
	if !ok {
		return Prompt{}, ErrSeatNotFound
	}
	if seat.Reserved {
		return Prompt{}, ErrSeatReserved
	}
	return Prompt{Seat: seat, Showtime: f.showtime}, nil
}

// Confirm reserves a seat the user agreed to and reloads the layout.  The
// seat must be free in the loaded layout; otherwise no request is made.
// A failed reservation leaves the flow unchanged.
func (f *Flow) Confirm(ctx context.Context, user model.User, seatID uint64) (model.Reservation, Prompt, error) {
	if f.state != SeatsLoaded {
		return model.Reservation{}, Prompt{}, ErrNoShowtime
	}
	if !user.Valid() {
		return model.Reservation{}, Prompt{}, ErrNotLoggedIn
	}
	p, err := f.SelectSeat(seatID)
	if err != nil {
		return model.Reservation{}, Prompt{}, err
	}

	res, err := f.seats.Reserve(ctx, seatID, user.ID)
	if err != nil {
		return model.Reservation{}, p, err
	}

	layout, err := f.seats.Layout(ctx, f.showtime.ID)
	if err != nil {
		return res, p, fmt.Errorf("%w: %w", ErrRefresh, err)
	}
	f.layout = layout
	return res, p, nil
}
