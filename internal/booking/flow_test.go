package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

type mockSeats struct {
	mock.Mock
}

func (m *mockSeats) Layout(ctx context.Context, showtimeID uint64) (model.SeatLayout, error) {
	args := m.Called(showtimeID)
	layout, _ := args.Get(0).(model.SeatLayout)
	return layout, args.Error(1)
}

func (m *mockSeats) Reserve(ctx context.Context, seatID, userID uint64) (model.Reservation, error) {
	args := m.Called(seatID, userID)
	return args.Get(0).(model.Reservation), args.Error(1)
}

var (
	show = model.Showtime{ID: 3, Title: "Dune", Theater: "Hall 1", ShowTime: "2025-10-20T19:00:00"}
	user = model.User{ID: 7, Name: "Ana"}
)

func layoutWith(a1Reserved bool) model.SeatLayout {
	return model.SeatLayout{
		"A": {{ID: 1, SeatNumber: "A1", Reserved: a1Reserved}, {ID: 2, SeatNumber: "A2", Reserved: true}},
	}
}

func loadedFlow(t *testing.T, m *mockSeats) *Flow {
	t.Helper()
	m.On("Layout", show.ID).Return(layoutWith(false), nil).Once()
	f := NewFlow(m)
	require.NoError(t, f.SelectShowtime(context.Background(), show))
	return f
}

func TestSelectShowtimeLoadsSeats(t *testing.T) {
	m := &mockSeats{}
	f := NewFlow(m)
	assert.Equal(t, NoShowtime, f.State())

	m.On("Layout", show.ID).Return(layoutWith(false), nil).Once()
	require.NoError(t, f.SelectShowtime(context.Background(), show))
	assert.Equal(t, SeatsLoaded, f.State())
	assert.True(t, f.Selected(show.ID))
	assert.Len(t, f.Layout()["A"], 2)
	m.AssertExpectations(t)
}

func TestSelectShowtimeFailureKeepsState(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	other := model.Showtime{ID: 4, Theater: "Hall 2"}
	m.On("Layout", other.ID).Return(nil, errors.New("No seats found for this showtime")).Once()
	err := f.SelectShowtime(context.Background(), other)
	require.Error(t, err)
	assert.Equal(t, SeatsLoaded, f.State())
	assert.Equal(t, show, f.Showtime())
	assert.Len(t, f.Layout()["A"], 2)

	fresh := NewFlow(m)
	m.On("Layout", other.ID).Return(nil, errors.New("down")).Once()
	require.Error(t, fresh.SelectShowtime(context.Background(), other))
	assert.Equal(t, NoShowtime, fresh.State())
}

func TestSelectSeatPromptsForFreeSeat(t *testing.T) {
	f := loadedFlow(t, &mockSeats{})

	p, err := f.SelectSeat(1)
	require.NoError(t, err)
	assert.Equal(t, "Confirm booking for seat A1 at Hall 1 on 10/20, 19:00?", p.Message())
}

func TestSelectSeatErrors(t *testing.T) {
	_, err := NewFlow(&mockSeats{}).SelectSeat(1)
	assert.ErrorIs(t, err, ErrNoShowtime)

	f := loadedFlow(t, &mockSeats{})
	_, err = f.SelectSeat(2)
	assert.ErrorIs(t, err, ErrSeatReserved)
	_, err = f.SelectSeat(99)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestConfirmReservedSeatNeverReserves(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	_, _, err := f.Confirm(context.Background(), user, 2)
	assert.ErrorIs(t, err, ErrSeatReserved)
	m.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestConfirmRequiresUser(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	_, _, err := f.Confirm(context.Background(), model.User{}, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	m.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
}

func TestConfirmReservesAndReloads(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	m.On("Reserve", uint64(1), user.ID).Return(model.Reservation{BookingID: 50, SeatID: 1}, nil).Once()
	m.On("Layout", show.ID).Return(layoutWith(true), nil).Once()

	res, p, err := f.Confirm(context.Background(), user, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), res.BookingID)
	assert.Equal(t, "A1", p.Seat.SeatNumber)
	seat, _ := f.Layout().Find(1)
	assert.True(t, seat.Reserved)
	m.AssertExpectations(t)
}

func TestConfirmFailureLeavesLayout(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	m.On("Reserve", uint64(1), user.ID).Return(model.Reservation{}, errors.New("Seat already reserved")).Once()
	_, _, err := f.Confirm(context.Background(), user, 1)
	require.Error(t, err)
	seat, _ := f.Layout().Find(1)
	assert.False(t, seat.Reserved)
	assert.Equal(t, SeatsLoaded, f.State())
	m.AssertNumberOfCalls(t, "Layout", 1)
}

func TestConfirmRefreshFailureKeepsReservation(t *testing.T) {
	m := &mockSeats{}
	f := loadedFlow(t, m)

	m.On("Reserve", uint64(1), user.ID).Return(model.Reservation{BookingID: 51}, nil).Once()
	m.On("Layout", show.ID).Return(nil, errors.New("timeout")).Once()

	res, _, err := f.Confirm(context.Background(), user, 1)
	assert.ErrorIs(t, err, ErrRefresh)
	assert.Equal(t, uint64(51), res.BookingID)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "seats loaded", SeatsLoaded.String())
	assert.Equal(t, "State(9)", State(9).String())
}
