// Package queue defines message payloads exchanged over the message broker
// and the publisher and consumer for them.
package queue

const (
	// ConfirmedQueue carries reservations made through the web client.
	ConfirmedQueue = "booking.confirmed"
	// CancelledQueue carries cancellations made through the web client.
	CancelledQueue = "booking.cancelled"
)

// BookingEvent is published after the backend accepted a reservation or a
// cancellation.  It carries what a consumer needs to log or notify
// without calling the backend again.
type BookingEvent struct {
	Type       string `json:"type"` // "confirmed" or "cancelled"
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	ShowtimeID uint64 `json:"showtime_id,omitempty"`
	SeatID     uint64 `json:"seat_id,omitempty"`
	SeatLabel  string `json:"seat"`
	MovieTitle string `json:"movie_title"`
	Theater    string `json:"theater"`
	ShowTime   string `json:"show_time"`
	OccurredAt string `json:"occurred_at"`
}

// Queue returns the queue the event is routed to.
func (e BookingEvent) Queue() string {
	if e.Type == "cancelled" {
		return CancelledQueue
	}
	return ConfirmedQueue
}
