package model

// Booking is one row of GET /bookings?user_id: a reserved seat joined
// with its showtime and movie.
//
// Fields:
//  ID          – booking identifier, used for cancellation.
//  Title       – movie title.
//  Theater     – venue name.
//  ShowTime    – showtime start.
//  SeatNumber  – seat label.
//  BookingTime – when the reservation was made.
type Booking struct {
	ID          uint64 `json:"booking_id"`
	Title       string `json:"title"`
	Theater     string `json:"theater"`
	ShowTime    string `json:"show_time"`
	SeatNumber  string `json:"seat_number"`
	BookingTime string `json:"booking_time"`
}

// Reservation is the reply of POST /bookings.
type Reservation struct {
	Status      string `json:"status"`
	BookingID   uint64 `json:"booking_id"`
	SeatID      uint64 `json:"seat_id"`
	ShowtimeID  uint64 `json:"showtime_id"`
	UserID      uint64 `json:"user_id"`
	BookingTime string `json:"booking_time"`
}
