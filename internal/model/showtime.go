package model

// Showtime is a scheduled screening.  The movie is referenced by its
// title only, exactly as the backend denormalises it.
type Showtime struct {
	ID       uint64 `json:"showtime_id"`
	Title    string `json:"title"`
	Theater  string `json:"theater"`
	ShowTime string `json:"show_time"`
}

// Label formats the start time for buttons and prompts (MM/DD, HH:MM).
func (s Showtime) Label() string { return FormatShowTime(s.ShowTime) }

// VenueShowtimes is the list of showtimes playing in one theater.
type VenueShowtimes struct {
	Venue     string
	Showtimes []Showtime
}
