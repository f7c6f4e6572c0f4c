package model

import "sort"

// Seat is a single seat of a showtime.  SeatNumber is the printed label
// ("A1"); its first letter is the row.
type Seat struct {
	ID         uint64 `json:"seat_id"`
	SeatNumber string `json:"seat_number"`
	Reserved   bool   `json:"reserved"`
}

// SeatLayout maps a row label to the ordered seats of that row.  It
// reflects the reservation state reported by the backend when it was
// fetched and nothing later.
type SeatLayout map[string][]Seat

// SeatLayoutResponse is the body of GET /seats/{showtime_id}.
type SeatLayoutResponse struct {
	ShowtimeID uint64     `json:"showtime_id"`
	Layout     SeatLayout `json:"layout"`
}

// Rows returns the row labels in ascending order.
func (l SeatLayout) Rows() []string {
	rows := make([]string, 0, len(l))
	for r := range l {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if len(rows[i]) != len(rows[j]) {
			return len(rows[i]) < len(rows[j])
		}
		return rows[i] < rows[j]
	})
	return rows
}

// Find looks a seat up by id.
func (l SeatLayout) Find(seatID uint64) (Seat, bool) {
	for _, seats := range l {
		for _, s := range seats {
			if s.ID == seatID {
				return s, true
			}
		}
	}
	return Seat{}, false
}

// Free counts seats that are not reserved.
func (l SeatLayout) Free() int {
	n := 0
	for _, seats := range l {
		for _, s := range seats {
			if !s.Reserved {
				n++
			}
		}
	}
	return n
}
