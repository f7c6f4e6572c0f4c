package model

import "strings"

// NoPosterURL is shown for movies whose poster is missing or "N/A".
const NoPosterURL = "https://upload.wikimedia.org/wikipedia/commons/a/ac/No_image_available.svg"

// Movie is an entry of the catalog served by GET /movies.  Only the
// identifier, title and genre are always present.
//
// Fields:
//  ID          – primary key identifier (movie_id).
//  Title       – unique title; showtimes refer to a movie by it.
//  Genre       – comma-joined genre names, e.g. "Action, Sci-Fi".
//  Duration    – runtime in minutes (nullable).
//  ReleaseDate – release date as sent by the backend (nullable).
//  PosterURL   – poster image URL (nullable, may be "N/A").
//  IMDBRating  – IMDb rating (nullable).
type Movie struct {
	ID          uint64   `json:"movie_id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Duration    *int     `json:"duration,omitempty"`
	ReleaseDate *string  `json:"release_date,omitempty"`
	PosterURL   *string  `json:"poster_url,omitempty"`
	IMDBRating  *float64 `json:"imdb_rating,omitempty"`
}

// Rating returns the IMDb rating, 0 when the movie has none.
func (m Movie) Rating() float64 {
	if m.IMDBRating == nil {
		return 0
	}
	return *m.IMDBRating
}

// Poster returns a displayable poster URL.
func (m Movie) Poster() string {
	if m.PosterURL == nil {
		return NoPosterURL
	}
	p := strings.TrimSpace(*m.PosterURL)
	if p == "" || p == "N/A" {
		return NoPosterURL
	}
	return p
}

// Genres splits the comma-joined genre string into trimmed names.
func (m Movie) Genres() []string {
	if m.Genre == "" {
		return nil
	}
	out := []string{}
	for _, g := range strings.Split(m.Genre, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}
