package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieOptionalFields(t *testing.T) {
	var movies []Movie
	require.NoError(t, json.Unmarshal([]byte(`[
		{"movie_id":1,"title":"Dune","genre":"Sci-Fi, Adventure","poster_url":"https://img/dune.jpg","imdb_rating":8.6},
		{"movie_id":2,"title":"Cats","genre":"Musical","poster_url":"N/A"},
		{"movie_id":3,"title":"Heat","genre":"","poster_url":null,"imdb_rating":null}]`), &movies))

	assert.Equal(t, 8.6, movies[0].Rating())
	assert.Equal(t, "https://img/dune.jpg", movies[0].Poster())
	assert.Equal(t, []string{"Sci-Fi", "Adventure"}, movies[0].Genres())

	assert.Zero(t, movies[1].Rating())
	assert.Equal(t, NoPosterURL, movies[1].Poster())

	assert.Equal(t, NoPosterURL, movies[2].Poster())
	assert.Nil(t, movies[2].Genres())
}

func TestSeatLayoutRows(t *testing.T) {
	var resp SeatLayoutResponse
	require.NoError(t, json.Unmarshal([]byte(`{"showtime_id":4,"layout":{
		"B":[{"seat_id":3,"seat_number":"B1","reserved":true}],
		"AA":[{"seat_id":4,"seat_number":"AA1","reserved":false}],
		"A":[{"seat_id":1,"seat_number":"A1","reserved":false},{"seat_id":2,"seat_number":"A2","reserved":true}]}}`), &resp))

	assert.EqualValues(t, 4, resp.ShowtimeID)
	assert.Equal(t, []string{"A", "B", "AA"}, resp.Layout.Rows())
	assert.Equal(t, "A2", resp.Layout["A"][1].SeatNumber)
	assert.Equal(t, 2, resp.Layout.Free())

	s, ok := resp.Layout.Find(3)
	require.True(t, ok)
	assert.True(t, s.Reserved)
	_, ok = resp.Layout.Find(99)
	assert.False(t, ok)
}

func TestFormatShowTime(t *testing.T) {
	assert.Equal(t, "10/20, 19:00", FormatShowTime("2025-10-20T19:00:00"))
	assert.Equal(t, "01/05, 09:07", FormatShowTime("2025-01-05 09:07:00"))
	assert.Equal(t, "03/02, 08:30", FormatShowTime("2025-03-02T08:30:00.123456"))
	assert.Equal(t, "soon", FormatShowTime("soon"))

	st := Showtime{ShowTime: "2025-10-20T19:00:00"}
	assert.Equal(t, "10/20, 19:00", st.Label())
}

func TestUserValid(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","email":"a@b.co"}`), &u))
	assert.False(t, u.Valid())
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":7,"name":"Ana","email":"a@b.co"}`), &u))
	assert.True(t, u.Valid())
}
