// Package api is the HTTP client for the CineTrack REST backend.  It is
// the only place in the web client that knows backend URLs and wire
// formats; everything above it works with model types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

// Error is a non-2xx reply from the backend.  Detail carries the
// backend's "detail" message when it sent one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// DetailOr returns the backend's detail message carried by err, or
// fallback when there is none.  This is what users get to read.
func DetailOr(err error, fallback string) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Detail != "" {
		return ae.Detail
	}
	return fallback
}

// StatusOf returns the HTTP status carried by err, 0 for transport errors.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// Client wraps the backend base URL and an http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL.  A zero timeout means calls are
// bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// SignupRequest is the body of POST /users/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an account and returns the new user record.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodPost, "/users/signup", nil, req, &u)
	return u, err
}

// Login authenticates and returns the user record.
func (c *Client) Login(ctx context.Context, req LoginRequest) (model.User, error) {
	var u model.User
	err := c.do(ctx, http.MethodPost, "/users/login", nil, req, &u)
	return u, err
}

// Movies lists the whole catalog.
func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var out []model.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MoviesRaw returns the undecoded GET /movies body, for caching.
func (c *Client) MoviesRaw(ctx context.Context) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/movies", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Showtimes lists every showtime of every movie.
func (c *Client) Showtimes(ctx context.Context) ([]model.Showtime, error) {
	var out []model.Showtime
	if err := c.do(ctx, http.MethodGet, "/showtimes", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Seats fetches the seat layout of a showtime.
func (c *Client) Seats(ctx context.Context, showtimeID uint64) (model.SeatLayout, error) {
	var resp model.SeatLayoutResponse
	path := "/seats/" + strconv.FormatUint(showtimeID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Layout == nil {
		resp.Layout = model.SeatLayout{}
	}
	return resp.Layout, nil
}

// Book reserves seatID for userID.  Both travel as query parameters.
func (c *Client) Book(ctx context.Context, seatID, userID uint64) (model.Reservation, error) {
	q := url.Values{}
	q.Set("seat_id", strconv.FormatUint(seatID, 10))
	q.Set("user_id", strconv.FormatUint(userID, 10))
	var r model.Reservation
	err := c.do(ctx, http.MethodPost, "/bookings", q, nil, &r)
	return r, err
}

// Bookings lists the reservations of userID.
func (c *Client) Bookings(ctx context.Context, userID uint64) ([]model.Booking, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatUint(userID, 10))
	var out []model.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CancelBooking deletes a booking; the backend frees its seat.
func (c *Client) CancelBooking(ctx context.Context, bookingID uint64) error {
	return c.do(ctx, http.MethodDelete, "/bookings/"+strconv.FormatUint(bookingID, 10), nil, nil, nil)
}

// Ping checks that the backend answers on its root endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil, nil)
}

// do performs one request.  body, when non-nil, is sent as JSON; out,
// when non-nil, receives the decoded JSON reply.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError reads a FastAPI style error body.  "detail" is usually a
// string; validation failures send a list of objects with a "msg" field.
func decodeError(resp *http.Response) error {
	e := &Error{Status: resp.StatusCode}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(b, &body); err != nil || len(body.Detail) == 0 {
		return e
	}
	var s string
	if json.Unmarshal(body.Detail, &s) == nil {
		e.Detail = s
		return e
	}
	var list []struct {
		Msg string `json:"msg"`
	}
	if json.Unmarshal(body.Detail, &list) == nil {
		msgs := make([]string, 0, len(list))
		for _, it := range list {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		e.Detail = strings.Join(msgs, "; ")
	}
	return e
}
