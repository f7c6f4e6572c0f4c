// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow handlers to distinguish
// between failure scenarios without inspecting backend status codes.
// The underlying *api.Error stays in the chain so the backend's message
// can still be shown to the user.
package repository

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iliyamo/cinetrack-web/internal/api"
)

// ErrNotFound is returned when the backend reports a missing resource
// (404) or a lookup by id finds nothing.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a reservation cannot be made because the
// seat was taken in the meantime.  The race is decided by the backend.
var ErrConflict = errors.New("conflict")

// translate maps backend status codes onto the sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch api.StatusOf(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case http.StatusBadRequest:
		if strings.Contains(strings.ToLower(api.DetailOr(err, "")), "already reserved") {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}
	return err
}
