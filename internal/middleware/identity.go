package middleware

// identity.go keeps the logged-in user on the request context.  Session
// runs on every route; RequireSession and GuestOnly decide redirects.

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/model"
	"github.com/iliyamo/cinetrack-web/internal/session"
)

const userKey = "user"

// Session loads the stored user, if any, into the context.
func Session(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if u, ok := store.Load(c); ok {
				c.Set(userKey, u)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user placed on the context by Session.
func CurrentUser(c echo.Context) (model.User, bool) {
	u, ok := c.Get(userKey).(model.User)
	return u, ok && u.Valid()
}

// RequireSession redirects to the login page when no session is stored.
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// GuestOnly sends logged-in users from the signup and login pages to the
// catalog.
func GuestOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); ok {
			return c.Redirect(http.StatusSeeOther, "/main")
		}
		return next(c)
	}
}

// userID identifies the caller for rate limiting; "guest" without session.
func userID(c echo.Context) string {
	if u, ok := CurrentUser(c); ok {
		return strconv.FormatUint(u.ID, 10)
	}
	return "guest"
}
