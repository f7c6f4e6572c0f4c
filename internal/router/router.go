package router // package router wires the pages of the web client onto echo

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/cinetrack-web/internal/handler"
	"github.com/iliyamo/cinetrack-web/internal/middleware"
	"github.com/iliyamo/cinetrack-web/internal/session"
)

// RegisterRoutes installs the middleware every page needs and the
// unauthenticated health check.  With csrf set, every form post must
// carry the token rendered into the page as _csrf.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, store *session.Store, csrf bool) {
	e.Use(middleware.Session(store))
	if csrf {
		e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
			TokenLookup:    "form:_csrf",
			ContextKey:     "csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteLaxMode,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/healthz"
			},
		}))
	}
	e.GET("/healthz", h.Health)
}

// RegisterAuth registers signup, login and logout.  Signup and login are
// only shown to visitors without a session; their posts are rate limited.
func RegisterAuth(e *echo.Echo, h *handler.Handler, limit echo.MiddlewareFunc) {
	e.GET("/", h.SignupPage, middleware.GuestOnly)
	e.POST("/", h.Signup, middleware.GuestOnly, limit)
	e.GET("/login", h.LoginPage, middleware.GuestOnly)
	e.POST("/login", h.Login, middleware.GuestOnly, limit)
	e.POST("/logout", h.Logout)
}
