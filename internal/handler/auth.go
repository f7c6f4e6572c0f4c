package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/repository"
)

var emailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

const minPasswordLen = 6

// ----- form DTOs -----

type signupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// validate applies the local signup checks.  It returns the message to
// show, or "" when the form may be sent.
func (f signupForm) validate() string {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return "All fields are required."
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		return "Please enter a valid email address."
	}
	if len(f.Password) < minPasswordLen {
		return "Password must be at least 6 characters long."
	}
	return ""
}

// SignupPage shows the signup form.
func (h *Handler) SignupPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "signup", nil)
}

// Signup validates the form, registers the account and logs the user in.
func (h *Handler) Signup(c echo.Context) error {
	var f signupForm
	if err := c.Bind(&f); err != nil {
		return h.renderError(c, http.StatusBadRequest, "invalid form")
	}
	again := echo.Map{"Name": f.Name, "Email": f.Email}

	if msg := f.validate(); msg != "" {
		again["Error"] = msg
		return h.render(c, http.StatusBadRequest, "signup", again)
	}

	u, err := h.Users.Create(c.Request().Context(), f.Name, f.Email, f.Password)
	if err != nil {
		c.Logger().Warnf("signup %s: %v", f.Email, err)
		again["Error"] = api.DetailOr(err, "Signup failed.")
		return h.render(c, failureStatus(err), "signup", again)
	}
	if err := h.Sessions.Save(c, u); err != nil {
		return err
	}
	h.Sessions.Flash(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/main")
}

// LoginPage shows the login form.
func (h *Handler) LoginPage(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", nil)
}

// Login checks the credentials with the backend and stores the session.
// Any failure clears a session that might still be around.
func (h *Handler) Login(c echo.Context) error {
	var f loginForm
	if err := c.Bind(&f); err != nil {
		return h.renderError(c, http.StatusBadRequest, "invalid form")
	}
	again := echo.Map{"Email": f.Email}

	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		again["Error"] = "Email and password are required."
		return h.render(c, http.StatusBadRequest, "login", again)
	}

	u, err := h.Users.Authenticate(c.Request().Context(), f.Email, f.Password)
	switch {
	case errors.Is(err, repository.ErrInvalidUser):
		h.Sessions.Clear(c)
		again["Error"] = "Invalid response from server. Please try again."
		return h.render(c, http.StatusBadGateway, "login", again)
	case err != nil:
		c.Logger().Warnf("login %s: %v", f.Email, err)
		h.Sessions.Clear(c)
		again["Error"] = api.DetailOr(err, "Login failed")
		return h.render(c, failureStatus(err), "login", again)
	}

	if err := h.Sessions.Save(c, u); err != nil {
		return err
	}
	h.Sessions.Flash(c, "Welcome back, "+u.Name+"!")
	return c.Redirect(http.StatusSeeOther, "/main")
}

// Logout forgets the session.
func (h *Handler) Logout(c echo.Context) error {
	h.Sessions.Clear(c)
	h.Sessions.Flash(c, "Logged out!")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// failureStatus is the status of a re-rendered page after a backend
// failure: the backend's own 4xx, or 502 when it was unreachable or broken.
func failureStatus(err error) int {
	if s := api.StatusOf(err); s >= 400 && s < 500 {
		return s
	}
	return http.StatusBadGateway
}
