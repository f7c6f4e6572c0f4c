// Package session keeps the logged-in user in a browser cookie.  The
// cookie holds the user record as claims of an HS256 JWT; a value that
// does not decode, does not verify, or carries no user id is discarded.
// There is no expiry and no refresh: a stored session only decides what
// the UI shows and where it redirects.
package session

import (
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinetrack-web/internal/model"
)

const (
	// CookieName is the single storage key for the user record.
	CookieName = "user"
	flashName  = "flash"
)

// userClaims is the JWT payload.  Subject is the user id.
type userClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Store reads and writes the session cookie.
type Store struct {
	secret []byte
	secure bool
}

// NewStore returns a Store signing with secret.  secure marks cookies for
// HTTPS only.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Encode signs u into a cookie value.
func (s *Store) Encode(u model.User) (string, error) {
	claims := userClaims{
		Name:  u.Name,
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatUint(u.ID, 10),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Decode verifies a cookie value and returns the user it carries.
func (s *Store) Decode(raw string) (model.User, bool) {
	var claims userClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return model.User{}, false
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return model.User{}, false
	}
	return model.User{ID: id, Name: claims.Name, Email: claims.Email}, true
}

// Load returns the stored user.  A malformed cookie is cleared and
// reported as no session.
func (s *Store) Load(c echo.Context) (model.User, bool) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return model.User{}, false
	}
	u, ok := s.Decode(ck.Value)
	if !ok {
		s.Clear(c)
		return model.User{}, false
	}
	return u, true
}

// Save persists u in the session cookie.
func (s *Store) Save(c echo.Context, u model.User) error {
	v, err := s.Encode(u)
	if err != nil {
		return err
	}
	c.SetCookie(s.cookie(CookieName, v, 0))
	return nil
}

// Clear removes the session cookie.
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(s.cookie(CookieName, "", -1))
}

// Flash stores a one-shot message shown on the next rendered page.
func (s *Store) Flash(c echo.Context, msg string) {
	c.SetCookie(s.cookie(flashName, base64.RawURLEncoding.EncodeToString([]byte(msg)), 0))
}

// PopFlash returns and clears the pending flash message, if any.
func (s *Store) PopFlash(c echo.Context) string {
	ck, err := c.Cookie(flashName)
	if err != nil || ck.Value == "" {
		return ""
	}
	c.SetCookie(s.cookie(flashName, "", -1))
	b, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return ""
	}
	return string(b)
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
