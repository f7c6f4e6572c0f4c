package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinetrack-web/internal/api"
	"github.com/iliyamo/cinetrack-web/internal/config"
	"github.com/iliyamo/cinetrack-web/internal/handler"
	"github.com/iliyamo/cinetrack-web/internal/model"
	"github.com/iliyamo/cinetrack-web/internal/queue"
	"github.com/iliyamo/cinetrack-web/internal/repository"
	"github.com/iliyamo/cinetrack-web/internal/session"
	"github.com/iliyamo/cinetrack-web/web"
)

var ana = model.User{ID: 7, Name: "Ana", Email: "ana@example.com"}

type app struct {
	e       *echo.Echo
	store   *session.Store
	backend *int32
	limited *[]string
}

// newApp registers the routes exactly as the server does.  The limiter
// records the route it guards and rejects the request.
func newApp(t *testing.T, csrf bool) *app {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, 0)
	store := session.NewStore("test-secret", false)
	h := handler.New(client, store, repository.NewMovieRepo(client, nil, config.CacheConfig{}), queue.Nop{})
	renderer, err := handler.NewRenderer(web.Templates)
	require.NoError(t, err)

	var limited []string
	limit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited = append(limited, c.Request().Method+" "+c.Path())
			return c.String(http.StatusTooManyRequests, "slow down")
		}
	}

	e := echo.New()
	e.Renderer = renderer
	RegisterRoutes(e, h, store, csrf)
	RegisterAuth(e, h, limit)
	RegisterCustomer(e, h, limit)
	return &app{e: e, store: store, backend: &calls, limited: &limited}
}

func (a *app) serve(t *testing.T, method, target string, form url.Values, user *model.User, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if user != nil {
		v, err := a.store.Encode(*user)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: v})
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	a := newApp(t, false)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/main"},
		{http.MethodGet, "/movie/1"},
		{http.MethodGet, "/movie/1?showtime=10&seat=101"},
		{http.MethodPost, "/movie/1/book"},
		{http.MethodGet, "/my-bookings"},
		{http.MethodGet, "/my-bookings/1/cancel"},
		{http.MethodPost, "/my-bookings/1/cancel"},
	}
	for _, r := range routes {
		var form url.Values
		if r.method == http.MethodPost {
			form = url.Values{"showtime_id": {"10"}, "seat_id": {"101"}}
		}
		rec := a.serve(t, r.method, r.path, form, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, r.path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), r.path)
	}

	bad := &http.Cookie{Name: session.CookieName, Value: "not-a-token"}
	rec := a.serve(t, http.MethodGet, "/my-bookings", nil, nil, bad)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	assert.Zero(t, atomic.LoadInt32(a.backend))
	assert.Empty(t, *a.limited)
}

func TestGuestPagesRedirectLoggedInUsers(t *testing.T) {
	a := newApp(t, false)

	for _, p := range []string{"/", "/login"} {
		rec := a.serve(t, http.MethodGet, p, nil, &ana)
		assert.Equal(t, http.StatusSeeOther, rec.Code, p)
		assert.Equal(t, "/main", rec.Header().Get("Location"), p)

		assert.Equal(t, http.StatusOK, a.serve(t, http.MethodGet, p, nil, nil).Code, p)
	}
}

func TestFormPostsAreRateLimited(t *testing.T) {
	a := newApp(t, false)

	assert.Equal(t, http.StatusTooManyRequests, a.serve(t, http.MethodPost, "/", url.Values{}, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, a.serve(t, http.MethodPost, "/login", url.Values{}, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, a.serve(t, http.MethodPost, "/movie/1/book", url.Values{}, &ana).Code)
	assert.Equal(t, http.StatusTooManyRequests, a.serve(t, http.MethodPost, "/my-bookings/1/cancel", url.Values{}, &ana).Code)

	rec := a.serve(t, http.MethodPost, "/logout", url.Values{}, &ana)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	assert.Equal(t, []string{
		"POST /",
		"POST /login",
		"POST /movie/:id/book",
		"POST /my-bookings/:id/cancel",
	}, *a.limited)
	assert.Zero(t, atomic.LoadInt32(a.backend))
}

func TestHealthIsPublic(t *testing.T) {
	a := newApp(t, true)

	rec := a.serve(t, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCSRFTokenRequiredOnPosts(t *testing.T) {
	a := newApp(t, true)

	rec := a.serve(t, http.MethodPost, "/logout", url.Values{}, &ana)
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))

	rec = a.serve(t, http.MethodPost, "/logout", url.Values{"_csrf": {"forged"}}, &ana,
		&http.Cookie{Name: "_csrf", Value: "another"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	page := a.serve(t, http.MethodGet, "/login", nil, nil)
	require.Equal(t, http.StatusOK, page.Code)
	var token *http.Cookie
	for _, ck := range page.Result().Cookies() {
		if ck.Name == "_csrf" {
			token = ck
		}
	}
	require.NotNil(t, token)
	assert.Contains(t, page.Body.String(), `name="_csrf" value="`+token.Value+`"`)

	rec = a.serve(t, http.MethodPost, "/logout", url.Values{"_csrf": {token.Value}}, &ana, token)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
