package gate_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticklist/ticklist/internal/gate"
	"github.com/ticklist/ticklist/internal/token"
)

func newTestTokens(t *testing.T) *token.Service {
	t.Helper()
	return token.NewService([]byte("gate-test-key"))
}

// newTestApp wires the gate in front of stub routes that report whether
// and with which identity they were reached.
func newTestApp(t *testing.T) (*fiber.App, *token.Service) {
	t.Helper()

	tokens := newTestTokens(t)
	g := gate.New(gate.NewResolver(tokens))

	app := fiber.New()
	app.Use(g.Middleware())

	echo := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"path": c.Path(), "user": gate.UserID(c)})
	}

	app.Get("/", echo)
	app.Get("/docs", echo)
	app.Get("/login", echo)
	app.Get("/signup", echo)
	app.Post("/api/login", echo)
	app.Post("/api/signup", echo)
	app.Post("/api/logout", echo)
	app.Get("/api/todos", echo)

	return app, tokens
}

func request(method, target, cookie string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: gate.CookieName, Value: cookie})
	}
	return req
}

func sessionFor(t *testing.T, tokens *token.Service, userID string) string {
	t.Helper()
	raw, err := tokens.Issue(userID)
	require.NoError(t, err)
	return raw
}

func clearsSessionCookie(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name == gate.CookieName && c.Value == "" {
			return true
		}
	}
	return false
}

func TestGateAuthAPIBypassesSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(request(fiber.MethodPost, "/api/login", ""))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, clearsSessionCookie(resp))
}

func TestGatePublicPagePassesWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/", "/docs"} {
		resp, err := app.Test(request(fiber.MethodGet, target, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, target)
	}
}

func TestGatePublicPagePassesWithInvalidSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(request(fiber.MethodGet, "/", "garbage"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateAuthPageWithoutSessionClearsCookieAndRenders(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(request(fiber.MethodGet, "/login", "expired-or-garbage"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, clearsSessionCookie(resp))
}

func TestGateAuthPageWithSessionRedirectsHome(t *testing.T) {
	app, tokens := newTestApp(t)
	session := sessionFor(t, tokens, "user-123")

	for _, target := range []string{"/login", "/signup"} {
		resp, err := app.Test(request(fiber.MethodGet, target, session))
		require.NoError(t, err)

		assert.Equal(t, http.StatusFound, resp.StatusCode, target)
		assert.Equal(t, "/", resp.Header.Get("Location"), target)
	}
}

func TestGateProtectedWithoutSessionRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name   string
		cookie string
	}{
		{"no cookie", ""},
		{"invalid cookie", "tampered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(request(fiber.MethodGet, "/api/todos", tt.cookie))
			require.NoError(t, err)

			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get("Location"))
			assert.True(t, clearsSessionCookie(resp))
		})
	}
}

func TestGateProtectedWithSessionAttachesIdentity(t *testing.T) {
	app, tokens := newTestApp(t)
	session := sessionFor(t, tokens, "user-123")

	resp, err := app.Test(request(fiber.MethodGet, "/api/todos", session))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"user":"user-123"`)
}

func TestGateLogoutIsProtected(t *testing.T) {
	app, tokens := newTestApp(t)

	resp, err := app.Test(request(fiber.MethodPost, "/api/logout", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	session := sessionFor(t, tokens, "user-123")
	resp, err = app.Test(request(fiber.MethodPost, "/api/logout", session))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
