package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gewis/gewisweb-api/internal/interfaces/http"
	pkgjwt "github.com/gewis/gewisweb-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "gewisweb-test"
	testExpMin    = 60
)

// buildTestApp mounts AuthMiddleware (and optionally RequireMember) in front of a handler
// echoing the resolved principal.
func buildTestApp(requireMember bool) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if requireMember {
		handlers = append(handlers, apphttp.RequireMember())
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		p := apphttp.GetPrincipal(c)
		return c.JSON(fiber.Map{"lidnr": p.MemberID, "role": string(p.Role), "guest": p.IsGuest()})
	})
	app.Get("/me", handlers...)
	return app
}

func tokenFor(t *testing.T, lidnr int, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, lidnr, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_NoHeaderIsGuest(t *testing.T) {
	resp := doRequest(t, buildTestApp(false), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["guest"])
	assert.Equal(t, "guest", body["role"])
}

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	resp := doRequest(t, buildTestApp(false), tokenFor(t, 8000, "active_member"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(8000), body["lidnr"])
	assert.Equal(t, "active_member", body["role"])
	assert.Equal(t, false, body["guest"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	resp := doRequest(t, buildTestApp(false), "Bearer token.invalid.here")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	resp := doRequest(t, buildTestApp(false), "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("other-secret", 8000, "user", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(false), "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireMember(t *testing.T) {
	app := buildTestApp(true)

	guest := doRequest(t, app, "")
	defer guest.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, guest.StatusCode)

	member := doRequest(t, app, tokenFor(t, 9000, "user"))
	defer member.Body.Close()
	assert.Equal(t, http.StatusOK, member.StatusCode)
}
