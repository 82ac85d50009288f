package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbcompany/inventario-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegido", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": GetUsername(c)})
	})
	return app
}

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protegido", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := newProtectedApp()

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenConOtroSecretoDevuelve401(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.Generate("otro-secreto", "ana", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoDejaElUsernameEnContexto(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.Generate(testSecret, "ana", "test", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWT_TokenExpiradoEsRechazado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "ana", "test", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}
