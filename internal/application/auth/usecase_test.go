package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbcompany/inventario-api/internal/application/audit"
	"github.com/lbcompany/inventario-api/internal/application/auth"
	"github.com/lbcompany/inventario-api/internal/application/dto"
	"github.com/lbcompany/inventario-api/internal/domain"
	"github.com/lbcompany/inventario-api/internal/infrastructure/jsondb"
	"github.com/lbcompany/inventario-api/pkg/jwt"
)

const (
	testSecurityCode = "L&B2025"
	testJWTSecret    = "secreto-de-test"
)

func newAuthUC(t *testing.T) (*auth.UseCase, *audit.UseCase) {
	t.Helper()
	store, err := jsondb.NewStore(t.TempDir())
	require.NoError(t, err)
	auditUC := audit.New(store)
	uc := auth.New(store, auditUC, auth.Config{
		SecurityCode: testSecurityCode,
		JWTSecret:    testJWTSecret,
		JWTIssuer:    "inventario-lb-test",
		ExpMinutes:   60,
	})
	return uc, auditUC
}

func TestRegister_CreaLaCuentaYDejaBitacora(t *testing.T) {
	uc, auditUC := newAuthUC(t)
	ctx := context.Background()

	out, err := uc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Password: "clave123", SecurityCode: testSecurityCode,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ana", entries[0].User)
	assert.Equal(t, "Registered new user: ana", entries[0].Action)
}

func TestRegister_CodigoIncorrecto(t *testing.T) {
	uc, auditUC := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Username: "ana", Password: "clave123", SecurityCode: "otro",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCode)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegister_CamposVacios(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "ana"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "a", SecurityCode: testSecurityCode})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "b", SecurityCode: testSecurityCode})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_EmiteTokenConElUsername(t *testing.T) {
	uc, auditUC := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "clave123", SecurityCode: testSecurityCode})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username)

	username, err := jwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "User logged in: ana", entries[0].Action)
}

func TestLogin_CredencialesInvalidasNoDejanBitacora(t *testing.T) {
	uc, auditUC := newAuthUC(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "clave123", SecurityCode: testSecurityCode})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "otra"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "clave123"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	entries, err := auditUC.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "solo la entrada del registro")
}
