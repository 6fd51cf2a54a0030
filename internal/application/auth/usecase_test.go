package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sioms-api/internal/application/auth"
	"github.com/jhoicas/sioms-api/internal/application/dto"
	"github.com/jhoicas/sioms-api/internal/domain"
	"github.com/jhoicas/sioms-api/internal/testutil/memrepo"
	pkgjwt "github.com/jhoicas/sioms-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(t *testing.T) (*auth.AuthUseCase, *memrepo.Store) {
	t.Helper()
	store := memrepo.NewStore()
	uc := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "sioms-test",
	})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_HasheaYPersiste(t *testing.T) {
	uc, store := newAuthUC(t)

	resp, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@ferreteria.co",
		Name:     "Ana",
		Password: "contrasena-larga",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "ana@ferreteria.co", resp.Email)
	assert.Equal(t, "operador", resp.Role, "sin rol explícito se asigna operador")

	stored, err := store.Users.GetByEmail("ana@ferreteria.co")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contrasena-larga", stored.PasswordHash,
		"el password nunca se guarda en claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)

	req := dto.RegisterRequest{Email: "ana@ferreteria.co", Password: "contrasena-larga"}
	_, err := uc.RegisterUser(req)
	require.NoError(t, err)

	_, err = uc.RegisterUser(req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegisterUser_PasswordCorto(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ferreteria.co", Password: "corto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"el password debe tener al menos 8 caracteres")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GeneraTokenConClaims(t *testing.T) {
	uc, _ := newAuthUC(t)

	registered, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@ferreteria.co",
		Password: "contrasena-larga",
		Role:     "admin",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@ferreteria.co", Password: "contrasena-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, registered.ID, resp.User.ID)

	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@ferreteria.co", Password: "contrasena-larga"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ferreteria.co", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ferreteria.co", Password: "contrasena-larga"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
