package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastra-store/vastra/app/models"
	"github.com/vastra-store/vastra/app/services"
)

func newAuthFixture(t *testing.T) (*AuthHandler, *fakeUserRepo, *services.TokenService) {
	t.Helper()
	repo := newFakeUserRepo()
	tokens := services.NewTokenService("test-secret")
	return NewAuthHandler(testRender, repo, tokens, validator.New()), repo, tokens
}

func TestRegister(t *testing.T) {
	handler, repo, tokens := newAuthFixture(t)

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/api/v1/register",
		`{"name":"Asha","email":"Asha@Example.com","password":"secret123","mobile":"9900112233"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])

	user := body["user"].(map[string]interface{})
	assert.Equal(t, "Asha", user["name"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password must not appear in the response")

	// The issued token authenticates as the new user.
	claims, err := tokens.Verify(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, services.RoleUser, claims.Role)
	assert.Equal(t, user["id"], claims.Subject)

	stored, err := repo.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored, "email should be stored lowercased")
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterMissingFields(t *testing.T) {
	handler, _, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/api/v1/register", `{"email":"a@b.com"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All fields are required", decodeBody(t, rec)["message"])
}

func TestRegisterInvalidEmail(t *testing.T) {
	handler, _, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/api/v1/register",
		`{"name":"Asha","email":"not-an-email","password":"secret123"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email must be a valid email address", decodeBody(t, rec)["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	handler, repo, _ := newAuthFixture(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON("/api/v1/register",
		`{"name":"Other","email":"ASHA@example.com","password":"different"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, rec)["message"])
}

func TestLogin(t *testing.T) {
	handler, repo, tokens := newAuthFixture(t)
	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "secret123"}
	require.NoError(t, repo.Create(context.Background(), user))

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON("/api/v1/login",
		`{"email":"asha@example.com","password":"secret123"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Login successful", body["message"])

	claims, err := tokens.Verify(body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginGenericFailureMessage(t *testing.T) {
	handler, repo, _ := newAuthFixture(t)
	require.NoError(t, repo.Create(context.Background(),
		&models.User{Name: "Asha", Email: "asha@example.com", Password: "secret123"}))

	wrongPassword := httptest.NewRecorder()
	handler.Login(wrongPassword, postJSON("/api/v1/login",
		`{"email":"asha@example.com","password":"wrong"}`))

	unknownEmail := httptest.NewRecorder()
	handler.Login(unknownEmail, postJSON("/api/v1/login",
		`{"email":"nobody@example.com","password":"secret123"}`))

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t,
		decodeBody(t, wrongPassword)["message"],
		decodeBody(t, unknownEmail)["message"])
	assert.Equal(t, "Invalid email or password", decodeBody(t, wrongPassword)["message"])
}

func TestLoginMissingCredentials(t *testing.T) {
	handler, _, _ := newAuthFixture(t)

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON("/api/v1/login", `{"email":"asha@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password required", decodeBody(t, rec)["message"])
}
