package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fritzoria/internal/model"
	"fritzoria/internal/repository"
	"fritzoria/pkg/jwtutil"
)

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) FindByEmail(email string) (*model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) Create(user *model.User) error {
	user.ID = uint(len(s.users) + 1)
	s.users[user.Email] = user
	return nil
}

func seedUser(t *testing.T, store *fakeUserStore, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, store.Create(&model.User{
		Name:     "Seeded User",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}))
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	h := NewAuthHandler(store)

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia123"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	user, ok := store.users["budi@example.com"]
	require.True(t, ok)
	assert.Equal(t, model.RoleUser, user.Role)

	// The stored password must be a hash that verifies, never the plaintext
	assert.NotEqual(t, "rahasia123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia123")))

	// The response never echoes the password
	assert.NotContains(t, rec.Body.String(), "rahasia123")
}

func TestRegisterMissingFields(t *testing.T) {
	h := NewAuthHandler(newFakeUserStore())

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/register", `{"email":"budi@example.com"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	seedUser(t, store, "budi@example.com", "rahasia123", model.RoleUser)
	h := NewAuthHandler(store)

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/register",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia123"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	seedUser(t, store, "admin@example.com", "admin123", model.RoleAdmin)
	h := NewAuthHandler(store)

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"admin123"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := jwtutil.ValidateToken(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	seedUser(t, store, "budi@example.com", "rahasia123", model.RoleUser)
	h := NewAuthHandler(store)

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/login",
		`{"email":"budi@example.com","password":"salah"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(newFakeUserStore())

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingCredentials(t *testing.T) {
	h := NewAuthHandler(newFakeUserStore())

	e := echo.New()
	req, rec := request(http.MethodPost, "/api/auth/login", `{"email":"budi@example.com"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
