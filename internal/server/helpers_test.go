package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
		&models.Post{},
		&models.Like{},
	))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		Port:      "0",
		Env:       "test",
	}

	s := &Server{
		config:      cfg,
		db:          db,
		tokens:      token.NewCodec(cfg.JWTSecret, 0),
		userRepo:    repository.NewUserRepository(db),
		profileRepo: repository.NewProfileRepository(db),
		postRepo:    repository.NewPostRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// doJSON performs a request with an optional JSON body and auth token.
func doJSON(t *testing.T, app *fiber.App, method, path, tokenString string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tokenString != "" {
		req.Header.Set("x-auth-token", tokenString)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// registerTestUser creates an account through the API and returns its token
// and the stored user.
func registerTestUser(t *testing.T, app *fiber.App, name, email string) (string, models.User) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/users", "", RegisterRequest{
		Name: name, Email: email, Password: "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body AuthResponse
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	require.NotNil(t, body.User)
	return body.Token, *body.User
}
