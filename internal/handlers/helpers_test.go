package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"hope-backend/internal/app"
	"hope-backend/internal/auth"
	"hope-backend/internal/config"
	"hope-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app    *fiber.App
	store  *memStore
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Config{
		Port:        "0",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		UploadDir:   t.TempDir(),
		CORSOrigins: []string{"http://localhost:5173"},
		LogLevel:    "error",
	}
	st := newMemStore()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	return &testEnv{
		app:    app.New(cfg, st, tokens),
		store:  st,
		tokens: tokens,
	}
}

// seedUser creates a user with a bcrypt-hashed password and returns it
// with a valid bearer token.
func (e *testEnv) seedUser(t *testing.T, name, email, password string) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := e.store.CreateUser(context.Background(), name, email, hash)
	require.NoError(t, err)
	token, err := e.tokens.Issue(user.ID)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.do(t, req)
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var envelope map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp, envelope
}

type formFile struct {
	field, name, contentType, body string
}

// multipartRequest builds a multipart POST with plain fields and files.
func multipartRequest(t *testing.T, path string, fields map[string]string, files []formFile, token string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}
