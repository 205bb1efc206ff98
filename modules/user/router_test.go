package user_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/modules/user"
	"github.com/piggyparcel/backend/pkg/email"
)

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	t.Run("201 with envelope and exactly one welcome email", func(t *testing.T) {
		t.Parallel()

		mailer := &fakeMailer{}
		svc := user.NewService(testConfig(), newFakeRepo(), mailer, nil)
		h := user.Router(svc)

		rec := postJSON(t, h, "/register",
			`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Success bool            `json:"success"`
			Message string          `json:"message"`
			Data    json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "User registered successfully", body.Message)
		assert.NotEmpty(t, body.Data)

		require.Len(t, mailer.sent(), 1)
		assert.Equal(t, email.TemplateWelcome, mailer.sent()[0].template)
	})

	t.Run("provider outage still returns 201", func(t *testing.T) {
		t.Parallel()

		mailer := &fakeMailer{err: email.ErrSendFailed}
		svc := user.NewService(testConfig(), newFakeRepo(), mailer, nil)
		h := user.Router(svc)

		rec := postJSON(t, h, "/register",
			`{"name":"Bob","email":"bob@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Len(t, mailer.sent(), 1)
	})

	t.Run("validation errors report errorSources", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)
		h := user.Router(svc)

		rec := postJSON(t, h, "/register", `{"name":"","email":"nope","password":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Success      bool   `json:"success"`
			Message      string `json:"message"`
			ErrorSources []struct {
				Path    string `json:"path"`
				Message string `json:"message"`
			} `json:"errorSources"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "Validation Error", body.Message)
		assert.NotEmpty(t, body.ErrorSources)

		paths := make([]string, 0, len(body.ErrorSources))
		for _, src := range body.ErrorSources {
			paths = append(paths, src.Path)
		}
		assert.Contains(t, paths, "name")
		assert.Contains(t, paths, "email")
		assert.Contains(t, paths, "password")
	})
}

func TestRouter_Login(t *testing.T) {
	t.Parallel()

	t.Run("unknown account maps to 404", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)
		h := user.Router(svc)

		rec := postJSON(t, h, "/login",
			`{"email":"ghost@example.com","password":"whatever1"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "User not found", body.Message)
	})

	t.Run("happy path returns session token", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService(testConfig(), newFakeRepo(), &fakeMailer{}, nil)
		h := user.Router(svc)

		rec := postJSON(t, h, "/register",
			`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = postJSON(t, h, "/login",
			`{"email":"alice@example.com","password":"secret123"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Session struct {
					Token string `json:"token"`
				} `json:"session"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data.Session.Token)
	})
}
