package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/pkg/response"
	"github.com/piggyparcel/backend/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestJSON_Success(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	response.JSON(rec, http.StatusCreated, "User registered successfully", map[string]string{"id": "u1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "User registered successfully", env.Message)
}

func TestError_ValidationErrors(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("name", ""),
		validator.Email("email", "nope"),
	)
	require.Error(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/consumer/user/register", nil)
	response.Error(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation Error", env.Message)
	require.Len(t, env.ErrorSources, 2)
	assert.Equal(t, "name", env.ErrorSources[0].Path)
}

func TestError_HTTPError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	response.Error(rec, req, response.NewHTTPError(http.StatusNotFound, "User not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec).Message)
}

func TestError_WrappedHTTPError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	response.Error(rec, req, errors.Join(response.ErrForbidden, errors.New("role mismatch")))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestError_Unexpected(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	response.Error(rec, req, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details must not leak into the response body.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	response.NotFoundHandler()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "API not found!", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/api/v1/nope", env.Error.Path)
}
