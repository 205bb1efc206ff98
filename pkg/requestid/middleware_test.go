package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(requestid.FromContext(r.Context())))
	})

	t.Run("generates an id when none supplied", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		requestid.Middleware(echo).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		id := rec.Header().Get(requestid.Header)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses a valid client id", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(requestid.Header, "trace-abc_123")

		rec := httptest.NewRecorder()
		requestid.Middleware(echo).ServeHTTP(rec, r)

		assert.Equal(t, "trace-abc_123", rec.Header().Get(requestid.Header))
		assert.Equal(t, "trace-abc_123", rec.Body.String())
	})

	t.Run("replaces a malformed client id", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set(requestid.Header, "bad id\n"+strings.Repeat("x", 200))

		rec := httptest.NewRecorder()
		requestid.Middleware(echo).ServeHTTP(rec, r)

		id := rec.Header().Get(requestid.Header)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(t.Context()))

	ctx := requestid.WithContext(t.Context(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}
