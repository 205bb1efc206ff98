package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piggyparcel/backend/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	t.Run("remote addr fallback", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.7:54321"
		assert.Equal(t, "203.0.113.7", clientip.GetIP(r))
	})

	t.Run("first valid forwarded entry wins", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
		assert.Equal(t, "198.51.100.1", clientip.GetIP(r))
	})

	t.Run("garbage forwarded entries are skipped", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "not-an-ip, 198.51.100.2")
		assert.Equal(t, "198.51.100.2", clientip.GetIP(r))
	})

	t.Run("real ip header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Real-IP", "2001:db8::1")
		assert.Equal(t, "2001:db8::1", clientip.GetIP(r))
	})

	t.Run("forwarded beats real ip", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "198.51.100.3")
		r.Header.Set("X-Real-IP", "198.51.100.4")
		assert.Equal(t, "198.51.100.3", clientip.GetIP(r))
	})
}
