package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/pkg/validator"
)

func TestApply_AllPass(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("name", "Ann"),
		validator.Email("email", "ann@x.com"),
		validator.MinLen("password", "secret1", 6),
	)
	assert.NoError(t, err)
}

func TestApply_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.Required("name", "  "),
		validator.Email("email", "not-an-email"),
		validator.MinLen("password", "abc", 6),
	)
	require.Error(t, err)

	verrs := validator.Extract(err)
	require.Len(t, verrs, 3)
	assert.True(t, verrs.Has("name"))
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
}

func TestEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"ann@x.com", "a.b@sub.example.org"}
	invalid := []string{"", "plain", "x@y", "Ann <ann@x.com>", "@x.com"}

	for _, v := range valid {
		assert.True(t, validator.Email("email", v).Check(), v)
	}
	for _, v := range invalid {
		assert.False(t, validator.Email("email", v).Check(), v)
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Between("rating", 3, 1, 5).Check())
	assert.True(t, validator.Between("rating", 1, 1, 5).Check())
	assert.True(t, validator.Between("rating", 5, 1, 5).Check())
	assert.False(t, validator.Between("rating", 0, 1, 5).Check())
	assert.False(t, validator.Between("rating", 6, 1, 5).Check())
}

func TestInList(t *testing.T) {
	t.Parallel()

	modes := []string{"bus", "car", "train"}
	assert.True(t, validator.InList("transportMode", "car", modes).Check())
	assert.False(t, validator.InList("transportMode", "boat", modes).Check())
}

func TestFuture(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Future("departureTime", time.Now().Add(time.Hour)).Check())
	assert.False(t, validator.Future("departureTime", time.Now().Add(-time.Hour)).Check())
}

func TestOptional(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Optional("", validator.Email("email", "")).Check())
	assert.True(t, validator.Optional("ann@x.com", validator.Email("email", "ann@x.com")).Check())
	assert.False(t, validator.Optional("nope", validator.Email("email", "nope")).Check())
}

func TestExtract_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.Extract(assert.AnError))
	assert.Nil(t, validator.Extract(nil))
}
