package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piggyparcel/backend/pkg/email"
)

func testBranding() email.Branding {
	return email.Branding{
		AppName:      "Piggy Parcel",
		PrimaryColor: "#4CAF50",
		BaseURL:      "https://piggyparcel.com",
	}
}

func TestRegistry_BuiltinTemplates(t *testing.T) {
	t.Parallel()

	r := email.NewRegistry(testBranding())

	for _, name := range []string{
		email.TemplateWelcome,
		email.TemplatePasswordReset,
		email.TemplateEmailVerification,
		email.TemplateDeliveryUpdate,
		email.TemplateOrderConfirmation,
	} {
		assert.True(t, r.Has(name), "expected built-in template %q", name)
	}
	assert.False(t, r.Has("nope"))
}

func TestRegistry_Render(t *testing.T) {
	t.Parallel()

	r := email.NewRegistry(testBranding())

	t.Run("welcome", func(t *testing.T) {
		t.Parallel()

		out, err := r.Render(email.TemplateWelcome, email.WelcomeData{UserName: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, "Welcome to Piggy Parcel!", out.Subject)
		assert.Contains(t, out.HTML, "Welcome, Alice!")
		assert.Contains(t, out.HTML, "#4CAF50")
	})

	t.Run("password reset includes link", func(t *testing.T) {
		t.Parallel()

		out, err := r.Render(email.TemplatePasswordReset, email.PasswordResetData{
			UserName:  "Bob",
			ResetLink: "https://piggyparcel.com/reset?token=abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "Reset Your Piggy Parcel Password", out.Subject)
		assert.Contains(t, out.HTML, "https://piggyparcel.com/reset?token=abc")
	})

	t.Run("delivery update", func(t *testing.T) {
		t.Parallel()

		out, err := r.Render(email.TemplateDeliveryUpdate, email.DeliveryUpdateData{
			UserName:       "Carol",
			TrackingNumber: "PP-2024-XYZ",
			Status:         "in_transit",
		})
		require.NoError(t, err)
		assert.Contains(t, out.Subject, "PP-2024-XYZ")
		assert.Contains(t, out.HTML, "in_transit")
	})

	t.Run("user content is escaped", func(t *testing.T) {
		t.Parallel()

		out, err := r.Render(email.TemplateWelcome, email.WelcomeData{UserName: "<script>"})
		require.NoError(t, err)
		assert.NotContains(t, out.HTML, "<script>")
		assert.Contains(t, out.HTML, "&lt;script&gt;")
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render("missing", nil)
		require.ErrorIs(t, err, email.ErrTemplateNotFound)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("wrong data type", func(t *testing.T) {
		t.Parallel()

		_, err := r.Render(email.TemplateWelcome, "not a struct")
		require.ErrorIs(t, err, email.ErrInvalidTemplateData)
	})
}

func TestRegistry_AddTemplate(t *testing.T) {
	t.Parallel()

	t.Run("custom template", func(t *testing.T) {
		t.Parallel()

		r := email.NewRegistry(testBranding())
		r.AddTemplate("promo", func(b email.Branding, data any) (email.Rendered, error) {
			return email.Rendered{Subject: "Promo from " + b.AppName, HTML: "<p>deal</p>"}, nil
		})

		out, err := r.Render("promo", nil)
		require.NoError(t, err)
		assert.Equal(t, "Promo from Piggy Parcel", out.Subject)
	})

	t.Run("last registration wins", func(t *testing.T) {
		t.Parallel()

		r := email.NewRegistry(testBranding())
		r.AddTemplate(email.TemplateWelcome, func(email.Branding, any) (email.Rendered, error) {
			return email.Rendered{Subject: "override", HTML: "<p>x</p>"}, nil
		})

		out, err := r.Render(email.TemplateWelcome, nil)
		require.NoError(t, err)
		assert.Equal(t, "override", out.Subject)
	})
}
