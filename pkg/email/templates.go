package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// WelcomeData feeds the welcome template.
type WelcomeData struct {
	UserName string
}

// PasswordResetData feeds the passwordReset template.
type PasswordResetData struct {
	UserName  string
	ResetLink string
}

// VerificationData feeds the emailVerification template.
type VerificationData struct {
	UserName         string
	VerificationLink string
}

// DeliveryUpdateData feeds the deliveryUpdate template.
type DeliveryUpdateData struct {
	UserName          string
	TrackingNumber    string
	Status            string
	EstimatedDelivery string
}

// OrderItem is a single line of an order confirmation.
type OrderItem struct {
	Name     string
	Quantity int
	Price    string
}

// OrderConfirmationData feeds the orderConfirmation template.
type OrderConfirmationData struct {
	CustomerName string
	OrderNumber  string
	Items        []OrderItem
}

// header renders the shared branded banner placed above every email body.
func header(b Branding) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<div style="background-color: %s; padding: 20px; text-align: center;">`, b.PrimaryColor)
	if b.LogoURL != "" {
		fmt.Fprintf(&sb, `<img src="%s" alt="%s Logo" style="max-width: 150px;" />`, b.LogoURL, html.EscapeString(b.AppName))
	}
	fmt.Fprintf(&sb, `<h1 style="color: white; margin: 0;">%s</h1></div>`, html.EscapeString(b.AppName))
	return sb.String()
}

// footer renders the shared footer with copyright and website link.
func footer(b Branding) string {
	return fmt.Sprintf(
		`<div style="background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 12px; color: #666;">`+
			`<p>&copy; %d %s. All rights reserved.</p>`+
			`<p><a href="%s" style="color: %s; text-decoration: none;">Visit our website</a></p></div>`,
		time.Now().Year(), html.EscapeString(b.AppName), b.BaseURL, b.PrimaryColor,
	)
}

func button(b Branding, link, label string) string {
	return fmt.Sprintf(
		`<a href="%s" style="display: inline-block; padding: 10px 20px; background-color: %s; color: white; text-decoration: none; border-radius: 5px;">%s</a>`,
		link, b.PrimaryColor, html.EscapeString(label),
	)
}

func body(content string) string {
	return `<div style="padding: 20px; font-family: Arial, sans-serif; line-height: 1.6; color: #333;">` + content + `</div>`
}

func renderWelcome(b Branding, data any) (Rendered, error) {
	d, ok := data.(WelcomeData)
	if !ok {
		return Rendered{}, fmt.Errorf("%w: welcome expects WelcomeData, got %T", ErrInvalidTemplateData, data)
	}

	content := fmt.Sprintf(
		`<h2>Welcome, %s!</h2>`+
			`<p>Thank you for joining %s. We're excited to have you on board!</p>`+
			`<p>Get started by exploring our features or contacting our support team.</p>%s`,
		html.EscapeString(d.UserName), html.EscapeString(b.AppName), button(b, b.BaseURL, "Explore Now"),
	)

	return Rendered{
		Subject: fmt.Sprintf("Welcome to %s!", b.AppName),
		HTML:    header(b) + body(content) + footer(b),
	}, nil
}

func renderPasswordReset(b Branding, data any) (Rendered, error) {
	d, ok := data.(PasswordResetData)
	if !ok {
		return Rendered{}, fmt.Errorf("%w: passwordReset expects PasswordResetData, got %T", ErrInvalidTemplateData, data)
	}

	content := fmt.Sprintf(
		`<h2>Password Reset Request</h2>`+
			`<p>Hi %s,</p>`+
			`<p>We received a request to reset your password. Click the button below to reset it:</p>%s`+
			`<p>If you didn't request a password reset, please ignore this email.</p>`+
			`<p>This link will expire in 24 hours.</p>`,
		html.EscapeString(d.UserName), button(b, d.ResetLink, "Reset Password"),
	)

	return Rendered{
		Subject: fmt.Sprintf("Reset Your %s Password", b.AppName),
		HTML:    header(b) + body(content) + footer(b),
	}, nil
}

func renderEmailVerification(b Branding, data any) (Rendered, error) {
	d, ok := data.(VerificationData)
	if !ok {
		return Rendered{}, fmt.Errorf("%w: emailVerification expects VerificationData, got %T", ErrInvalidTemplateData, data)
	}

	content := fmt.Sprintf(
		`<h2>Verify Your Email</h2>`+
			`<p>Hi %s,</p>`+
			`<p>Please confirm your email address to activate your account:</p>%s`+
			`<p>If you didn't create an account, you can safely ignore this email.</p>`,
		html.EscapeString(d.UserName), button(b, d.VerificationLink, "Verify Email"),
	)

	return Rendered{
		Subject: fmt.Sprintf("Verify your %s account", b.AppName),
		HTML:    header(b) + body(content) + footer(b),
	}, nil
}

func renderDeliveryUpdate(b Branding, data any) (Rendered, error) {
	d, ok := data.(DeliveryUpdateData)
	if !ok {
		return Rendered{}, fmt.Errorf("%w: deliveryUpdate expects DeliveryUpdateData, got %T", ErrInvalidTemplateData, data)
	}

	var eta string
	if d.EstimatedDelivery != "" {
		eta = fmt.Sprintf(`<p>Estimated delivery: <strong>%s</strong></p>`, html.EscapeString(d.EstimatedDelivery))
	}

	content := fmt.Sprintf(
		`<h2>Delivery Update</h2>`+
			`<p>Hi %s,</p>`+
			`<p>Your parcel <strong>%s</strong> has a new status: <strong>%s</strong>.</p>%s`,
		html.EscapeString(d.UserName), html.EscapeString(d.TrackingNumber), html.EscapeString(d.Status), eta,
	)

	return Rendered{
		Subject: fmt.Sprintf("Delivery update for parcel %s", d.TrackingNumber),
		HTML:    header(b) + body(content) + footer(b),
	}, nil
}

func renderOrderConfirmation(b Branding, data any) (Rendered, error) {
	d, ok := data.(OrderConfirmationData)
	if !ok {
		return Rendered{}, fmt.Errorf("%w: orderConfirmation expects OrderConfirmationData, got %T", ErrInvalidTemplateData, data)
	}

	var rows strings.Builder
	for _, item := range d.Items {
		fmt.Fprintf(&rows,
			`<tr><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>`+
				`<td style="padding: 8px; border-bottom: 1px solid #eee;">%d</td>`+
				`<td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>`,
			html.EscapeString(item.Name), item.Quantity, html.EscapeString(item.Price),
		)
	}

	content := fmt.Sprintf(
		`<h2>Order Confirmed</h2>`+
			`<p>Hi %s, your order <strong>%s</strong> is confirmed.</p>`+
			`<table style="width: 100%%; border-collapse: collapse;">`+
			`<tr><th style="text-align: left; padding: 8px;">Item</th><th style="text-align: left; padding: 8px;">Qty</th><th style="text-align: left; padding: 8px;">Price</th></tr>%s</table>`,
		html.EscapeString(d.CustomerName), html.EscapeString(d.OrderNumber), rows.String(),
	)

	return Rendered{
		Subject: fmt.Sprintf("Order confirmation %s", d.OrderNumber),
		HTML:    header(b) + body(content) + footer(b),
	}, nil
}
