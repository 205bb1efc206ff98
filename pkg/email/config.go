package email

// Config holds email provider settings loaded from the environment.
// Exactly one provider is active per process, selected by EMAIL_PROVIDER.
type Config struct {
	Provider            string `env:"EMAIL_PROVIDER" envDefault:"resend"` // resend, postmark or dev
	ResendAPIKey        string `env:"RESEND_API_KEY"`
	PostmarkServerToken string `env:"POSTMARK_SERVER_TOKEN"`
	FromEmail           string `env:"EMAIL_FROM" envDefault:"noreply@piggyparcel.com"`
	FromName            string `env:"EMAIL_FROM_NAME" envDefault:"Piggy Parcel"`
	DevDir              string `env:"EMAIL_DEV_DIR" envDefault:"tmp/emails"`
}

// Branding is the shared chrome configuration consumed by every template.
type Branding struct {
	AppName      string `env:"EMAIL_APP_NAME" envDefault:"Piggy Parcel"`
	PrimaryColor string `env:"EMAIL_PRIMARY_COLOR" envDefault:"#4CAF50"`
	LogoURL      string `env:"EMAIL_LOGO_URL"`
	BaseURL      string `env:"API_URL" envDefault:"http://localhost:3000"`
}
