package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// PlaceholderToken is the value shipped in .env.example; a deployment still
// carrying it has no real Mercado Pago credentials.
const PlaceholderToken = "TEST-your-access-token-here"

type Config struct {
	AccessToken string
	PublicKey   string
	SuccessURL  string
	FailureURL  string
	PendingURL  string
	WebhookURL  string
	FrontendURL string
	Port        string
	Env         string

	// Fixed checkout parameters; Mercado Pago handles installments and
	// expiry server-side, these only shape the preference request.
	CurrencyID           string
	MaxInstallments      int
	DefaultInstallments  int
	MinInstallmentAmount float64
	ExpirationDays       int
	StatementDescriptor  string
	AutoReturn           string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PublicKey:   os.Getenv("MERCADOPAGO_PUBLIC_KEY"),
		SuccessURL:  os.Getenv("SUCCESS_URL"),
		FailureURL:  os.Getenv("FAILURE_URL"),
		PendingURL:  os.Getenv("PENDING_URL"),
		WebhookURL:  os.Getenv("WEBHOOK_URL"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:5500"),
		Port:        getenv("PORT", "3001"),
		Env:         getenv("APP_ENV", "development"),

		CurrencyID:           "BRL",
		MaxInstallments:      12,
		DefaultInstallments:  1,
		MinInstallmentAmount: 5.0,
		ExpirationDays:       7,
		StatementDescriptor:  "CRESCER CURSOS",
		AutoReturn:           "approved",
	}
	log.Printf("[config] PORT=%s", cfg.Port)
	log.Printf("[config] APP_ENV=%s", cfg.Env)
	log.Printf("[config] FRONTEND_URL=%s", cfg.FrontendURL)
	return cfg
}

// MissingRequired lists the env vars the create-flow cannot run without,
// by their environment names so the error is actionable.
func (c Config) MissingRequired() []string {
	var missing []string
	for _, v := range []struct{ name, val string }{
		{"MERCADOPAGO_ACCESS_TOKEN", c.AccessToken},
		{"SUCCESS_URL", c.SuccessURL},
		{"FAILURE_URL", c.FailureURL},
		{"PENDING_URL", c.PendingURL},
	} {
		if v.val == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

// CredentialsConfigured reports whether the access token is present and is
// not the sample placeholder. Used by the public status endpoint.
func (c Config) CredentialsConfigured() bool {
	return c.AccessToken != "" && c.AccessToken != PlaceholderToken
}

// IsProduction gates how much error detail the API responses expose.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
