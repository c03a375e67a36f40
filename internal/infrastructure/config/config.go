package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Quote   QuoteConfig
	Company CompanyConfig
}

// QuoteConfig holds the business parameters of the quote builder.
type QuoteConfig struct {
	SessionTTL        time.Duration `env:"QUOTE_SESSION_TTL,        default=2h"`
	ValidityDays      int           `env:"QUOTE_VALIDITY_DAYS,      default=7"`
	DepositPercent    int           `env:"QUOTE_DEPOSIT_PERCENT,    default=50"`
	CancellationHours int           `env:"QUOTE_CANCELLATION_HOURS, default=48"`
	// RequireCI selects the stricter contact schema in which the national id
	// is mandatory.
	RequireCI bool `env:"QUOTE_REQUIRE_CI, default=false"`
}

// CompanyConfig allows overriding the contact channels without a rebuild;
// everything else about the company is static branding.
type CompanyConfig struct {
	Phone   string `env:"COMPANY_PHONE, default=+59176259553"`
	Email   string `env:"COMPANY_EMAIL, default=alquiler.eventos.bo@gmail.com"`
	Website string `env:"COMPANY_URL,   default=solucion-eventos.vercel.app"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// CompanyMetadata returns the static business metadata with the configured
// contact overrides applied.
func (c *Config) CompanyMetadata() domain.Company {
	return domain.Company{
		Name:       "Soluciones para Eventos - Carpas y Más",
		Tagline:    "Alquileres, de alta calidad y atención personalizada.",
		Label:      "Eventos y Alquileres",
		LogoPDF:    "https://res.cloudinary.com/dpyrrgou3/image/upload/v1763594643/720023d64ef755_xukwwv.png",
		LogoWeb:    "https://res.cloudinary.com/dpyrrgou3/image/upload/v1763676559/ac6bb0f48be7f6_ltjrgr.png",
		Address:    "Ciudad de el Alto",
		City:       "La Paz",
		Country:    "Bolivia",
		Email:      c.Company.Email,
		Phone:      c.Company.Phone,
		Website:    c.Company.Website,
		MapURL:     "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d122403.41295297755!2d-68.12407749999998!3d-16.52071235!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x915edf0a04f5a40f%3A0x57dbfc76b4458ab3!2sLa%20Paz!5e0!3m2!1ses-419!2sbo!4v1763662666030!5m2!1ses-419!2sbo",
		BrandColor: "#1044A3",
		Social: []domain.SocialLink{
			{Network: "Facebook", URL: "https://www.facebook.com/774327219108632", Name: "Soluciones para eventos"},
			{Network: "TikTok", URL: "@soluciones.para.eventos", Name: "Soluciones para eventos"},
			{Network: "WhatsApp", URL: "+59176259553", Name: "Soluciones para eventos"},
		},
	}
}
