package domain

import "strings"

// SocialLink is one of the company's social media presences.
type SocialLink struct {
	Network string `json:"network"`
	URL     string `json:"url"`
	Name    string `json:"name"`
}

// Company holds the static business metadata used for display, document
// headers, and message text. It is read-only at runtime.
type Company struct {
	Name       string       `json:"name"`
	Tagline    string       `json:"tagline"`
	Label      string       `json:"label"`
	LogoPDF    string       `json:"logo_pdf"`
	LogoWeb    string       `json:"logo_web"`
	Address    string       `json:"address"`
	City       string       `json:"city"`
	Country    string       `json:"country"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Website    string       `json:"website"`
	MapURL     string       `json:"map_url"`
	BrandColor string       `json:"brand_color"`
	Social     []SocialLink `json:"social"`
}

// PhoneDigits returns the contact phone with every non-digit stripped,
// as required by the wa.me deep-link format.
func (c Company) PhoneDigits() string {
	var b strings.Builder
	for _, r := range c.Phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WebsiteURL returns the company website with an https scheme, whether or
// not the configured value already carries one.
func (c Company) WebsiteURL() string {
	w := strings.TrimPrefix(strings.TrimPrefix(c.Website, "https://"), "http://")
	return "https://" + w
}
