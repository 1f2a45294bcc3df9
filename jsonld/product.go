package jsonld

import "strconv"

const (
	DefaultCurrency        = "USD"
	DefaultOperatingSystem = "Web"

	// InStock is the availability marker attached to every offer.
	InStock = "https://schema.org/InStock"
)

// Product describes a software product. It is published as a
// SoftwareApplication with a single Offer. Price validation is left to the
// caller; the value is only formatted.
type Product struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Category        string   `json:"category" yaml:"category"`
	Price           float64  `json:"price" yaml:"price"`
	Currency        string   `json:"currency,omitempty" yaml:"currency,omitempty"`
	ScreenshotURL   string   `json:"screenshot-url,omitempty" yaml:"screenshot-url,omitempty"`
	Features        []string `json:"features,omitempty" yaml:"features,omitempty"`
	OperatingSystem string   `json:"operating-system,omitempty" yaml:"operating-system,omitempty"`
}

// Build returns a SoftwareApplication document.
func (p Product) Build() Result {
	currency := p.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	system := p.OperatingSystem
	if system == "" {
		system = DefaultOperatingSystem
	}

	doc := newDocument("SoftwareApplication")
	doc["name"] = p.Name
	doc["description"] = p.Description
	doc["applicationCategory"] = p.Category
	doc["operatingSystem"] = system
	doc["offers"] = map[string]any{
		"@type":         "Offer",
		"price":         FormatPrice(p.Price),
		"priceCurrency": currency,
		"availability":  InStock,
	}

	if p.ScreenshotURL != "" {
		doc["screenshot"] = p.ScreenshotURL
	}
	if len(p.Features) > 0 {
		doc["featureList"] = cloneStrings(p.Features)
	}

	return Result{Document: doc}
}

// FormatPrice renders a price with exactly two decimals and no grouping.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}
