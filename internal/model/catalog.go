package model

// Service is one entry of the public services catalog.
type Service struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Plan is a pricing plan shown on the marketing site.
type Plan struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Currency string   `json:"currency,omitempty"`
	Period   string   `json:"period,omitempty"`
	Features []string `json:"features,omitempty"`
}

// ContactMessage is a marketing-site contact form submission,
// forwarded to the upstream API as-is.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}
