package model

// CafeInfo is the static description of the cafe.
type CafeInfo struct {
	Name     string      `json:"name" yaml:"name"`
	Tagline  string      `json:"tagline" yaml:"tagline"`
	Story    string      `json:"story" yaml:"story"`
	Mission  string      `json:"mission" yaml:"mission"`
	Address  string      `json:"address" yaml:"address"`
	Phone    string      `json:"phone" yaml:"phone"`
	Email    string      `json:"email" yaml:"email"`
	Hours    OpenHours   `json:"hours" yaml:"hours"`
	Location Coordinates `json:"coordinates" yaml:"coordinates"`
}

type OpenHours struct {
	Weekdays string `json:"weekdays" yaml:"weekdays"`
	Weekends string `json:"weekends" yaml:"weekends"`
}

type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

type TeamMember struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Image string `json:"image" yaml:"image"`
	Bio   string `json:"bio" yaml:"bio"`
}

type Testimonial struct {
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Rating  int    `json:"rating" yaml:"rating"`
}

// Dietary groups menu advice by diet.
type Dietary struct {
	Vegan      []string `json:"vegan" yaml:"vegan"`
	GlutenFree []string `json:"gluten_free" yaml:"gluten_free"`
	Vegetarian []string `json:"vegetarian" yaml:"vegetarian"`
}

type Recommendation struct {
	Occasion string   `json:"occasion" yaml:"occasion"`
	Picks    []string `json:"picks" yaml:"picks"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Cafe is everything about the cafe that is not the menu.
type Cafe struct {
	Info            CafeInfo         `json:"info" yaml:"info"`
	Team            []TeamMember     `json:"team" yaml:"team"`
	Testimonials    []Testimonial    `json:"testimonials" yaml:"testimonials"`
	Features        []string         `json:"features" yaml:"features"`
	Dietary         Dietary          `json:"dietary" yaml:"dietary"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
	FAQ             []FAQ            `json:"faq" yaml:"faq"`
}
