package models

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Label   string `json:"label"`
	Route   string `json:"route"`
	Primary bool   `json:"primary,omitempty"`
}

// Nav is the shared navigation bar.
type Nav struct {
	Brand     string    `json:"brand"`
	Links     []NavLink `json:"links"`
	CartCount int       `json:"cartCount"`
}

// Quote is an attributed quotation.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// Pathway is a tile of the home page grid.
type Pathway struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Route        string `json:"route"`
	CallToAction string `json:"callToAction,omitempty"`
}

// HomePage is the response for the home page.
type HomePage struct {
	Eyebrow   string    `json:"eyebrow"`
	Headline  string    `json:"headline"`
	Manifesto string    `json:"manifesto"`
	Quote     Quote     `json:"quote"`
	Pathways  []Pathway `json:"pathways"`
	Footer    Quote     `json:"footer"`
}
