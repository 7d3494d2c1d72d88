package models

// Product is an item of the apothecary catalog.
type Product struct {
	ID       int    `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Price    int    `bson:"price" json:"price"`
	Category string `bson:"category" json:"category"`
	Dosha    string `bson:"dosha" json:"dosha"`
	Tag      string `bson:"tag,omitempty" json:"tag,omitempty"`
	ImageID  string `bson:"imageId" json:"-"`
	ImageURL string `bson:"-" json:"imageUrl,omitempty"`
	Position int    `bson:"position" json:"-"`
}

// ContentPoint is a titled blurb of static page content.
type ContentPoint struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ShopPage is the response for the shop page.
type ShopPage struct {
	Filter   FilterControls `json:"filter"`
	Products []Product      `json:"products"`
	Marquee  string         `json:"marquee"`
	Featured ContentPoint   `json:"featured"`
	Why      []ContentPoint `json:"why"`
}
