package models

// Provider is a practitioner that can be booked for a consultation.
// Availability is informational only.
type Provider struct {
	ID           int      `bson:"id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Specialty    string   `bson:"specialty" json:"specialty"`
	Price        string   `bson:"price" json:"price"`
	Availability []string `bson:"availability" json:"availability"`
	ImageID      string   `bson:"imageId" json:"-"`
	ImageURL     string   `bson:"-" json:"imageUrl,omitempty"`
	Position     int      `bson:"position" json:"-"`
}
