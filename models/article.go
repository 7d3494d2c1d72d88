package models

// Article is a journal entry.
type Article struct {
	ID       int    `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Tag      string `bson:"tag" json:"tag"`
	ReadTime string `bson:"readTime" json:"readTime"`
	ImageID  string `bson:"imageId" json:"-"`
	ImageURL string `bson:"-" json:"imageUrl,omitempty"`
	Position int    `bson:"position" json:"-"`
}

// JournalPage is the response for the journal page.
type JournalPage struct {
	Filter   FilterControls `json:"filter"`
	Articles []Article      `json:"articles"`
}
