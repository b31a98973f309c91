package models

// Topic is immutable reference data; the API only ever reads it.
type Topic struct {
	Slug        string `gorm:"primaryKey;size:64" json:"slug"`
	Description string `gorm:"size:255" json:"description"`
}
