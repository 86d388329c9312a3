package models

// ContentItem is a curated educational article. The catalog is seeded at
// startup and read-only through the API.
type ContentItem struct {
	Base
	Title       string   `gorm:"not null;uniqueIndex" json:"title"`
	Description string   `json:"description"`
	Body        string   `gorm:"type:text" json:"body"`
	Category    string   `gorm:"not null;index" json:"category"`
	Tags        []string `gorm:"serializer:json" json:"tags,omitempty"`
}
