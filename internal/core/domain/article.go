package domain

import (
	"errors"
	"time"
)

// DefaultAuthor is assigned when an article is created without an author.
const DefaultAuthor = "Admin"

// Categories is the fixed set of article categories accepted by the site.
var Categories = []string{"News", "Reviews", "Events", "Maintenance", "Tips"}

var ErrArticleNotFound = errors.New("article not found")

// Article is a published blog entry. Slug is stable once set: the service
// derives it from the title only when a new article arrives without one.
type Article struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Slug        string    `json:"slug" bson:"slug"`
	Excerpt     string    `json:"excerpt" bson:"excerpt"`
	Content     string    `json:"content" bson:"content"`
	Image       string    `json:"image" bson:"image"`
	Category    string    `json:"category" bson:"category"`
	Author      string    `json:"author" bson:"author"`
	PublishedAt time.Time `json:"publishedAt" bson:"published_at"`
	Featured    bool      `json:"featured" bson:"featured"`
}

// IsValidCategory reports whether c is one of the fixed site categories.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
