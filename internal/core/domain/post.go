package domain

import "time"

// Section is one block of a blog post: an optional image, an optional
// subtitle, and body text.
type Section struct {
	Image    string `json:"image,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Text     string `json:"text"`
}

// Post is a blog entry with its ordered sections embedded.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Sections  []Section `json:"sections"`
}
