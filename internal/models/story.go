package models

import "time"

// StoryImage is an image row owned by a story page.
type StoryImage struct {
	ID       int    `json:"id"`
	StoryID  int    `json:"story_id"`
	ImageURL string `json:"image_url"`
}

type Story struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	PageURL   string       `json:"page_url"`
	CreatedAt time.Time    `json:"created_at"`
	Images    []StoryImage `json:"images"`
}
