package models

import "time"

// BlogImage is an image row owned by a blog post.
type BlogImage struct {
	ID       int    `json:"id"`
	BlogID   int    `json:"blog_id"`
	ImageURL string `json:"image_url"`
}

type Blog struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	Images    []BlogImage `json:"images"`
}

// UpdateBlogRequest is a PATCH body; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
