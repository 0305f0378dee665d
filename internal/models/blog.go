package models

import (
	"html/template"
	"time"
)

type BlogPost struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	BodyMarkdown string    `json:"-"`
	PublishedAt  time.Time `json:"published_at"`
}

// RenderedPost carries a post together with its markdown rendered to HTML.
type RenderedPost struct {
	BlogPost
	BodyHTML template.HTML `json:"-"`
}
