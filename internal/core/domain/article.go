package domain

import "time"

// ArticleStatus is the moderation state of an article. Transitions are owned
// by the remote QuillBoard API; this process only requests them and re-renders
// from the next fetched snapshot.
type ArticleStatus string

const (
	StatusPending   ArticleStatus = "pending"
	StatusPublished ArticleStatus = "published"
	StatusRejected  ArticleStatus = "rejected"
)

// Author is the article owner reference carried inside an article.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Article mirrors the remote API's article resource.
type Article struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"short_description"`
	Description      string        `json:"description"`
	CoverImage       string        `json:"cover_image,omitempty"`
	Categories       []string      `json:"categories"`
	Status           ArticleStatus `json:"status"`
	Author           Author        `json:"author"`
	CreatedAt        time.Time     `json:"created_at"`
	PublishedAt      *time.Time    `json:"published_at,omitempty"`
}

// Published reports whether the article is publicly visible.
func (a *Article) Published() bool {
	return a.Status == StatusPublished
}
