package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// articleRequest is the wire shape for creating and updating articles.
type articleRequest struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	CoverImage       string   `json:"cover_image,omitempty"`
	Categories       []string `json:"categories"`
}

// ListPublished calls GET /users/articles with search/pagination passthrough.
func (c *Client) ListPublished(ctx context.Context, opts ports.ListOptions) (*ports.ArticleList, error) {
	var out ports.ArticleList
	if err := c.do(ctx, "list_published", http.MethodGet, "/users/articles", "", listQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get calls GET /users/articles/:id without credentials.
func (c *Client) Get(ctx context.Context, id string) (*ports.ArticleResult, error) {
	var out ports.ArticleResult
	if err := c.do(ctx, "get_article", http.MethodGet, "/users/articles/"+url.PathEscape(id), "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create calls POST /users/articles with the author's token.
func (c *Client) Create(ctx context.Context, token string, in ports.ArticleInput) (*ports.ArticleResult, error) {
	var out ports.ArticleResult
	if err := c.do(ctx, "create_article", http.MethodPost, "/users/articles", token, nil, toArticleRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update calls PUT /users/articles/:id with the author's token.
func (c *Client) Update(ctx context.Context, token, id string, in ports.ArticleInput) (*ports.ArticleResult, error) {
	var out ports.ArticleResult
	if err := c.do(ctx, "update_article", http.MethodPut, "/users/articles/"+url.PathEscape(id), token, nil, toArticleRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete calls DELETE /users/articles/:id with the author's token.
func (c *Client) Delete(ctx context.Context, token, id string) (*ports.ActionResult, error) {
	var out ports.ActionResult
	if err := c.do(ctx, "delete_own_article", http.MethodDelete, "/users/articles/"+url.PathEscape(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMine calls GET /users/my-articles.
func (c *Client) ListMine(ctx context.Context, token string) (*ports.ArticleList, error) {
	var out ports.ArticleList
	if err := c.do(ctx, "list_my_articles", http.MethodGet, "/users/my-articles", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dashboard calls GET /users/dashboard.
func (c *Client) Dashboard(ctx context.Context, token string) (*ports.UserDashboard, error) {
	var out ports.UserDashboard
	if err := c.do(ctx, "user_dashboard", http.MethodGet, "/users/dashboard", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func toArticleRequest(in ports.ArticleInput) articleRequest {
	return articleRequest{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		CoverImage:       in.CoverImage,
		Categories:       in.Categories,
	}
}
