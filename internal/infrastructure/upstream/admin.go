package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// AdminClient exposes the moderation surface of the remote API. It shares
// the base Client; the split only exists to keep the gateway interfaces
// narrow for consumers.
type AdminClient struct {
	*Client
}

// NewAdmin wraps client with the admin operations.
func NewAdmin(client *Client) *AdminClient {
	return &AdminClient{Client: client}
}

type rejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Dashboard calls GET /admin/dashboard.
func (c *AdminClient) Dashboard(ctx context.Context, token string) (*ports.AdminDashboard, error) {
	var out ports.AdminDashboard
	if err := c.do(ctx, "admin_dashboard", http.MethodGet, "/admin/dashboard", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPending calls GET /admin/articles/pending.
func (c *AdminClient) ListPending(ctx context.Context, token string) (*ports.ArticleList, error) {
	var out ports.ArticleList
	if err := c.do(ctx, "list_pending", http.MethodGet, "/admin/articles/pending", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAll calls GET /admin/articles with search/pagination passthrough.
func (c *AdminClient) ListAll(ctx context.Context, token string, opts ports.ListOptions) (*ports.ArticleList, error) {
	var out ports.ArticleList
	if err := c.do(ctx, "list_all_articles", http.MethodGet, "/admin/articles", token, listQuery(opts), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Approve calls PUT /admin/articles/:id/approve.
func (c *AdminClient) Approve(ctx context.Context, token, id string) (*ports.ActionResult, error) {
	return c.action(ctx, "approve_article", token, id, "approve", nil)
}

// Reject calls PUT /admin/articles/:id/reject with an optional reason.
func (c *AdminClient) Reject(ctx context.Context, token, id, reason string) (*ports.ActionResult, error) {
	return c.action(ctx, "reject_article", token, id, "reject", rejectRequest{Reason: reason})
}

// Unpublish calls PUT /admin/articles/:id/unpublish.
func (c *AdminClient) Unpublish(ctx context.Context, token, id string) (*ports.ActionResult, error) {
	return c.action(ctx, "unpublish_article", token, id, "unpublish", nil)
}

// DeleteArticle calls DELETE /admin/articles/:id.
func (c *AdminClient) DeleteArticle(ctx context.Context, token, id string) (*ports.ActionResult, error) {
	var out ports.ActionResult
	if err := c.do(ctx, "admin_delete_article", http.MethodDelete, "/admin/articles/"+url.PathEscape(id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers calls GET /admin/users.
func (c *AdminClient) ListUsers(ctx context.Context, token string) (*ports.UserList, error) {
	var out ports.UserList
	if err := c.do(ctx, "list_users", http.MethodGet, "/admin/users", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analytics calls GET /admin/analytics?period=.
func (c *AdminClient) Analytics(ctx context.Context, token, period string) (*ports.AnalyticsReport, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var out ports.AnalyticsReport
	if err := c.do(ctx, "analytics", http.MethodGet, "/admin/analytics", token, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AdminClient) action(ctx context.Context, operation, token, id, verb string, body any) (*ports.ActionResult, error) {
	var out ports.ActionResult
	path := "/admin/articles/" + url.PathEscape(id) + "/" + verb
	if err := c.do(ctx, operation, http.MethodPut, path, token, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
