package ports

import (
	"context"

	"github.com/quillboard/quillboard-web/internal/core/domain"
)

// --- Shared option / input types ---

// ListOptions carries optional query parameters for list operations. Zero
// values are omitted from the request entirely, never sent as empty strings.
type ListOptions struct {
	Search string
	Page   int
	Limit  int
}

// RegisterInput is the payload for user and admin registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput is the payload for user and admin login.
type LoginInput struct {
	Email    string
	Password string
}

// ArticleInput is the payload for creating or updating an article.
type ArticleInput struct {
	Title            string
	ShortDescription string
	Description      string
	CoverImage       string
	Categories       []string
}

// --- Response envelopes ---
//
// The remote API wraps every body in a success/message envelope. The gateway
// returns these verbatim; interpreting the Success flag is the caller's job.

type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

type ArticleList struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Articles []domain.Article `json:"articles"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	Pages    int              `json:"pages"`
}

type ArticleResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Article *domain.Article `json:"article,omitempty"`
}

type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type DashboardStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Pending   int `json:"pending"`
	Rejected  int `json:"rejected"`
}

type UserDashboard struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Stats   DashboardStats   `json:"stats"`
	Recent  []domain.Article `json:"recent"`
}

type AdminDashboard struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Stats      DashboardStats   `json:"stats"`
	TotalUsers int              `json:"total_users"`
	Recent     []domain.Article `json:"recent"`
}

type UserList struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Users   []domain.User `json:"users"`
	Total   int           `json:"total"`
}

type AnalyticsReport struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message,omitempty"`
	Period      string         `json:"period"`
	NewUsers    int            `json:"new_users"`
	NewArticles int            `json:"new_articles"`
	Published   int            `json:"published"`
	Categories  map[string]int `json:"categories,omitempty"`
}

// --- Gateways ---

// AccountGateway covers registration and login against the remote API.
type AccountGateway interface {
	RegisterUser(ctx context.Context, in RegisterInput) (*AuthResult, error)
	RegisterAdmin(ctx context.Context, in RegisterInput) (*AuthResult, error)
	LoginUser(ctx context.Context, in LoginInput) (*AuthResult, error)
	LoginAdmin(ctx context.Context, in LoginInput) (*AuthResult, error)
}

// ArticleGateway covers the public feed and the authenticated author surface.
// Privileged operations take the caller's bearer token explicitly; the
// gateway holds no session state of its own.
type ArticleGateway interface {
	ListPublished(ctx context.Context, opts ListOptions) (*ArticleList, error)
	Get(ctx context.Context, id string) (*ArticleResult, error)
	Create(ctx context.Context, token string, in ArticleInput) (*ArticleResult, error)
	Update(ctx context.Context, token, id string, in ArticleInput) (*ArticleResult, error)
	Delete(ctx context.Context, token, id string) (*ActionResult, error)
	ListMine(ctx context.Context, token string) (*ArticleList, error)
	Dashboard(ctx context.Context, token string) (*UserDashboard, error)
}

// AdminGateway covers the moderation and analytics surface.
type AdminGateway interface {
	Dashboard(ctx context.Context, token string) (*AdminDashboard, error)
	ListPending(ctx context.Context, token string) (*ArticleList, error)
	ListAll(ctx context.Context, token string, opts ListOptions) (*ArticleList, error)
	Approve(ctx context.Context, token, id string) (*ActionResult, error)
	Reject(ctx context.Context, token, id, reason string) (*ActionResult, error)
	Unpublish(ctx context.Context, token, id string) (*ActionResult, error)
	DeleteArticle(ctx context.Context, token, id string) (*ActionResult, error)
	ListUsers(ctx context.Context, token string) (*UserList, error)
	Analytics(ctx context.Context, token, period string) (*AnalyticsReport, error)
}
