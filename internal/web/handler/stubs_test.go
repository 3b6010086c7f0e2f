package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/web/middleware"
)

// recordRenderer captures the last rendered template so tests can assert
// which view answered without parsing HTML.
type recordRenderer struct {
	name string
	data any
}

func (r *recordRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

// newTestContext builds an echo context with the validator and a recording
// renderer wired, mirroring what the router sets up.
func newTestContext(t *testing.T, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder, *recordRenderer) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	renderer := &recordRenderer{}
	e.Renderer = renderer

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, renderer
}

func authedContext(c echo.Context, isAdmin bool) {
	middleware.SetSession(c, domain.Session{
		Token:   "tok-1",
		User:    &domain.User{ID: "u1", Username: "alice", Email: "a@x.com"},
		IsAdmin: isAdmin,
	}, "sid-1")
}

// --- Account gateway stub ---

type stubAccounts struct {
	calls  []string
	result *ports.AuthResult
	err    error
}

func (s *stubAccounts) call(name string) (*ports.AuthResult, error) {
	s.calls = append(s.calls, name)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubAccounts) RegisterUser(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.call("register_user")
}

func (s *stubAccounts) RegisterAdmin(_ context.Context, _ ports.RegisterInput) (*ports.AuthResult, error) {
	return s.call("register_admin")
}

func (s *stubAccounts) LoginUser(_ context.Context, _ ports.LoginInput) (*ports.AuthResult, error) {
	return s.call("login_user")
}

func (s *stubAccounts) LoginAdmin(_ context.Context, _ ports.LoginInput) (*ports.AuthResult, error) {
	return s.call("login_admin")
}

// --- Session store stub ---

type loginCall struct {
	ID      string
	Token   string
	User    *domain.User
	IsAdmin bool
}

type stubSessions struct {
	logins  []loginCall
	logouts []string
}

func (s *stubSessions) Initialize(_ context.Context, _ string) domain.Session {
	return domain.Session{}
}

func (s *stubSessions) Login(_ context.Context, id, token string, user *domain.User, isAdmin bool) error {
	s.logins = append(s.logins, loginCall{ID: id, Token: token, User: user, IsAdmin: isAdmin})
	return nil
}

func (s *stubSessions) Logout(_ context.Context, id string) error {
	s.logouts = append(s.logouts, id)
	return nil
}

// --- Article gateway stub ---

type stubArticles struct {
	calls []string
	list  *ports.ArticleList
	err   error
}

func (s *stubArticles) ListPublished(_ context.Context, _ ports.ListOptions) (*ports.ArticleList, error) {
	s.calls = append(s.calls, "list_published")
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubArticles) Get(_ context.Context, id string) (*ports.ArticleResult, error) {
	s.calls = append(s.calls, "get:"+id)
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ArticleResult{Success: true, Article: &domain.Article{ID: id, Title: "t"}}, nil
}

func (s *stubArticles) Create(_ context.Context, _ string, _ ports.ArticleInput) (*ports.ArticleResult, error) {
	s.calls = append(s.calls, "create")
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ArticleResult{Success: true}, nil
}

func (s *stubArticles) Update(_ context.Context, _, id string, _ ports.ArticleInput) (*ports.ArticleResult, error) {
	s.calls = append(s.calls, "update:"+id)
	return &ports.ArticleResult{Success: true}, nil
}

func (s *stubArticles) Delete(_ context.Context, _, id string) (*ports.ActionResult, error) {
	s.calls = append(s.calls, "delete:"+id)
	if s.err != nil {
		return nil, s.err
	}
	return &ports.ActionResult{Success: true}, nil
}

func (s *stubArticles) ListMine(_ context.Context, _ string) (*ports.ArticleList, error) {
	s.calls = append(s.calls, "list_mine")
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubArticles) Dashboard(_ context.Context, _ string) (*ports.UserDashboard, error) {
	s.calls = append(s.calls, "dashboard")
	if s.err != nil {
		return nil, s.err
	}
	return &ports.UserDashboard{Success: true}, nil
}

// --- Admin gateway stub ---

type stubAdmin struct {
	calls     []string
	actionErr error
}

func (s *stubAdmin) Dashboard(_ context.Context, _ string) (*ports.AdminDashboard, error) {
	s.calls = append(s.calls, "dashboard")
	return &ports.AdminDashboard{Success: true}, nil
}

func (s *stubAdmin) ListPending(_ context.Context, _ string) (*ports.ArticleList, error) {
	s.calls = append(s.calls, "list_pending")
	return &ports.ArticleList{Success: true}, nil
}

func (s *stubAdmin) ListAll(_ context.Context, _ string, _ ports.ListOptions) (*ports.ArticleList, error) {
	s.calls = append(s.calls, "list_all")
	return &ports.ArticleList{Success: true}, nil
}

func (s *stubAdmin) action(name string) (*ports.ActionResult, error) {
	s.calls = append(s.calls, name)
	if s.actionErr != nil {
		return nil, s.actionErr
	}
	return &ports.ActionResult{Success: true}, nil
}

func (s *stubAdmin) Approve(_ context.Context, _, id string) (*ports.ActionResult, error) {
	return s.action("approve:" + id)
}

func (s *stubAdmin) Reject(_ context.Context, _, id, reason string) (*ports.ActionResult, error) {
	return s.action("reject:" + id + ":" + reason)
}

func (s *stubAdmin) Unpublish(_ context.Context, _, id string) (*ports.ActionResult, error) {
	return s.action("unpublish:" + id)
}

func (s *stubAdmin) DeleteArticle(_ context.Context, _, id string) (*ports.ActionResult, error) {
	return s.action("delete:" + id)
}

func (s *stubAdmin) ListUsers(_ context.Context, _ string) (*ports.UserList, error) {
	s.calls = append(s.calls, "list_users")
	return &ports.UserList{Success: true}, nil
}

func (s *stubAdmin) Analytics(_ context.Context, _, period string) (*ports.AnalyticsReport, error) {
	s.calls = append(s.calls, "analytics:"+period)
	return &ports.AnalyticsReport{Success: true, Period: period}, nil
}
