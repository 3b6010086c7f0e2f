package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// AdminHandler serves the moderation console. Every mutating action is
// followed by exactly one refetch of the affected list, sequenced within the
// same request, so the rendered snapshot always reflects the completed
// mutation.
type AdminHandler struct {
	admin ports.AdminGateway
}

func NewAdminHandler(admin ports.AdminGateway) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type adminDashboardPage struct {
	page
	Stats      ports.DashboardStats
	TotalUsers int
	Recent     []domain.Article
}

type adminArticlesPage struct {
	page
	Articles []domain.Article
	Pending  bool
	Search   string
	Page     int
	Pages    int
}

type adminUsersPage struct {
	page
	Users []domain.User
	Total int
}

type analyticsPage struct {
	page
	Report *ports.AnalyticsReport
	Period string
}

// Dashboard renders the moderation summary.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	p := adminDashboardPage{page: newPage(c)}
	res, err := h.admin.Dashboard(c.Request().Context(), tok)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "admin_dashboard.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "admin_dashboard.html", p)
	}

	p.Stats = res.Stats
	p.TotalUsers = res.TotalUsers
	p.Recent = res.Recent
	return c.Render(http.StatusOK, "admin_dashboard.html", p)
}

// Articles renders every article regardless of status.
func (h *AdminHandler) Articles(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}
	opts := listOptions(c)
	return h.renderAll(c, tok, opts, http.StatusOK, "")
}

// Pending renders the moderation queue.
func (h *AdminHandler) Pending(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}
	return h.renderPending(c, tok, http.StatusOK, "")
}

// Approve publishes a pending article, then refetches the pending queue.
func (h *AdminHandler) Approve(c echo.Context) error {
	return h.pendingAction(c, func(tok, id string) (*ports.ActionResult, error) {
		return h.admin.Approve(c.Request().Context(), tok, id)
	})
}

// Reject declines a pending article with the moderator's reason, then
// refetches the pending queue.
func (h *AdminHandler) Reject(c echo.Context) error {
	reason := c.FormValue("reason")
	return h.pendingAction(c, func(tok, id string) (*ports.ActionResult, error) {
		return h.admin.Reject(c.Request().Context(), tok, id, reason)
	})
}

// Unpublish pulls a published article back to pending, then refetches the
// full article list.
func (h *AdminHandler) Unpublish(c echo.Context) error {
	return h.listAction(c, func(tok, id string) (*ports.ActionResult, error) {
		return h.admin.Unpublish(c.Request().Context(), tok, id)
	})
}

// Delete removes an article outright, then refetches the full article list.
func (h *AdminHandler) Delete(c echo.Context) error {
	return h.listAction(c, func(tok, id string) (*ports.ActionResult, error) {
		return h.admin.DeleteArticle(c.Request().Context(), tok, id)
	})
}

// Users renders the registered user list.
func (h *AdminHandler) Users(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	p := adminUsersPage{page: newPage(c)}
	res, err := h.admin.ListUsers(c.Request().Context(), tok)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "admin_users.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "admin_users.html", p)
	}

	p.Users = res.Users
	p.Total = res.Total
	return c.Render(http.StatusOK, "admin_users.html", p)
}

// Analytics renders aggregate counters for the selected period. The period
// value is passed through verbatim; the remote API owns its vocabulary.
func (h *AdminHandler) Analytics(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}
	period := c.QueryParam("period")

	p := analyticsPage{page: newPage(c), Period: period}
	res, err := h.admin.Analytics(c.Request().Context(), tok, period)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "admin_analytics.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "admin_analytics.html", p)
	}

	p.Report = res
	return c.Render(http.StatusOK, "admin_analytics.html", p)
}

// pendingAction runs one moderation action and then renders the refetched
// pending queue. The refetch is issued only after the action completed.
func (h *AdminHandler) pendingAction(c echo.Context, action func(tok, id string) (*ports.ActionResult, error)) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	status, banner := http.StatusOK, ""
	res, err := action(tok, c.Param("id"))
	switch {
	case err != nil:
		status, banner = errorStatus(err), userMessage(err)
	case !res.Success:
		banner = envelopeMessage(res.Message)
	}

	return h.renderPending(c, tok, status, banner)
}

// listAction is pendingAction for the full article list.
func (h *AdminHandler) listAction(c echo.Context, action func(tok, id string) (*ports.ActionResult, error)) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	status, banner := http.StatusOK, ""
	res, err := action(tok, c.Param("id"))
	switch {
	case err != nil:
		status, banner = errorStatus(err), userMessage(err)
	case !res.Success:
		banner = envelopeMessage(res.Message)
	}

	return h.renderAll(c, tok, ports.ListOptions{}, status, banner)
}

func (h *AdminHandler) renderPending(c echo.Context, tok string, status int, banner string) error {
	p := adminArticlesPage{page: newPage(c), Pending: true}
	p.Error = banner

	res, err := h.admin.ListPending(c.Request().Context(), tok)
	if err != nil {
		if p.Error == "" {
			p.Error = userMessage(err)
			status = errorStatus(err)
		}
		return c.Render(status, "admin_articles.html", p)
	}
	if !res.Success {
		if p.Error == "" {
			p.Error = envelopeMessage(res.Message)
		}
		return c.Render(status, "admin_articles.html", p)
	}

	p.Articles = res.Articles
	return c.Render(status, "admin_articles.html", p)
}

func (h *AdminHandler) renderAll(c echo.Context, tok string, opts ports.ListOptions, status int, banner string) error {
	p := adminArticlesPage{page: newPage(c), Search: opts.Search, Page: opts.Page}
	p.Error = banner

	res, err := h.admin.ListAll(c.Request().Context(), tok, opts)
	if err != nil {
		if p.Error == "" {
			p.Error = userMessage(err)
			status = errorStatus(err)
		}
		return c.Render(status, "admin_articles.html", p)
	}
	if !res.Success {
		if p.Error == "" {
			p.Error = envelopeMessage(res.Message)
		}
		return c.Render(status, "admin_articles.html", p)
	}

	p.Articles = res.Articles
	p.Page = res.Page
	p.Pages = res.Pages
	return c.Render(status, "admin_articles.html", p)
}
