package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// UserHandler serves the authenticated author screens: dashboard, article
// editor, and the own-articles list.
type UserHandler struct {
	articles ports.ArticleGateway
}

func NewUserHandler(articles ports.ArticleGateway) *UserHandler {
	return &UserHandler{articles: articles}
}

type articleForm struct {
	Title            string `form:"title" validate:"required"`
	ShortDescription string `form:"short_description" validate:"required"`
	Description      string `form:"description" validate:"required"`
	CoverImage       string `form:"cover_image"`
	Categories       string `form:"categories"`
}

type dashboardPage struct {
	page
	Stats  ports.DashboardStats
	Recent []domain.Article
}

type editorPage struct {
	page
	ArticleID string
	Form      articleForm
}

type myArticlesPage struct {
	page
	Articles []domain.Article
}

// Dashboard renders the author's summary counters and recent articles.
func (h *UserHandler) Dashboard(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	p := dashboardPage{page: newPage(c)}
	res, err := h.articles.Dashboard(c.Request().Context(), tok)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "dashboard.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "dashboard.html", p)
	}

	p.Stats = res.Stats
	p.Recent = res.Recent
	return c.Render(http.StatusOK, "dashboard.html", p)
}

// ShowCreate renders an empty editor.
func (h *UserHandler) ShowCreate(c echo.Context) error {
	return c.Render(http.StatusOK, "editor.html", editorPage{page: newPage(c)})
}

// Create submits a new article. It lands in the pending queue on the remote
// side; the author is sent to their article list to see it there.
func (h *UserHandler) Create(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	var form articleForm
	if err := c.Bind(&form); err != nil {
		return h.editorError(c, http.StatusBadRequest, "invalid form submission", "", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.editorError(c, http.StatusBadRequest, err.Error(), "", form)
	}

	res, err := h.articles.Create(c.Request().Context(), tok, form.input())
	if err != nil {
		return h.editorError(c, errorStatus(err), userMessage(err), "", form)
	}
	if !res.Success {
		return h.editorError(c, http.StatusUnprocessableEntity, envelopeMessage(res.Message), "", form)
	}

	return c.Redirect(http.StatusSeeOther, "/my-articles")
}

// ShowEdit renders the editor pre-populated with an existing article.
func (h *UserHandler) ShowEdit(c echo.Context) error {
	res, err := h.articles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !res.Success || res.Article == nil {
		return echo.NewHTTPError(http.StatusNotFound, envelopeMessage(res.Message))
	}

	a := res.Article
	form := articleForm{
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		Description:      a.Description,
		CoverImage:       a.CoverImage,
		Categories:       strings.Join(a.Categories, ", "),
	}
	return c.Render(http.StatusOK, "editor.html", editorPage{page: newPage(c), ArticleID: a.ID, Form: form})
}

// Edit submits changes to an own article. Ownership is enforced remotely.
func (h *UserHandler) Edit(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}
	id := c.Param("id")

	var form articleForm
	if err := c.Bind(&form); err != nil {
		return h.editorError(c, http.StatusBadRequest, "invalid form submission", id, form)
	}
	if err := c.Validate(&form); err != nil {
		return h.editorError(c, http.StatusBadRequest, err.Error(), id, form)
	}

	res, err := h.articles.Update(c.Request().Context(), tok, id, form.input())
	if err != nil {
		return h.editorError(c, errorStatus(err), userMessage(err), id, form)
	}
	if !res.Success {
		return h.editorError(c, http.StatusUnprocessableEntity, envelopeMessage(res.Message), id, form)
	}

	return c.Redirect(http.StatusSeeOther, "/my-articles")
}

// MyArticles renders every article owned by the author, whatever its status.
func (h *UserHandler) MyArticles(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	p := myArticlesPage{page: newPage(c)}
	res, err := h.articles.ListMine(c.Request().Context(), tok)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "my_articles.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "my_articles.html", p)
	}

	p.Articles = res.Articles
	return c.Render(http.StatusOK, "my_articles.html", p)
}

// Delete removes an own article, then returns to the refreshed list.
func (h *UserHandler) Delete(c echo.Context) error {
	tok, err := token(c)
	if err != nil {
		return err
	}

	if _, err := h.articles.Delete(c.Request().Context(), tok, c.Param("id")); err != nil {
		p := myArticlesPage{page: newPage(c)}
		p.Error = userMessage(err)
		if res, listErr := h.articles.ListMine(c.Request().Context(), tok); listErr == nil && res.Success {
			p.Articles = res.Articles
		}
		return c.Render(errorStatus(err), "my_articles.html", p)
	}

	return c.Redirect(http.StatusSeeOther, "/my-articles")
}

func (f articleForm) input() ports.ArticleInput {
	return ports.ArticleInput{
		Title:            f.Title,
		ShortDescription: f.ShortDescription,
		Description:      f.Description,
		CoverImage:       f.CoverImage,
		Categories:       splitCategories(f.Categories),
	}
}

// splitCategories turns the comma-separated form field into a tag set,
// dropping empties.
func splitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (h *UserHandler) editorError(c echo.Context, status int, msg, id string, form articleForm) error {
	p := editorPage{page: newPage(c), ArticleID: id, Form: form}
	p.Error = msg
	return c.Render(status, "editor.html", p)
}
