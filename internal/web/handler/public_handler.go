package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

// PublicHandler serves the unauthenticated screens: the published feed and
// the article detail view.
type PublicHandler struct {
	articles ports.ArticleGateway
}

func NewPublicHandler(articles ports.ArticleGateway) *PublicHandler {
	return &PublicHandler{articles: articles}
}

type feedPage struct {
	page
	Articles []domain.Article
	Search   string
	Page     int
	Pages    int
}

type articlePage struct {
	page
	Article *domain.Article
}

// Home renders the published article feed with search and pagination passed
// through to the remote API. A failed fetch renders the same screen with an
// error banner and an empty list; nothing is retried.
func (h *PublicHandler) Home(c echo.Context) error {
	opts := listOptions(c)
	p := feedPage{page: newPage(c), Search: opts.Search, Page: opts.Page}

	res, err := h.articles.ListPublished(c.Request().Context(), opts)
	if err != nil {
		p.Error = userMessage(err)
		return c.Render(errorStatus(err), "home.html", p)
	}
	if !res.Success {
		p.Error = envelopeMessage(res.Message)
		return c.Render(http.StatusOK, "home.html", p)
	}

	p.Articles = res.Articles
	p.Page = res.Page
	p.Pages = res.Pages
	return c.Render(http.StatusOK, "home.html", p)
}

// Article renders a single article by ID.
func (h *PublicHandler) Article(c echo.Context) error {
	res, err := h.articles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if !res.Success || res.Article == nil {
		return echo.NewHTTPError(http.StatusNotFound, envelopeMessage(res.Message))
	}

	return c.Render(http.StatusOK, "article.html", articlePage{page: newPage(c), Article: res.Article})
}
