package handler

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

func editorValues() url.Values {
	return url.Values{
		"title":             {"Go in anger"},
		"short_description": {"notes from the field"},
		"description":       {"long body"},
		"categories":        {"go, web , , backend"},
	}
}

func TestCreate_SuccessRedirectsToMyArticles(t *testing.T) {
	articles := &stubArticles{}
	h := NewUserHandler(articles)

	c, rec, _ := newTestContext(t, http.MethodPost, "/create-article", editorValues())
	authedContext(c, false)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(articles.calls) != 1 || articles.calls[0] != "create" {
		t.Fatalf("expected one create call, got %v", articles.calls)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/my-articles" {
		t.Fatalf("expected 303 to /my-articles, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestCreate_MissingTitleNeverReachesGateway(t *testing.T) {
	articles := &stubArticles{}
	h := NewUserHandler(articles)

	form := editorValues()
	form.Del("title")
	c, rec, renderer := newTestContext(t, http.MethodPost, "/create-article", form)
	authedContext(c, false)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(articles.calls) != 0 {
		t.Fatalf("validation failure must not call the gateway, got %v", articles.calls)
	}
	if rec.Code != http.StatusBadRequest || renderer.name != "editor.html" {
		t.Fatalf("expected the editor back with 400, got %d %q", rec.Code, renderer.name)
	}
	p := renderer.data.(editorPage)
	if p.Form.ShortDescription != "notes from the field" {
		t.Fatalf("form values must survive the round trip: %+v", p.Form)
	}
}

// failingDelete answers Delete with a remote rejection but leaves the list
// calls intact.
type failingDelete struct {
	*stubArticles
}

func (s *failingDelete) Delete(_ context.Context, _, id string) (*ports.ActionResult, error) {
	s.calls = append(s.calls, "delete:"+id)
	return nil, &domain.APIError{StatusCode: http.StatusConflict, Message: "cannot delete"}
}

func TestDelete_FailureRendersRefreshedListWithBanner(t *testing.T) {
	articles := &stubArticles{list: &ports.ArticleList{Success: true}}
	failing := &failingDelete{stubArticles: articles}

	c, rec, renderer := newTestContext(t, http.MethodPost, "/my-articles/a1/delete", url.Values{})
	authedContext(c, false)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := NewUserHandler(failing).Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	want := []string{"delete:a1", "list_mine"}
	if !reflect.DeepEqual(articles.calls, want) {
		t.Fatalf("expected the list refetched after the failed delete, got %v", articles.calls)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected the upstream status, got %d", rec.Code)
	}
	if p := renderer.data.(myArticlesPage); p.Error == "" {
		t.Fatalf("expected a banner on the refreshed list")
	}
}

func TestDelete_SuccessRedirects(t *testing.T) {
	articles := &stubArticles{}
	h := NewUserHandler(articles)

	c, rec, _ := newTestContext(t, http.MethodPost, "/my-articles/a1/delete", url.Values{})
	authedContext(c, false)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/my-articles" {
		t.Fatalf("expected 303 to /my-articles, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestSplitCategories(t *testing.T) {
	got := splitCategories("go, web , , backend")
	want := []string{"go", "web", "backend"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if out := splitCategories(""); len(out) != 0 {
		t.Fatalf("expected no categories from an empty field, got %v", out)
	}
}
