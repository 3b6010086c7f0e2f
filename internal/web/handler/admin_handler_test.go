package handler

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
)

func adminContext(t *testing.T, method, target string, form url.Values, id string) (echo.Context, *recordRenderer) {
	t.Helper()
	c, _, renderer := newTestContext(t, method, target, form)
	authedContext(c, true)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, renderer
}

func TestAdminApprove_RefetchesPendingAfterAction(t *testing.T) {
	admin := &stubAdmin{}
	h := NewAdminHandler(admin)

	c, renderer := adminContext(t, http.MethodPost, "/admin/articles/a1/approve", url.Values{}, "a1")
	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	want := []string{"approve:a1", "list_pending"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("expected %v in order, got %v", want, admin.calls)
	}
	if renderer.name != "admin_articles.html" {
		t.Fatalf("expected the pending queue rendered, got %q", renderer.name)
	}
	if p := renderer.data.(adminArticlesPage); !p.Pending {
		t.Fatalf("expected the pending flavor of the list")
	}
}

func TestAdminReject_ForwardsReasonThenRefetches(t *testing.T) {
	admin := &stubAdmin{}
	h := NewAdminHandler(admin)

	form := url.Values{"reason": {"needs sources"}}
	c, _ := adminContext(t, http.MethodPost, "/admin/articles/a2/reject", form, "a2")
	if err := h.Reject(c); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	want := []string{"reject:a2:needs sources", "list_pending"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("expected %v, got %v", want, admin.calls)
	}
}

func TestAdminUnpublish_RefetchesFullList(t *testing.T) {
	admin := &stubAdmin{}
	h := NewAdminHandler(admin)

	c, renderer := adminContext(t, http.MethodPost, "/admin/articles/a3/unpublish", url.Values{}, "a3")
	if err := h.Unpublish(c); err != nil {
		t.Fatalf("Unpublish returned error: %v", err)
	}

	want := []string{"unpublish:a3", "list_all"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("expected %v, got %v", want, admin.calls)
	}
	if p := renderer.data.(adminArticlesPage); p.Pending {
		t.Fatalf("unpublish must land on the full list, not the queue")
	}
}

func TestAdminDelete_RefetchesFullList(t *testing.T) {
	admin := &stubAdmin{}
	h := NewAdminHandler(admin)

	c, _ := adminContext(t, http.MethodPost, "/admin/articles/a4/delete", url.Values{}, "a4")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	want := []string{"delete:a4", "list_all"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("expected %v, got %v", want, admin.calls)
	}
}

func TestAdminApprove_FailureStillRefetches(t *testing.T) {
	admin := &stubAdmin{actionErr: &domain.APIError{StatusCode: http.StatusConflict, Message: "already published"}}
	h := NewAdminHandler(admin)

	c, renderer := adminContext(t, http.MethodPost, "/admin/articles/a5/approve", url.Values{}, "a5")
	if err := h.Approve(c); err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}

	want := []string{"approve:a5", "list_pending"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("failed action must still refresh the queue, got %v", admin.calls)
	}
	p := renderer.data.(adminArticlesPage)
	if p.Error != "already published" {
		t.Fatalf("expected the action error surfaced, got %q", p.Error)
	}
}

func TestAdminAnalytics_PassesPeriodVerbatim(t *testing.T) {
	admin := &stubAdmin{}
	h := NewAdminHandler(admin)

	c, renderer := adminContext(t, http.MethodGet, "/admin/analytics?period=quarterly", nil, "")
	if err := h.Analytics(c); err != nil {
		t.Fatalf("Analytics returned error: %v", err)
	}

	want := []string{"analytics:quarterly"}
	if !reflect.DeepEqual(admin.calls, want) {
		t.Fatalf("expected %v, got %v", want, admin.calls)
	}
	if p := renderer.data.(analyticsPage); p.Period != "quarterly" {
		t.Fatalf("period not kept on the page: %q", p.Period)
	}
}
