package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/web/middleware"
)

// page carries the fields every template needs. Handlers embed it in their
// per-view models.
type page struct {
	Session domain.Session
	Error   string
}

func newPage(c echo.Context) page {
	return page{Session: middleware.Session(c)}
}

// token returns the bearer token of the current session. The guard runs
// before every handler that calls this, so an empty token means a wiring
// bug, not a user mistake.
func token(c echo.Context) (string, error) {
	sess := middleware.Session(c)
	if !sess.Authenticated() {
		return "", domain.ErrNotAuthenticated
	}
	return sess.Token, nil
}

// listOptions reads search/page/limit from the query string. Absent or
// malformed values stay zero and are omitted from the upstream request.
func listOptions(c echo.Context) ports.ListOptions {
	opts := ports.ListOptions{Search: c.QueryParam("search")}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		opts.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil && n > 0 {
		opts.Limit = n
	}
	return opts
}

// errorStatus picks the response status when a view is re-rendered with an
// error banner. Remote API failures keep the upstream status; transport
// failures read as a bad gateway.
func errorStatus(err error) int {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// userMessage is what the banner shows for a failed operation: the
// server-provided message when there is one, a generic one otherwise.
func userMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "could not reach the server, please try again"
}

// envelopeMessage normalizes a domain-level failure message from a response
// body whose Success flag is false.
func envelopeMessage(msg string) string {
	if msg == "" {
		return domain.FallbackErrorMessage
	}
	return msg
}
