package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
)

const (
	ctxKeySession   = "session"
	ctxKeySessionID = "session_id"
)

// ResolveSession loads the caller's session from durable storage on every
// request and stashes it in the echo context. A missing or unverifiable
// cookie resolves to the empty (logged out) session; a failed storage read
// resolves to a still-loading session so the guard will not redirect on
// unknown identity.
func ResolveSession(codec *CookieCodec, store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess domain.Session
			var sid string

			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				if id, err := codec.Parse(cookie.Value); err == nil {
					sid = id
					sess = store.Initialize(c.Request().Context(), id)
				}
			}

			c.Set(ctxKeySession, sess)
			c.Set(ctxKeySessionID, sid)
			return next(c)
		}
	}
}

// Session returns the session resolved for this request. The zero session is
// returned when ResolveSession did not run.
func Session(c echo.Context) domain.Session {
	if sess, ok := c.Get(ctxKeySession).(domain.Session); ok {
		return sess
	}
	return domain.Session{}
}

// SessionID returns the durable session ID for this request, or "" when the
// browser presented no valid cookie.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(ctxKeySessionID).(string)
	return sid
}

// SetSession replaces the stashed session, for handlers that just changed it.
func SetSession(c echo.Context, sess domain.Session, sid string) {
	c.Set(ctxKeySession, sess)
	c.Set(ctxKeySessionID, sid)
}
