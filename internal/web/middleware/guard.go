package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/metrics"
)

// Route guard. Both flavors share one state machine, evaluated in a fixed
// order on every request to a guarded route:
//
//  1. Session still loading → render the neutral loading page. Identity is
//     unknown, so no redirect may happen yet.
//  2. No authenticated user → redirect to /login (303, so the attempted
//     navigation is not replayed).
//  3. Admin route without the admin flag → redirect to /dashboard.
//  4. Otherwise → run the requested handler unchanged.

// RequireUser admits any authenticated identity.
func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return guard(false, next)
}

// RequireAdmin additionally demands the admin flag.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return guard(true, next)
}

func guard(adminOnly bool, next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := Session(c)

		switch {
		case sess.IsLoading:
			metrics.GuardDecisionsTotal.WithLabelValues("loading").Inc()
			return c.Render(http.StatusServiceUnavailable, "loading.html", nil)

		case !sess.Authenticated():
			metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
			return c.Redirect(http.StatusSeeOther, "/login")

		case adminOnly && !sess.IsAdmin:
			metrics.GuardDecisionsTotal.WithLabelValues("home_redirect").Inc()
			return c.Redirect(http.StatusSeeOther, "/dashboard")

		default:
			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
