package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/quillboard/quillboard-web/internal/core/domain"
	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/metrics"
	"github.com/quillboard/quillboard-web/internal/web/middleware"
)

// AuthHandler serves the login and register screens and owns the session
// lifecycle around them.
type AuthHandler struct {
	accounts ports.AccountGateway
	sessions ports.SessionStore
	codec    *middleware.CookieCodec
}

func NewAuthHandler(accounts ports.AccountGateway, sessions ports.SessionStore, codec *middleware.CookieCodec) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, codec: codec}
}

const (
	accountUser  = "user"
	accountAdmin = "admin"
)

type loginForm struct {
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required"`
	AccountType string `form:"account_type" validate:"omitempty,oneof=user admin"`
}

type registerForm struct {
	Username        string `form:"username" validate:"required,min=3"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	AccountType     string `form:"account_type" validate:"omitempty,oneof=user admin"`
}

type authPage struct {
	page
	Email       string
	Username    string
	AccountType string
}

// ShowLogin renders the login screen, or forwards to the signed-in home.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	if sess := middleware.Session(c); sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, homeFor(sess.IsAdmin))
	}
	return c.Render(http.StatusOK, "login.html", authPage{page: newPage(c)})
}

// ShowRegister renders the registration screen.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	if sess := middleware.Session(c); sess.Authenticated() {
		return c.Redirect(http.StatusSeeOther, homeFor(sess.IsAdmin))
	}
	return c.Render(http.StatusOK, "register.html", authPage{page: newPage(c)})
}

// Login handles the login form. Validation failures never reach the network.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return h.loginError(c, http.StatusBadRequest, "invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.loginError(c, http.StatusBadRequest, err.Error(), form)
	}

	isAdmin := form.AccountType == accountAdmin
	in := ports.LoginInput{Email: form.Email, Password: form.Password}

	var res *ports.AuthResult
	var err error
	if isAdmin {
		res, err = h.accounts.LoginAdmin(c.Request().Context(), in)
	} else {
		res, err = h.accounts.LoginUser(c.Request().Context(), in)
	}
	if err != nil {
		return h.loginError(c, errorStatus(err), userMessage(err), form)
	}
	if !res.Success || res.Token == "" || res.User == nil {
		return h.loginError(c, http.StatusUnauthorized, envelopeMessage(res.Message), form)
	}

	if err := h.establish(c, res.Token, res.User, isAdmin); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, homeFor(isAdmin))
}

// Register handles the registration form for both account kinds.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return h.registerError(c, http.StatusBadRequest, "invalid form submission", form)
	}
	if err := c.Validate(&form); err != nil {
		return h.registerError(c, http.StatusBadRequest, err.Error(), form)
	}

	isAdmin := form.AccountType == accountAdmin
	in := ports.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	}

	var res *ports.AuthResult
	var err error
	if isAdmin {
		res, err = h.accounts.RegisterAdmin(c.Request().Context(), in)
	} else {
		res, err = h.accounts.RegisterUser(c.Request().Context(), in)
	}
	if err != nil {
		return h.registerError(c, errorStatus(err), userMessage(err), form)
	}
	if !res.Success || res.Token == "" || res.User == nil {
		return h.registerError(c, http.StatusUnprocessableEntity, envelopeMessage(res.Message), form)
	}

	if err := h.establish(c, res.Token, res.User, isAdmin); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, homeFor(isAdmin))
}

// Logout clears the durable session and the cookie. Safe to call logged out.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid := middleware.SessionID(c); sid != "" {
		if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

// establish overwrites the durable session and hands the browser a fresh
// signed cookie. A new session ID is minted on every login.
func (h *AuthHandler) establish(c echo.Context, token string, user *domain.User, isAdmin bool) error {
	sid := uuid.NewString()
	if err := h.sessions.Login(c.Request().Context(), sid, token, user, isAdmin); err != nil {
		return err
	}
	if err := middleware.SetSessionCookie(c, h.codec, sid); err != nil {
		return err
	}

	middleware.SetSession(c, domain.Session{Token: token, User: user, IsAdmin: isAdmin}, sid)

	kind := accountUser
	if isAdmin {
		kind = accountAdmin
	}
	metrics.LoginsTotal.WithLabelValues(kind).Inc()
	return nil
}

// homeFor is where a fresh login lands: the admin console for admins, the
// author dashboard for everyone else.
func homeFor(isAdmin bool) string {
	if isAdmin {
		return "/admin"
	}
	return "/dashboard"
}

func (h *AuthHandler) loginError(c echo.Context, status int, msg string, form loginForm) error {
	p := authPage{page: newPage(c), Email: form.Email, AccountType: form.AccountType}
	p.Error = msg
	return c.Render(status, "login.html", p)
}

func (h *AuthHandler) registerError(c echo.Context, status int, msg string, form registerForm) error {
	p := authPage{
		page:        newPage(c),
		Email:       form.Email,
		Username:    form.Username,
		AccountType: form.AccountType,
	}
	p.Error = msg
	return c.Render(status, "register.html", p)
}
