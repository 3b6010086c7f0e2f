package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/infrastructure/config"
	"github.com/quillboard/quillboard-web/internal/web/handler"
	"github.com/quillboard/quillboard-web/internal/web/middleware"
)

// Deps carries everything the HTTP surface needs. Gateways and the session
// store are ports so tests can swap in fakes.
type Deps struct {
	Accounts ports.AccountGateway
	Articles ports.ArticleGateway
	Admin    ports.AdminGateway
	Sessions ports.SessionStore
	Redis    *redis.Client // nil when the memory backend is in use
	Log      zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("quillboard_http"))

	codec := middleware.NewCookieCodec(cfg.CookieSecret, cfg.SessionTTL)
	e.Use(middleware.ResolveSession(codec, deps.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Accounts, deps.Sessions, codec)
	publicHandler := handler.NewPublicHandler(deps.Articles)
	userHandler := handler.NewUserHandler(deps.Articles)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	// Credential endpoints are rate limited per IP.
	credentialRL := middleware.NewRateLimiter(10.0/60.0, 5) // 10 attempts/min

	// --- Public routes ---
	e.GET("/", publicHandler.Home)
	e.GET("/article/:id", publicHandler.Article)
	e.GET("/login", authHandler.ShowLogin)
	e.POST("/login", authHandler.Login, credentialRL.Middleware())
	e.GET("/register", authHandler.ShowRegister)
	e.POST("/register", authHandler.Register, credentialRL.Middleware())
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	user := e.Group("", middleware.RequireUser)
	user.GET("/dashboard", userHandler.Dashboard)
	user.GET("/create-article", userHandler.ShowCreate)
	user.POST("/create-article", userHandler.Create)
	user.GET("/my-articles", userHandler.MyArticles)
	user.GET("/my-articles/:id/edit", userHandler.ShowEdit)
	user.POST("/my-articles/:id/edit", userHandler.Edit)
	user.POST("/my-articles/:id/delete", userHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin", middleware.RequireAdmin)
	admin.GET("", adminHandler.Dashboard)
	admin.GET("/articles", adminHandler.Articles)
	admin.GET("/articles/pending", adminHandler.Pending)
	admin.POST("/articles/:id/approve", adminHandler.Approve)
	admin.POST("/articles/:id/reject", adminHandler.Reject)
	admin.POST("/articles/:id/unpublish", adminHandler.Unpublish)
	admin.POST("/articles/:id/delete", adminHandler.Delete)
	admin.GET("/users", adminHandler.Users)
	admin.GET("/analytics", adminHandler.Analytics)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Redis, cfg.APIBaseURL)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
