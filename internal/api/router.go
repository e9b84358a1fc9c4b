package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tuyulonline77-star/anlocid/docs"
	"github.com/tuyulonline77-star/anlocid/internal/api/handler"
	"github.com/tuyulonline77-star/anlocid/internal/api/middleware"
	"github.com/tuyulonline77-star/anlocid/internal/core/domain"
	"github.com/tuyulonline77-star/anlocid/internal/core/ports"
	"github.com/tuyulonline77-star/anlocid/pkg/logger"
)

// Services bundles the use-case implementations the router wires to routes.
type Services struct {
	Articles ports.ArticleService
	Members  ports.MemberService
	Settings ports.SettingsService
	Auth     ports.AuthService
	Uploads  ports.UploadService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// db and rdb may be nil (memory mode); they feed the readiness probe only.
func NewRouter(svc Services, jwtSecret string, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("anlocid"))

	// --- Handlers ---
	articleHandler := handler.NewArticleHandler(svc.Articles)
	memberHandler := handler.NewMemberHandler(svc.Members)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)
	authHandler := handler.NewAuthHandler(svc.Auth)
	uploadHandler := handler.NewUploadHandler(svc.Uploads)

	authRequired := []echo.MiddlewareFunc{
		middleware.Auth(jwtSecret),
		middleware.Session(svc.Auth),
		middleware.RBAC(domain.RoleAdmin),
	}

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.GET("/articles", articleHandler.List)
	apiGroup.GET("/articles/:slug", articleHandler.GetBySlug)
	apiGroup.POST("/members", memberHandler.Create)
	apiGroup.GET("/settings", settingsHandler.Get)
	apiGroup.POST("/auth/login", authHandler.Login)

	e.GET("/uploads/:key", uploadHandler.Serve)

	// --- Admin routes ---
	apiGroup.POST("/articles", articleHandler.Create, authRequired...)
	apiGroup.PUT("/articles/:id", articleHandler.Update, authRequired...)
	apiGroup.DELETE("/articles/:id", articleHandler.Delete, authRequired...)
	apiGroup.GET("/members", memberHandler.List, authRequired...)
	apiGroup.GET("/members/:id", memberHandler.Get, authRequired...)
	apiGroup.PUT("/members/:id", memberHandler.UpdateStatus, authRequired...)
	apiGroup.PUT("/settings", settingsHandler.Save, authRequired...)
	apiGroup.POST("/upload", uploadHandler.Upload, authRequired...)
	apiGroup.POST("/auth/logout", authHandler.Logout, authRequired...)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
