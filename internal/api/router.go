package api

import (
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/coffeeshop/backoffice/docs"
	"github.com/coffeeshop/backoffice/internal/api/authz"
	"github.com/coffeeshop/backoffice/internal/api/handler"
	"github.com/coffeeshop/backoffice/internal/api/middleware"
	"github.com/coffeeshop/backoffice/internal/core/service"
	"github.com/coffeeshop/backoffice/internal/infrastructure/config"
	mongodb "github.com/coffeeshop/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/coffeeshop/backoffice/internal/infrastructure/db/redis"
	healthhandlers "github.com/coffeeshop/backoffice/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("coffeeshop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	coffeeRepo := mongodb.NewCoffeeRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(userRepo, sessionStore, cfg.Session.TTL, cfg.Session.MaxPerUser, log)
	coffeeService := service.NewCoffeeService(coffeeRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName)
	coffeeHandler := handler.NewCoffeeHandler(coffeeService)

	// Session resolution runs on every request; the policy table decides
	// what each principal may reach before any handler is invoked.
	e.Use(middleware.Session(authService, cfg.Session.CookieName))
	e.Use(middleware.Authorize(authz.Default()))

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/user", authHandler.CurrentUser)

	// --- Coffee menu routes ---
	e.GET("/api/coffees", coffeeHandler.List)
	e.GET("/api/coffees/:id", coffeeHandler.Get)
	e.POST("/api/coffees", coffeeHandler.Create)
	e.PUT("/api/coffees/:id", coffeeHandler.Update)
	e.DELETE("/api/coffees/:id", coffeeHandler.Delete)

	// --- Static back-office pages ---
	loginPage := filepath.Join(cfg.StaticDir, "login.html")
	adminPage := filepath.Join(cfg.StaticDir, "index.html")
	menuPage := filepath.Join(cfg.StaticDir, "menu.html")

	e.File("/", loginPage)
	e.File("/login", loginPage)
	e.File("/login.html", loginPage)
	e.File("/admin", adminPage)
	e.File("/index.html", adminPage)
	e.File("/menu", menuPage)
	e.File("/menu.html", menuPage)
	e.Static("/css", filepath.Join(cfg.StaticDir, "css"))
	e.Static("/js", filepath.Join(cfg.StaticDir, "js"))
	e.Static("/images", filepath.Join(cfg.StaticDir, "images"))

	// --- Ops endpoints (public per policy) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
