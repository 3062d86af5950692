// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"newsdesk/internal/cache"
	"newsdesk/internal/config"
	"newsdesk/internal/database"
	"newsdesk/internal/middleware"
	"newsdesk/internal/repository"
	"newsdesk/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// promMiddleware returns the process-wide Prometheus middleware. Collectors
// register in the default registry, so it must only be built once even when
// tests construct several servers.
func promMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New("newsdesk-api")
	})
	return prom
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	topicRepo      repository.TopicRepository
	userRepo       repository.UserRepository
	articleRepo    repository.ArticleRepository
	commentRepo    repository.CommentRepository
	topicService   *service.TopicService
	userService    *service.UserService
	articleService *service.ArticleService
	commentService *service.CommentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: promMiddleware(),
		topicRepo:      repository.NewTopicRepository(db),
		userRepo:       repository.NewUserRepository(db),
		articleRepo:    repository.NewArticleRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
	}

	server.topicService = service.NewTopicService(server.topicRepo)
	server.userService = service.NewUserService(server.userRepo)
	server.articleService = service.NewArticleService(server.articleRepo, server.topicRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.articleRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate request ID and trace ID into the request context
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	// Prometheus metrics
	app.Use(s.promMiddleware.Middleware)

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400,
	}))

	// Global rate limiting (300 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"msg": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	s.promMiddleware.RegisterAt(app, "/metrics")

	api := app.Group("/api")
	api.Get("/", s.GetEndpoints)

	topics := api.Group("/topics")
	topics.Get("/", s.GetTopics)
	topics.All("/", s.methodNotAllowed)

	articles := api.Group("/articles")
	articles.Get("/", s.GetArticles)
	// Specific /:id/comments routes BEFORE generic /:id routes
	articles.Get("/:id/comments", s.GetArticleComments)
	articles.Post("/:id/comments", middleware.RateLimit(
		s.redis, 30, time.Minute, "create_comment"), s.CreateComment)
	articles.Get("/:id", s.GetArticle)
	articles.Patch("/:id", middleware.RateLimit(
		s.redis, 60, time.Minute, "article_votes"), s.PatchArticle)
	articles.All("/:id/comments", s.methodNotAllowed)
	articles.All("/:id", s.methodNotAllowed)
	articles.All("/", s.methodNotAllowed)

	comments := api.Group("/comments")
	comments.Patch("/:id", middleware.RateLimit(
		s.redis, 60, time.Minute, "comment_votes"), s.PatchComment)
	comments.Delete("/:id", s.DeleteComment)
	comments.All("/:id", s.methodNotAllowed)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:username", s.GetUserByUsername)
	users.All("/:username", s.methodNotAllowed)
	users.All("/", s.methodNotAllowed)
}

// methodNotAllowed catches verbs the matched path does not support. The
// catch-alls are registered after the real routes, so anything landing here
// hit a known path with the wrong method.
func (s *Server) methodNotAllowed(c *fiber.Ctx) error {
	return fiber.ErrMethodNotAllowed
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. The database gates
// readiness; Redis is reported but not required, since cached reads degrade
// to the database when it is down.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// GetEndpoints describes the API surface at its root.
func (s *Server) GetEndpoints(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"endpoints": fiber.Map{
			"GET /api":                        "this description",
			"GET /api/topics":                 "all topics",
			"GET /api/articles":               "articles with comment counts; sort_by, order, topic queries",
			"GET /api/articles/:id":           "single article with comment count",
			"PATCH /api/articles/:id":         "adjust article votes by inc_votes",
			"GET /api/articles/:id/comments":  "comments on an article; sort_by, order queries",
			"POST /api/articles/:id/comments": "post a comment (username, body)",
			"PATCH /api/comments/:id":         "adjust comment votes by inc_votes",
			"DELETE /api/comments/:id":        "delete a comment",
			"GET /api/users":                  "all users",
			"GET /api/users/:username":        "single user",
		},
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:      "Newsdesk API",
		ErrorHandler: ErrorHandler,
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err.Error())
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr.Error())
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr.Error())
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
