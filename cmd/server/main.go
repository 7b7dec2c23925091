package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/routes"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/config"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/db/migrations"
	postgresRepo "github.com/Gleb-Gaiduk/wreddit-server/internal/db/postgres"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/mail"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := postgresRepo.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	logger.Info("connected to database")

	// Run migrations from the embedded filesystem
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: ", err)
	}
	if err := goose.Up(db, "."); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	logger.Info("migrations completed")

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	tokenRepo := postgresRepo.NewTokenRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	voteRepo := postgresRepo.NewVoteRepository(db)

	mailer := mail.NewLogMailer(logger)
	userService := users.NewService(userRepo, tokenRepo, mailer, cfg.BaseURL, logger)
	postService := posts.NewService(postRepo, logger)
	voteService := votes.NewService(voteRepo, logger)

	sessionAuth := middleware.NewSessionAuth(cfg.SessionSecret, cfg.CookieSecure)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(collector.Middleware)

	// Rate limiting: 100 requests per minute per IP by default
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	r.Use(rateLimiter.Middleware)

	r.Use(sessionAuth.WithUser)

	routes.RegisterUserRoutes(r, userService, sessionAuth)
	routes.RegisterPostRoutes(r, postService, voteService, sessionAuth, collector)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", metrics.Handler(registry))

	logger.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
