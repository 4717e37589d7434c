package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"garinhca/internal/config"
	"garinhca/internal/handlers"
	"garinhca/internal/notify"
	"garinhca/store"
	"garinhca/store/migrations"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	blob, closeBlob, err := newBlob(cfg)
	if err != nil {
		logger.Fatal("cannot init storage", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeBlob()

	ctx := context.Background()
	tenders := store.NewTenderRepository(ctx, blob)
	apps := store.NewApplicationLedger(ctx, blob)
	users := store.NewUserStore(ctx, blob)

	h := handlers.NewHandler(tenders, apps, users, notify.NewZap(logger))

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		// тендеры
		r.Post("/tenders/new", h.CreateTenderHandler)
		r.Get("/tenders", h.GetTendersHandler)
		r.Get("/tenders/my", h.GetUserTendersHandler)
		r.Get("/tenders/{tenderId}", h.GetTenderHandler)
		r.Patch("/tenders/{tenderId}/edit", h.EditTenderHandler)
		r.Delete("/tenders/{tenderId}", h.DeleteTenderHandler)
		// отклики
		r.Post("/tenders/{tenderId}/apply", h.ApplyTenderHandler)
		r.Get("/tenders/{tenderId}/applied", h.HasAppliedHandler)
		r.Get("/tenders/{tenderId}/applications", h.GetTenderApplicationsHandler)
		r.Get("/applications/my", h.GetUserApplicationsHandler)
		// пользователи
		r.Post("/auth/login", h.LoginHandler)
		r.Post("/auth/register", h.RegisterHandler)
		r.Post("/auth/logout", h.LogoutHandler)
		r.Get("/auth/me", h.MeHandler)
		r.Patch("/auth/profile", h.UpdateProfileHandler)
		// агрегаты
		r.Get("/stats", h.StatsHandler)
		r.Get("/dashboard", h.DashboardHandler)
	})

	logger.Info("starting server", zap.String("addr", cfg.ServerAddress), zap.String("backend", cfg.StoreBackend))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// newBlob выбирает бэкенд хранилища по конфигурации
func newBlob(cfg config.Config) (store.Blob, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendFile:
		return store.NewFileBlob(cfg.DataDir), func() {}, nil

	case config.BackendRedis:
		rb := store.NewRedisBlob(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rb.Ping(ctx); err != nil {
			rb.Close()
			return nil, nil, err
		}
		return rb, func() { rb.Close() }, nil

	case config.BackendPostgres:
		if err := migrations.Run(cfg.PostgresConn, cfg.MigrationsDir); err != nil {
			return nil, nil, err
		}
		dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresBlob(dbConn), func() { dbConn.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	return logger
}

// requestLogger логирует каждый запрос
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)))
		})
	}
}
