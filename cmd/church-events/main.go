package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"churchEvents/internal/config"
	"churchEvents/internal/http-server/handlers/auth/login"
	"churchEvents/internal/http-server/handlers/config/bulkUpdateConfigs"
	"churchEvents/internal/http-server/handlers/config/createConfig"
	"churchEvents/internal/http-server/handlers/config/deleteConfig"
	"churchEvents/internal/http-server/handlers/config/getConfigs"
	"churchEvents/internal/http-server/handlers/config/getConfigsByCategory"
	"churchEvents/internal/http-server/handlers/config/getPublicConfigs"
	"churchEvents/internal/http-server/handlers/config/updateConfig"
	"churchEvents/internal/http-server/handlers/event/createEvent"
	"churchEvents/internal/http-server/handlers/event/deleteEvent"
	"churchEvents/internal/http-server/handlers/event/getEvent"
	"churchEvents/internal/http-server/handlers/event/getEventBySlug"
	"churchEvents/internal/http-server/handlers/event/getEventRegistrations"
	"churchEvents/internal/http-server/handlers/event/getEvents"
	"churchEvents/internal/http-server/handlers/event/updateEvent"
	"churchEvents/internal/http-server/handlers/registration/createRegistration"
	"churchEvents/internal/http-server/handlers/registration/deleteRegistration"
	"churchEvents/internal/http-server/handlers/registration/exportRegistrations"
	"churchEvents/internal/http-server/handlers/registration/getRegistration"
	"churchEvents/internal/http-server/handlers/registration/getRegistrations"
	"churchEvents/internal/http-server/handlers/registration/updateStatus"
	"churchEvents/internal/http-server/handlers/upload/createUpload"
	"churchEvents/internal/http-server/handlers/upload/deleteUpload"
	"churchEvents/internal/http-server/handlers/upload/getUploads"
	"churchEvents/internal/http-server/handlers/upload/setUploadUsed"
	"churchEvents/internal/http-server/middleware/mwauth"
	"churchEvents/internal/http-server/middleware/mwlogger"
	"churchEvents/internal/lib/logger/handlers/slogpretty"
	"churchEvents/internal/lib/logger/sl"
	"churchEvents/internal/lib/metrics"
	"churchEvents/internal/services/auth"
	"churchEvents/internal/services/event"
	"churchEvents/internal/services/registration"
	"churchEvents/internal/services/siteconfig"
	"churchEvents/internal/services/upload"
	"churchEvents/internal/storage/postgres"
	"churchEvents/internal/storage/sqlite"
	"churchEvents/internal/storage/sqlstore"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting church events", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	store, err := initStorage(cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	metrics.Register()

	authService := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash)
	eventService := event.New(log, store)
	registrationService := registration.New(log, store)
	configService := siteconfig.New(log, store)
	uploadService := upload.New(log, store, cfg.Uploads.Dir, cfg.Uploads.MaxSize)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	adminOnly := mwauth.New(log, authService, auth.RoleAdmin)

	router.Handle("/metrics", metrics.Handler())
	router.Get("/health", health(store))

	router.Post("/auth/login", login.New(log, authService))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getEvents.New(log, eventService))
		r.Get("/slug/{slug}", getEventBySlug.New(log, eventService))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/", createEvent.New(log, eventService))
			r.Get("/{id}", getEvent.New(log, eventService))
			r.Put("/{id}", updateEvent.New(log, eventService))
			r.Delete("/{id}", deleteEvent.New(log, eventService))
			r.Get("/{id}/registrations", getEventRegistrations.New(log, eventService))
		})
	})

	router.Route("/registrations", func(r chi.Router) {
		r.Post("/", createRegistration.New(log, registrationService))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", getRegistrations.New(log, registrationService))
			r.Get("/export", exportRegistrations.New(log, registrationService))
			r.Get("/{id}", getRegistration.New(log, registrationService))
			r.Put("/{id}/status", updateStatus.New(log, registrationService))
			r.Delete("/{id}", deleteRegistration.New(log, registrationService))
		})
	})

	router.Route("/uploads", func(r chi.Router) {
		fs := http.StripPrefix(upload.PublicPrefix, http.FileServer(noListing{http.Dir(cfg.Uploads.Dir)}))
		r.Handle("/files/*", fs)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Post("/", createUpload.New(log, uploadService))
			r.Get("/", getUploads.New(log, store))
			r.Delete("/{id}", deleteUpload.New(log, uploadService))
			r.Patch("/{id}/used", setUploadUsed.New(log, uploadService))
		})
	})

	router.Route("/config", func(r chi.Router) {
		r.Get("/public", getPublicConfigs.New(log, store))
		r.Get("/category/{category}", getConfigsByCategory.New(log, store))

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)

			r.Get("/", getConfigs.New(log, store))
			r.Post("/", createConfig.New(log, configService))
			r.Put("/bulk", bulkUpdateConfigs.New(log, configService))
			r.Put("/{key}", updateConfig.New(log, configService))
			r.Delete("/{key}", deleteConfig.New(log, store))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func initStorage(cfg config.Storage) (*sqlstore.Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.InitDB(ctx, &cfg.Database)
	case config.DriverSQLite:
		return sqlite.InitDB(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func health(store *sqlstore.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// noListing hides directory indexes of the upload dir.
type noListing struct {
	fs http.FileSystem
}

func (n noListing) Open(name string) (http.File, error) {
	if strings.HasSuffix(name, "/") {
		return nil, os.ErrNotExist
	}

	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
