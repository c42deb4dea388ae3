package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusHub/internal/config"
	"campusHub/internal/http-server/handlers/blog/createPost"
	"campusHub/internal/http-server/handlers/blog/deletePost"
	"campusHub/internal/http-server/handlers/blog/getBlog"
	"campusHub/internal/http-server/handlers/blog/listAuthors"
	"campusHub/internal/http-server/handlers/blog/listPosts"
	"campusHub/internal/http-server/handlers/bookmark/listBookmarks"
	"campusHub/internal/http-server/handlers/chat/getMessages"
	"campusHub/internal/http-server/handlers/chat/listContacts"
	"campusHub/internal/http-server/handlers/chat/sendMessage"
	"campusHub/internal/http-server/handlers/directory/listAnnouncements"
	"campusHub/internal/http-server/handlers/directory/listClubs"
	"campusHub/internal/http-server/handlers/directory/listResources"
	"campusHub/internal/http-server/handlers/event/createEvent"
	"campusHub/internal/http-server/handlers/event/getAllEvents"
	"campusHub/internal/http-server/handlers/event/getAttendees"
	"campusHub/internal/http-server/handlers/event/getEventInfo"
	"campusHub/internal/http-server/handlers/event/setAttendance"
	"campusHub/internal/http-server/handlers/event/streamEvent"
	"campusHub/internal/http-server/handlers/event/toggleAttendance"
	"campusHub/internal/http-server/handlers/event/toggleBookmark"
	"campusHub/internal/http-server/handlers/issue/submitIssue"
	"campusHub/internal/http-server/handlers/profile/ensureProfile"
	"campusHub/internal/http-server/handlers/profile/getProfile"
	"campusHub/internal/http-server/handlers/profile/getUser"
	"campusHub/internal/http-server/handlers/profile/updateProfile"
	"campusHub/internal/http-server/middleware/auth"
	"campusHub/internal/http-server/middleware/mwlogger"
	"campusHub/internal/lib/logger/handlers/slogpretty"
	"campusHub/internal/lib/logger/handlers/slogrollbar"
	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/lib/token"
	"campusHub/internal/services/assistant"
	"campusHub/internal/services/assistant/genclient"
	"campusHub/internal/services/attendance"
	"campusHub/internal/services/blog"
	"campusHub/internal/services/bookmark"
	"campusHub/internal/services/catalog"
	"campusHub/internal/services/chat"
	"campusHub/internal/services/directory"
	"campusHub/internal/services/issues"
	"campusHub/internal/services/mailer"
	"campusHub/internal/services/profile"
	"campusHub/internal/storage"
	"campusHub/internal/storage/memory"
	"campusHub/internal/storage/postgres"
	"campusHub/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env, cfg.Rollbar)
	defer slogrollbar.Flush()

	log.Info("starting campushub", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("debug messages are enabled")

	ctx := context.Background()

	store, err := setupStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	events := catalog.New(log, store)
	if cfg.Catalog.SeedOnStart {
		seeded, err := events.SeedIfEmpty(ctx)
		if err != nil {
			log.Error("failed to seed catalog", sl.Err(err))
		} else if seeded {
			log.Info("catalog seeded with sample events")
		}
	}

	attendees := attendance.New(log, store, events, cfg.Catalog.EnforceCapacity)
	profiles := profile.New(log, store)
	posts := blog.New(log, store, profiles)
	chats := chat.New(log, store, setupAssistant(log, cfg.Assistant))
	reports := issues.New(log, store, setupMailer(log, cfg.Mail), cfg.Mail.IssueRecipients)
	bookmarks := bookmark.New(log, store, events)
	dir := directory.New()

	tokens := token.NewManager(cfg.Auth.TokenSecret, cfg.Auth.Issuer)
	signedIn := auth.Required(cfg.Auth.LoginPath)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(auth.WithLoginPath(cfg.Auth.LoginPath))
	router.Use(auth.New(log, tokens))

	router.Get("/events", getAllEvents.New(log, events))
	router.Get("/events/{id}", getEventInfo.New(log, events, attendees))
	router.Get("/events/{id}/attendees", getAttendees.New(log, attendees))
	router.Get("/events/{id}/stream", streamEvent.New(log, attendees))

	router.Get("/blogs", listAuthors.New(log, profiles))
	router.Get("/blogs/{username}", getBlog.New(log, posts))
	router.Get("/users/{id}", getUser.New(log, profiles))

	router.Get("/chat/contacts", listContacts.New(log, chats))

	router.Get("/clubs", listClubs.New(log, dir))
	router.Get("/resources", listResources.New(log, dir))
	router.Get("/announcements", listAnnouncements.New(log, dir))

	router.Post("/issues", submitIssue.New(log, reports))

	router.Group(func(r chi.Router) {
		r.Use(signedIn)

		r.Post("/session", ensureProfile.New(log, profiles))
		r.Get("/profile", getProfile.New(log, profiles))
		r.Patch("/profile", updateProfile.New(log, profiles))

		r.Post("/events", createEvent.New(log, events))
		r.Post("/events/{id}/attendance", toggleAttendance.New(log, attendees))
		r.Put("/events/{id}/attendance", setAttendance.New(log, attendees))
		r.Post("/events/{id}/bookmark", toggleBookmark.New(log, bookmarks))
		r.Get("/bookmarks", listBookmarks.New(log, bookmarks))

		r.Get("/blog/posts", listPosts.New(log, posts))
		r.Post("/blog/posts", createPost.New(log, posts))
		r.Delete("/blog/posts/{postId}", deletePost.New(log, posts))

		r.Get("/chat/{contactId}/messages", getMessages.New(log, chats))
		r.Post("/chat/{contactId}/messages", sendMessage.New(log, chats))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := newServer(cfg.HTTPServer, router)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err := store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupStorage(ctx context.Context, cfg config.Storage, log *slog.Logger) (storage.Store, error) {
	switch cfg.Driver {
	case "memory", "":
		return memory.New(), nil
	case "postgres":
		return postgres.InitDB(ctx, &cfg.Database, log)
	case "sqlite":
		return sqlite.InitDB(ctx, cfg.SQLitePath, log)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func setupAssistant(log *slog.Logger, cfg config.Assistant) *assistant.Responder {
	var gen assistant.Generator = assistant.Offline{}
	if cfg.Endpoint != "" {
		gen = genclient.New(cfg.Endpoint, cfg.APIKey, cfg.Model, &http.Client{})
	} else {
		log.Warn("assistant endpoint is not configured, replies will use the fallback message")
	}

	return assistant.NewResponder(log, gen, assistant.Options{
		Persona:        cfg.Persona,
		MaxAttempts:    cfg.MaxAttempts,
		BackoffStep:    cfg.BackoffStep,
		RequestTimeout: cfg.RequestTimeout,
	})
}

func setupMailer(log *slog.Logger, cfg config.Mail) mailer.Mailer {
	if cfg.SendgridAPIKey == "" {
		log.Warn("sendgrid key is not configured, issue notifications will only be logged")
		return mailer.NewLog(log)
	}

	return mailer.NewSendGrid(cfg.SendgridAPIKey, cfg.FromName, cfg.FromAddress)
}

func setupLogger(env string, rb config.Rollbar) *slog.Logger {
	var h slog.Handler

	switch env {
	case envDev:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	case envProd:
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		h = setupPrettyHandler()
	}

	if rb.Token != "" {
		h = slogrollbar.New(h, slogrollbar.Options{
			Token:       rb.Token,
			Environment: env,
			CodeVersion: rb.CodeVersion,
		})
	}

	return slog.New(h)
}

func setupPrettyHandler() slog.Handler {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return opts.NewPrettyHandler(os.Stdout)
}
