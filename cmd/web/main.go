package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/myrjola/planfit/internal/envstruct"
	"github.com/myrjola/planfit/internal/errors"
	"github.com/myrjola/planfit/internal/history"
	"github.com/myrjola/planfit/internal/logging"
	"github.com/myrjola/planfit/internal/plan"
	"github.com/myrjola/planfit/internal/profile"
	"github.com/myrjola/planfit/internal/sqlite"
	"github.com/yuin/goldmark"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	markdown       goldmark.Markdown
	profileService *profile.Service
	planService    *plan.Service
	historyService *history.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"PLANFIT_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"PLANFIT_SQLITE_URL" envDefault:"./planfit.sqlite3"`
	// CORSOrigins is a comma-separated list of origins allowed to call the API from a browser.
	CORSOrigins string `env:"PLANFIT_CORS_ORIGINS" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		markdown:       goldmark.New(),
		profileService: profile.NewService(db, logger),
		planService:    plan.NewService(db, logger),
		historyService: history.NewService(db, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes(cfg.CORSOrigins)); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                           //nolint:mnd // a month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	return sessionManager
}

func main() {
	// Missing .env is fine, the defaults and the real environment apply.
	_ = godotenv.Load()

	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
