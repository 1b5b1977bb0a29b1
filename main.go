package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/queen-house/auth"
	"github.com/danielhkuo/queen-house/cliparse"
	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/db"
	"github.com/danielhkuo/queen-house/logging"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/router"
	"github.com/danielhkuo/queen-house/seed"
	"github.com/danielhkuo/queen-house/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logFile := logging.Init(cfg.Log)
	defer logFile.Close()

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("invalid timezone", "error", err)
		os.Exit(1)
	}
	now := clock.System(loc)

	// Connect to the database
	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		slog.Error("unsupported database type", "error", err)
		os.Exit(1)
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed the store
	var data seed.Data
	if cfg.SeedFile != "" {
		data, err = seed.Load(cfg.SeedFile, now())
	} else {
		data, err = seed.Default(now())
	}
	if err != nil {
		slog.Error("seed load failed", "error", err)
		os.Exit(1)
	}

	st, err := store.New(data)
	if err != nil {
		slog.Error("invalid seed", "error", err)
		os.Exit(1)
	}
	slog.Info("Store seeded", "candidates", len(data.Candidates), "seed_file", cfg.SeedFile)

	sessions, err := auth.NewSessions(cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, now)
	if err != nil {
		slog.Error("admin sessions setup failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(st, dbConn, sessions, now)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
