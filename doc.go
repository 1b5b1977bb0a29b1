// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Queen House API server.

Queen House is the companion site of a reality show: candidate roster,
the three house bosses, an FAQ, a news ticker, live-show status, a casting
flag, and a once-per-day favourite pick that nudges the caller's own
leaderboard view. A single admin edits everything after logging in with
the shared password.

# Starting the Server

	SESSION_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." --session-secret change-me

# Configuration

Required settings:

  - SESSION_SECRET (--session-secret): signing key for admin session tokens

Optional settings:

  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:queenhouse.db)
  - ADMIN_PASSWORD (--admin-password): shared admin password
  - SESSION_TTL: admin token lifetime (default: 168h)
  - SEED_FILE (-seed): YAML replacing the built-in seed
  - TIMEZONE: IANA zone where the daily vote rolls over
  - LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS

A .env file is read first; real environment variables and flags win.

# Architecture

  - store: the in-memory owner of all site content
  - seed: built-in initial content
  - leaderboard, clock: pure derived views (ranking, countdown, ticker)
  - dailyvote, localstore: per-browser records kept in the database
  - auth: admin password check and session tokens
  - handlers, router, middleware: HTTP surface
  - db, cliparse, logging: schema, configuration, slog setup

Content lives in memory and resets to the seed on restart; only
per-browser records and device registrations are persisted.
*/
package main
