// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from a .env file,
environment variables, and CLI flags.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

# Precedence

  - CLI flags (highest)
  - Environment variables
  - .env file (-env-file, default ".env"; a missing file is fine)
  - Defaults

# Settings

	Flag              Env              Default
	-p                PORT             3318
	-d                DATABASE_URL     file:queenhouse.db
	-t                DATABASE_TYPE    sqlite (or postgres)
	-admin-password   ADMIN_PASSWORD   queen123
	-session-secret   SESSION_SECRET   (required)
	                  SESSION_TTL      168h
	                  TIMEZONE         local time zone
	-seed             SEED_FILE        built-in seed

Logging: LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS,
LOG_MAX_AGE_DAYS.
*/
package cliparse
