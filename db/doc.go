// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq);
DriverName picks the driver for a DATABASE_TYPE value.

# Tables

  - local_storage: per-browser key/value records, keyed by (scope, item_key)
  - device: registered browsers and apps

The local_storage scope is the browser's X-Device-UUID, so a device and its
records line up without a foreign key.
*/
package db
