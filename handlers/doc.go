// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Queen House API.

# Handler Types

  - SiteHandler: public read-only views (snapshot, roster, leaderboard, countdown, ticker)
  - VotingHandler: the per-device daily vote
  - AdminHandler: login/logout and every content mutation
  - DeviceHandler: device registration

	siteHandler := handlers.NewSiteHandler(store, db, now)

# Browser Scope

X-Device-UUID names the caller's browser install. Its local storage
(localstore.NewSQL(db, uuid)) holds the daily vote record and the admin
session marker, so two browsers never see each other's vote or session.

# Admin Session

POST /admin/login returns a token that is only honored together with the
X-Device-UUID it was issued to. IsAdmin checks both and is meant for
middleware.RequireAdmin. Logout clears the marker, revoking the token.

# Update Semantics

Updates naming an unknown id change nothing and still return 200 with the
current collection. Invalid enum values return 400; a status change out
of ELIMINATED or LEFT returns 409.
*/
package handlers
