// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Queen House API.

	mux := router.NewRouter(store, db, sessions, clock.System(loc))

# Endpoints

Public site:

	GET /site            - Full snapshot
	GET /candidates      - Roster (?q= search, ?view=past)
	GET /leaderboard     - Ranked PRESENT candidates (?q= search)
	GET /bosses, /faqs, /live, /casting, /ticker
	GET /ticker/current  - Message currently shown
	GET /countdown       - Time left to the countdown target

Daily vote (requires X-Device-UUID):

	GET  /votes/daily
	POST /votes/daily

Devices:

	POST /devices/register
	GET  /devices/me

Admin session:

	POST /admin/login
	POST /admin/logout
	GET  /admin/session

Admin content (requires Authorization: Bearer and X-Device-UUID):

	PUT|POST /admin/candidates
	PATCH    /admin/candidates/{id}
	PUT      /admin/candidates/{id}/status
	PUT      /admin/candidates/{id}/ranking
	PATCH    /admin/bosses/{id}
	PATCH    /admin/config/site
	PATCH    /admin/config/live
	POST     /admin/faqs
	PATCH    /admin/faqs/{id}
	DELETE   /admin/faqs/{id}
	PUT|POST /admin/ticker
	DELETE   /admin/ticker/{index}
	PUT      /admin/casting

Every route is wrapped with middleware.WithLogging.
*/
package router
