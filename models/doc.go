// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain entities, patch types, and request/response
bodies for the API.

# Domain Types

  - Candidate: contestant with status, optional ranking and stats
  - Boss: one of the three fixed house leaders
  - FAQItem: question/answer pair, insertion order is display order
  - LiveConfig: live show status and embed
  - SiteConfig: nav labels, vote template, countdown target, banner
  - Snapshot: everything the public site reads, copied at one instant

# Patch Types

Every editable entity has a patch type with pointer fields:

	name := "Kayliah"
	patch := models.CandidatePatch{Name: &name}

A nil field leaves the current value untouched. SiteConfigPatch merges
at the top level only, so a banner edit must carry the whole banner.

# Enumerations

Status values:

	StatusPresent    = "PRESENT"
	StatusEliminated = "ELIMINATED"
	StatusLeft       = "LEFT"

Vote templates: POSTERS, GRID, LIST. Banner types: INFO, ALERT, LIVE.
Each enum has a Valid method; assigning anything else is a caller error
reported as ErrInvalidStatus, ErrInvalidVoteTemplate or ErrInvalidBannerType.

Platforms:

	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
*/
package models
