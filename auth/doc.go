// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin login and random ID generation.

# Admin Sessions

There is one shared admin password. Sessions keeps only its bcrypt hash:

	sessions, err := auth.NewSessions(cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, time.Now)

Login checks the password, signs an HS256 JWT and stores the token's id
under SessionKey ("admin_session") in the browser's local storage:

	token, expiresAt, err := sessions.Login(storage, password)
	if errors.Is(err, auth.ErrWrongPassword) {
		// nothing was written
	}

Validate needs a good signature, an unexpired token and a matching marker,
so Logout (which removes the marker) revokes the token:

	ok := sessions.IsAdmin(storage, token)
	err := sessions.Logout(storage)

There is no lockout or rate limit on wrong passwords.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
