// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Allows GET, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization and X-Device-UUID.

# Admin Guard

RequireAdmin wraps a handler with a session check supplied by the caller:

	mux.HandleFunc("PUT /admin/casting",
		middleware.RequireAdmin(adminHandler.IsAdmin, adminHandler.SetCasting))

BearerToken extracts the token from "Authorization: Bearer <token>".

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.AddFAQRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
