// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/queen-house/auth"
	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/localstore"
	"github.com/danielhkuo/queen-house/middleware"
	"github.com/danielhkuo/queen-house/models"
)

type DeviceHandler struct {
	db  *sql.DB
	now clock.Func
}

func NewDeviceHandler(db *sql.DB, now clock.Func) *DeviceHandler {
	return &DeviceHandler{db: db, now: now}
}

// Register handles POST /devices/register
// Registers a device and returns its device_id (or finds existing)
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	deviceUUID := r.Header.Get(middleware.DeviceHeader)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	var req models.RegisterDeviceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isValidPlatform(req.Platform) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "platform must be one of: ios, macos, android, web")
		return
	}

	var existingID string
	err := h.db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&existingID)

	if err == nil {
		// Re-registering may switch platform, e.g. web to ios
		_, err = h.db.Exec(`
			UPDATE device SET platform = $1, last_seen_at = $2 WHERE id = $3
		`, req.Platform, h.now(), existingID)
		if err != nil {
			slog.Error("failed to update device", "error", err)
		}

		slog.Info("device registered (existing)", "device_id", existingID)
		middleware.JSONResponse(w, http.StatusOK, models.RegisterDeviceResponse{
			DeviceID: existingID,
			IsNew:    false,
		})
		return
	}

	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	deviceID, err := insertDevice(h.db, deviceUUID, req.Platform, h.now)
	if err != nil {
		slog.Error("failed to insert device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register device")
		return
	}

	slog.Info("device registered (new)", "device_id", deviceID, "platform", req.Platform)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterDeviceResponse{
		DeviceID: deviceID,
		IsNew:    true,
	})
}

// GetMe handles GET /devices/me
func (h *DeviceHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	deviceUUID := r.Header.Get(middleware.DeviceHeader)
	if deviceUUID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Device-UUID header required")
		return
	}

	var device models.Device
	err := h.db.QueryRow(`
		SELECT id, platform, created_at, last_seen_at
		FROM device
		WHERE device_uuid = $1
	`, deviceUUID).Scan(&device.ID, &device.Platform, &device.CreatedAt, &device.LastSeenAt)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Device not registered")
		return
	}
	if err != nil {
		slog.Error("failed to query device", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.now()
	if _, err := h.db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, now, device.ID); err != nil {
		slog.Error("failed to update device last_seen_at", "error", err)
	} else {
		device.LastSeenAt = now
	}

	middleware.JSONResponse(w, http.StatusOK, device)
}

// GetOrCreateDevice looks up or creates a device record from the X-Device-UUID header.
// Returns empty string if no header.
func GetOrCreateDevice(db *sql.DB, r *http.Request, now clock.Func) (string, error) {
	deviceUUID := r.Header.Get(middleware.DeviceHeader)
	if deviceUUID == "" {
		return "", nil
	}

	var deviceID string
	err := db.QueryRow(`
		SELECT id FROM device WHERE device_uuid = $1
	`, deviceUUID).Scan(&deviceID)

	if err == nil {
		_, _ = db.Exec(`UPDATE device SET last_seen_at = $1 WHERE id = $2`, now(), deviceID)
		return deviceID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	// The real platform is set via /devices/register
	return insertDevice(db, deviceUUID, models.PlatformWeb, now)
}

// deviceStorage returns the local storage scoped to the caller's device.
// ok is false when the request carries no X-Device-UUID.
func deviceStorage(db *sql.DB, r *http.Request) (localstore.Storage, bool) {
	deviceUUID := r.Header.Get(middleware.DeviceHeader)
	if deviceUUID == "" {
		return nil, false
	}
	return localstore.NewSQL(db, deviceUUID), true
}

func insertDevice(db *sql.DB, deviceUUID, platform string, now clock.Func) (string, error) {
	deviceID, err := auth.GenerateID(16)
	if err != nil {
		return "", err
	}

	t := now()
	_, err = db.Exec(`
		INSERT INTO device (id, device_uuid, platform, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, deviceID, deviceUUID, platform, t, t)
	if err != nil {
		return "", err
	}
	return deviceID, nil
}

func isValidPlatform(platform string) bool {
	switch platform {
	case models.PlatformIOS, models.PlatformMacOS, models.PlatformAndroid, models.PlatformWeb:
		return true
	}
	return false
}
