// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/queen-house/localstore"
)

// SessionKey is the local storage key holding the admin session marker.
const SessionKey = "admin_session"

const sessionSubject = "admin"

var (
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidSession = errors.New("invalid admin session")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Sessions checks the shared admin password and issues admin session tokens.
// A token is only honored while the browser that logged in still holds its
// marker, so Logout revokes it.
type Sessions struct {
	passwordHash []byte
	signingKey   []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewSessions hashes password once; the plain text is not kept.
func NewSessions(password, signingKey string, ttl time.Duration, now func() time.Time) (*Sessions, error) {
	if password == "" {
		return nil, errors.New("admin password required")
	}
	if signingKey == "" {
		return nil, errors.New("session signing key required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	if now == nil {
		now = time.Now
	}

	return &Sessions{
		passwordHash: hash,
		signingKey:   []byte(signingKey),
		ttl:          ttl,
		now:          now,
	}, nil
}

// CheckPassword reports whether password is the admin password
func (s *Sessions) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

// Login issues a token when password matches and records its marker in
// storage. On a wrong password nothing is written.
func (s *Sessions) Login(storage localstore.Storage, password string) (string, time.Time, error) {
	if !s.CheckPassword(password) {
		return "", time.Time{}, ErrWrongPassword
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}

	if err := storage.Set(SessionKey, claims.ID); err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Validate checks the token signature and expiry, and that storage still
// holds the token's marker.
func (s *Sessions) Validate(storage localstore.Storage, token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(sessionSubject),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidSession
	}

	marker, ok, err := storage.Get(SessionKey)
	if err != nil {
		return err
	}
	if !ok || marker != claims.ID {
		return ErrInvalidSession
	}

	return nil
}

// IsAdmin is Validate as a boolean
func (s *Sessions) IsAdmin(storage localstore.Storage, token string) bool {
	return s.Validate(storage, token) == nil
}

// Logout clears the marker, which invalidates any token issued to storage.
func (s *Sessions) Logout(storage localstore.Storage) error {
	return storage.Remove(SessionKey)
}
