// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package localstore keeps small keyed string records per browser, the way
// a web page keeps values in its local storage. Each browser install gets
// its own scope.
package localstore

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Storage is one browser's key/value area.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// SetIfAbsent writes value only when key has no value yet and reports
	// whether it did.
	SetIfAbsent(key, value string) (bool, error)
	Remove(key string) error
}

// Memory is an in-process Storage.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) SetIfAbsent(key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return false, nil
	}
	m.values[key] = value
	return true, nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// SQL stores one scope's records in the local_storage table. Queries use
// $n placeholders and ON CONFLICT, which both SQLite and PostgreSQL accept.
type SQL struct {
	db    *sql.DB
	scope string
}

// NewSQL returns the Storage for scope.
func NewSQL(db *sql.DB, scope string) *SQL {
	return &SQL{db: db, scope: scope}
}

func (s *SQL) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`
		SELECT value FROM local_storage WHERE scope = $1 AND item_key = $2
	`, s.scope, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQL) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_storage (scope, item_key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scope, item_key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, s.scope, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQL) SetIfAbsent(key, value string) (bool, error) {
	res, err := s.db.Exec(`
		INSERT INTO local_storage (scope, item_key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (scope, item_key) DO NOTHING
	`, s.scope, key, value, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to write %s: %w", key, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to write %s: %w", key, err)
	}
	return n == 1, nil
}

func (s *SQL) Remove(key string) error {
	_, err := s.db.Exec(`
		DELETE FROM local_storage WHERE scope = $1 AND item_key = $2
	`, s.scope, key)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}
