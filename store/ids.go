// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Id prefixes for entities created at runtime.
const (
	PrefixFAQ       = "faq-"
	PrefixCandidate = "p-"
)

// IDSource hands out identifiers for new entities.
type IDSource interface {
	NewID(prefix string) string
}

// UUIDs generates prefix + random UUID.
type UUIDs struct{}

func (UUIDs) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// SequenceIDs generates prefix + a counter starting at Start. Safe for
// concurrent use.
type SequenceIDs struct {
	Start int64
	n     atomic.Int64
}

func (s *SequenceIDs) NewID(prefix string) string {
	next := s.Start + s.n.Add(1) - 1
	return prefix + strconv.FormatInt(next, 10)
}
