// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package dailyvote remembers one browser's single pick for the current
// calendar day. It is not a tally: nothing here is aggregated across
// browsers.
package dailyvote

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/queen-house/clock"
	"github.com/danielhkuo/queen-house/localstore"
)

// Key is the local storage key holding the vote record.
const Key = "dailyVote"

var (
	ErrAlreadyVoted   = errors.New("already voted today")
	ErrEmptyCandidate = errors.New("candidate id is required")
	ErrContended      = errors.New("vote record kept changing")
)

// Record is the stored pair. Both fields are always written together.
type Record struct {
	CandidateID string `json:"candidate_id"`
	Day         string `json:"day"`
}

type Helper struct {
	storage localstore.Storage
	now     clock.Func
}

func New(storage localstore.Storage, now clock.Func) *Helper {
	return &Helper{storage: storage, now: now}
}

// Today returns the current calendar-day key.
func (h *Helper) Today() string {
	return clock.DayKey(h.now())
}

// Active returns today's vote, if any. A record from another day, or one
// that cannot be decoded, is removed so a new vote can be cast.
func (h *Helper) Active() (Record, bool, error) {
	raw, ok, err := h.storage.Get(Key)
	if err != nil {
		return Record{}, false, err
	}
	if !ok {
		return Record{}, false, nil
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.CandidateID == "" || rec.Day != h.Today() {
		if err := h.storage.Remove(Key); err != nil {
			return Record{}, false, fmt.Errorf("failed to clear expired vote: %w", err)
		}
		return Record{}, false, nil
	}

	return rec, true, nil
}

// castAttempts bounds retries when a concurrent request from the same
// browser keeps winning and then clearing the record.
const castAttempts = 3

// Cast stores candidateID as today's vote. If a vote already exists for
// today it is returned together with ErrAlreadyVoted and nothing is written.
func (h *Helper) Cast(candidateID string) (Record, error) {
	if candidateID == "" {
		return Record{}, ErrEmptyCandidate
	}

	for attempt := 0; attempt < castAttempts; attempt++ {
		existing, ok, err := h.Active()
		if err != nil {
			return Record{}, err
		}
		if ok {
			return existing, ErrAlreadyVoted
		}

		rec := Record{CandidateID: candidateID, Day: h.Today()}
		b, err := json.Marshal(rec)
		if err != nil {
			return Record{}, fmt.Errorf("failed to encode vote: %w", err)
		}

		written, err := h.storage.SetIfAbsent(Key, string(b))
		if err != nil {
			return Record{}, err
		}
		if written {
			return rec, nil
		}
		// Lost a race with another request from the same browser
	}

	return Record{}, fmt.Errorf("%w after %d attempts", ErrContended, castAttempts)
}
