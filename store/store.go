// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"sync"

	"github.com/danielhkuo/queen-house/models"
	"github.com/danielhkuo/queen-house/seed"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateID       = errors.New("duplicate id")
	ErrEmptyID           = errors.New("id is required")
)

// Intn is the random source used to hydrate missing candidate stats.
type Intn interface {
	IntN(n int) int
}

// Store owns every piece of mutable site state. All methods are safe for
// concurrent use; writes are last-write-wins.
type Store struct {
	mu sync.RWMutex

	candidates  []models.Candidate
	bosses      []models.Boss
	faqs        []models.FAQItem
	ticker      []string
	site        models.SiteConfig
	live        models.LiveConfig
	castingOpen bool

	ids IDSource
	rng Intn
}

type Option func(*Store)

// WithIDs replaces the UUID id source.
func WithIDs(ids IDSource) Option {
	return func(s *Store) { s.ids = ids }
}

// WithRand replaces the random source used for stats hydration.
func WithRand(rng Intn) Option {
	return func(s *Store) { s.rng = rng }
}

// New builds a store from seed data. Candidates without stats get random
// stats here and only here; FAQ entries are renumbered faq-0, faq-1, ...
func New(data seed.Data, opts ...Option) (*Store, error) {
	s := &Store{
		ids: UUIDs{},
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := validateCandidates(data.Candidates); err != nil {
		return nil, fmt.Errorf("seed candidates: %w", err)
	}
	if err := validateBosses(data.Bosses); err != nil {
		return nil, fmt.Errorf("seed bosses: %w", err)
	}
	if err := validateSite(data.Site); err != nil {
		return nil, fmt.Errorf("seed site config: %w", err)
	}

	s.candidates = make([]models.Candidate, len(data.Candidates))
	for i, c := range data.Candidates {
		s.candidates[i] = HydrateStats(c.Clone(), s.rng)
	}

	s.bosses = slices.Clone(data.Bosses)

	s.faqs = make([]models.FAQItem, len(data.FAQs))
	for i, f := range data.FAQs {
		f.ID = PrefixFAQ + strconv.Itoa(i)
		s.faqs[i] = f
	}

	s.ticker = slices.Clone(data.Ticker)
	s.site = data.Site
	s.live = data.Live
	s.castingOpen = data.CastingOpen

	return s, nil
}

// HydrateStats fills in random stats when c has none. Existing stats are
// returned untouched.
func HydrateStats(c models.Candidate, rng Intn) models.Candidate {
	if c.Stats != nil {
		return c
	}
	c.Stats = &models.Stats{
		Drama:      rng.IntN(40) + 60,
		Strategy:   rng.IntN(40) + 50,
		Popularity: rng.IntN(40) + 60,
	}
	return c
}

// Snapshot copies everything the site reads.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Candidates:  cloneCandidates(s.candidates),
		Bosses:      slices.Clone(s.bosses),
		FAQs:        slices.Clone(s.faqs),
		Ticker:      slices.Clone(s.ticker),
		Site:        s.site,
		Live:        s.live,
		CastingOpen: s.castingOpen,
	}
}

// Candidates

func (s *Store) Candidates() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCandidates(s.candidates)
}

func (s *Store) Candidate(id string) (models.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.candidateIndex(id)
	if i < 0 {
		return models.Candidate{}, false
	}
	return s.candidates[i].Clone(), true
}

// ReplaceCandidates swaps in a whole new collection. The list must have
// unique ids and valid statuses, and a candidate already in the store may
// only change status the way UpdateCandidateStatus allows. Stats are not
// hydrated.
func (s *Store) ReplaceCandidates(list []models.Candidate) error {
	if err := validateCandidates(list); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range list {
		if i := s.candidateIndex(c.ID); i >= 0 {
			if err := checkTransition(s.candidates[i].Status, c.Status); err != nil {
				return fmt.Errorf("%s: %w", c.ID, err)
			}
		}
	}

	s.candidates = cloneCandidates(list)
	return nil
}

// AddCandidate appends a new candidate under a fresh id and returns it.
// Status defaults to PRESENT, ranking to 99 and stats to 50/50/50.
func (s *Store) AddCandidate(c models.Candidate) (models.Candidate, error) {
	if c.Status == "" {
		c.Status = models.StatusPresent
	}
	if !c.Status.Valid() {
		return models.Candidate{}, models.ErrInvalidStatus
	}
	if c.Ranking == nil {
		r := models.DefaultRanking
		c.Ranking = &r
	}
	if c.Stats == nil {
		c.Stats = &models.Stats{Drama: 50, Strategy: 50, Popularity: 50}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.freshID(PrefixCandidate, func(id string) bool { return s.candidateIndex(id) >= 0 })
	c = c.Clone()
	s.candidates = append(s.candidates, c)
	return c.Clone(), nil
}

// UpdateCandidate merges patch into the candidate with the given id. Unknown
// ids are a no-op. A status change must follow the same rules as
// UpdateCandidateStatus.
func (s *Store) UpdateCandidate(id string, patch models.CandidatePatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.candidateIndex(id)
	if i < 0 {
		return nil
	}
	if patch.Status != nil {
		if err := checkTransition(s.candidates[i].Status, *patch.Status); err != nil {
			return err
		}
	}

	s.candidates[i] = applyPatch(s.candidates[i], patch)
	return nil
}

// UpdateCandidateStatus moves a candidate to status. Only PRESENT candidates
// can move, and only to ELIMINATED or LEFT; setting the current status again
// is allowed and changes nothing.
func (s *Store) UpdateCandidateStatus(id string, status models.Status) error {
	return s.UpdateCandidate(id, models.CandidatePatch{Status: &status})
}

func (s *Store) UpdateCandidateRanking(id string, rank int) error {
	return s.UpdateCandidate(id, models.CandidatePatch{Ranking: &rank})
}

func checkTransition(from, to models.Status) error {
	if from == to {
		return nil
	}
	if from == models.StatusPresent && (to == models.StatusEliminated || to == models.StatusLeft) {
		return nil
	}
	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, to)
}

// Bosses

func (s *Store) Bosses() []models.Boss {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bosses)
}

func (s *Store) UpdateBoss(id string, patch models.BossPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bosses {
		if s.bosses[i].ID == id {
			s.bosses[i] = applyPatch(s.bosses[i], patch)
			return
		}
	}
}

// Configuration

func (s *Store) SiteConfig() models.SiteConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

func (s *Store) UpdateSiteConfig(patch models.SiteConfigPatch) error {
	if patch.VoteTemplate != nil && !patch.VoteTemplate.Valid() {
		return models.ErrInvalidVoteTemplate
	}
	if patch.Banner != nil && !patch.Banner.Type.Valid() {
		return models.ErrInvalidBannerType
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.site = applyPatch(s.site, patch)
	return nil
}

func (s *Store) LiveConfig() models.LiveConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

func (s *Store) UpdateLiveConfig(patch models.LiveConfigPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = applyPatch(s.live, patch)
}

// FAQ

func (s *Store) FAQs() []models.FAQItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.faqs)
}

// AddFAQ appends a new entry and returns it.
func (s *Store) AddFAQ(question, answer string) models.FAQItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.FAQItem{
		ID:       s.freshID(PrefixFAQ, func(id string) bool { return s.faqIndex(id) >= 0 }),
		Question: question,
		Answer:   answer,
	}
	s.faqs = append(s.faqs, item)
	return item
}

func (s *Store) RemoveFAQ(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.faqIndex(id); i >= 0 {
		s.faqs = slices.Delete(slices.Clone(s.faqs), i, i+1)
	}
}

func (s *Store) UpdateFAQ(id string, patch models.FAQPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.faqIndex(id); i >= 0 {
		s.faqs[i] = applyPatch(s.faqs[i], patch)
	}
}

// Ticker

func (s *Store) TickerMessages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.ticker)
}

func (s *Store) SetTickerMessages(list []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticker = slices.Clone(list)
}

// AddTickerMessage appends msg. Empty messages are ignored.
func (s *Store) AddTickerMessage(msg string) {
	if msg == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticker = append(slices.Clone(s.ticker), msg)
}

// RemoveTickerMessage drops the message at index; out of range is a no-op.
func (s *Store) RemoveTickerMessage(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.ticker) {
		return
	}
	s.ticker = slices.Delete(slices.Clone(s.ticker), index, index+1)
}

// Casting

func (s *Store) CastingOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.castingOpen
}

func (s *Store) SetCastingOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.castingOpen = open
}

// helpers, callers hold s.mu

func (s *Store) candidateIndex(id string) int {
	return slices.IndexFunc(s.candidates, func(c models.Candidate) bool { return c.ID == id })
}

func (s *Store) faqIndex(id string) int {
	return slices.IndexFunc(s.faqs, func(f models.FAQItem) bool { return f.ID == id })
}

// freshID asks the id source until it returns an id not already taken.
func (s *Store) freshID(prefix string, taken func(string) bool) string {
	for {
		id := s.ids.NewID(prefix)
		if !taken(id) {
			return id
		}
	}
}

func cloneCandidates(list []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, len(list))
	for i, c := range list {
		out[i] = c.Clone()
	}
	return out
}

func validateCandidates(list []models.Candidate) error {
	seen := make(map[string]bool, len(list))
	for _, c := range list {
		if c.ID == "" {
			return ErrEmptyID
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
		if !c.Status.Valid() {
			return fmt.Errorf("%w: %q for %s", models.ErrInvalidStatus, c.Status, c.ID)
		}
	}
	return nil
}

func validateBosses(list []models.Boss) error {
	seen := make(map[string]bool, len(list))
	for _, b := range list {
		if b.ID == "" {
			return ErrEmptyID
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}

func validateSite(site models.SiteConfig) error {
	if !site.VoteTemplate.Valid() {
		return models.ErrInvalidVoteTemplate
	}
	if !site.Banner.Type.Valid() {
		return models.ErrInvalidBannerType
	}
	return nil
}
