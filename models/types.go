// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus       = errors.New("invalid candidate status")
	ErrInvalidVoteTemplate = errors.New("invalid vote template")
	ErrInvalidBannerType   = errors.New("invalid banner type")
)

// Status is the lifecycle state of a candidate.
type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusEliminated Status = "ELIMINATED"
	StatusLeft       Status = "LEFT"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusEliminated, StatusLeft:
		return true
	}
	return false
}

// VoteTemplate selects the voting page layout.
type VoteTemplate string

const (
	TemplatePosters VoteTemplate = "POSTERS"
	TemplateGrid    VoteTemplate = "GRID"
	TemplateList    VoteTemplate = "LIST"
)

func (v VoteTemplate) Valid() bool {
	switch v {
	case TemplatePosters, TemplateGrid, TemplateList:
		return true
	}
	return false
}

// BannerType styles the global announcement strip.
type BannerType string

const (
	BannerInfo  BannerType = "INFO"
	BannerAlert BannerType = "ALERT"
	BannerLive  BannerType = "LIVE"
)

func (b BannerType) Valid() bool {
	switch b {
	case BannerInfo, BannerAlert, BannerLive:
		return true
	}
	return false
}

// DefaultRanking is used for candidates without a ranking.
const DefaultRanking = 99

// Device platforms
const (
	PlatformIOS     = "ios"
	PlatformMacOS   = "macos"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// Domain types

type Stats struct {
	Drama      int `json:"drama" yaml:"drama"`
	Strategy   int `json:"strategy" yaml:"strategy"`
	Popularity int `json:"popularity" yaml:"popularity"`
}

type Candidate struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Status    Status `json:"status" yaml:"status"`
	Image     string `json:"image" yaml:"image"`
	TikTok    string `json:"tiktok" yaml:"tiktok"`
	Handle    string `json:"handle" yaml:"handle"`
	Age       int    `json:"age" yaml:"age"`
	Followers string `json:"followers" yaml:"followers"`
	Bio       string `json:"bio" yaml:"bio"`
	Ranking   *int   `json:"ranking,omitempty" yaml:"ranking,omitempty"`
	Stats     *Stats `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// RankingOrDefault returns the stored ranking, or DefaultRanking when unset.
func (c Candidate) RankingOrDefault() int {
	if c.Ranking == nil {
		return DefaultRanking
	}
	return *c.Ranking
}

// Clone returns a copy that shares no pointers with c.
func (c Candidate) Clone() Candidate {
	if c.Ranking != nil {
		r := *c.Ranking
		c.Ranking = &r
	}
	if c.Stats != nil {
		s := *c.Stats
		c.Stats = &s
	}
	return c
}

type Boss struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Role        string `json:"role" yaml:"role"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	TikTok      string `json:"tiktok" yaml:"tiktok"`
	Handle      string `json:"handle" yaml:"handle"`
}

type FAQItem struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type LiveConfig struct {
	IsLive        bool   `json:"is_live" yaml:"is_live"`
	Title         string `json:"title" yaml:"title"`
	EpisodeInfo   string `json:"episode_info" yaml:"episode_info"`
	VideoEmbedURL string `json:"video_embed_url" yaml:"video_embed_url"` // empty shows the placeholder
	NextEventTime string `json:"next_event_time,omitempty" yaml:"next_event_time,omitempty"`
}

type NavConfig struct {
	HomeLabel       string `json:"home_label" yaml:"home_label"`
	CandidatesLabel string `json:"candidates_label" yaml:"candidates_label"`
	VoteLabel       string `json:"vote_label" yaml:"vote_label"`
	LiveLabel       string `json:"live_label" yaml:"live_label"`
}

type BannerConfig struct {
	IsVisible bool       `json:"is_visible" yaml:"is_visible"`
	Text      string     `json:"text" yaml:"text"`
	Type      BannerType `json:"type" yaml:"type"`
}

type SiteConfig struct {
	Nav             NavConfig    `json:"nav" yaml:"nav"`
	VoteTemplate    VoteTemplate `json:"vote_template" yaml:"vote_template"`
	CountdownTarget time.Time    `json:"countdown_target" yaml:"countdown_target"`
	Banner          BannerConfig `json:"banner" yaml:"banner"`
}

// Patch types. A nil field leaves the current value untouched.

type CandidatePatch struct {
	Name      *string `json:"name,omitempty"`
	Status    *Status `json:"status,omitempty"`
	Image     *string `json:"image,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
	Handle    *string `json:"handle,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Followers *string `json:"followers,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Ranking   *int    `json:"ranking,omitempty"`
	Stats     *Stats  `json:"stats,omitempty"`
}

type BossPatch struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	TikTok      *string `json:"tiktok,omitempty"`
	Handle      *string `json:"handle,omitempty"`
}

type FAQPatch struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
}

type LiveConfigPatch struct {
	IsLive        *bool   `json:"is_live,omitempty"`
	Title         *string `json:"title,omitempty"`
	EpisodeInfo   *string `json:"episode_info,omitempty"`
	VideoEmbedURL *string `json:"video_embed_url,omitempty"`
	NextEventTime *string `json:"next_event_time,omitempty"`
}

// SiteConfigPatch merges at the top level only: Nav and Banner replace the
// whole nested object.
type SiteConfigPatch struct {
	Nav             *NavConfig    `json:"nav,omitempty"`
	VoteTemplate    *VoteTemplate `json:"vote_template,omitempty"`
	CountdownTarget *time.Time    `json:"countdown_target,omitempty"`
	Banner          *BannerConfig `json:"banner,omitempty"`
}

// Snapshot is a point-in-time copy of everything the site reads.
type Snapshot struct {
	Candidates  []Candidate `json:"candidates"`
	Bosses      []Boss      `json:"bosses"`
	FAQs        []FAQItem   `json:"faqs"`
	Ticker      []string    `json:"ticker"`
	Site        SiteConfig  `json:"site"`
	Live        LiveConfig  `json:"live"`
	CastingOpen bool        `json:"casting_open"`
}

// LeaderboardEntry is one row of the derived ranking.
type LeaderboardEntry struct {
	Rank           int       `json:"rank"` // 1-indexed position
	DerivedRanking float64   `json:"derived_ranking"`
	IsUserVote     bool      `json:"is_user_vote"`
	Candidate      Candidate `json:"candidate"`
}

type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type Device struct {
	ID         string    `json:"device_id"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Request types

type LoginRequest struct {
	Password string `json:"password"`
}

type ReplaceCandidatesRequest struct {
	Candidates []Candidate `json:"candidates"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

type UpdateRankingRequest struct {
	Ranking int `json:"ranking"`
}

type AddFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TickerMessageRequest struct {
	Message string `json:"message"`
}

type TickerListRequest struct {
	Messages []string `json:"messages"`
}

type CastingRequest struct {
	Open bool `json:"open"`
}

type DailyVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

type RegisterDeviceRequest struct {
	Platform string `json:"platform"`
}

// Response types

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

type DailyVoteResponse struct {
	CandidateID *string `json:"candidate_id"`
	Day         string  `json:"day"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

type CandidatesResponse struct {
	Candidates []Candidate `json:"candidates"`
}

type BossesResponse struct {
	Bosses []Boss `json:"bosses"`
}

type FAQsResponse struct {
	FAQs []FAQItem `json:"faqs"`
}

type TickerResponse struct {
	Messages []string `json:"messages"`
}

type CurrentTickerResponse struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

type CastingResponse struct {
	Open bool `json:"open"`
}

type CountdownResponse struct {
	Target    time.Time `json:"target"`
	Remaining Countdown `json:"remaining"`
}

type RegisterDeviceResponse struct {
	DeviceID string `json:"device_id"`
	IsNew    bool   `json:"is_new"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
