// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed holds the built-in data the store is initialized from.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/queen-house/models"
)

//go:embed seed.yaml
var defaultSeed []byte

// Data is the initial content of every store collection.
type Data struct {
	Candidates    []models.Candidate `yaml:"candidates"`
	Bosses        []models.Boss      `yaml:"bosses"`
	FAQs          []models.FAQItem   `yaml:"faqs"`
	Ticker        []string           `yaml:"ticker"`
	CountdownDays int                `yaml:"countdown_days"`
	Site          models.SiteConfig  `yaml:"site"`
	Live          models.LiveConfig  `yaml:"live"`
	CastingOpen   bool               `yaml:"casting_open"`
}

// Default returns the embedded seed. now anchors the countdown target when
// the seed does not set one.
func Default(now time.Time) (Data, error) {
	return Parse(defaultSeed, now)
}

// Load reads a seed file from disk.
func Load(path string, now time.Time) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b, now)
}

// Parse decodes a YAML seed.
func Parse(b []byte, now time.Time) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}

	if d.Site.CountdownTarget.IsZero() {
		d.Site.CountdownTarget = now.AddDate(0, 0, d.CountdownDays)
	}
	if d.Site.VoteTemplate == "" {
		d.Site.VoteTemplate = models.TemplatePosters
	}
	if d.Site.Banner.Type == "" {
		d.Site.Banner.Type = models.BannerInfo
	}

	return d, nil
}
