// Package coinsconfig provides the typed reward configuration: one record
// per earning event kind plus the global redemption settings.
package coinsconfig

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/talx-hub/gopher-coins/internal/model/coin"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
)

//go:embed default.yaml
var defaultConfig []byte

const (
	defaultCheckinExpiryDays = 90
	defaultRedeemLimit       = "0.25"
)

type EventConfig struct {
	Label      string `yaml:"label"`
	Link       string `yaml:"link"`
	Reward     int64  `yaml:"reward"`
	ExpiryDays int    `yaml:"expiry_days"`
	Repeat     int    `yaml:"repeat"`
}

type GlobalConfig struct {
	ConversionRate    decimal.Decimal `yaml:"conversion_rate"` // whole currency units per point
	RedeemLimit       decimal.Decimal `yaml:"redeem_limit"`
	CheckinRewards    []int64         `yaml:"checkin_rewards"`
	CheckinExpiryDays int             `yaml:"checkin_expiry_days"`
}

// CheckinReward returns the configured reward of a check-in day (1-based).
func (g GlobalConfig) CheckinReward(day int) int64 {
	if day < 1 || day > len(g.CheckinRewards) {
		return 0
	}
	return g.CheckinRewards[day-1]
}

type file struct {
	Events map[coin.EventKind]EventConfig `yaml:"events"`
	Global GlobalConfig                   `yaml:"global"`
}

type Provider struct {
	events map[coin.EventKind]EventConfig
	global GlobalConfig
}

// Load reads the YAML configuration at path, or the embedded defaults when
// path is empty.
func Load(path string) (*Provider, error) {
	if path == "" {
		return Parse(defaultConfig)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coins config %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Provider, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode coins config: %w", err)
	}
	return New(f.Events, f.Global)
}

// New validates the configuration and fills defaults of the global settings.
func New(events map[coin.EventKind]EventConfig, global GlobalConfig) (*Provider, error) {
	for kind, ec := range events {
		if !kind.IsValid() || kind.IsCheckin() {
			return nil, fmt.Errorf("%w: %w %q", serviceerrs.ErrInvalidConfig,
				serviceerrs.ErrUnknownEventKind, kind)
		}
		if ec.Reward < 0 || ec.ExpiryDays < 0 || ec.Repeat < 0 {
			return nil, fmt.Errorf("%w: negative value for %q",
				serviceerrs.ErrInvalidConfig, kind)
		}
		if ec.Label == "" {
			ec.Label = kind.Label()
			events[kind] = ec
		}
	}

	if global.ConversionRate.IsZero() {
		global.ConversionRate = decimal.NewFromInt(1)
	}
	// a redeemed point is worth whole currency units, so the discount of an
	// order always equals the coins drained for it
	if global.ConversionRate.IsNegative() || !global.ConversionRate.IsInteger() {
		return nil, fmt.Errorf("%w: conversion rate must be a positive integer, got %s",
			serviceerrs.ErrInvalidConfig, global.ConversionRate)
	}
	if global.RedeemLimit.IsZero() {
		global.RedeemLimit = decimal.RequireFromString(defaultRedeemLimit)
	}
	if global.RedeemLimit.IsNegative() || global.RedeemLimit.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: redeem limit must be within (0, 1]",
			serviceerrs.ErrInvalidConfig)
	}
	switch len(global.CheckinRewards) {
	case 0:
		global.CheckinRewards = make([]int64, coin.CheckinDays)
	case coin.CheckinDays:
		for _, r := range global.CheckinRewards {
			if r < 0 {
				return nil, fmt.Errorf("%w: negative check-in reward",
					serviceerrs.ErrInvalidConfig)
			}
		}
	default:
		return nil, fmt.Errorf("%w: expected %d check-in rewards, got %d",
			serviceerrs.ErrInvalidConfig, coin.CheckinDays, len(global.CheckinRewards))
	}
	if global.CheckinExpiryDays <= 0 {
		global.CheckinExpiryDays = defaultCheckinExpiryDays
	}

	if events == nil {
		events = map[coin.EventKind]EventConfig{}
	}
	return &Provider{events: events, global: global}, nil
}

// Event returns the configuration of kind. Absent kinds are reported with
// false and must be treated as not eligible.
func (p *Provider) Event(kind coin.EventKind) (EventConfig, bool) {
	ec, ok := p.events[kind]
	return ec, ok
}

func (p *Provider) Global() GlobalConfig {
	return p.global
}
