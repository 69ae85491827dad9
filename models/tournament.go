package models

import (
	"fmt"
	"time"
)

// Tournament modes and statuses accepted at creation.
var (
	TournamentModes    = []string{"Solo", "Duo", "Squad"}
	TournamentStatuses = []string{"upcoming", "ongoing", "completed"}
)

const (
	DefaultGame            = "Free Fire Max"
	DefaultMode            = "Squad"
	DefaultRegion          = "Global"
	DefaultStatus          = "upcoming"
	DefaultMaxParticipants = 48

	MinParticipantsLimit = 1
	MaxParticipantsLimit = 1000
)

// Tournament is the schema for the "tournament" collection. The internal
// id is store-assigned and never part of this struct; share_code and slug
// are filled server-side at creation when absent.
type Tournament struct {
	Title           string     `json:"title" bson:"title"`
	Description     string     `json:"description,omitempty" bson:"description,omitempty"`
	Game            string     `json:"game" bson:"game"`
	Mode            string     `json:"mode" bson:"mode"`
	PrizePool       string     `json:"prize_pool,omitempty" bson:"prize_pool,omitempty"`
	EntryFee        string     `json:"entry_fee,omitempty" bson:"entry_fee,omitempty"`
	MaxParticipants int        `json:"max_participants" bson:"max_participants"`
	StartsAt        *time.Time `json:"starts_at,omitempty" bson:"starts_at,omitempty"`
	Rules           string     `json:"rules,omitempty" bson:"rules,omitempty"`
	Status          string     `json:"status" bson:"status"`
	BannerURL       string     `json:"banner_url,omitempty" bson:"banner_url,omitempty"`
	Region          string     `json:"region" bson:"region"`
	ShareCode       string     `json:"share_code,omitempty" bson:"share_code,omitempty"`
	Slug            string     `json:"slug,omitempty" bson:"slug,omitempty"`
}

// ApplyDefaults fills the fields the caller may omit.
func (t *Tournament) ApplyDefaults() {
	if t.Game == "" {
		t.Game = DefaultGame
	}
	if t.Mode == "" {
		t.Mode = DefaultMode
	}
	if t.Status == "" {
		t.Status = DefaultStatus
	}
	if t.Region == "" {
		t.Region = DefaultRegion
	}
	if t.MaxParticipants == 0 {
		t.MaxParticipants = DefaultMaxParticipants
	}
}

// Validate checks the schema constraints. Call after ApplyDefaults.
func (t *Tournament) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !oneOf(t.Mode, TournamentModes) {
		return fmt.Errorf("mode must be one of Solo, Duo, Squad")
	}
	if !oneOf(t.Status, TournamentStatuses) {
		return fmt.Errorf("status must be one of upcoming, ongoing, completed")
	}
	if t.MaxParticipants < MinParticipantsLimit || t.MaxParticipants > MaxParticipantsLimit {
		return fmt.Errorf("max_participants must be between %d and %d", MinParticipantsLimit, MaxParticipantsLimit)
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if value == v {
			return true
		}
	}
	return false
}
