package models

import (
	"fmt"
	"time"
)

// Match statuses accepted at creation.
var MatchStatuses = []string{"scheduled", "live", "completed"}

const DefaultMatchStatus = "scheduled"

// Match is the schema for the "match" collection. Participants and Result
// are deliberately loose: a list of opaque strings and an open key/value
// payload, same as the records the frontend submits.
type Match struct {
	TournamentID string         `json:"tournament_id" bson:"tournament_id"`
	RoundName    string         `json:"round_name" bson:"round_name"`
	MapName      string         `json:"map_name,omitempty" bson:"map_name,omitempty"`
	ScheduledAt  *time.Time     `json:"scheduled_at,omitempty" bson:"scheduled_at,omitempty"`
	RoomID       string         `json:"room_id,omitempty" bson:"room_id,omitempty"`
	RoomPassword string         `json:"room_password,omitempty" bson:"room_password,omitempty"`
	Status       string         `json:"status" bson:"status"`
	Participants []string       `json:"participants,omitempty" bson:"participants,omitempty"`
	Result       map[string]any `json:"result,omitempty" bson:"result,omitempty"`
}

func (m *Match) ApplyDefaults() {
	if m.Status == "" {
		m.Status = DefaultMatchStatus
	}
}

// Validate checks the schema constraints. Call after ApplyDefaults.
func (m *Match) Validate() error {
	if m.RoundName == "" {
		return fmt.Errorf("round_name is required")
	}
	if !oneOf(m.Status, MatchStatuses) {
		return fmt.Errorf("status must be one of scheduled, live, completed")
	}
	return nil
}
