package models

import "fmt"

// Participant is the schema for the "participant" collection. TournamentID
// is always set by the server from the resolved tournament, never taken
// from the request body.
type Participant struct {
	TournamentID string `json:"tournament_id" bson:"tournament_id"`
	Name         string `json:"name" bson:"name"`
	IGN          string `json:"ign,omitempty" bson:"ign,omitempty"`
	TeamName     string `json:"team_name,omitempty" bson:"team_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	Region       string `json:"region,omitempty" bson:"region,omitempty"`
	Notes        string `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (p *Participant) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
