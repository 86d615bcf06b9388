package player

import (
	"fmt"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Player is an athlete. Weight is in kilograms and height in meters.
type Player struct {
	ESPNID       int64
	FirstName    string
	LastName     string
	Weight       *float64
	Height       *float64
	BirthDate    *time.Time
	BirthPlace   *string
	PositionName *string
}

func (p Player) Validate() error {
	if p.ESPNID == 0 {
		return fmt.Errorf("player espn id is required")
	}
	if p.FirstName == "" && p.LastName == "" {
		return fmt.Errorf("player %d name is required", p.ESPNID)
	}

	return nil
}

// TeamMembership links a player to a team for one season.
type TeamMembership struct {
	UID          string
	PlayerESPNID int64
	TeamESPNID   int64
	Season       int
}

// MatchStat is one player's appearance in a match.
type MatchStat struct {
	UID           string
	PlayerTeamUID string
	MatchESPNID   int64
	Jersey        *int
	PositionName  string
	IsFirstChoice bool
	Stats         ingest.Stats
}
