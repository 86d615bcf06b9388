package match

import (
	"fmt"
	"time"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Match is one fixture. On a draw the away side is stored as winner and
// both scores are equal; IsDraw marks that case.
type Match struct {
	ESPNID         int64
	Date           time.Time
	Name           string
	ShortName      string
	LeagueUID      string
	HomeTeamESPNID int64
	AwayTeamESPNID int64
	WinnerESPNID   int64
	LoserESPNID    int64
	WinnerScore    float64
	LoserScore     float64
	IsDraw         bool
	StadiumESPNID  *int64
	TotalPlayTime  *float64
}

func (m Match) Validate() error {
	if m.ESPNID == 0 {
		return fmt.Errorf("match espn id is required")
	}
	if m.HomeTeamESPNID == 0 || m.AwayTeamESPNID == 0 {
		return fmt.Errorf("match %d home and away teams are required", m.ESPNID)
	}

	return nil
}

// TeamStat is one team's line in a match.
type TeamStat struct {
	UID              string
	MatchESPNID      int64
	TeamESPNID       int64
	OpponentESPNID   int64
	Linescore1stHalf *float64
	Linescore2ndHalf *float64
	Linescore20min   *float64
	Linescore60min   *float64
	Stats            ingest.Stats
}
