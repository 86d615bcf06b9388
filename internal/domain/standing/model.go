package standing

import (
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Standing is a team's table position in a league season.
type Standing struct {
	UID        string
	TeamESPNID int64
	LeagueUID  string
	GroupID    int64
	Stats      ingest.Stats
}

func (s Standing) Validate() error {
	if s.UID == "" {
		return fmt.Errorf("standing uid is required")
	}
	if s.TeamESPNID == 0 {
		return fmt.Errorf("standing team espn id is required")
	}
	if s.LeagueUID == "" {
		return fmt.Errorf("standing league uid is required")
	}

	return nil
}
