package league

import (
	"fmt"
	"time"
)

// Season is one league in one season year, with calendar-checked bounds.
type Season struct {
	UID          string
	ESPNID       int64
	Season       int
	Name         string
	Abbreviation string
	StartDate    time.Time
	EndDate      time.Time
	HasGroups    bool
	HasStandings bool
}

func (s Season) Validate() error {
	if s.UID == "" {
		return fmt.Errorf("league uid is required")
	}
	if s.ESPNID == 0 {
		return fmt.Errorf("league espn id is required")
	}
	if s.Season == 0 {
		return fmt.Errorf("league season is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("league end date %s is before start date %s", s.EndDate.Format(time.DateOnly), s.StartDate.Format(time.DateOnly))
	}

	return nil
}

// Summary is one entry of the upstream league listing.
type Summary struct {
	ID   int64
	Name string
}
