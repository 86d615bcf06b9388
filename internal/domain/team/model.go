package team

import "fmt"

// Team is a rugby side. Metadata may change between seasons.
type Team struct {
	ESPNID       int64
	Name         string
	Abbreviation string
	Color        string
	LogoURL      *string
}

func (t Team) Validate() error {
	if t.ESPNID == 0 {
		return fmt.Errorf("team espn id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
