package postgres

import (
	"database/sql"
	"time"
)

type leagueInsertModel struct {
	UID          string         `db:"uid"`
	ESPNID       int64          `db:"espn_id"`
	Season       int            `db:"season"`
	Name         string         `db:"name"`
	Abbreviation sql.NullString `db:"abbreviation"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      time.Time      `db:"end_date"`
	HasGroups    bool           `db:"has_groups"`
	HasStandings bool           `db:"has_standings"`
}
