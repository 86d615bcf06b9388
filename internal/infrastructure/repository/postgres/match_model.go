package postgres

import (
	"database/sql"
	"time"
)

type matchInsertModel struct {
	ESPNID         int64           `db:"espn_id"`
	Date           time.Time       `db:"date"`
	Name           string          `db:"name"`
	ShortName      string          `db:"short_name"`
	LeagueUID      string          `db:"league_uid"`
	HomeTeamESPNID int64           `db:"home_team_id"`
	AwayTeamESPNID int64           `db:"away_team_id"`
	WinnerESPNID   int64           `db:"winner_id"`
	LoserESPNID    int64           `db:"loser_id"`
	WinnerScore    float64         `db:"winner_score"`
	LoserScore     float64         `db:"loser_score"`
	IsDraw         bool            `db:"is_draw"`
	StadiumESPNID  sql.NullInt64   `db:"stadium_id"`
	TotalPlayTime  sql.NullFloat64 `db:"total_play_time"`
}

type teamMatchStatInsertModel struct {
	UID              string          `db:"uid"`
	MatchESPNID      int64           `db:"match_id"`
	TeamESPNID       int64           `db:"team_id"`
	OpponentESPNID   int64           `db:"opponent_id"`
	Linescore1stHalf sql.NullFloat64 `db:"linescore_1st_half"`
	Linescore2ndHalf sql.NullFloat64 `db:"linescore_2nd_half"`
	Linescore20min   sql.NullFloat64 `db:"linescore_20min"`
	Linescore60min   sql.NullFloat64 `db:"linescore_60min"`
	Stats            string          `db:"stats"`
}
