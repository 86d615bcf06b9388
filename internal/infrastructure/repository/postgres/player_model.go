package postgres

import "database/sql"

type playerInsertModel struct {
	ESPNID       int64           `db:"espn_id"`
	FirstName    string          `db:"first_name"`
	LastName     string          `db:"last_name"`
	Weight       sql.NullFloat64 `db:"weight"`
	Height       sql.NullFloat64 `db:"height"`
	BirthDate    sql.NullTime    `db:"birth_date"`
	BirthPlace   sql.NullString  `db:"birth_place"`
	PositionName sql.NullString  `db:"position_name"`
}

type playerTeamInsertModel struct {
	UID          string `db:"uid"`
	PlayerESPNID int64  `db:"player_id"`
	TeamESPNID   int64  `db:"team_id"`
	Season       int    `db:"season"`
}

type playerMatchStatInsertModel struct {
	UID           string        `db:"uid"`
	PlayerTeamUID string        `db:"player_team_uid"`
	MatchESPNID   int64         `db:"match_id"`
	Jersey        sql.NullInt32 `db:"jersey"`
	PositionName  string        `db:"position_name"`
	IsFirstChoice bool          `db:"is_first_choice"`
	Stats         string        `db:"stats"`
}
