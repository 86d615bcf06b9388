package postgres

import "database/sql"

type teamInsertModel struct {
	ESPNID       int64          `db:"espn_id"`
	Name         string         `db:"name"`
	Abbreviation string         `db:"abbreviation"`
	Color        string         `db:"color"`
	LogoURL      sql.NullString `db:"logo_url"`
}
