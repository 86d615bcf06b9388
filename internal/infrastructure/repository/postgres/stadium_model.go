package postgres

import "database/sql"

type stadiumInsertModel struct {
	ESPNID int64          `db:"espn_id"`
	Name   string         `db:"name"`
	Grass  bool           `db:"grass"`
	Indoor bool           `db:"indoor"`
	City   sql.NullString `db:"city"`
	State  sql.NullString `db:"state"`
}
