package postgres

import (
	"context"
	"database/sql"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/league"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type LeagueRepository struct {
	writer *Writer
}

func NewLeagueRepository(writer *Writer) *LeagueRepository {
	return &LeagueRepository{writer: writer}
}

func (r *LeagueRepository) Insert(ctx context.Context, run *ingest.Run, items []league.Season) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, leaguesTable, items, func(item league.Season) (qb.Row, error) {
		return qb.RowFromModel(leagueInsertModel{
			UID:          item.UID,
			ESPNID:       item.ESPNID,
			Season:       item.Season,
			Name:         item.Name,
			StartDate:    item.StartDate,
			EndDate:      item.EndDate,
			HasGroups:    item.HasGroups,
			HasStandings: item.HasStandings,
			Abbreviation: sql.NullString{String: item.Abbreviation, Valid: item.Abbreviation != ""},
		})
	})
}
