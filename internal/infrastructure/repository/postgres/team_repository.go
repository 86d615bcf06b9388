package postgres

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/team"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type TeamRepository struct {
	writer *Writer
}

func NewTeamRepository(writer *Writer) *TeamRepository {
	return &TeamRepository{writer: writer}
}

func (r *TeamRepository) Upsert(ctx context.Context, run *ingest.Run, items []team.Team) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, teamsTable, items, func(item team.Team) (qb.Row, error) {
		return qb.RowFromModel(teamInsertModel{
			ESPNID:       item.ESPNID,
			Name:         item.Name,
			Abbreviation: item.Abbreviation,
			Color:        item.Color,
			LogoURL:      nullString(item.LogoURL),
		})
	})
}
