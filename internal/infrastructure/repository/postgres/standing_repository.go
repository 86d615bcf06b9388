package postgres

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/standing"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type StandingRepository struct {
	writer *Writer
}

func NewStandingRepository(writer *Writer) *StandingRepository {
	return &StandingRepository{writer: writer}
}

func (r *StandingRepository) Upsert(ctx context.Context, run *ingest.Run, items []standing.Standing) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, standingsTable, items, standingRow)
}

// standingRow adds only the stats the record carries; the writer binds
// NULL for the rest.
func standingRow(item standing.Standing) (qb.Row, error) {
	row, err := qb.RowFromModel(standingInsertModel{
		UID:        item.UID,
		TeamESPNID: item.TeamESPNID,
		LeagueUID:  item.LeagueUID,
		GroupID:    item.GroupID,
	})
	if err != nil {
		return qb.Row{}, err
	}

	extra := ingest.Stats{}
	for _, name := range item.Stats.Names() {
		value := item.Stats[name]
		if col, ok := standingStatColumns[name]; ok {
			row.Add(col, value)
			continue
		}
		extra[name] = value
	}
	if len(extra) > 0 {
		row.Add("extra_stats", encodeJSONMap(extra))
	}
	return row, nil
}
