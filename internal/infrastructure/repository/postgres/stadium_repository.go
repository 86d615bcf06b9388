package postgres

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/stadium"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type StadiumRepository struct {
	writer *Writer
}

func NewStadiumRepository(writer *Writer) *StadiumRepository {
	return &StadiumRepository{writer: writer}
}

func (r *StadiumRepository) Insert(ctx context.Context, run *ingest.Run, items []stadium.Stadium) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, stadiumsTable, items, func(item stadium.Stadium) (qb.Row, error) {
		return qb.RowFromModel(stadiumInsertModel{
			ESPNID: item.ESPNID,
			Name:   item.Name,
			Grass:  item.Grass,
			Indoor: item.Indoor,
			City:   nullString(item.City),
			State:  nullString(item.State),
		})
	})
}
