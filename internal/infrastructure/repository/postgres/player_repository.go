package postgres

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/player"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type PlayerRepository struct {
	writer *Writer
}

func NewPlayerRepository(writer *Writer) *PlayerRepository {
	return &PlayerRepository{writer: writer}
}

func (r *PlayerRepository) UpsertPlayers(ctx context.Context, run *ingest.Run, items []player.Player) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, playersTable, items, func(item player.Player) (qb.Row, error) {
		return qb.RowFromModel(playerInsertModel{
			ESPNID:       item.ESPNID,
			FirstName:    item.FirstName,
			LastName:     item.LastName,
			Weight:       nullFloat64(item.Weight),
			Height:       nullFloat64(item.Height),
			BirthDate:    nullTime(item.BirthDate),
			BirthPlace:   nullString(item.BirthPlace),
			PositionName: nullString(item.PositionName),
		})
	})
}

func (r *PlayerRepository) InsertTeamMemberships(ctx context.Context, run *ingest.Run, items []player.TeamMembership) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, playerTeamTable, items, func(item player.TeamMembership) (qb.Row, error) {
		return qb.RowFromModel(playerTeamInsertModel{
			UID:          item.UID,
			PlayerESPNID: item.PlayerESPNID,
			TeamESPNID:   item.TeamESPNID,
			Season:       item.Season,
		})
	})
}

func (r *PlayerRepository) InsertMatchStats(ctx context.Context, run *ingest.Run, items []player.MatchStat) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, playerMatchStatsTable, items, func(item player.MatchStat) (qb.Row, error) {
		return qb.RowFromModel(playerMatchStatInsertModel{
			UID:           item.UID,
			PlayerTeamUID: item.PlayerTeamUID,
			MatchESPNID:   item.MatchESPNID,
			Jersey:        nullInt32(item.Jersey),
			PositionName:  item.PositionName,
			IsFirstChoice: item.IsFirstChoice,
			Stats:         encodeJSONMap(item.Stats),
		})
	})
}
