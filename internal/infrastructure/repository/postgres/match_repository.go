package postgres

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/match"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

type MatchRepository struct {
	writer *Writer
}

func NewMatchRepository(writer *Writer) *MatchRepository {
	return &MatchRepository{writer: writer}
}

func (r *MatchRepository) InsertMatches(ctx context.Context, run *ingest.Run, items []match.Match) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, matchesTable, items, func(item match.Match) (qb.Row, error) {
		return qb.RowFromModel(matchInsertModel{
			ESPNID:         item.ESPNID,
			Date:           item.Date,
			Name:           item.Name,
			ShortName:      item.ShortName,
			LeagueUID:      item.LeagueUID,
			HomeTeamESPNID: item.HomeTeamESPNID,
			AwayTeamESPNID: item.AwayTeamESPNID,
			WinnerESPNID:   item.WinnerESPNID,
			LoserESPNID:    item.LoserESPNID,
			WinnerScore:    item.WinnerScore,
			LoserScore:     item.LoserScore,
			IsDraw:         item.IsDraw,
			StadiumESPNID:  nullInt64(item.StadiumESPNID),
			TotalPlayTime:  nullFloat64(item.TotalPlayTime),
		})
	})
}

func (r *MatchRepository) InsertTeamStats(ctx context.Context, run *ingest.Run, items []match.TeamStat) (ingest.WriteResult, error) {
	return writeItems(ctx, r.writer, run, teamMatchStatsTable, items, func(item match.TeamStat) (qb.Row, error) {
		return qb.RowFromModel(teamMatchStatInsertModel{
			UID:              item.UID,
			MatchESPNID:      item.MatchESPNID,
			TeamESPNID:       item.TeamESPNID,
			OpponentESPNID:   item.OpponentESPNID,
			Linescore1stHalf: nullFloat64(item.Linescore1stHalf),
			Linescore2ndHalf: nullFloat64(item.Linescore2ndHalf),
			Linescore20min:   nullFloat64(item.Linescore20min),
			Linescore60min:   nullFloat64(item.Linescore60min),
			Stats:            encodeJSONMap(item.Stats),
		})
	})
}
