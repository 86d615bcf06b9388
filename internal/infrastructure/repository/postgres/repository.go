package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	qb "github.com/riskibarqy/rugby-ingest/internal/platform/querybuilder"
)

var (
	leaguesTable          = Table{Name: "leagues", Policy: ingest.PolicyInsertOrIgnore, Key: []string{"uid"}}
	stadiumsTable         = Table{Name: "stadiums", Policy: ingest.PolicyInsertOrIgnore, Key: []string{"espn_id"}}
	teamsTable            = Table{Name: "teams", Policy: ingest.PolicyUpsert, Key: []string{"espn_id"}}
	standingsTable        = Table{Name: "standings", Policy: ingest.PolicyUpsert, Key: []string{"uid"}}
	matchesTable          = Table{Name: "matches", Policy: ingest.PolicyInsertIfAbsent}
	teamMatchStatsTable   = Table{Name: "team_match_stats", Policy: ingest.PolicyInsertIfAbsent}
	playersTable          = Table{Name: "players", Policy: ingest.PolicyUpsert, Key: []string{"espn_id"}}
	playerTeamTable       = Table{Name: "player_team", Policy: ingest.PolicyInsertOrIgnore, Key: []string{"uid"}}
	playerMatchStatsTable = Table{Name: "player_match_stats", Policy: ingest.PolicyInsertIfAbsent}
)

func writeItems[T any](ctx context.Context, w *Writer, run *ingest.Run, table Table, items []T, toRow func(T) (qb.Row, error)) (ingest.WriteResult, error) {
	rows := make([]qb.Row, 0, len(items))
	for i, item := range items {
		row, err := toRow(item)
		if err != nil {
			return ingest.WriteResult{Table: table.Name, Policy: table.Policy, Submitted: len(items)}, fmt.Errorf("map %s record %d: %w", table.Name, i, err)
		}
		rows = append(rows, row)
	}
	return w.Write(ctx, run, table, rows)
}
