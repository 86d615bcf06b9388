package player

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Repository describes player persistence needs from use cases.
type Repository interface {
	UpsertPlayers(ctx context.Context, run *ingest.Run, items []Player) (ingest.WriteResult, error)
	InsertTeamMemberships(ctx context.Context, run *ingest.Run, items []TeamMembership) (ingest.WriteResult, error)
	InsertMatchStats(ctx context.Context, run *ingest.Run, items []MatchStat) (ingest.WriteResult, error)
}
