package match

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	InsertMatches(ctx context.Context, run *ingest.Run, items []Match) (ingest.WriteResult, error)
	InsertTeamStats(ctx context.Context, run *ingest.Run, items []TeamStat) (ingest.WriteResult, error)
}
