package team

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Repository describes team persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, run *ingest.Run, items []Team) (ingest.WriteResult, error)
}
