package standing

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

type Repository interface {
	Upsert(ctx context.Context, run *ingest.Run, items []Standing) (ingest.WriteResult, error)
}
