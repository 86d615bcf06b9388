package stadium

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

type Repository interface {
	Insert(ctx context.Context, run *ingest.Run, items []Stadium) (ingest.WriteResult, error)
}
