package league

import (
	"context"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Repository describes league persistence needs from use cases.
type Repository interface {
	Insert(ctx context.Context, run *ingest.Run, items []Season) (ingest.WriteResult, error)
}
