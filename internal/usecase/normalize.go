package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
)

// normalizer turns upstream pages into domain records for one run.
type normalizer struct {
	resolver Resolver
	run      *ingest.Run
	logger   *logging.Logger
}

func newNormalizer(resolver Resolver, run *ingest.Run, logger *logging.Logger) *normalizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &normalizer{resolver: resolver, run: run, logger: logger}
}

func (n *normalizer) get(ctx context.Context, ref string, target any) error {
	return n.resolver.Get(ctx, n.run, ref, target)
}

// fetchStats reads splits.categories[0].stats. A page without categories
// yields an empty set.
func (n *normalizer) fetchStats(ctx context.Context, ref string) (ingest.Stats, error) {
	var page statisticsPage
	if err := n.get(ctx, ref, &page); err != nil {
		return nil, fmt.Errorf("fetch statistics: %w", err)
	}
	if len(page.Splits.Categories) == 0 {
		n.logger.WarnContext(ctx, "statistics page has no categories", "ref", ref)
		return ingest.Stats{}, nil
	}
	return flattenStats(page.Splits.Categories[0].Stats), nil
}

type linescores struct {
	firstHalf  *float64
	secondHalf *float64
	at20       *float64
	at60       *float64
}

func (n *normalizer) fetchLinescores(ctx context.Context, ref string) (linescores, error) {
	var page linescoresPage
	if err := n.get(ctx, ref, &page); err != nil {
		return linescores{}, fmt.Errorf("fetch linescores: %w", err)
	}

	var out linescores
	for _, item := range page.Items {
		value := item.Value
		switch item.Period {
		case 1:
			out.firstHalf = &value
		case 2:
			out.secondHalf = &value
		case 20:
			out.at20 = &value
		case 60:
			out.at60 = &value
		}
	}
	return out, nil
}

func refOf(ref *Ref) string {
	if ref == nil {
		return ""
	}
	return ref.Ref
}
