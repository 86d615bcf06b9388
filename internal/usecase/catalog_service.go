package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/league"
	"github.com/riskibarqy/rugby-ingest/internal/platform/logging"
)

// CatalogService lists what the upstream can ingest.
type CatalogService struct {
	resolver Resolver
	logger   *logging.Logger
}

func NewCatalogService(resolver Resolver, logger *logging.Logger) *CatalogService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CatalogService{resolver: resolver, logger: logger}
}

func (s *CatalogService) ListLeagues(ctx context.Context, run *ingest.Run) ([]league.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	refs, err := collectEndpointRefs(ctx, s.resolver, run, Endpoint{Key: "league_urls"})
	if err != nil {
		return nil, err
	}

	out := make([]league.Summary, 0, len(refs))
	for _, ref := range refs {
		var page leaguePage
		if err := s.resolver.Get(ctx, run, ref, &page); err != nil {
			return nil, fmt.Errorf("fetch league: %w", err)
		}
		leagueID, err := strconv.ParseInt(strings.TrimSpace(page.Slug), 10, 64)
		if err != nil {
			s.logger.WarnContext(ctx, "league slug is not numeric", "ref", ref, "slug", page.Slug)
			continue
		}
		out = append(out, league.Summary{ID: leagueID, Name: page.Name})
	}
	return out, nil
}

func (s *CatalogService) ListSeasons(ctx context.Context, run *ingest.Run, leagueID int64) ([]int, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ingest.ErrInvalidInput)
	}
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSeasons")
	defer span.End()

	refs, err := collectEndpointRefs(ctx, s.resolver, run, leagueEndpoint("league_season_urls", leagueID))
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(refs))
	for _, ref := range refs {
		year, err := NumberField(ref, -1)
		if err != nil {
			return nil, fmt.Errorf("season year: %w", err)
		}
		out = append(out, int(year))
	}
	return out, nil
}
