package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
	"github.com/riskibarqy/rugby-ingest/internal/domain/standing"
	"github.com/riskibarqy/rugby-ingest/internal/domain/team"
	"github.com/riskibarqy/rugby-ingest/internal/platform/id"
)

// fetchStandingsPages walks groups -> standings list -> first standings
// page. Groups without standings data are skipped.
func (n *normalizer) fetchStandingsPages(ctx context.Context, leagueID int64, season int) ([]standingsPage, error) {
	groupRefs, err := collectEndpointRefs(ctx, n.resolver, n.run, seasonEndpoint("group_urls", leagueID, season))
	if err != nil {
		return nil, err
	}

	pages := make([]standingsPage, 0, len(groupRefs))
	for _, groupRef := range groupRefs {
		var group groupPage
		if err := n.get(ctx, groupRef, &group); err != nil {
			return nil, fmt.Errorf("fetch group: %w", err)
		}
		if refOf(group.Standings) == "" {
			n.logger.WarnContext(ctx, "group has no standings reference", "group", groupRef)
			continue
		}

		refs, err := collectRefs(ctx, n.resolver, n.run, group.Standings.Ref)
		if err != nil {
			return nil, fmt.Errorf("standings list: %w", err)
		}
		if len(refs) == 0 {
			n.logger.WarnContext(ctx, "standings list is empty", "group", groupRef)
			continue
		}

		var page standingsPage
		if err := n.get(ctx, refs[0], &page); err != nil {
			return nil, fmt.Errorf("fetch standings page: %w", err)
		}
		if page.Standings == nil {
			n.logger.WarnContext(ctx, "standings data missing", "league_id", leagueID, "season", season, "ref", refs[0])
			continue
		}
		if page.Ref == "" {
			page.Ref = refs[0]
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// normalizeTeams fetches each distinct team referenced by the standings.
func (n *normalizer) normalizeTeams(ctx context.Context, pages []standingsPage) ([]team.Team, error) {
	var out []team.Team
	seen := make(map[int64]struct{})
	for _, page := range pages {
		for _, entry := range page.Standings {
			teamID, err := NumberField(entry.Team.Ref, -1)
			if err != nil {
				return nil, fmt.Errorf("standing team id: %w", err)
			}
			if _, ok := seen[teamID]; ok {
				continue
			}
			seen[teamID] = struct{}{}

			var tp teamPage
			if err := n.get(ctx, entry.Team.Ref, &tp); err != nil {
				return nil, fmt.Errorf("fetch team %d: %w", teamID, err)
			}
			if !tp.ID.Valid {
				return nil, fmt.Errorf("%w: team page %s has no id", ingest.ErrResolution, entry.Team.Ref)
			}

			item := team.Team{
				ESPNID:       tp.ID.Value,
				Name:         tp.Name,
				Abbreviation: tp.Abbreviation,
				Color:        tp.Color,
			}
			if len(tp.Logos) > 0 && tp.Logos[0].Href != "" {
				logo := tp.Logos[0].Href
				item.LogoURL = &logo
			}
			if err := item.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", ingest.ErrResolution, err)
			}
			out = append(out, item)
		}
	}
	return out, nil
}

// normalizeStandings flattens records[0].stats per team, deduplicated by uid.
func normalizeStandings(pages []standingsPage, leagueUID string) ([]standing.Standing, error) {
	var out []standing.Standing
	seen := make(map[string]struct{})
	for _, page := range pages {
		groupID, err := NumberField(page.Ref, 3)
		if err != nil {
			return nil, fmt.Errorf("standings group id: %w", err)
		}
		for _, entry := range page.Standings {
			teamID, err := NumberField(entry.Team.Ref, -1)
			if err != nil {
				return nil, fmt.Errorf("standing team id: %w", err)
			}
			uid, err := id.UID(leagueUID, teamID)
			if err != nil {
				return nil, err
			}
			if _, ok := seen[uid]; ok {
				continue
			}
			seen[uid] = struct{}{}

			stats := ingest.Stats{}
			if len(entry.Records) > 0 {
				stats = flattenStats(entry.Records[0].Stats)
			}
			out = append(out, standing.Standing{
				UID:        uid,
				TeamESPNID: teamID,
				LeagueUID:  leagueUID,
				GroupID:    groupID,
				Stats:      stats,
			})
		}
	}
	return out, nil
}
