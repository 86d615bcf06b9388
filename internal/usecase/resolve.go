package usecase

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// Endpoint is a templated upstream resource: a catalog key plus the values
// for its path placeholders and extra query params.
type Endpoint struct {
	Key   string
	Path  map[string]string
	Query map[string]string
}

// String renders the endpoint deterministically, e.g. for logs.
func (e Endpoint) String() string {
	var b strings.Builder
	b.WriteString(e.Key)

	keys := make([]string, 0, len(e.Path))
	for k := range e.Path {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("/")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(e.Path[k])
	}

	if len(e.Query) > 0 {
		values := url.Values{}
		for k, v := range e.Query {
			values.Set(k, v)
		}
		b.WriteString("?")
		b.WriteString(values.Encode())
	}
	return b.String()
}

func (e Endpoint) withQuery(key, value string) Endpoint {
	query := make(map[string]string, len(e.Query)+1)
	for k, v := range e.Query {
		query[k] = v
	}
	query[key] = value
	e.Query = query
	return e
}

func leagueEndpoint(key string, leagueID int64) Endpoint {
	return Endpoint{Key: key, Path: map[string]string{"id_league": strconv.FormatInt(leagueID, 10)}}
}

func seasonEndpoint(key string, leagueID int64, season int) Endpoint {
	return Endpoint{Key: key, Path: map[string]string{
		"id_league": strconv.FormatInt(leagueID, 10),
		"season":    strconv.Itoa(season),
	}}
}

// Resolver fetches upstream JSON. Implementations count every successful
// fetch on run and fail with ingest.ErrTransport.
type Resolver interface {
	Get(ctx context.Context, run *ingest.Run, ref string, target any) error
	GetEndpoint(ctx context.Context, run *ingest.Run, endpoint Endpoint, target any) error
}

// collectEndpointRefs reads every page of a list endpoint.
func collectEndpointRefs(ctx context.Context, r Resolver, run *ingest.Run, endpoint Endpoint) ([]string, error) {
	return collectPages(func(page int) (refListPage, error) {
		ep := endpoint
		if page > 1 {
			ep = endpoint.withQuery("page", strconv.Itoa(page))
		}
		var list refListPage
		if err := r.GetEndpoint(ctx, run, ep, &list); err != nil {
			return refListPage{}, fmt.Errorf("fetch %s: %w", ep.Key, err)
		}
		return list, nil
	})
}

// collectRefs reads every page of a list resource reached by reference.
func collectRefs(ctx context.Context, r Resolver, run *ingest.Run, ref string) ([]string, error) {
	return collectPages(func(page int) (refListPage, error) {
		target := ref
		if page > 1 {
			paged, err := withPageParam(ref, page)
			if err != nil {
				return refListPage{}, err
			}
			target = paged
		}
		var list refListPage
		if err := r.Get(ctx, run, target, &list); err != nil {
			return refListPage{}, fmt.Errorf("fetch %s: %w", target, err)
		}
		return list, nil
	})
}

func collectPages(fetch func(page int) (refListPage, error)) ([]string, error) {
	first, err := fetch(1)
	if err != nil {
		return nil, err
	}
	refs := appendRefs(nil, first.Items)
	for page := 2; page <= first.PageCount; page++ {
		next, err := fetch(page)
		if err != nil {
			return nil, err
		}
		refs = appendRefs(refs, next.Items)
	}
	return refs, nil
}

func appendRefs(out []string, items []Ref) []string {
	for _, item := range items {
		if strings.TrimSpace(item.Ref) == "" {
			continue
		}
		out = append(out, item.Ref)
	}
	return out
}

func withPageParam(ref string, page int) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w: parse reference %q: %v", ingest.ErrResolution, ref, err)
	}
	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

var numberFieldRegex = regexp.MustCompile(`/(\d+)`)

// NumberField returns the idx-th number that follows a "/" in ref. A
// negative idx counts from the end.
func NumberField(ref string, idx int) (int64, error) {
	matches := numberFieldRegex.FindAllStringSubmatch(ref, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: no numeric field in %q", ingest.ErrResolution, ref)
	}
	pos := idx
	if pos < 0 {
		pos = len(matches) + idx
	}
	if pos < 0 || pos >= len(matches) {
		return 0, fmt.Errorf("%w: index %d out of range 0..%d in %q", ingest.ErrResolution, idx, len(matches)-1, ref)
	}
	v, err := strconv.ParseInt(matches[pos][1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse numeric field %q: %v", ingest.ErrResolution, matches[pos][1], err)
	}
	return v, nil
}
