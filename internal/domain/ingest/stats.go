package ingest

import "sort"

// Stats is a sparse set of named statistics. A missing name means the
// upstream did not provide it; zero is a real value.
type Stats map[string]float64

func (s Stats) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
