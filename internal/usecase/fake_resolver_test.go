package usecase

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

// fakeResolver serves JSON fixtures keyed by reference URL, or by
// Endpoint.String() for catalog endpoints.
type fakeResolver struct {
	pages   map[string]string
	fetched map[string]int
}

func newFakeResolver(pages map[string]string) *fakeResolver {
	return &fakeResolver{pages: pages, fetched: make(map[string]int)}
}

func (f *fakeResolver) Get(_ context.Context, run *ingest.Run, ref string, target any) error {
	return f.load(run, ref, target)
}

func (f *fakeResolver) GetEndpoint(_ context.Context, run *ingest.Run, endpoint Endpoint, target any) error {
	return f.load(run, endpoint.String(), target)
}

func (f *fakeResolver) load(run *ingest.Run, key string, target any) error {
	raw, ok := f.pages[key]
	if !ok {
		return fmt.Errorf("%w: no fixture for %s", ingest.ErrTransport, key)
	}
	if err := sonic.UnmarshalString(raw, target); err != nil {
		return fmt.Errorf("%w: decode fixture %s: %v", ingest.ErrTransport, key, err)
	}
	f.fetched[key]++
	run.CountRequest()
	return nil
}
