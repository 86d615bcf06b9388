package ingest

import (
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput   = crerr.New("invalid input")
	ErrEmptyBatch     = crerr.New("empty batch")
	ErrResolution     = crerr.New("resolution error")
	ErrDateResolution = crerr.New("date resolution error")
	ErrTransport      = crerr.New("transport error")
)

// DateResolutionError reports a season bound that no calendar candidate satisfied.
type DateResolutionError struct {
	Bound      string
	Season     int
	Candidates []time.Time
}

func (e *DateResolutionError) Error() string {
	dates := make([]string, 0, len(e.Candidates))
	for _, d := range e.Candidates {
		dates = append(dates, d.Format(time.DateTime))
	}
	return fmt.Sprintf("unable to find season %d %s date in: [%s]", e.Season, e.Bound, strings.Join(dates, ", "))
}

func (e *DateResolutionError) Is(target error) bool {
	return target == ErrDateResolution
}
