package usecase

import (
	"fmt"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

const (
	maxStarterJersey     = 15
	replacementThreshold = 20
)

var positionNames = map[int64]string{
	0:  "default",
	1:  "fullback",
	2:  "wing",
	3:  "centre",
	4:  "fly-half",
	5:  "scrum-half",
	6:  "prop",
	7:  "hooker",
	8:  "lock",
	9:  "flanker",
	10: "no. 8",
	20: "replacement",
	30: "back",
	31: "utility back",
	32: "three-quarters",
	33: "extra back",
	34: "outside back",
	35: "five-eighth",
	36: "outside-half",
	37: "halfback",
	38: "inside-half",
	40: "forward",
	41: "utility forward",
	42: "front-row",
	43: "second-row",
	44: "wing-forward",
	45: "back-row",
	46: "forwards",
	47: "backs",
	48: "tight-five",
	49: "loose-forwards",
	50: "full-back",
	51: "three-quarters",
	52: "halves",
	53: "reserve",
}

// positionName maps an upstream position code. The table is closed; an
// unknown code fails the run.
func positionName(code int64) (string, error) {
	name, ok := positionNames[code]
	if !ok {
		return "", fmt.Errorf("%w: unknown position code %d", ingest.ErrResolution, code)
	}
	return name, nil
}

func isFirstChoice(jersey, positionCode int64) bool {
	return jersey <= maxStarterJersey || positionCode < replacementThreshold
}
