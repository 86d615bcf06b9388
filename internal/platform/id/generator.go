package id

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/rugby-ingest/internal/domain/ingest"
)

const uidLength = 16

// UID derives a stable id from natural keys. Keys are compared in their
// sorted string form, so the caller's key order never changes the result.
func UID(keys ...any) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: uid keys cannot be empty", ingest.ErrInvalidInput)
	}

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprint(key))
	}
	sort.Strings(parts)

	sum := sha256.Sum256([]byte(strings.Join(parts, "_")))
	return hex.EncodeToString(sum[:])[:uidLength], nil
}
