// Package identifier formats and parses the human-readable numbers given to service
// requests (SR-YYMM-NNNN) and renditions (RND-YYMMDD-NNN).
package identifier

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownMode = errors.New("unknown identifier mode")

type Kind string

const (
	KindServiceRequest Kind = "SR"
	KindRendition      Kind = "RND"
)

// Mode selects how the next sequence number is obtained.
type Mode string

const (
	// ModeGlobal reads the most recently created entity of the kind, with no partition
	// filter, and increments its trailing number. Concurrent creations can collide and the
	// sequence does not restart when the partition changes.
	ModeGlobal Mode = "global"
	// ModePartition increments an atomic counter keyed by (kind, partition).
	ModePartition Mode = "partition"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeGlobal:
		return ModeGlobal, nil
	case ModePartition, "":
		return ModePartition, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Partition returns the time bucket for kind: YYMM for requests, YYMMDD for renditions.
func Partition(kind Kind, t time.Time) string {
	yy := t.Year() % 100
	if kind == KindRendition {
		return fmt.Sprintf("%02d%02d%02d", yy, int(t.Month()), t.Day())
	}
	return fmt.Sprintf("%02d%02d", yy, int(t.Month()))
}

// CounterKey is the storage key of the partition counter, e.g. "SR#2505".
func CounterKey(kind Kind, t time.Time) string {
	return string(kind) + "#" + Partition(kind, t)
}

func width(kind Kind) int {
	if kind == KindRendition {
		return 3
	}
	return 4
}

// Format renders an identifier. Sequences wider than the pad width are printed in full.
func Format(kind Kind, t time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%0*d", kind, Partition(kind, t), width(kind), seq)
}

// ParseSequence extracts the trailing numeric segment of an identifier.
func ParseSequence(id string) (int64, bool) {
	i := strings.LastIndex(id, "-")
	if i < 0 || i == len(id)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
