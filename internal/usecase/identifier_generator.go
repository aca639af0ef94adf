package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldops/internal/domain/identifier"
	"fieldops/internal/infrastructure/metrics"
	"fieldops/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// maxIdentifierAttempts bounds how many numbers a creation tries before giving up with
// ErrDuplicateIdentifier.
const maxIdentifierAttempts = 3

// ILatestIdentifierSource returns the identifier of the most recently created entity of
// one kind, or "" when there is none.
type ILatestIdentifierSource interface {
	LatestIdentifier(ctx context.Context) (string, error)
}

// IIdentifierGenerator issues request numbers and folios.
type IIdentifierGenerator interface {
	Next(ctx context.Context, kind identifier.Kind, at time.Time) (string, error)
}

type IdentifierGenerator struct {
	mode     identifier.Mode
	counters interfaces.ICounterRepository
	latest   map[identifier.Kind]ILatestIdentifierSource
}

var _ IIdentifierGenerator = (*IdentifierGenerator)(nil)

func NewIdentifierGenerator(
	mode identifier.Mode,
	counters interfaces.ICounterRepository,
	requests ILatestIdentifierSource,
	renditions ILatestIdentifierSource,
) *IdentifierGenerator {
	return &IdentifierGenerator{
		mode:     mode,
		counters: counters,
		latest: map[identifier.Kind]ILatestIdentifierSource{
			identifier.KindServiceRequest: requests,
			identifier.KindRendition:      renditions,
		},
	}
}

func (g *IdentifierGenerator) Mode() identifier.Mode { return g.mode }

func (g *IdentifierGenerator) Next(ctx context.Context, kind identifier.Kind, at time.Time) (string, error) {
	var (
		seq int64
		err error
	)
	switch g.mode {
	case identifier.ModeGlobal:
		seq, err = g.nextGlobal(ctx, kind)
	case identifier.ModePartition:
		seq, err = g.counters.Next(ctx, identifier.CounterKey(kind, at))
	default:
		err = fmt.Errorf("%w: %q", identifier.ErrUnknownMode, g.mode)
	}
	if err != nil {
		return "", err
	}
	metrics.IdentifiersIssued.WithLabelValues(string(kind), string(g.mode)).Inc()
	return identifier.Format(kind, at, seq), nil
}

// nextGlobal increments the trailing number of the latest identifier of kind regardless of
// its partition. Two callers reading the same latest record get the same number.
func (g *IdentifierGenerator) nextGlobal(ctx context.Context, kind identifier.Kind) (int64, error) {
	src, ok := g.latest[kind]
	if !ok || src == nil {
		return 0, fmt.Errorf("no identifier source for kind %s", kind)
	}
	last, err := src.LatestIdentifier(ctx)
	if err != nil {
		return 0, err
	}
	n, ok := identifier.ParseSequence(last)
	if !ok {
		return 1, nil
	}
	return n + 1, nil
}

// allocateIdentifier draws identifiers until create succeeds or the attempts run out.
// create must return interfaces.ErrDuplicateKey when the identifier is already taken.
func allocateIdentifier(ctx context.Context, ids IIdentifierGenerator, kind identifier.Kind, at time.Time, create func(id string) error) error {
	for attempt := 1; attempt <= maxIdentifierAttempts; attempt++ {
		id, err := ids.Next(ctx, kind, at)
		if err != nil {
			return err
		}
		err = create(id)
		if err == nil {
			return nil
		}
		if !errors.Is(err, interfaces.ErrDuplicateKey) {
			return err
		}
		metrics.IdentifierCollisions.WithLabelValues(string(kind)).Inc()
		log.Printf("[identifier][usecase] collision kind=%s id=%s attempt=%d", kind, id, attempt)
	}
	return ErrDuplicateIdentifier
}
