package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fieldops/internal/adapter/persistence/memory"
	"fieldops/internal/domain/identifier"
	"fieldops/internal/usecase/interfaces"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedLatest string

func (f fixedLatest) LatestIdentifier(context.Context) (string, error) { return string(f), nil }

func TestIdentifierGenerator_Next(t *testing.T) {
	at := time.Date(2025, 5, 14, 10, 0, 0, 0, time.UTC)

	t.Run("partition mode uses the partition counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counters := mock_interfaces.NewMockICounterRepository(ctrl)
		gen := NewIdentifierGenerator(identifier.ModePartition, counters, nil, nil)

		counters.EXPECT().Next(gomock.Any(), "SR#2505").Return(int64(1), nil)
		counters.EXPECT().Next(gomock.Any(), "RND#250514").Return(int64(12), nil)

		id, err := gen.Next(context.Background(), identifier.KindServiceRequest, at)
		if err != nil || id != "SR-2505-0001" {
			t.Fatalf("expected SR-2505-0001, got %q err=%v", id, err)
		}
		id, err = gen.Next(context.Background(), identifier.KindRendition, at)
		if err != nil || id != "RND-250514-012" {
			t.Fatalf("expected RND-250514-012, got %q err=%v", id, err)
		}
	})

	t.Run("global mode increments the latest identifier across partitions", func(t *testing.T) {
		gen := NewIdentifierGenerator(identifier.ModeGlobal, nil, fixedLatest("SR-2504-0041"), fixedLatest(""))

		id, err := gen.Next(context.Background(), identifier.KindServiceRequest, at)
		if err != nil || id != "SR-2505-0042" {
			t.Fatalf("expected SR-2505-0042, got %q err=%v", id, err)
		}
		id, err = gen.Next(context.Background(), identifier.KindRendition, at)
		if err != nil || id != "RND-250514-001" {
			t.Fatalf("expected RND-250514-001, got %q err=%v", id, err)
		}
	})

	t.Run("counter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counters := mock_interfaces.NewMockICounterRepository(ctrl)
		gen := NewIdentifierGenerator(identifier.ModePartition, counters, nil, nil)

		counters.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db"))

		if _, err := gen.Next(context.Background(), identifier.KindServiceRequest, at); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		gen := NewIdentifierGenerator(identifier.Mode("random"), nil, nil, nil)
		if _, err := gen.Next(context.Background(), identifier.KindServiceRequest, at); !errors.Is(err, identifier.ErrUnknownMode) {
			t.Fatalf("expected ErrUnknownMode, got %v", err)
		}
	})
}

func TestAllocateIdentifier(t *testing.T) {
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("retries on collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counters := mock_interfaces.NewMockICounterRepository(ctrl)
		gen := NewIdentifierGenerator(identifier.ModePartition, counters, nil, nil)

		gomock.InOrder(
			counters.EXPECT().Next(gomock.Any(), "SR#2505").Return(int64(1), nil),
			counters.EXPECT().Next(gomock.Any(), "SR#2505").Return(int64(2), nil),
		)

		var tried []string
		err := allocateIdentifier(context.Background(), gen, identifier.KindServiceRequest, at, func(id string) error {
			tried = append(tried, id)
			if id == "SR-2505-0001" {
				return interfaces.ErrDuplicateKey
			}
			return nil
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if len(tried) != 2 || tried[1] != "SR-2505-0002" {
			t.Fatalf("unexpected attempts: %v", tried)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		gen := NewIdentifierGenerator(identifier.ModeGlobal, nil, fixedLatest("SR-2505-0007"), nil)

		calls := 0
		err := allocateIdentifier(context.Background(), gen, identifier.KindServiceRequest, at, func(string) error {
			calls++
			return interfaces.ErrDuplicateKey
		})
		if !errors.Is(err, ErrDuplicateIdentifier) {
			t.Fatalf("expected ErrDuplicateIdentifier, got %v", err)
		}
		if calls != maxIdentifierAttempts {
			t.Fatalf("expected %d attempts, got %d", maxIdentifierAttempts, calls)
		}
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		gen := NewIdentifierGenerator(identifier.ModeGlobal, nil, fixedLatest(""), nil)

		calls := 0
		err := allocateIdentifier(context.Background(), gen, identifier.KindServiceRequest, at, func(string) error {
			calls++
			return errors.New("db")
		})
		if err == nil || err.Error() != "db" || calls != 1 {
			t.Fatalf("expected one db failure, got %v after %d calls", err, calls)
		}
	})
}

// Every caller reads the latest identifier before any of them has written, which is what
// concurrent creations do in global mode. The partition counter never hands out a number twice.
func TestIdentifierGenerator_Concurrent(t *testing.T) {
	at := time.Date(2025, 5, 14, 9, 0, 0, 0, time.UTC)
	const workers = 20

	issue := func(gen *IdentifierGenerator) map[string]int {
		var (
			mu   sync.Mutex
			wg   sync.WaitGroup
			seen = map[string]int{}
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := gen.Next(context.Background(), identifier.KindRendition, at)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				mu.Lock()
				seen[id]++
				mu.Unlock()
			}()
		}
		wg.Wait()
		return seen
	}

	t.Run("global mode duplicates", func(t *testing.T) {
		seen := issue(NewIdentifierGenerator(identifier.ModeGlobal, nil, nil, fixedLatest("RND-250514-004")))
		if len(seen) != 1 || seen["RND-250514-005"] != workers {
			t.Fatalf("expected every caller to get RND-250514-005, got %v", seen)
		}
	})

	t.Run("partition mode stays unique", func(t *testing.T) {
		seen := issue(NewIdentifierGenerator(identifier.ModePartition, memory.NewStore().Counters(), nil, nil))
		if len(seen) != workers {
			t.Fatalf("expected %d distinct folios, got %d: %v", workers, len(seen), seen)
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("folio %s issued %d times", id, n)
			}
		}
		if seen["RND-250514-001"] != 1 || seen["RND-250514-020"] != 1 {
			t.Fatalf("expected a contiguous sequence, got %v", seen)
		}
	})
}
