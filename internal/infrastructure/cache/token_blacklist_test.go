package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	b := NewMemoryTokenBlacklist()
	b.now = func() time.Time { return now }

	t.Run("unknown token is not revoked", func(t *testing.T) {
		revoked, err := b.IsRevoked(ctx, "jti-0")
		if err != nil || revoked {
			t.Fatalf("expected not revoked, got %v %v", revoked, err)
		}
	})

	t.Run("revoked until ttl elapses", func(t *testing.T) {
		if err := b.Revoke(ctx, "jti-1", time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked, _ := b.IsRevoked(ctx, "jti-1"); !revoked {
			t.Fatalf("expected revoked")
		}
		now = now.Add(2 * time.Hour)
		if revoked, _ := b.IsRevoked(ctx, "jti-1"); revoked {
			t.Fatalf("expected expiry to clear the revocation")
		}
	})

	t.Run("non-positive ttl is ignored", func(t *testing.T) {
		_ = b.Revoke(ctx, "jti-2", 0)
		if revoked, _ := b.IsRevoked(ctx, "jti-2"); revoked {
			t.Fatalf("expected an expired token not to be stored")
		}
	})
}
