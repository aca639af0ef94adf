package identifier

import (
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	may := time.Date(2025, time.May, 7, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		kind Kind
		at   time.Time
		seq  int64
		want string
	}{
		{"request first", KindServiceRequest, may, 1, "SR-2505-0001"},
		{"request padded", KindServiceRequest, may, 42, "SR-2505-0042"},
		{"request overflow", KindServiceRequest, may, 12345, "SR-2505-12345"},
		{"rendition first", KindRendition, may, 1, "RND-250507-001"},
		{"rendition overflow", KindRendition, may, 1000, "RND-250507-1000"},
		{"year 2100", KindServiceRequest, time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC), 3, "SR-0001-0003"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.kind, tc.at, tc.seq); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseSequence(t *testing.T) {
	cases := map[string]int64{
		"SR-2505-0001":   1,
		"RND-250507-013": 13,
		"SR-2412-12345":  12345,
	}
	for in, want := range cases {
		got, ok := ParseSequence(in)
		if !ok || got != want {
			t.Fatalf("%s: expected %d, got %d ok=%v", in, want, got, ok)
		}
	}
	for _, bad := range []string{"", "SR-2505-", "SR2505", "SR-2505-abc"} {
		if _, ok := ParseSequence(bad); ok {
			t.Fatalf("%q: expected parse failure", bad)
		}
	}
}

func TestCounterKeyAndMode(t *testing.T) {
	at := time.Date(2025, time.May, 31, 23, 0, 0, 0, time.UTC)
	if k := CounterKey(KindRendition, at); k != "RND#250531" {
		t.Fatalf("unexpected key %s", k)
	}
	if k := CounterKey(KindServiceRequest, at); k != "SR#2505" {
		t.Fatalf("unexpected key %s", k)
	}

	if m, err := ParseMode(""); err != nil || m != ModePartition {
		t.Fatalf("expected partition default, got %s %v", m, err)
	}
	if m, err := ParseMode(" GLOBAL "); err != nil || m != ModeGlobal {
		t.Fatalf("expected global, got %s %v", m, err)
	}
	if _, err := ParseMode("random"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}
