package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingActor      = errors.New("status change requires an actor")
	ErrEntityLocked      = errors.New("entity can no longer be modified")
)

// CreatedNotes is recorded on the history entry seeded at creation.
const CreatedNotes = "created"

// HistoryEntry is one immutable record of the status ledger.
type HistoryEntry struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	Notes     string    `json:"notes,omitempty"`
}

// StatusTransition is the explicit request to move an entity to another status.
type StatusTransition[S ~string] struct {
	To    S
	Actor string
	Notes string
}

func (t StatusTransition[S]) entry(now time.Time) (HistoryEntry, error) {
	if t.Actor == "" {
		return HistoryEntry{}, ErrMissingActor
	}
	return HistoryEntry{Status: string(t.To), ChangedBy: t.Actor, ChangedAt: now, Notes: t.Notes}, nil
}

// AppendHistory returns a new ledger with e appended. The input slice is never modified.
func AppendHistory(history []HistoryEntry, e HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, e)
}

// LastHistoryStatus returns the status of the newest ledger entry, or "" for an empty ledger.
func LastHistoryStatus(history []HistoryEntry) string {
	if len(history) == 0 {
		return ""
	}
	return history[len(history)-1].Status
}
