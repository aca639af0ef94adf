package entities

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrInvalidExpense       = errors.New("expense requires a category and an amount greater than zero")
	ErrRejectionIncomplete  = errors.New("rejection requires a valid reason and comments")
	ErrInvalidWorkTimeRange = errors.New("work end time is before start time")
)

type RenditionStatus string

const (
	RenditionStatusPending     RenditionStatus = "Pendiente"
	RenditionStatusSubmitted   RenditionStatus = "Enviada"
	RenditionStatusUnderReview RenditionStatus = "En revisión"
	RenditionStatusApproved    RenditionStatus = "Aprobada"
	RenditionStatusRejected    RenditionStatus = "Rechazada"
)

var renditionTransitions = map[RenditionStatus][]RenditionStatus{
	RenditionStatusPending:     {RenditionStatusSubmitted},
	RenditionStatusSubmitted:   {RenditionStatusUnderReview},
	RenditionStatusUnderReview: {RenditionStatusApproved, RenditionStatusRejected},
}

func (s RenditionStatus) Valid() bool {
	switch s {
	case RenditionStatusPending, RenditionStatusSubmitted, RenditionStatusUnderReview, RenditionStatusApproved, RenditionStatusRejected:
		return true
	}
	return false
}

func (s RenditionStatus) CanTransition(to RenditionStatus) bool {
	return slices.Contains(renditionTransitions[s], to)
}

// Decided reports whether an admin already approved or rejected the rendition.
func (s RenditionStatus) Decided() bool {
	return s == RenditionStatusApproved || s == RenditionStatusRejected
}

type RejectionReason string

const (
	RejectionMissingDocuments  RejectionReason = "Falta documentación"
	RejectionWrongAmounts      RejectionReason = "Montos incorrectos"
	RejectionWrongCategory     RejectionReason = "Categoría incorrecta"
	RejectionDuplicate         RejectionReason = "Duplicado"
	RejectionUnauthorizedSpend RejectionReason = "Gastos no autorizados"
	RejectionOther             RejectionReason = "Otros"
)

func (r RejectionReason) Valid() bool {
	switch r {
	case RejectionMissingDocuments, RejectionWrongAmounts, RejectionWrongCategory,
		RejectionDuplicate, RejectionUnauthorizedSpend, RejectionOther:
		return true
	}
	return false
}

type Material struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type WorkDetails struct {
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	MaterialsUsed []Material `json:"materials_used"`
	WorkPerformed string     `json:"work_performed,omitempty"`
}

func (w WorkDetails) Validate() error {
	if w.StartTime != nil && w.EndTime != nil && w.EndTime.Before(*w.StartTime) {
		return ErrInvalidWorkTimeRange
	}
	return nil
}

type Expense struct {
	ID           string      `json:"id"`
	Category     string      `json:"category"`
	Amount       float64     `json:"amount"`
	Description  string      `json:"description,omitempty"`
	PaymentProof *Attachment `json:"payment_proof,omitempty"`
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Category) == "" || e.Amount <= 0 {
		return ErrInvalidExpense
	}
	return nil
}

// Rendition is an expense/work report submitted by a technician against a service request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (kind-created_at-index): kind, created_at  (latest rendition lookup)
//   - folio is unique, guarded by the identifiers table
//
// Once decided (approved or rejected) the author can no longer modify it.
type Rendition struct {
	ID                string          `json:"id"`
	Folio             string          `json:"folio"`
	ServiceRequestID  string          `json:"service_request"`
	ProjectID         string          `json:"project"`
	Description       string          `json:"description"`
	Technician        string          `json:"technician"`
	Status            RenditionStatus `json:"status"`
	Location          *SiteLocation   `json:"location,omitempty"`
	WorkDetails       WorkDetails     `json:"work_details"`
	Expenses          []Expense       `json:"expenses"`
	Attachments       []Attachment    `json:"attachments"`
	ReviewedBy        string          `json:"reviewed_by,omitempty"`
	ReviewDate        *time.Time      `json:"review_date,omitempty"`
	ReviewComments    string          `json:"review_comments,omitempty"`
	RejectionReason   RejectionReason `json:"rejection_reason,omitempty"`
	RejectionComments string          `json:"rejection_comments,omitempty"`
	Offline           bool            `json:"offline"`
	SyncedAt          *time.Time      `json:"synced_at,omitempty"`
	History           []HistoryEntry  `json:"history"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (r *Rendition) Seed(creator string, now time.Time) {
	if r.Status == "" {
		r.Status = RenditionStatusPending
	}
	r.History = AppendHistory(nil, HistoryEntry{
		Status:    string(r.Status),
		ChangedBy: creator,
		ChangedAt: now,
		Notes:     CreatedNotes,
	})
	r.CreatedAt = now
	r.UpdatedAt = now
}

func (r Rendition) IsLocked() bool {
	return r.Status.Decided()
}

func (r Rendition) TotalAmount() float64 {
	var total float64
	for _, e := range r.Expenses {
		total += e.Amount
	}
	return total
}

// Transition applies a legal status change and appends it to the ledger.
func (r *Rendition) Transition(t StatusTransition[RenditionStatus], now time.Time) (HistoryEntry, error) {
	if !r.Status.CanTransition(t.To) {
		return HistoryEntry{}, ErrInvalidTransition
	}
	e, err := t.entry(now)
	if err != nil {
		return HistoryEntry{}, err
	}
	r.Status = t.To
	r.History = AppendHistory(r.History, e)
	r.UpdatedAt = now
	return e, nil
}

// MarkSubmitted moves a pending rendition to submitted after the author first touches it.
// It reports false for any other status.
func (r *Rendition) MarkSubmitted(actor string, now time.Time) (bool, error) {
	if r.Status != RenditionStatusPending {
		return false, nil
	}
	_, err := r.Transition(StatusTransition[RenditionStatus]{To: RenditionStatusSubmitted, Actor: actor}, now)
	return err == nil, err
}

// Approve records the admin decision. The rendition must be under review.
func (r *Rendition) Approve(reviewer, comments string, now time.Time) error {
	if _, err := r.Transition(StatusTransition[RenditionStatus]{To: RenditionStatusApproved, Actor: reviewer, Notes: comments}, now); err != nil {
		return err
	}
	r.setReview(reviewer, comments, now)
	return nil
}

// Reject records the admin decision. Reason and comments are required together.
func (r *Rendition) Reject(reviewer string, reason RejectionReason, comments string, now time.Time) error {
	if !reason.Valid() || strings.TrimSpace(comments) == "" {
		return ErrRejectionIncomplete
	}
	if _, err := r.Transition(StatusTransition[RenditionStatus]{To: RenditionStatusRejected, Actor: reviewer, Notes: comments}, now); err != nil {
		return err
	}
	r.setReview(reviewer, "", now)
	r.RejectionReason = reason
	r.RejectionComments = comments
	return nil
}

func (r *Rendition) setReview(reviewer, comments string, now time.Time) {
	reviewed := now
	r.ReviewedBy = reviewer
	r.ReviewDate = &reviewed
	r.ReviewComments = comments
}
