package request

import (
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type MaterialRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type WorkDetailsRequest struct {
	StartTime     *time.Time        `json:"start_time"`
	EndTime       *time.Time        `json:"end_time"`
	MaterialsUsed []MaterialRequest `json:"materials_used"`
	WorkPerformed string            `json:"work_performed"`
}

func (r WorkDetailsRequest) ToWorkDetails() entities.WorkDetails {
	materials := make([]entities.Material, 0, len(r.MaterialsUsed))
	for _, m := range r.MaterialsUsed {
		materials = append(materials, entities.Material{Name: m.Name, Quantity: m.Quantity, Unit: m.Unit})
	}
	return entities.WorkDetails{
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		MaterialsUsed: materials,
		WorkPerformed: r.WorkPerformed,
	}
}

type RenditionRequest struct {
	ServiceRequestID string             `json:"service_request" binding:"required"`
	Description      string             `json:"description" binding:"required"`
	WorkDetails      WorkDetailsRequest `json:"work_details"`
	Location         *LocationRequest   `json:"location"`
	Offline          bool               `json:"offline"`
}

func (r RenditionRequest) ToInput() (usecase.RenditionInput, error) {
	loc, err := r.Location.ToSiteLocation()
	if err != nil {
		return usecase.RenditionInput{}, err
	}
	return usecase.RenditionInput{
		ServiceRequestID: r.ServiceRequestID,
		Description:      r.Description,
		WorkDetails:      r.WorkDetails.ToWorkDetails(),
		Location:         loc,
		Offline:          r.Offline,
	}, nil
}

type UpdateRenditionRequest struct {
	Description *string             `json:"description"`
	WorkDetails *WorkDetailsRequest `json:"work_details"`
	Location    *LocationRequest    `json:"location"`
}

func (r UpdateRenditionRequest) ToInput() (usecase.RenditionUpdate, error) {
	loc, err := r.Location.ToSiteLocation()
	if err != nil {
		return usecase.RenditionUpdate{}, err
	}
	in := usecase.RenditionUpdate{Description: r.Description, Location: loc}
	if r.WorkDetails != nil {
		wd := r.WorkDetails.ToWorkDetails()
		in.WorkDetails = &wd
	}
	return in, nil
}

type ApproveRequest struct {
	Comments string `json:"comments"`
}

type RejectRequest struct {
	Reason   string `json:"rejection_reason" binding:"required"`
	Comments string `json:"rejection_comments"`
}

// ExpenseRequest is bound from a multipart form; the proof file travels under "payment_proof".
type ExpenseRequest struct {
	Category    string  `form:"category" json:"category" binding:"required"`
	Amount      float64 `form:"amount" json:"amount" binding:"required"`
	Description string  `form:"description" json:"description"`
}

func (r ExpenseRequest) ToInput() usecase.ExpenseInput {
	return usecase.ExpenseInput{
		Category:    strings.TrimSpace(r.Category),
		Amount:      r.Amount,
		Description: r.Description,
	}
}

type ExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
