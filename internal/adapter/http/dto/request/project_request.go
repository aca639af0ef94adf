package request

import (
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type ProjectRequest struct {
	Name                 string     `json:"name" binding:"required"`
	Location             string     `json:"location" binding:"required"`
	Description          string     `json:"description"`
	OrderNumber          string     `json:"order_number"`
	IdentificationNumber string     `json:"identification_number"`
	ReceptionType        string     `json:"reception_type"`
	CompanyResponsible   string     `json:"company_responsible"`
	ClientContactName    string     `json:"client_contact_name"`
	ClientCompanyName    string     `json:"client_company_name"`
	CostCenter           string     `json:"cost_center"`
	Technician           string     `json:"technician"`
	Clients              []string   `json:"clients"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
}

func (r ProjectRequest) ToInput() usecase.ProjectInput {
	return usecase.ProjectInput{
		Name:                 r.Name,
		Location:             r.Location,
		Description:          r.Description,
		OrderNumber:          r.OrderNumber,
		IdentificationNumber: r.IdentificationNumber,
		ReceptionType:        entities.ReceptionType(r.ReceptionType),
		CompanyResponsible:   r.CompanyResponsible,
		ClientContactName:    r.ClientContactName,
		ClientCompanyName:    r.ClientCompanyName,
		CostCenter:           r.CostCenter,
		Technician:           r.Technician,
		Clients:              r.Clients,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
	}
}

type AssignTechnicianRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

type AddClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

// StatusRequest serves project, service request and rendition status changes.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// MilestoneRequest is bound from a multipart form; files travel under "attachments".
type MilestoneRequest struct {
	Title       string `form:"title" json:"title" binding:"required"`
	Description string `form:"description" json:"description"`
}

type PhotoRequest struct {
	Description string `form:"description"`
}

type LocationPointRequest struct {
	Name        string    `json:"name" binding:"required"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Coordinates []float64 `json:"coordinates" binding:"required"`
}

func (r LocationPointRequest) ToInput() (usecase.LocationPointInput, error) {
	if len(r.Coordinates) == 0 {
		return usecase.LocationPointInput{}, ErrInvalidCoordinates
	}
	p, err := point(r.Coordinates[0], r.Coordinates[1:]...)
	if err != nil {
		return usecase.LocationPointInput{}, err
	}
	pointType := entities.LocationPointType(r.Type)
	if pointType == "" {
		pointType = entities.LocationPointOther
	}
	return usecase.LocationPointInput{
		Name:        r.Name,
		Type:        pointType,
		Description: r.Description,
		Longitude:   p.Lon(),
		Latitude:    p.Lat(),
	}, nil
}
