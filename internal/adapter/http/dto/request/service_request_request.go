package request

import (
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type ServiceRequestRequest struct {
	ProjectID     string           `json:"project" binding:"required"`
	Title         string           `json:"title" binding:"required"`
	Description   string           `json:"description" binding:"required"`
	Priority      string           `json:"priority"`
	RequestType   string           `json:"request_type"`
	Location      *LocationRequest `json:"location"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
}

func (r ServiceRequestRequest) ToInput() (usecase.ServiceRequestInput, error) {
	loc, err := r.Location.ToSiteLocation()
	if err != nil {
		return usecase.ServiceRequestInput{}, err
	}
	return usecase.ServiceRequestInput{
		ProjectID:     r.ProjectID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      entities.Priority(r.Priority),
		RequestType:   entities.RequestType(r.RequestType),
		Location:      loc,
		ScheduledDate: r.ScheduledDate,
	}, nil
}

type UpdateServiceRequestRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Priority      *string          `json:"priority"`
	RequestType   *string          `json:"request_type"`
	Location      *LocationRequest `json:"location"`
	ScheduledDate *time.Time       `json:"scheduled_date"`
	AssignedTo    *string          `json:"assigned_to"`
}

func (r UpdateServiceRequestRequest) ToInput() (usecase.ServiceRequestUpdate, error) {
	loc, err := r.Location.ToSiteLocation()
	if err != nil {
		return usecase.ServiceRequestUpdate{}, err
	}
	in := usecase.ServiceRequestUpdate{
		Title:         r.Title,
		Description:   r.Description,
		Location:      loc,
		ScheduledDate: r.ScheduledDate,
		AssignedTo:    r.AssignedTo,
	}
	if r.Priority != nil {
		p := entities.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.RequestType != nil {
		t := entities.RequestType(*r.RequestType)
		in.RequestType = &t
	}
	return in, nil
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}
