package usecase

import (
	"context"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/infrastructure/metrics"
	"fieldops/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// publish hands e to the notification pipeline. The mutation that produced e has already
// been committed, so a failure here is logged and counted but never returned.
func publish(ctx context.Context, pub interfaces.IEventPublisher, e entities.Event) {
	if pub == nil {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := pub.Publish(ctx, e); err != nil {
		metrics.EventsPublished.WithLabelValues(string(e.Kind), "error").Inc()
		log.WithFields(log.Fields{
			"kind":    e.Kind,
			"subject": e.Subject.ID,
			"actor":   e.ActorID,
		}).Errorf("[events][usecase] publish failed err=%v", err)
		return
	}
	metrics.EventsPublished.WithLabelValues(string(e.Kind), "ok").Inc()
}

func projectEvent(kind entities.EventKind, actor string, p entities.Project, at time.Time) entities.Event {
	return entities.Event{
		Kind:              kind,
		ActorID:           actor,
		OccurredAt:        at,
		Subject:           entities.RelatedTo{Model: entities.RelatedProject, ID: p.ID},
		ProjectID:         p.ID,
		ProjectName:       p.Name,
		ProjectTechnician: p.Technician,
		ProjectClients:    append([]string(nil), p.Clients...),
	}
}

func requestEvent(kind entities.EventKind, actor string, sr entities.ServiceRequest, p entities.Project, at time.Time) entities.Event {
	e := projectEvent(kind, actor, p, at)
	e.Subject = entities.RelatedTo{Model: entities.RelatedServiceRequest, ID: sr.ID}
	e.RequestNumber = sr.RequestNumber
	e.RequestTitle = sr.Title
	e.RequesterID = sr.RequestedBy
	e.AssigneeID = sr.AssignedTo
	e.NewStatus = string(sr.Status)
	return e
}

func renditionEvent(kind entities.EventKind, actor string, r entities.Rendition, sr entities.ServiceRequest, at time.Time) entities.Event {
	e := entities.Event{
		Kind:                kind,
		ActorID:             actor,
		OccurredAt:          at,
		Subject:             entities.RelatedTo{Model: entities.RelatedRendition, ID: r.ID},
		ProjectID:           r.ProjectID,
		RequestNumber:       sr.RequestNumber,
		RequestTitle:        sr.Title,
		RequesterID:         sr.RequestedBy,
		AssigneeID:          sr.AssignedTo,
		Folio:               r.Folio,
		RenditionTechnician: r.Technician,
		NewStatus:           string(r.Status),
	}
	if kind == entities.EventRenditionRejected {
		e.Reason = string(r.RejectionReason)
	}
	return e
}
