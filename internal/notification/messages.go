package notification

import (
	"fmt"

	"fieldops/internal/domain/entities"
)

// Draft is a notification before a recipient-specific id and timestamp are assigned.
type Draft struct {
	Recipient string
	Title     string
	Message   string
	Type      entities.NotificationType
	RelatedTo entities.RelatedTo
	Link      string
}

// compose turns an event into one draft per interested recipient. admins is only consulted
// for kinds that notify every admin.
func compose(e entities.Event, admins []string) []Draft {
	var out []Draft
	add := func(recipient, title, message string, typ entities.NotificationType) {
		if recipient == "" {
			return
		}
		out = append(out, Draft{
			Recipient: recipient,
			Title:     title,
			Message:   message,
			Type:      typ,
			RelatedTo: e.Subject,
			Link:      linkFor(e.Subject),
		})
	}

	switch e.Kind {
	case entities.EventProjectAssigned:
		if e.Role == entities.RoleTechnician {
			add(e.TargetUserID, "Asignación a nuevo proyecto",
				fmt.Sprintf("Has sido asignado como técnico al proyecto: %s", e.ProjectName), entities.NotificationInfo)
		} else {
			add(e.TargetUserID, "Acceso a nuevo proyecto",
				fmt.Sprintf("Se te ha dado acceso al proyecto: %s", e.ProjectName), entities.NotificationInfo)
		}

	case entities.EventProjectStatusChanged:
		msg := fmt.Sprintf("El proyecto %s ha cambiado de estado: %s → %s", e.ProjectName, e.PreviousStatus, e.NewStatus)
		add(e.ProjectTechnician, "Actualización de estado de proyecto", msg, entities.NotificationInfo)
		for _, c := range e.ProjectClients {
			add(c, "Actualización de estado de proyecto", msg, entities.NotificationInfo)
		}

	case entities.EventMilestoneAdded:
		msg := fmt.Sprintf("Se ha agregado un nuevo hito %q al proyecto %q", e.MilestoneTitle, e.ProjectName)
		for _, c := range e.ProjectClients {
			add(c, "Nuevo hito en proyecto", msg, entities.NotificationInfo)
		}
		if e.ProjectTechnician != e.ActorID {
			add(e.ProjectTechnician, "Nuevo hito en proyecto", msg, entities.NotificationInfo)
		}

	case entities.EventRequestCreated:
		msg := fmt.Sprintf("Se ha creado una nueva solicitud: %s - %s", e.RequestNumber, e.RequestTitle)
		for _, a := range admins {
			add(a, "Nueva solicitud de servicio", msg, entities.NotificationInfo)
		}
		add(e.ProjectTechnician, "Nueva solicitud en tu proyecto", msg, entities.NotificationInfo)

	case entities.EventRequestAssigned:
		add(e.TargetUserID, "Nueva asignación de solicitud",
			fmt.Sprintf("Se le ha asignado la solicitud %s: %s", e.RequestNumber, e.RequestTitle), entities.NotificationInfo)

	case entities.EventRequestStatusChanged:
		add(e.RequesterID, "Actualización de solicitud",
			fmt.Sprintf("Su solicitud %s ha cambiado de estado: %s -> %s", e.RequestNumber, e.PreviousStatus, e.NewStatus), entities.NotificationInfo)
		if e.AssigneeID != e.ActorID {
			add(e.AssigneeID, "Actualización de solicitud asignada",
				fmt.Sprintf("La solicitud %s ha cambiado de estado: %s -> %s", e.RequestNumber, e.PreviousStatus, e.NewStatus), entities.NotificationInfo)
		}

	case entities.EventRequestCommentAdded:
		msg := fmt.Sprintf("Se ha agregado un nuevo comentario a la solicitud %s", e.RequestNumber)
		if e.RequesterID != e.ActorID {
			add(e.RequesterID, "Nuevo comentario en solicitud", msg, entities.NotificationInfo)
		}
		if e.AssigneeID != e.ActorID && e.AssigneeID != e.RequesterID {
			add(e.AssigneeID, "Nuevo comentario en solicitud", msg, entities.NotificationInfo)
		}

	case entities.EventRenditionCreated:
		msg := fmt.Sprintf("Se ha creado una nueva rendición: %s para la solicitud %s", e.Folio, e.RequestNumber)
		for _, a := range admins {
			add(a, "Nueva rendición para revisar", msg, entities.NotificationInfo)
		}

	case entities.EventRenditionApproved:
		add(e.RenditionTechnician, "Rendición aprobada",
			fmt.Sprintf("Su rendición %s ha sido aprobada", e.Folio), entities.NotificationSuccess)

	case entities.EventRenditionRejected:
		add(e.RenditionTechnician, "Rendición rechazada",
			fmt.Sprintf("Su rendición %s ha sido rechazada: %s", e.Folio, e.Reason), entities.NotificationError)
	}
	return out
}

// needsAdmins reports whether compose must be given the admin list for e.
func needsAdmins(k entities.EventKind) bool {
	return k == entities.EventRequestCreated || k == entities.EventRenditionCreated
}

func linkFor(s entities.RelatedTo) string {
	switch s.Model {
	case entities.RelatedProject:
		return "/projects/" + s.ID
	case entities.RelatedServiceRequest:
		return "/service-requests/" + s.ID
	case entities.RelatedRendition:
		return "/renditions/" + s.ID
	case entities.RelatedUser:
		return "/users/" + s.ID
	}
	return ""
}
