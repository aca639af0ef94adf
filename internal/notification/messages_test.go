package notification

import (
	"slices"
	"testing"

	"fieldops/internal/domain/entities"
)

func recipients(drafts []Draft) []string {
	out := make([]string, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, d.Recipient)
	}
	return out
}

func TestCompose_Recipients(t *testing.T) {
	admins := []string{"admin-1", "admin-2"}
	tests := []struct {
		name  string
		event entities.Event
		want  []string
	}{
		{
			name:  "project assigned notifies the assigned user",
			event: entities.Event{Kind: entities.EventProjectAssigned, TargetUserID: "tech-1", Role: entities.RoleTechnician},
			want:  []string{"tech-1"},
		},
		{
			name: "project status changed notifies technician and clients",
			event: entities.Event{
				Kind:              entities.EventProjectStatusChanged,
				ActorID:           "admin-1",
				ProjectTechnician: "tech-1",
				ProjectClients:    []string{"c1", "c2"},
			},
			want: []string{"tech-1", "c1", "c2"},
		},
		{
			name: "milestone skips a technician who added it",
			event: entities.Event{
				Kind:              entities.EventMilestoneAdded,
				ActorID:           "tech-1",
				ProjectTechnician: "tech-1",
				ProjectClients:    []string{"c1"},
			},
			want: []string{"c1"},
		},
		{
			name:  "request created notifies admins and project technician",
			event: entities.Event{Kind: entities.EventRequestCreated, ActorID: "c1", ProjectTechnician: "tech-1"},
			want:  []string{"admin-1", "admin-2", "tech-1"},
		},
		{
			name:  "request assigned notifies the new assignee",
			event: entities.Event{Kind: entities.EventRequestAssigned, TargetUserID: "tech-2"},
			want:  []string{"tech-2"},
		},
		{
			name:  "status change by assignee notifies requester only",
			event: entities.Event{Kind: entities.EventRequestStatusChanged, ActorID: "tech-1", RequesterID: "c1", AssigneeID: "tech-1"},
			want:  []string{"c1"},
		},
		{
			name:  "status change by admin notifies requester and assignee",
			event: entities.Event{Kind: entities.EventRequestStatusChanged, ActorID: "admin-1", RequesterID: "c1", AssigneeID: "tech-1"},
			want:  []string{"c1", "tech-1"},
		},
		{
			name:  "comment excludes its author",
			event: entities.Event{Kind: entities.EventRequestCommentAdded, ActorID: "c1", RequesterID: "c1", AssigneeID: "tech-1"},
			want:  []string{"tech-1"},
		},
		{
			name:  "comment on self-assigned request is not duplicated",
			event: entities.Event{Kind: entities.EventRequestCommentAdded, ActorID: "admin-1", RequesterID: "tech-1", AssigneeID: "tech-1"},
			want:  []string{"tech-1"},
		},
		{
			name:  "rendition created notifies every admin",
			event: entities.Event{Kind: entities.EventRenditionCreated, ActorID: "tech-1"},
			want:  []string{"admin-1", "admin-2"},
		},
		{
			name:  "rendition approved notifies its technician",
			event: entities.Event{Kind: entities.EventRenditionApproved, RenditionTechnician: "tech-1"},
			want:  []string{"tech-1"},
		},
		{
			name:  "unassigned request skips empty assignee",
			event: entities.Event{Kind: entities.EventRequestStatusChanged, ActorID: "admin-1", RequesterID: "c1"},
			want:  []string{"c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recipients(compose(tt.event, admins))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompose_Texts(t *testing.T) {
	t.Run("rejection carries reason and error type", func(t *testing.T) {
		drafts := compose(entities.Event{
			Kind:                entities.EventRenditionRejected,
			Subject:             entities.RelatedTo{Model: entities.RelatedRendition, ID: "r-1"},
			RenditionTechnician: "tech-1",
			Folio:               "RND-250517-001",
			Reason:              "Montos incorrectos",
		}, nil)
		if len(drafts) != 1 {
			t.Fatalf("expected 1 draft, got %d", len(drafts))
		}
		d := drafts[0]
		if d.Type != entities.NotificationError {
			t.Fatalf("expected error type, got %s", d.Type)
		}
		if d.Message != "Su rendición RND-250517-001 ha sido rechazada: Montos incorrectos" {
			t.Fatalf("unexpected message %q", d.Message)
		}
		if d.Link != "/renditions/r-1" {
			t.Fatalf("unexpected link %q", d.Link)
		}
	})

	t.Run("client access uses the access title", func(t *testing.T) {
		drafts := compose(entities.Event{
			Kind:         entities.EventProjectAssigned,
			Subject:      entities.RelatedTo{Model: entities.RelatedProject, ID: "p-1"},
			TargetUserID: "c1",
			Role:         entities.RoleClient,
			ProjectName:  "Planta Norte",
		}, nil)
		if drafts[0].Title != "Acceso a nuevo proyecto" {
			t.Fatalf("unexpected title %q", drafts[0].Title)
		}
		if drafts[0].Message != "Se te ha dado acceso al proyecto: Planta Norte" {
			t.Fatalf("unexpected message %q", drafts[0].Message)
		}
	})

	t.Run("request status message shows both states", func(t *testing.T) {
		drafts := compose(entities.Event{
			Kind:           entities.EventRequestStatusChanged,
			Subject:        entities.RelatedTo{Model: entities.RelatedServiceRequest, ID: "sr-1"},
			RequesterID:    "c1",
			RequestNumber:  "SR-2505-0001",
			PreviousStatus: "Aceptada",
			NewStatus:      "Finalizada",
		}, nil)
		if drafts[0].Message != "Su solicitud SR-2505-0001 ha cambiado de estado: Aceptada -> Finalizada" {
			t.Fatalf("unexpected message %q", drafts[0].Message)
		}
		if drafts[0].RelatedTo.ID != "sr-1" || drafts[0].Link != "/service-requests/sr-1" {
			t.Fatalf("unexpected reference %+v %q", drafts[0].RelatedTo, drafts[0].Link)
		}
	})
}
