package entities

import "time"

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// RelatedModel tags the kind of entity a notification points at.
type RelatedModel string

const (
	RelatedProject        RelatedModel = "Project"
	RelatedServiceRequest RelatedModel = "ServiceRequest"
	RelatedRendition      RelatedModel = "Rendition"
	RelatedUser           RelatedModel = "User"
)

type RelatedTo struct {
	Model RelatedModel `json:"model"`
	ID    string       `json:"id"`
}

// Notification is a message for one recipient. It is only ever created by the dispatcher
// and never feeds back into business state.
type Notification struct {
	ID        string           `json:"id"`
	Recipient string           `json:"recipient"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
	RelatedTo *RelatedTo       `json:"related_to,omitempty"`
	Link      string           `json:"link,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
