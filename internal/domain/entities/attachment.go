package entities

import "time"

// Attachment is metadata for a blob kept in the file store.
// URL is opaque to the domain: whatever the store returned at upload time.
type Attachment struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Comment is a free-text note left on a service request.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
