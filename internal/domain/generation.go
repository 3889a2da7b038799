package domain

import "time"

// GenerationKind classifies a generation event.
type GenerationKind string

const (
	// GenerationKindPreview is a generation the user has not paid for.
	GenerationKindPreview GenerationKind = "preview"
	// GenerationKindPaid is a generation marked paid (a download).
	GenerationKindPaid GenerationKind = "paid"
)

// Generation is a user-initiated content-generation event.
type Generation struct {
	ID           string
	UserID       string
	Kind         GenerationKind
	Status       string
	TemplateName string
	Amount       int64
	DurationMS   int
	CreatedAt    time.Time
	CompletedAt  *time.Time
}
