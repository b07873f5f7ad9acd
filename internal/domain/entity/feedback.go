package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is an append-only app feedback entry. Entries are never mutated
// or deleted once stored.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
