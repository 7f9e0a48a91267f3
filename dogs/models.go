// Package dogs implements the adoption registry: dog records, the
// available → adopted lifecycle with its ownership rules, and the listing
// queries for registered and adopted dogs.
package dogs

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a dog record.
type Status string

const (
	// StatusAvailable marks a dog listed for adoption.
	StatusAvailable Status = "available"
	// StatusAdopted marks a dog that has been adopted. The transition happens
	// exactly once; adopted records are never mutated again and cannot be removed.
	StatusAdopted Status = "adopted"
)

// Dog represents a dog record as stored in the database. Owner is set at
// creation and never changes; adopter, adoption message, and adoption date
// are set together when the dog is adopted.
type Dog struct {
	ID              uuid.UUID
	Name            string
	Description     string
	OwnerID         int
	AdopterID       *int
	AdoptionMessage *string
	Status          Status
	AdoptionDate    *time.Time
	CreatedAt       time.Time
}
