package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when a zero UUID is used as an identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromGoogle")

// UUID is the identifier value object shared by every aggregate and read model.
// The zero value is invalid.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any textual form accepted by google/uuid.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUIDFromGoogle(id)
}

// UUIDFromGoogle wraps an already parsed identifier, e.g. one scanned from the database.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Raw returns the underlying google/uuid value for persistence and transport.
func (u UUID) Raw() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
