package store

import (
	"github.com/google/uuid"

	"github.com/shuldan/ioc/pkg/contracts"
)

// UUID is the identifier type handed out for stored records.
type UUID struct {
	value uuid.UUID
}

var _ contracts.ID = UUID{}

func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

func ParseUUID(s string) (UUID, error) {
	val, err := uuid.Parse(s)
	return UUID{value: val}, err
}

func (u UUID) String() string {
	return u.value.String()
}

func (u UUID) IsValid() bool {
	return u.value != uuid.Nil
}
