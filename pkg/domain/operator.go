package domain

import "github.com/google/uuid"

// OperatorID identifies the operator an API token was issued to.
type OperatorID uuid.UUID

// String returns the canonical UUID form.
func (id OperatorID) String() string { return uuid.UUID(id).String() }
