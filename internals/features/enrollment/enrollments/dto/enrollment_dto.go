package dto

import (
	"github.com/google/uuid"
)

type CreateEnrollmentRequest struct {
	CustomerID uuid.UUID `json:"customerId" validate:"required"`
	ProductID  uuid.UUID `json:"productId" validate:"required"`
}

// CompleteEnrollmentRequest uses the canonical (enrollmentId, customerId)
// pairing. productId is still accepted from older clients but ignored; the
// product is taken from the enrollment's own snapshot.
type CompleteEnrollmentRequest struct {
	EnrollmentID uuid.UUID  `json:"enrollmentId" validate:"required"`
	CustomerID   uuid.UUID  `json:"customerId" validate:"required"`
	ProductID    *uuid.UUID `json:"productId"`
}
