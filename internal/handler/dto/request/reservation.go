package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
}

type UpdateReservationRequest struct {
	Action string `json:"action" binding:"required,oneof=cancel collect"`
}
