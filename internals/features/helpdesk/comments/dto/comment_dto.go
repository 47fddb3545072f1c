// file: internals/features/helpdesk/comments/dto/comment_dto.go
package dto

import "github.com/google/uuid"

type CreateCommentRequest struct {
	Detail     string     `json:"detail" validate:"required,min=5,max=3000"`
	TicketID   uuid.UUID  `json:"ticketId" validate:"required"`
	CustomerID uuid.UUID  `json:"customerId" validate:"required"`
	AssigneeID *uuid.UUID `json:"assigneeId"`
}

type UpdateCommentRequest struct {
	Detail     string     `json:"detail" validate:"required,min=5,max=3000"`
	AssigneeID *uuid.UUID `json:"assigneeId"`
}
