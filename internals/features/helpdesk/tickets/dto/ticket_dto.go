// file: internals/features/helpdesk/tickets/dto/ticket_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	Name        string `json:"name" validate:"required,min=5,max=50"`
	Description string `json:"description" validate:"required,min=15,max=3000"`

	CustomerID uuid.UUID  `json:"customerId" validate:"required"`
	CategoryID uuid.UUID  `json:"categoryId" validate:"required"`
	StateID    uuid.UUID  `json:"stateId" validate:"required"`
	AssigneeID *uuid.UUID `json:"assigneeId"`

	TicketType string `json:"ticketType" validate:"required,min=3,max=20"`
	Priority   string `json:"priority" validate:"required,min=3,max=10"`
	Status     string `json:"status" validate:"required,min=3,max=10"`

	DateOpened   *time.Time `json:"dateOpened"`
	DateAssigned *time.Time `json:"dateAssigned"`
	DateDue      *time.Time `json:"dateDue"`

	ClickUpTaskID     string `json:"clickupTaskId" validate:"omitempty,max=30"`
	GitHubIssueID     string `json:"githubIssueId" validate:"omitempty,max=30"`
	CategoryReference string `json:"categoryReference" validate:"omitempty,max=50"`
}

type UpdateTicketRequest struct {
	Name        string `json:"name" validate:"required,min=5,max=50"`
	Description string `json:"description" validate:"required,min=15,max=3000"`

	CustomerID uuid.UUID  `json:"customerId" validate:"required"`
	CategoryID uuid.UUID  `json:"categoryId" validate:"required"`
	StateID    uuid.UUID  `json:"stateId" validate:"required"`
	AssigneeID *uuid.UUID `json:"assigneeId"`

	TicketType string `json:"ticketType" validate:"required,min=3,max=20"`
	Priority   string `json:"priority" validate:"required,min=3,max=10"`
	Status     string `json:"status" validate:"required,min=3,max=10"`

	DateAssigned *time.Time `json:"dateAssigned"`
	DateDue      *time.Time `json:"dateDue"`
	DateResolved *time.Time `json:"dateResolved"`
	DateClosed   *time.Time `json:"dateClosed"`

	Resolution string `json:"resolution" validate:"omitempty,min=10,max=2000"`

	ClickUpTaskID     string `json:"clickupTaskId" validate:"omitempty,max=30"`
	GitHubIssueID     string `json:"githubIssueId" validate:"omitempty,max=30"`
	CategoryReference string `json:"categoryReference" validate:"omitempty,max=50"`

	// Stopwatch verbs; at most one should be set per request.
	StartStopwatch bool `json:"startStopwatch"`
	PauseStopwatch bool `json:"pauseStopwatch"`
	StopStopwatch  bool `json:"stopStopwatch"`
}
