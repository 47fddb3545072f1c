// file: internals/features/helpdesk/tickets/model/ticket_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */
// Tickets carry id+name snapshots of the reference records they were filed
// against (customer, category, state, assignee). Later edits to those records
// do not rewrite historical tickets; the id is kept for joins, the name for
// display. Reference ids are existence-checked in the controller before any
// write, never in model hooks.

type TicketModel struct {
	TicketID uuid.UUID `gorm:"column:ticket_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"ticket_id"`

	// Human-readable number minted from the ticket_number sequence.
	TicketNumber string `gorm:"column:ticket_number;size:10;uniqueIndex;not null" json:"ticket_number"`

	TicketName        string `gorm:"column:ticket_name;size:50;not null" json:"ticket_name"`
	TicketDescription string `gorm:"column:ticket_description;size:3000;not null" json:"ticket_description"`

	TicketCustomerID   uuid.UUID `gorm:"column:ticket_customer_id;type:uuid;not null;index" json:"ticket_customer_id"`
	TicketCustomerName string    `gorm:"column:ticket_customer_name;size:50;not null" json:"ticket_customer_name"`

	TicketCategoryID   uuid.UUID `gorm:"column:ticket_category_id;type:uuid;not null" json:"ticket_category_id"`
	TicketCategoryName string    `gorm:"column:ticket_category_name;size:50;not null" json:"ticket_category_name"`

	TicketStateID   uuid.UUID `gorm:"column:ticket_state_id;type:uuid;not null" json:"ticket_state_id"`
	TicketStateName string    `gorm:"column:ticket_state_name;size:50;not null" json:"ticket_state_name"`

	// Assignee is optional until the ticket is picked up.
	TicketAssigneeID   *uuid.UUID `gorm:"column:ticket_assignee_id;type:uuid" json:"ticket_assignee_id,omitempty"`
	TicketAssigneeName string     `gorm:"column:ticket_assignee_name;size:50" json:"ticket_assignee_name,omitempty"`

	// User who logged the ticket.
	TicketUserID uuid.UUID `gorm:"column:ticket_user_id;type:uuid;not null" json:"ticket_user_id"`

	TicketType     string `gorm:"column:ticket_type;size:20;not null" json:"ticket_type"`
	TicketPriority string `gorm:"column:ticket_priority;size:10;not null" json:"ticket_priority"`
	TicketStatus   string `gorm:"column:ticket_status;size:10;not null" json:"ticket_status"`

	TicketDateOpened     time.Time  `gorm:"column:ticket_date_opened;not null;autoCreateTime" json:"ticket_date_opened"`
	TicketDateAssigned   *time.Time `gorm:"column:ticket_date_assigned" json:"ticket_date_assigned,omitempty"`
	TicketDateLastUpdate time.Time  `gorm:"column:ticket_date_last_update;not null;autoUpdateTime" json:"ticket_date_last_update"`
	TicketDateDue        *time.Time `gorm:"column:ticket_date_due" json:"ticket_date_due,omitempty"`
	TicketDateResolved   *time.Time `gorm:"column:ticket_date_resolved" json:"ticket_date_resolved,omitempty"`
	TicketDateClosed     *time.Time `gorm:"column:ticket_date_closed" json:"ticket_date_closed,omitempty"`

	// Resolution requires ticket_date_resolved to be set (checked in the
	// controller together with the Closed ordering rule).
	TicketResolution string `gorm:"column:ticket_resolution;size:2000" json:"ticket_resolution,omitempty"`

	// External tracker references, "0" means not linked.
	TicketClickUpTaskID string `gorm:"column:ticket_clickup_task_id;size:30;not null;default:'0'" json:"ticket_clickup_task_id"`
	TicketGitHubIssueID string `gorm:"column:ticket_github_issue_id;size:30;not null;default:'0'" json:"ticket_github_issue_id"`

	// Accumulated working seconds plus the running-segment start. A nil start
	// with seconds > 0 means the stopwatch is paused.
	TicketStopwatchSeconds int64      `gorm:"column:ticket_stopwatch_seconds;not null;default:0" json:"ticket_stopwatch_seconds"`
	TicketStopwatchStart   *time.Time `gorm:"column:ticket_stopwatch_start" json:"ticket_stopwatch_start,omitempty"`

	TicketCategoryReference string `gorm:"column:ticket_category_reference;size:50" json:"ticket_category_reference,omitempty"`

	CreatedAt time.Time `gorm:"column:ticket_created_at;autoCreateTime" json:"ticket_created_at"`
	UpdatedAt time.Time `gorm:"column:ticket_updated_at;autoUpdateTime" json:"ticket_updated_at"`
}

func (TicketModel) TableName() string { return "tickets" }

func (m *TicketModel) BeforeCreate(tx *gorm.DB) error {
	if m.TicketID == uuid.Nil {
		m.TicketID = uuid.New()
	}
	return nil
}

/* ===================== Stopwatch ===================== */

// StartStopwatch begins (or resumes) the running segment. No-op when already
// running.
func (m *TicketModel) StartStopwatch(now time.Time) {
	if m.TicketStopwatchStart == nil {
		m.TicketStopwatchStart = &now
	}
}

// PauseStopwatch folds the running segment into the accumulated seconds.
// No-op when not running.
func (m *TicketModel) PauseStopwatch(now time.Time) {
	if m.TicketStopwatchStart == nil {
		return
	}
	m.TicketStopwatchSeconds += int64(now.Sub(*m.TicketStopwatchStart).Seconds())
	m.TicketStopwatchStart = nil
}

// StopStopwatch behaves like pause; the accumulated total is the deliverable.
func (m *TicketModel) StopStopwatch(now time.Time) {
	m.PauseStopwatch(now)
}
