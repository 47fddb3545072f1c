// file: internals/features/helpdesk/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type CommentModel struct {
	CommentID uuid.UUID `gorm:"column:comment_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"comment_id"`

	// Human-readable number minted from the comment_number sequence.
	CommentNumber string `gorm:"column:comment_number;size:10;uniqueIndex;not null" json:"comment_number"`

	CommentDetail string `gorm:"column:comment_detail;size:3000;not null" json:"comment_detail"`

	// First edit copies the then-current detail here; later edits keep the
	// original untouched.
	CommentOriginalDetail string `gorm:"column:comment_original_detail;size:3000" json:"comment_original_detail,omitempty"`

	CommentTicketID   uuid.UUID  `gorm:"column:comment_ticket_id;type:uuid;not null;index" json:"comment_ticket_id"`
	CommentCustomerID uuid.UUID  `gorm:"column:comment_customer_id;type:uuid;not null" json:"comment_customer_id"`
	CommentUserID     uuid.UUID  `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentAssigneeID *uuid.UUID `gorm:"column:comment_assignee_id;type:uuid" json:"comment_assignee_id,omitempty"`

	CommentCreateDate time.Time `gorm:"column:comment_create_date;not null;autoCreateTime" json:"comment_create_date"`
	CommentChangeDate time.Time `gorm:"column:comment_change_date;not null;autoUpdateTime" json:"comment_change_date"`
}

func (CommentModel) TableName() string { return "comments" }

func (m *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CommentID == uuid.Nil {
		m.CommentID = uuid.New()
	}
	return nil
}
