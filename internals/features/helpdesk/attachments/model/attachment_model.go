// file: internals/features/helpdesk/attachments/model/attachment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */
// Attachment bytes live in the row itself (bytea). Deliberate: files stay
// small (office docs, screenshots) and one backup covers everything.

type AttachmentModel struct {
	AttachmentID uuid.UUID `gorm:"column:attachment_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"attachment_id"`

	// Human-readable number minted from the attachment_number sequence.
	AttachmentNumber string `gorm:"column:attachment_number;size:10;uniqueIndex;not null" json:"attachment_number"`

	AttachmentName         string `gorm:"column:attachment_name;size:50;not null" json:"attachment_name"`
	AttachmentOriginalName string `gorm:"column:attachment_original_name;size:50;not null" json:"attachment_original_name"`
	AttachmentContentType  string `gorm:"column:attachment_content_type;size:100;not null" json:"attachment_content_type"`
	AttachmentSize         int64  `gorm:"column:attachment_size;not null" json:"attachment_size"`

	AttachmentData []byte `gorm:"column:attachment_data;not null" json:"-"`

	AttachmentTicketID   uuid.UUID `gorm:"column:attachment_ticket_id;type:uuid;not null;index" json:"attachment_ticket_id"`
	AttachmentCustomerID uuid.UUID `gorm:"column:attachment_customer_id;type:uuid;not null" json:"attachment_customer_id"`
	AttachmentUserID     uuid.UUID `gorm:"column:attachment_user_id;type:uuid;not null" json:"attachment_user_id"`

	AttachmentUploadDate time.Time `gorm:"column:attachment_upload_date;not null;autoCreateTime" json:"attachment_upload_date"`
}

func (AttachmentModel) TableName() string { return "attachments" }

func (m *AttachmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttachmentID == uuid.Nil {
		m.AttachmentID = uuid.New()
	}
	return nil
}

// AllowedContentTypes mirrors the upload whitelist.
var AllowedContentTypes = map[string]bool{
	"application/pdf":          true,
	"image/jpeg":               true,
	"image/png":                true,
	"text/csv":                 true,
	"text/plain":               true,
	"application/vnd.ms-excel": true,
	"application/msword":       true,
}
