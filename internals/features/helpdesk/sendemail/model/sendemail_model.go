// file: internals/features/helpdesk/sendemail/model/sendemail_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */
// Every delivery attempt gets a row, failed ones included. The audit record
// is the deliverable here, not a log line.

type SendEmailModel struct {
	SendEmailID uuid.UUID `gorm:"column:send_email_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"send_email_id"`

	// Human-readable number minted from the send_email_number sequence.
	SendEmailNumber string `gorm:"column:send_email_number;size:10;uniqueIndex;not null" json:"send_email_number"`

	SendEmailToAddress   string `gorm:"column:send_email_to_address;size:50;not null" json:"send_email_to_address"`
	SendEmailFromAddress string `gorm:"column:send_email_from_address;size:50;not null" json:"send_email_from_address"`
	SendEmailSubject     string `gorm:"column:send_email_subject;size:35;not null" json:"send_email_subject"`
	SendEmailBody        string `gorm:"column:send_email_body;size:500" json:"send_email_body"`

	SendEmailCustomerNumber string `gorm:"column:send_email_customer_number;size:10;not null" json:"send_email_customer_number"`
	SendEmailCustomerName   string `gorm:"column:send_email_customer_name;size:50;not null" json:"send_email_customer_name"`
	SendEmailTicketNumber   string `gorm:"column:send_email_ticket_number;size:10;not null;index" json:"send_email_ticket_number"`
	SendEmailCommentNumber  string `gorm:"column:send_email_comment_number;size:10" json:"send_email_comment_number,omitempty"`
	SendEmailUserName       string `gorm:"column:send_email_user_name;size:50;not null" json:"send_email_user_name"`

	SendEmailDateSent        time.Time `gorm:"column:send_email_date_sent;not null" json:"send_email_date_sent"`
	SendEmailDeliverySuccess bool      `gorm:"column:send_email_delivery_success;not null;default:false" json:"send_email_delivery_success"`
	SendEmailResponseMessage string    `gorm:"column:send_email_response_message;size:500" json:"send_email_response_message"`

	CreatedAt time.Time `gorm:"column:send_email_created_at;autoCreateTime" json:"send_email_created_at"`
}

func (SendEmailModel) TableName() string { return "send_emails" }

func (m *SendEmailModel) BeforeCreate(tx *gorm.DB) error {
	if m.SendEmailID == uuid.Nil {
		m.SendEmailID = uuid.New()
	}
	return nil
}
