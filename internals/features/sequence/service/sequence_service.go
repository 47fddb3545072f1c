// file: internals/features/sequence/service/sequence_service.go
package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

/* ===================== Sequence names & widths ===================== */

const (
	CounterTicketNumber     = "ticket_number"
	CounterCustomerNumber   = "customer_number"
	CounterCommentNumber    = "comment_number"
	CounterAttachmentNumber = "attachment_number"
	CounterSendEmailNumber  = "send_email_number"
)

const (
	TicketNumberWidth     = 6
	CustomerNumberWidth   = 7
	CommentNumberWidth    = 7
	AttachmentNumberWidth = 7
	SendEmailNumberWidth  = 8
)

// ErrSequenceExhausted means the next value no longer fits the configured
// digit width. The enclosing operation must fail; nothing was persisted by
// the caller at that point (the counter row itself keeps the bumped value,
// same as the legacy system).
var ErrSequenceExhausted = errors.New("sequence exhausted")

/* ===================== Service ===================== */

// Next atomically increments the named counter and returns the new value.
// The upsert starts the counter at 1 when the row does not exist yet.
// A single statement keeps concurrent callers from ever seeing the same
// value; this is valid on both Postgres and the sqlite used in tests.
func Next(db *gorm.DB, name string) (int64, error) {
	var seq int64
	err := db.Raw(
		`INSERT INTO counters (counter_name, counter_seq) VALUES (?, 1)
		 ON CONFLICT (counter_name) DO UPDATE SET counter_seq = counters.counter_seq + 1
		 RETURNING counter_seq`,
		name,
	).Scan(&seq).Error
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return seq, nil
}

// NextFormatted returns the next value zero-padded to width digits.
// Values that no longer fit the width fail with ErrSequenceExhausted.
func NextFormatted(db *gorm.DB, name string, width int) (string, error) {
	seq, err := Next(db, name)
	if err != nil {
		return "", err
	}
	formatted := fmt.Sprintf("%0*d", width, seq)
	if len(formatted) > width {
		return "", fmt.Errorf("%w: %s value %d exceeds %d digits", ErrSequenceExhausted, name, seq, width)
	}
	return formatted, nil
}
