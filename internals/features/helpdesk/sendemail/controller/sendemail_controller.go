// file: internals/features/helpdesk/sendemail/controller/sendemail_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sendEmailDTO "helpdesku_backend/internals/features/helpdesk/sendemail/dto"
	sendEmailModel "helpdesku_backend/internals/features/helpdesk/sendemail/model"
	sendEmailService "helpdesku_backend/internals/features/helpdesk/sendemail/service"
	sequence "helpdesku_backend/internals/features/sequence/service"
	helper "helpdesku_backend/internals/helpers"
)

type SendEmailController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Mailer    sendEmailService.Mailer
}

func NewSendEmailController(db *gorm.DB, mailer sendEmailService.Mailer) *SendEmailController {
	return &SendEmailController{DB: db, Validator: validator.New(), Mailer: mailer}
}

// Send mints the audit number, attempts delivery, and persists the audit row
// regardless of the delivery outcome. A failed delivery is a 200 with
// deliverySuccess=false, not an error: the record of the attempt is the
// deliverable.
func (ctl *SendEmailController) Send(c *fiber.Ctx) error {
	var req sendEmailDTO.SendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	number, err := sequence.NextFormatted(ctl.DB.WithContext(c.Context()), sequence.CounterSendEmailNumber, sequence.SendEmailNumberWidth)
	if err != nil {
		if errors.Is(err, sequence.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Send Email number exceeds the maximum allowed limit.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}

	dateSent := time.Now()
	if req.DateSent != nil {
		dateSent = *req.DateSent
	}

	content := fmt.Sprintf(
		"Customer Name: %s\nTicket Number: %s\nLogged by: %s\nDate : %s\n\n%s\n",
		req.CustomerName, req.TicketNumber, req.UserName,
		dateSent.Format(time.RFC1123), req.EmailBody,
	)

	delivered, detail := ctl.Mailer.Deliver(req.ToAddress, req.FromAddress, req.Subject, content)
	if delivered {
		log.Printf("[INFO] email %s delivered to %s (ticket %s)", number, req.ToAddress, req.TicketNumber)
	} else {
		log.Printf("[ERROR] email %s delivery failed to %s (ticket %s): %s", number, req.ToAddress, req.TicketNumber, detail)
	}

	audit := sendEmailModel.SendEmailModel{
		SendEmailNumber:          number,
		SendEmailToAddress:       req.ToAddress,
		SendEmailFromAddress:     req.FromAddress,
		SendEmailSubject:         req.Subject,
		SendEmailBody:            req.EmailBody,
		SendEmailCustomerNumber:  req.CustomerNumber,
		SendEmailCustomerName:    req.CustomerName,
		SendEmailTicketNumber:    req.TicketNumber,
		SendEmailCommentNumber:   req.CommentNumber,
		SendEmailUserName:        req.UserName,
		SendEmailDateSent:        dateSent,
		SendEmailDeliverySuccess: delivered,
		SendEmailResponseMessage: detail,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&audit).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to persist email audit record")
	}

	return helper.JsonOK(c, "", sendEmailDTO.SendEmailResponse{
		SendEmailNumber: number,
		DeliverySuccess: delivered,
		ResponseMessage: detail,
	})
}

func (ctl *SendEmailController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record sendEmailModel.SendEmailModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "send_email_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The Email with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load email record")
	}
	return helper.JsonOK(c, "", record)
}

func (ctl *SendEmailController) ListByTicket(c *fiber.Ctx) error {
	ticketNumber := c.Params("ticketNumber")
	var records []sendEmailModel.SendEmailModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("send_email_ticket_number = ?", ticketNumber).
		Order("send_email_date_sent").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list email records")
	}
	if len(records) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No emails found for the given ticket number!")
	}
	return helper.JsonOK(c, "", records)
}
