// file: internals/features/helpdesk/sendemail/dto/sendemail_dto.go
package dto

import "time"

type SendEmailRequest struct {
	ToAddress   string `json:"toAddress" validate:"required,email,min=7,max=50"`
	FromAddress string `json:"fromAddress" validate:"required,email,min=7,max=50"`
	Subject     string `json:"subject" validate:"required,max=35"`
	EmailBody   string `json:"emailBody" validate:"required,max=500"`

	CustomerNumber string `json:"customerNumber" validate:"required,max=10"`
	CustomerName   string `json:"customerName" validate:"required,min=5,max=50"`
	TicketNumber   string `json:"ticketNumber" validate:"required,max=10"`
	CommentNumber  string `json:"commentNumber" validate:"omitempty,max=10"`
	UserName       string `json:"userName" validate:"required,min=2,max=50"`

	DateSent *time.Time `json:"dateSent"`
}

type SendEmailResponse struct {
	SendEmailNumber string `json:"sendEmailNumber"`
	DeliverySuccess bool   `json:"deliverySuccess"`
	ResponseMessage string `json:"responseMessage"`
}
