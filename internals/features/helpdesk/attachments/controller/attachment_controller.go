// file: internals/features/helpdesk/attachments/controller/attachment_controller.go
package controller

import (
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attachmentModel "helpdesku_backend/internals/features/helpdesk/attachments/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	ticketModel "helpdesku_backend/internals/features/helpdesk/tickets/model"
	sequence "helpdesku_backend/internals/features/sequence/service"
	helper "helpdesku_backend/internals/helpers"
)

// 8 MiB upload ceiling, matches the body limit in main.
const maxAttachmentSize = 8 << 20

type AttachmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttachmentController(db *gorm.DB) *AttachmentController {
	return &AttachmentController{DB: db, Validator: validator.New()}
}

func (ctl *AttachmentController) ListByTicket(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticketId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid ticket id")
	}
	// Metadata only; the bytes are fetched through the download endpoint.
	var records []attachmentModel.AttachmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Omit("attachment_data").
		Where("attachment_ticket_id = ?", ticketID).
		Order("attachment_upload_date").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list attachments")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *AttachmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record attachmentModel.AttachmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Omit("attachment_data").
		First(&record, "attachment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The attachment with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load attachment")
	}
	return helper.JsonOK(c, "", record)
}

// Download streams the stored bytes with the original filename.
func (ctl *AttachmentController) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record attachmentModel.AttachmentModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "attachment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The attachment with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load attachment")
	}
	c.Set(fiber.HeaderContentType, record.AttachmentContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+record.AttachmentOriginalName+`"`)
	return c.Send(record.AttachmentData)
}

// Upload accepts multipart form data: a "file" part plus ticketId/customerId
// fields. The reference checks run before the sequence is consumed.
func (ctl *AttachmentController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "missing file")
	}
	if fileHeader.Size > maxAttachmentSize {
		return helper.JsonError(c, fiber.StatusBadRequest, "file too large")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !attachmentModel.AllowedContentTypes[contentType] {
		return helper.JsonError(c, fiber.StatusBadRequest, "unsupported content type")
	}

	ticketID, err := uuid.Parse(c.FormValue("ticketId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid ticketId")
	}
	customerID, err := uuid.Parse(c.FormValue("customerId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid customerId")
	}
	name := c.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}
	if len(name) < 3 || len(name) > 50 {
		return helper.JsonError(c, fiber.StatusBadRequest, "name must be between 3 and 50 characters")
	}

	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing user identity")
	}

	db := ctl.DB.WithContext(c.Context())
	var count int64
	if err := db.Model(&ticketModel.TicketModel{}).Where("ticket_id = ?", ticketID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify references")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Ticket with ticketId not found")
	}
	if err := db.Model(&customerModel.CustomerModel{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify references")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Customer with customerId not found")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to read file")
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to read file")
	}

	var created attachmentModel.AttachmentModel
	err = db.Transaction(func(tx *gorm.DB) error {
		number, err := sequence.NextFormatted(tx, sequence.CounterAttachmentNumber, sequence.AttachmentNumberWidth)
		if err != nil {
			return err
		}
		created = attachmentModel.AttachmentModel{
			AttachmentNumber:       number,
			AttachmentName:         name,
			AttachmentOriginalName: fileHeader.Filename,
			AttachmentContentType:  contentType,
			AttachmentSize:         fileHeader.Size,
			AttachmentData:         data,
			AttachmentTicketID:     ticketID,
			AttachmentCustomerID:   customerID,
			AttachmentUserID:       userID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, sequence.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Attachment number exceeds the maximum allowed limit.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}

	created.AttachmentData = nil
	return helper.JsonCreated(c, "Attachment uploaded", created)
}

func (ctl *AttachmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&attachmentModel.AttachmentModel{}, "attachment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete attachment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "The attachment with the given ID was not found!")
	}
	return helper.JsonDeleted(c, "Attachment deleted", fiber.Map{"attachment_id": id})
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("no user in context")
	}
	return uuid.Parse(raw)
}
