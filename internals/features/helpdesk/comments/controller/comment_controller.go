// file: internals/features/helpdesk/comments/controller/comment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	commentDTO "helpdesku_backend/internals/features/helpdesk/comments/dto"
	commentModel "helpdesku_backend/internals/features/helpdesk/comments/model"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	masterdataModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	ticketModel "helpdesku_backend/internals/features/helpdesk/tickets/model"
	sequence "helpdesku_backend/internals/features/sequence/service"
	helper "helpdesku_backend/internals/helpers"
)

type CommentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validator: validator.New()}
}

func (ctl *CommentController) ListByTicket(c *fiber.Ctx) error {
	ticketID, err := uuid.Parse(c.Params("ticketId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid ticket id")
	}
	var records []commentModel.CommentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("comment_ticket_id = ?", ticketID).
		Order("comment_create_date").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list comments")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *CommentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record commentModel.CommentModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "comment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The comment with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load comment")
	}
	return helper.JsonOK(c, "", record)
}

func (ctl *CommentController) Create(c *fiber.Ctx) error {
	var req commentDTO.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing user identity")
	}

	db := ctl.DB.WithContext(c.Context())
	if msg, err := ctl.checkRefs(db, req.TicketID, req.CustomerID, req.AssigneeID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify references")
	} else if msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var created commentModel.CommentModel
	err = db.Transaction(func(tx *gorm.DB) error {
		number, err := sequence.NextFormatted(tx, sequence.CounterCommentNumber, sequence.CommentNumberWidth)
		if err != nil {
			return err
		}
		created = commentModel.CommentModel{
			CommentNumber:     number,
			CommentDetail:     req.Detail,
			CommentTicketID:   req.TicketID,
			CommentCustomerID: req.CustomerID,
			CommentUserID:     userID,
			CommentAssigneeID: req.AssigneeID,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, sequence.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Comment number exceeds the maximum allowed limit.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonCreated(c, "Comment created", created)
}

func (ctl *CommentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req commentDTO.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var updated commentModel.CommentModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "comment_id = ?", id).Error; err != nil {
			return err
		}
		// Preserve the first version; subsequent edits keep it as-is.
		if updated.CommentOriginalDetail == "" && updated.CommentDetail != req.Detail {
			updated.CommentOriginalDetail = updated.CommentDetail
		}
		updated.CommentDetail = req.Detail
		if req.AssigneeID != nil {
			updated.CommentAssigneeID = req.AssigneeID
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The comment with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonUpdated(c, "Comment updated", updated)
}

/* ===================== Checks ===================== */

func (ctl *CommentController) checkRefs(db *gorm.DB, ticketID, customerID uuid.UUID, assigneeID *uuid.UUID) (string, error) {
	var count int64
	if err := db.Model(&ticketModel.TicketModel{}).Where("ticket_id = ?", ticketID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "Ticket with ticketId not found", nil
	}
	if err := db.Model(&customerModel.CustomerModel{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return "Customer with customerId not found", nil
	}
	if assigneeID != nil {
		if err := db.Model(&masterdataModel.AssigneeModel{}).Where("assignee_id = ?", *assigneeID).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return "Assignee with assigneeId not found", nil
		}
	}
	return "", nil
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("no user in context")
	}
	return uuid.Parse(raw)
}
