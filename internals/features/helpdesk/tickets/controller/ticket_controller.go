// file: internals/features/helpdesk/tickets/controller/ticket_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"helpdesku_backend/internals/constants"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	masterdataModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	ticketDTO "helpdesku_backend/internals/features/helpdesk/tickets/dto"
	ticketModel "helpdesku_backend/internals/features/helpdesk/tickets/model"
	sequence "helpdesku_backend/internals/features/sequence/service"
	helper "helpdesku_backend/internals/helpers"
)

type TicketController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db, Validator: validator.New()}
}

/* ===================== Reads ===================== */

func (ctl *TicketController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&ticketModel.TicketModel{})

	if status := c.Query("status"); status != "" {
		q = q.Where("ticket_status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid customer_id")
		}
		q = q.Where("ticket_customer_id = ?", id)
	}

	var records []ticketModel.TicketModel
	if err := q.Order("ticket_number DESC").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list tickets")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *TicketController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record ticketModel.TicketModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "ticket_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The ticket with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load ticket")
	}
	return helper.JsonOK(c, "", record)
}

/* ===================== Writes ===================== */

func (ctl *TicketController) Create(c *fiber.Ctx) error {
	var req ticketDTO.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if msg := checkEnums(req.TicketType, req.Priority, req.Status); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}
	if req.Status == "Closed" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"If status is 'Closed', both dateResolved and dateClosed are required with dateClosed being after dateResolved.")
	}

	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing user identity")
	}

	refs, msg, err := ctl.resolveRefs(c, req.CustomerID, req.CategoryID, req.StateID, req.AssigneeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify references")
	}
	if msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var created ticketModel.TicketModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		number, err := sequence.NextFormatted(tx, sequence.CounterTicketNumber, sequence.TicketNumberWidth)
		if err != nil {
			return err
		}

		created = ticketModel.TicketModel{
			TicketNumber:            number,
			TicketName:              req.Name,
			TicketDescription:       req.Description,
			TicketCustomerID:        refs.customer.CustomerID,
			TicketCustomerName:      refs.customer.CustomerName,
			TicketCategoryID:        refs.category.CategoryID,
			TicketCategoryName:      refs.category.CategoryName,
			TicketStateID:           refs.state.StateID,
			TicketStateName:         refs.state.StateName,
			TicketUserID:            userID,
			TicketType:              req.TicketType,
			TicketPriority:          req.Priority,
			TicketStatus:            req.Status,
			TicketDateAssigned:      req.DateAssigned,
			TicketDateDue:           req.DateDue,
			TicketClickUpTaskID:     defaultString(req.ClickUpTaskID, "0"),
			TicketGitHubIssueID:     defaultString(req.GitHubIssueID, "0"),
			TicketCategoryReference: req.CategoryReference,
		}
		if req.DateOpened != nil {
			created.TicketDateOpened = *req.DateOpened
		}
		if refs.assignee != nil {
			created.TicketAssigneeID = &refs.assignee.AssigneeID
			created.TicketAssigneeName = refs.assignee.AssigneeName
			if created.TicketDateAssigned == nil {
				now := time.Now()
				created.TicketDateAssigned = &now
			}
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, sequence.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ticket number exceeds the maximum allowed limit.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonCreated(c, "Ticket created", created)
}

func (ctl *TicketController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req ticketDTO.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if msg := checkEnums(req.TicketType, req.Priority, req.Status); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}
	if msg := checkDateRules(req.Status, req.Resolution, req.DateResolved, req.DateClosed); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	refs, msg, err := ctl.resolveRefs(c, req.CustomerID, req.CategoryID, req.StateID, req.AssigneeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to verify references")
	}
	if msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	var updated ticketModel.TicketModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "ticket_id = ?", id).Error; err != nil {
			return err
		}

		updated.TicketName = req.Name
		updated.TicketDescription = req.Description
		updated.TicketCustomerID = refs.customer.CustomerID
		updated.TicketCustomerName = refs.customer.CustomerName
		updated.TicketCategoryID = refs.category.CategoryID
		updated.TicketCategoryName = refs.category.CategoryName
		updated.TicketStateID = refs.state.StateID
		updated.TicketStateName = refs.state.StateName
		updated.TicketType = req.TicketType
		updated.TicketPriority = req.Priority
		updated.TicketStatus = req.Status
		updated.TicketDateAssigned = req.DateAssigned
		updated.TicketDateDue = req.DateDue
		updated.TicketDateResolved = req.DateResolved
		updated.TicketDateClosed = req.DateClosed
		updated.TicketResolution = req.Resolution
		updated.TicketClickUpTaskID = defaultString(req.ClickUpTaskID, updated.TicketClickUpTaskID)
		updated.TicketGitHubIssueID = defaultString(req.GitHubIssueID, updated.TicketGitHubIssueID)
		updated.TicketCategoryReference = req.CategoryReference

		if refs.assignee != nil {
			updated.TicketAssigneeID = &refs.assignee.AssigneeID
			updated.TicketAssigneeName = refs.assignee.AssigneeName
		} else {
			updated.TicketAssigneeID = nil
			updated.TicketAssigneeName = ""
		}

		now := time.Now()
		switch {
		case req.StartStopwatch:
			updated.StartStopwatch(now)
		case req.PauseStopwatch:
			updated.PauseStopwatch(now)
		case req.StopStopwatch:
			updated.StopStopwatch(now)
		}

		return tx.Save(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The ticket with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonUpdated(c, "Ticket updated", updated)
}

func (ctl *TicketController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&ticketModel.TicketModel{}, "ticket_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete ticket")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "The ticket with the given ID was not found!")
	}
	return helper.JsonDeleted(c, "Ticket deleted", fiber.Map{"ticket_id": id})
}

/* ===================== Checks ===================== */

type ticketRefs struct {
	customer customerModel.CustomerModel
	category masterdataModel.CategoryModel
	state    masterdataModel.StateModel
	assignee *masterdataModel.AssigneeModel
}

// resolveRefs loads every referenced record before any write. Returns a
// user-facing message when a reference is invalid.
func (ctl *TicketController) resolveRefs(c *fiber.Ctx, customerID, categoryID, stateID uuid.UUID, assigneeID *uuid.UUID) (*ticketRefs, string, error) {
	db := ctl.DB.WithContext(c.Context())
	refs := &ticketRefs{}

	if err := db.First(&refs.customer, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "Invalid customer request.", nil
		}
		return nil, "", err
	}
	if err := db.First(&refs.category, "category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "Invalid category request.", nil
		}
		return nil, "", err
	}
	if err := db.First(&refs.state, "state_id = ?", stateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "Invalid state request.", nil
		}
		return nil, "", err
	}
	if assigneeID != nil {
		var assignee masterdataModel.AssigneeModel
		if err := db.First(&assignee, "assignee_id = ?", *assigneeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, "Invalid assignee request.", nil
			}
			return nil, "", err
		}
		refs.assignee = &assignee
	}
	return refs, "", nil
}

func checkEnums(ticketType, priority, status string) string {
	if !constants.IsValidTicketType(ticketType) {
		return "Invalid ticket type, should be either: " + strings.Join(constants.TicketTypes, ", ")
	}
	if !constants.IsValidTicketPriority(priority) {
		return "Invalid ticket priority, should be either: " + strings.Join(constants.TicketPriorities, ", ")
	}
	if !constants.IsValidTicketStatus(status) {
		return "Invalid ticket status, should be either: " + strings.Join(constants.TicketStatuses, ", ")
	}
	return ""
}

// checkDateRules enforces the resolved/closed ordering invariants.
func checkDateRules(status, resolution string, dateResolved, dateClosed *time.Time) string {
	if status == "Closed" {
		if dateResolved == nil || dateClosed == nil || dateClosed.Before(*dateResolved) {
			return "If status is 'Closed', both dateResolved and dateClosed are required with dateClosed being after dateResolved."
		}
	}
	if dateResolved != nil && dateClosed != nil && dateResolved.After(*dateClosed) {
		return "dateResolved must be equal to or before dateClosed."
	}
	if resolution != "" && dateResolved == nil {
		return "If resolution is provided, dateResolved is required."
	}
	return ""
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("no user in context")
	}
	return uuid.Parse(raw)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
