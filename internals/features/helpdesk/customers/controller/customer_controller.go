// file: internals/features/helpdesk/customers/controller/customer_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	customerDTO "helpdesku_backend/internals/features/helpdesk/customers/dto"
	customerModel "helpdesku_backend/internals/features/helpdesk/customers/model"
	masterdataModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	sequence "helpdesku_backend/internals/features/sequence/service"
	helper "helpdesku_backend/internals/helpers"
)

type CustomerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, Validator: validator.New()}
}

func (ctl *CustomerController) List(c *fiber.Ctx) error {
	var records []customerModel.CustomerModel
	if err := ctl.DB.WithContext(c.Context()).Order("customer_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list customers")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record customerModel.CustomerModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The customer with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load customer")
	}
	return helper.JsonOK(c, "", record)
}

func (ctl *CustomerController) Create(c *fiber.Ctx) error {
	var req customerDTO.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if err := ctl.checkCategoryIDs(c, req.Categories); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category IDs")
	}

	var created customerModel.CustomerModel
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		number, err := sequence.NextFormatted(tx, sequence.CounterCustomerNumber, sequence.CustomerNumberWidth)
		if err != nil {
			return err
		}

		created = customerModel.CustomerModel{
			CustomerNumber:        number,
			CustomerName:          req.Name,
			CustomerContact:       req.Contact,
			CustomerEmail:         req.Email,
			CustomerPhone:         req.Phone,
			CustomerAddress:       req.Address,
			CustomerComments:      req.Comments,
			CustomerActive:        true,
			CustomerClickUpActive: false,
			CustomerGitHubActive:  false,
		}
		if req.Active != nil {
			created.CustomerActive = *req.Active
		}
		if req.ClickUpActive != nil {
			created.CustomerClickUpActive = *req.ClickUpActive
		}
		if req.GitHubActive != nil {
			created.CustomerGitHubActive = *req.GitHubActive
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
		return ctl.replaceCategoryLinks(tx, created.CustomerID, req.Categories)
	})
	if err != nil {
		if errors.Is(err, sequence.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Customer number exceeds the maximum allowed limit.")
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Duplicate record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonCreated(c, "Customer created", created)
}

func (ctl *CustomerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req customerDTO.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	if err := ctl.checkCategoryIDs(c, req.Categories); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category IDs")
	}

	var updated customerModel.CustomerModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, "customer_id = ?", id).Error; err != nil {
			return err
		}

		updated.CustomerName = req.Name
		updated.CustomerContact = req.Contact
		updated.CustomerEmail = req.Email
		updated.CustomerPhone = req.Phone
		updated.CustomerAddress = req.Address
		updated.CustomerComments = req.Comments
		if req.Active != nil {
			updated.CustomerActive = *req.Active
		}
		if req.ClickUpActive != nil {
			updated.CustomerClickUpActive = *req.ClickUpActive
		}
		if req.GitHubActive != nil {
			updated.CustomerGitHubActive = *req.GitHubActive
		}
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		return ctl.replaceCategoryLinks(tx, updated.CustomerID, req.Categories)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The customer with the given ID was not found!")
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Duplicate record")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}
	return helper.JsonUpdated(c, "Customer updated", updated)
}

// checkCategoryIDs verifies every referenced category row exists before any
// write happens (explicit pre-write checks, never model hooks).
func (ctl *CustomerController) checkCategoryIDs(c *fiber.Ctx, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&masterdataModel.CategoryModel{}).
		Where("category_id IN ?", ids).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ctl *CustomerController) replaceCategoryLinks(tx *gorm.DB, customerID uuid.UUID, ids []uuid.UUID) error {
	if err := tx.Where("customer_id = ?", customerID).
		Delete(&customerModel.CustomerCategoryModel{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	links := make([]customerModel.CustomerCategoryModel, 0, len(ids))
	for _, categoryID := range ids {
		links = append(links, customerModel.CustomerCategoryModel{
			CustomerID: customerID,
			CategoryID: categoryID,
		})
	}
	return tx.Create(&links).Error
}
