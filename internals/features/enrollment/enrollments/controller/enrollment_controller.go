// file: internals/features/enrollment/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "helpdesku_backend/internals/features/enrollment/enrollments/dto"
	model "helpdesku_backend/internals/features/enrollment/enrollments/model"
	service "helpdesku_backend/internals/features/enrollment/enrollments/service"
	helper "helpdesku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Service   *service.EnrollmentService
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Service:   service.NewEnrollmentService(db),
		Validator: validator.New(),
	}
}

/* =======================================================================
   Write flows
======================================================================= */

// POST /api/enrollments
func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	enrollment, err := ctl.Service.CreateEnrollment(c.Context(), req.CustomerID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid customer.")
		case errors.Is(err, service.ErrProductNotFound):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product.")
		case errors.Is(err, service.ErrOutOfStock):
			return helper.JsonError(c, fiber.StatusBadRequest, "Product not in stock.")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Enrollment failed, transaction aborted.")
		}
	}

	return helper.JsonOK(c, "Enrollment created", enrollment)
}

// POST /api/completions
func (ctl *EnrollmentController) Complete(c *fiber.Ctx) error {
	var req dto.CompleteEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	enrollment, err := ctl.Service.CompleteEnrollment(c.Context(), req.EnrollmentID, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnrollmentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found.")
		case errors.Is(err, service.ErrAlreadyCompleted):
			return helper.JsonError(c, fiber.StatusBadRequest, "Completion already processed.")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Transaction aborted. Error occurred: "+err.Error())
		}
	}

	return helper.JsonOK(c, "Completion processed", enrollment)
}

/* =======================================================================
   Read projections (no invariants, newest first)
======================================================================= */

// GET /api/enrollments/all
func (ctl *EnrollmentController) ListAll(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB { return q })
}

// GET /api/enrollments — not completed (paid and not paid)
func (ctl *EnrollmentController) ListOpen(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("enrollment_completion_date IS NULL")
	})
}

// GET /api/enrollments/_enrolledNotCompletedNotPaid
func (ctl *EnrollmentController) ListOpenUnpaid(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("enrollment_completion_date IS NULL AND enrollment_paid = ?", false)
	})
}

// GET /api/enrollments/_completedPaid
func (ctl *EnrollmentController) ListCompletedPaid(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("enrollment_completion_date IS NOT NULL AND enrollment_paid = ?", true)
	})
}

// GET /api/enrollments/_completedNotPaid
func (ctl *EnrollmentController) ListCompletedUnpaid(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("enrollment_completion_date IS NOT NULL AND enrollment_paid = ?", false)
	})
}

// GET /api/enrollments/_enrollmentsPaid
func (ctl *EnrollmentController) ListPaid(c *fiber.Ctx) error {
	return ctl.list(c, func(q *gorm.DB) *gorm.DB {
		return q.Where("enrollment_paid = ?", true)
	})
}

func (ctl *EnrollmentController) list(c *fiber.Ctx, scope func(*gorm.DB) *gorm.DB) error {
	var enrollments []model.EnrollmentModel
	q := scope(ctl.DB.WithContext(c.Context()).Model(&model.EnrollmentModel{}))
	if err := q.Order("enrollment_date DESC").Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list enrollments")
	}
	return helper.JsonOK(c, "", enrollments)
}

// GET /api/enrollments/:id
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var enrollment model.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&enrollment, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The enrollment with the given ID was not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load enrollment")
	}
	return helper.JsonOK(c, "", enrollment)
}
