// file: internals/features/enrollment/products/controller/product_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "helpdesku_backend/internals/features/enrollment/enrollments/model"
	dto "helpdesku_backend/internals/features/enrollment/products/dto"
	model "helpdesku_backend/internals/features/enrollment/products/model"
	masterModel "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	helper "helpdesku_backend/internals/helpers"
)

type ProductController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Validator: validator.New()}
}

// GET /api/products
func (ctl *ProductController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.ProductModel{})
	if c.Query("active") == "true" {
		q = q.Where("product_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count products")
	}

	var products []model.ProductModel
	if err := q.Order("product_name").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list products")
	}

	return helper.JsonList(c, "", products, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/products/:id
func (ctl *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var product model.ProductModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The product with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load product")
	}
	return helper.JsonOK(c, "", product)
}

// POST /api/products
func (ctl *ProductController) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	product := req.ToModel()

	// Instructor snapshot: copy the name at create time, not a live join.
	if req.InstructorID != nil {
		var instructor masterModel.InstructorModel
		if err := ctl.DB.WithContext(c.Context()).
			First(&instructor, "instructor_id = ?", *req.InstructorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Instructor not found.")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load instructor")
		}
		product.ProductInstructorName = instructor.InstructorName
	}

	if err := ctl.DB.WithContext(c.Context()).Create(product).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Product code already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create product")
	}

	return helper.JsonCreated(c, "Product created", product)
}

// PUT /api/products/:id
// number_in_stock is deliberately not updatable here; only the enrollment
// workflow moves stock.
func (ctl *ProductController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var product model.ProductModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&product, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The product with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load product")
	}

	req.Apply(&product)

	if err := ctl.DB.WithContext(c.Context()).Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update product")
	}
	return helper.JsonUpdated(c, "Product updated", product)
}

// DELETE /api/products/:id
// Refuse when enrollments reference the product (same rule as the record
// store's delete guard for customers).
func (ctl *ProductController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_product_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check enrollments")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Product has enrollments and can not be deleted.")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.ProductModel{}, "product_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete product")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "The product with the given ID was not found!")
	}
	return helper.JsonDeleted(c, "Product deleted", fiber.Map{"product_id": id})
}
