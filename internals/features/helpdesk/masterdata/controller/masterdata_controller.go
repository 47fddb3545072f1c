// file: internals/features/helpdesk/masterdata/controller/masterdata_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "helpdesku_backend/internals/features/helpdesk/masterdata/dto"
	model "helpdesku_backend/internals/features/helpdesk/masterdata/model"
	helper "helpdesku_backend/internals/helpers"
)

type MasterdataController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMasterdataController(db *gorm.DB) *MasterdataController {
	return &MasterdataController{DB: db, Validator: validator.New()}
}

/* ===================== Categories ===================== */

func (ctl *MasterdataController) ListCategories(c *fiber.Ctx) error {
	var records []model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).Order("category_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list categories")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *MasterdataController) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var record model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).First(&record, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "The category with the given ID was not found!")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load category")
	}
	return helper.JsonOK(c, "", record)
}

func (ctl *MasterdataController) CreateCategory(c *fiber.Ctx) error {
	req, err := ctl.parseNamed(c)
	if err != nil {
		return err
	}
	record := model.CategoryModel{CategoryName: req.Name, CategoryColor: req.Color}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Category already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create category")
	}
	return helper.JsonCreated(c, "Category created", record)
}

func (ctl *MasterdataController) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	req, err := ctl.parseNamed(c)
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.Context()).Model(&model.CategoryModel{}).
		Where("category_id = ?", id).
		Updates(map[string]any{"category_name": req.Name, "category_color": req.Color})
	if res.Error != nil {
		if helper.IsUniqueViolation(res.Error) {
			return helper.JsonError(c, fiber.StatusConflict, "Category already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update category")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "The category with the given ID was not found!")
	}
	return helper.JsonUpdated(c, "Category updated", fiber.Map{"category_id": id})
}

func (ctl *MasterdataController) DeleteCategory(c *fiber.Ctx) error {
	return ctl.deleteByID(c, &model.CategoryModel{}, "category_id", "Category")
}

/* ===================== States ===================== */

func (ctl *MasterdataController) ListStates(c *fiber.Ctx) error {
	var records []model.StateModel
	if err := ctl.DB.WithContext(c.Context()).Order("state_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list states")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *MasterdataController) CreateState(c *fiber.Ctx) error {
	req, err := ctl.parseNamed(c)
	if err != nil {
		return err
	}
	record := model.StateModel{StateName: req.Name, StateColor: req.Color}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "State already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create state")
	}
	return helper.JsonCreated(c, "State created", record)
}

func (ctl *MasterdataController) DeleteState(c *fiber.Ctx) error {
	return ctl.deleteByID(c, &model.StateModel{}, "state_id", "State")
}

/* ===================== Locations ===================== */

func (ctl *MasterdataController) ListLocations(c *fiber.Ctx) error {
	var records []model.LocationModel
	if err := ctl.DB.WithContext(c.Context()).Order("location_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list locations")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *MasterdataController) CreateLocation(c *fiber.Ctx) error {
	req, err := ctl.parseNamed(c)
	if err != nil {
		return err
	}
	record := model.LocationModel{LocationName: req.Name, LocationColor: req.Color}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Location already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create location")
	}
	return helper.JsonCreated(c, "Location created", record)
}

func (ctl *MasterdataController) DeleteLocation(c *fiber.Ctx) error {
	return ctl.deleteByID(c, &model.LocationModel{}, "location_id", "Location")
}

/* ===================== Instructors ===================== */

func (ctl *MasterdataController) ListInstructors(c *fiber.Ctx) error {
	var records []model.InstructorModel
	if err := ctl.DB.WithContext(c.Context()).Order("instructor_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list instructors")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *MasterdataController) CreateInstructor(c *fiber.Ctx) error {
	var req dto.InstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	record := model.InstructorModel{
		InstructorName:    req.Name,
		InstructorEmail:   req.Email,
		InstructorPhone:   req.Phone,
		InstructorAddress: req.Address,
		InstructorActive:  active,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Instructor already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create instructor")
	}
	return helper.JsonCreated(c, "Instructor created", record)
}

func (ctl *MasterdataController) DeleteInstructor(c *fiber.Ctx) error {
	return ctl.deleteByID(c, &model.InstructorModel{}, "instructor_id", "Instructor")
}

/* ===================== Assignees ===================== */

func (ctl *MasterdataController) ListAssignees(c *fiber.Ctx) error {
	var records []model.AssigneeModel
	if err := ctl.DB.WithContext(c.Context()).Order("assignee_name").Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to list assignees")
	}
	return helper.JsonOK(c, "", records)
}

func (ctl *MasterdataController) CreateAssignee(c *fiber.Ctx) error {
	var req dto.AssigneeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	record := model.AssigneeModel{
		AssigneeName:   req.Name,
		AssigneeEmail:  req.Email,
		AssigneePhone:  req.Phone,
		AssigneeActive: active,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Assignee already exists.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create assignee")
	}
	return helper.JsonCreated(c, "Assignee created", record)
}

func (ctl *MasterdataController) DeleteAssignee(c *fiber.Ctx) error {
	return ctl.deleteByID(c, &model.AssigneeModel{}, "assignee_id", "Assignee")
}

/* ===================== Shared helpers ===================== */

func (ctl *MasterdataController) parseNamed(c *fiber.Ctx) (*dto.NamedRecordRequest, error) {
	var req dto.NamedRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return nil, helper.JsonValidationError(c, helper.ValidationMap(err))
	}
	return &req, nil
}

func (ctl *MasterdataController) deleteByID(c *fiber.Ctx, m any, column, label string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(m, column+" = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete "+label)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "The "+label+" with the given ID was not found!")
	}
	return helper.JsonDeleted(c, label+" deleted", fiber.Map{"id": id})
}
