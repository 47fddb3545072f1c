package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "helpdesku_backend/internals/features/enrollment/products/model"
)

type CreateProductRequest struct {
	ProductCode        string          `json:"product_code" validate:"required,min=5,max=25"`
	ProductName        string          `json:"name" validate:"required,min=5,max=255"`
	ProductDescription string          `json:"description" validate:"required,min=15,max=3000"`
	InstructorID       *uuid.UUID      `json:"instructor_id" validate:"omitempty"`
	NumberInStock      *int            `json:"number_in_stock" validate:"required,min=0,max=9999"`
	StartDate          time.Time       `json:"start_date" validate:"required"`
	EndDate            time.Time       `json:"end_date" validate:"required"`
	ProductPrice       decimal.Decimal `json:"product_price" validate:"required"`
	Active             *bool           `json:"active"`
}

type UpdateProductRequest struct {
	ProductName        *string          `json:"name" validate:"omitempty,min=5,max=255"`
	ProductDescription *string          `json:"description" validate:"omitempty,min=15,max=3000"`
	StartDate          *time.Time       `json:"start_date"`
	EndDate            *time.Time       `json:"end_date"`
	ProductPrice       *decimal.Decimal `json:"product_price"`
	Active             *bool            `json:"active"`
}

func (r *CreateProductRequest) ToModel() *model.ProductModel {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	stock := 0
	if r.NumberInStock != nil {
		stock = *r.NumberInStock
	}
	return &model.ProductModel{
		ProductCode:          r.ProductCode,
		ProductName:          r.ProductName,
		ProductDescription:   r.ProductDescription,
		ProductInstructorID:  r.InstructorID,
		ProductNumberInStock: stock,
		ProductStartDate:     r.StartDate,
		ProductEndDate:       r.EndDate,
		ProductPrice:         r.ProductPrice,
		ProductActive:        active,
	}
}

func (r *UpdateProductRequest) Apply(m *model.ProductModel) {
	if r.ProductName != nil {
		m.ProductName = *r.ProductName
	}
	if r.ProductDescription != nil {
		m.ProductDescription = *r.ProductDescription
	}
	if r.StartDate != nil {
		m.ProductStartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.ProductEndDate = *r.EndDate
	}
	if r.ProductPrice != nil {
		m.ProductPrice = *r.ProductPrice
	}
	if r.Active != nil {
		m.ProductActive = *r.Active
	}
}
