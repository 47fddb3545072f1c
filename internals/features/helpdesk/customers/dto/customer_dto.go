// file: internals/features/helpdesk/customers/dto/customer_dto.go
package dto

import "github.com/google/uuid"

type CustomerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Contact  string `json:"contact" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Phone    string `json:"phone" validate:"required,min=7,max=16"`
	Address  string `json:"address" validate:"required,min=3,max=255"`
	Comments string `json:"comments" validate:"omitempty,max=2000"`

	Active        *bool `json:"active"`
	ClickUpActive *bool `json:"clickUpActive"`
	GitHubActive  *bool `json:"gitHubActive"`

	// Categories the customer subscribes to; every id must exist.
	Categories []uuid.UUID `json:"categories" validate:"omitempty,dive,required"`
}
