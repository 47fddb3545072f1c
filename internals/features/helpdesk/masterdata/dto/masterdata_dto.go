package dto

type NamedRecordRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Color string `json:"color" validate:"omitempty,max=20"`
}

type InstructorRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=100"`
	Email   string `json:"email" validate:"required,email,max=50"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=16"`
	Address string `json:"address" validate:"omitempty,max=255"`
	Active  *bool  `json:"active"`
}

type AssigneeRequest struct {
	Name   string `json:"name" validate:"required,min=3,max=50"`
	Email  string `json:"email" validate:"required,email,max=50"`
	Phone  string `json:"phone" validate:"omitempty,min=7,max=16"`
	Active *bool  `json:"active"`
}
