package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Reference records ===================== */
// Small named records referenced (by snapshot id) from tickets and products.

type CategoryModel struct {
	CategoryID    uuid.UUID `gorm:"column:category_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"category_id"`
	CategoryName  string    `gorm:"column:category_name;size:50;uniqueIndex;not null" json:"category_name"`
	CategoryColor string    `gorm:"column:category_color;size:20" json:"category_color"`

	CreatedAt time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	UpdatedAt time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
}

func (CategoryModel) TableName() string { return "categories" }

func (m *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = uuid.New()
	}
	return nil
}

type StateModel struct {
	StateID    uuid.UUID `gorm:"column:state_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"state_id"`
	StateName  string    `gorm:"column:state_name;size:50;uniqueIndex;not null" json:"state_name"`
	StateColor string    `gorm:"column:state_color;size:20" json:"state_color"`

	CreatedAt time.Time `gorm:"column:state_created_at;autoCreateTime" json:"state_created_at"`
	UpdatedAt time.Time `gorm:"column:state_updated_at;autoUpdateTime" json:"state_updated_at"`
}

func (StateModel) TableName() string { return "states" }

func (m *StateModel) BeforeCreate(tx *gorm.DB) error {
	if m.StateID == uuid.Nil {
		m.StateID = uuid.New()
	}
	return nil
}

type LocationModel struct {
	LocationID    uuid.UUID `gorm:"column:location_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"location_id"`
	LocationName  string    `gorm:"column:location_name;size:50;uniqueIndex;not null" json:"location_name"`
	LocationColor string    `gorm:"column:location_color;size:20" json:"location_color"`

	CreatedAt time.Time `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
	UpdatedAt time.Time `gorm:"column:location_updated_at;autoUpdateTime" json:"location_updated_at"`
}

func (LocationModel) TableName() string { return "locations" }

func (m *LocationModel) BeforeCreate(tx *gorm.DB) error {
	if m.LocationID == uuid.Nil {
		m.LocationID = uuid.New()
	}
	return nil
}

type InstructorModel struct {
	InstructorID      uuid.UUID `gorm:"column:instructor_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"instructor_id"`
	InstructorName    string    `gorm:"column:instructor_name;size:100;not null" json:"instructor_name"`
	InstructorEmail   string    `gorm:"column:instructor_email;size:50;uniqueIndex;not null" json:"instructor_email"`
	InstructorPhone   string    `gorm:"column:instructor_phone;size:16" json:"instructor_phone"`
	InstructorAddress string    `gorm:"column:instructor_address;size:255" json:"instructor_address"`
	InstructorActive  bool      `gorm:"column:instructor_active;not null;default:true" json:"instructor_active"`

	CreatedAt time.Time `gorm:"column:instructor_created_at;autoCreateTime" json:"instructor_created_at"`
	UpdatedAt time.Time `gorm:"column:instructor_updated_at;autoUpdateTime" json:"instructor_updated_at"`
}

func (InstructorModel) TableName() string { return "instructors" }

func (m *InstructorModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstructorID == uuid.Nil {
		m.InstructorID = uuid.New()
	}
	return nil
}

type AssigneeModel struct {
	AssigneeID     uuid.UUID `gorm:"column:assignee_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"assignee_id"`
	AssigneeName   string    `gorm:"column:assignee_name;size:50;not null" json:"assignee_name"`
	AssigneeEmail  string    `gorm:"column:assignee_email;size:50;uniqueIndex;not null" json:"assignee_email"`
	AssigneePhone  string    `gorm:"column:assignee_phone;size:16" json:"assignee_phone"`
	AssigneeActive bool      `gorm:"column:assignee_active;not null;default:true" json:"assignee_active"`

	CreatedAt time.Time `gorm:"column:assignee_created_at;autoCreateTime" json:"assignee_created_at"`
	UpdatedAt time.Time `gorm:"column:assignee_updated_at;autoUpdateTime" json:"assignee_updated_at"`
}

func (AssigneeModel) TableName() string { return "assignees" }

func (m *AssigneeModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssigneeID == uuid.Nil {
		m.AssigneeID = uuid.New()
	}
	return nil
}
