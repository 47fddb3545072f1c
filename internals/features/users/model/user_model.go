package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table (helpdesk staff accounts)
type UserModel struct {
	ID       uuid.UUID `gorm:"column:user_id;type:uuid;default:(gen_random_uuid());primaryKey" json:"user_id"`
	UserName string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	Email    string    `gorm:"column:user_email;size:255;uniqueIndex;not null" json:"user_email"`
	Password string    `gorm:"column:user_password;not null" json:"-"`
	Role     string    `gorm:"column:user_role;type:varchar(20);not null;default:'user'" json:"user_role"`
	IsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	CreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}
