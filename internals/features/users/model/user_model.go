package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the minimal account record carried by the identity token.
type UserModel struct {
	UserID        uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserName      string    `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail     string    `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_user_email"`
	UserPassword  string    `json:"-" gorm:"column:user_password;type:varchar(255);not null"`
	UserRole      string    `json:"user_role" gorm:"column:user_role;type:varchar(16);not null;default:'user'"`
	UserIsActive  bool      `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
