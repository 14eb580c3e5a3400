// Package model holds the GORM persistence models. They mirror table
// layout and never leak above the repository layer; mappers in the
// postgres package translate them to and from domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(20);index"`
	Provider     string    `gorm:"type:varchar(20);not null;default:local"`
	GoogleID     string    `gorm:"type:varchar(64);index"`
	Phone        string    `gorm:"type:varchar(32)"`
	ProfileImage string    `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Tutor *TutorModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
