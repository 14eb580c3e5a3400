package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table. ExpiresAt is
// indexed so expired rows can be swept cheaply.
type NotificationModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type        string         `gorm:"type:varchar(20);not null"`
	Category    string         `gorm:"type:varchar(20);not null"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Message     string         `gorm:"type:text"`
	Read        bool           `gorm:"not null;default:false;index"`
	ActionLabel string         `gorm:"type:varchar(120)"`
	ActionURL   string         `gorm:"type:varchar(512)"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	Priority    string         `gorm:"type:varchar(10);not null;default:normal"`
	ExpiresAt   *time.Time     `gorm:"index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
