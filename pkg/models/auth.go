package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents a store/organization
type Tenant struct {
	BaseModel
	Name   string `gorm:"not null" json:"name" validate:"required"`
	Domain string `json:"domain"`
	Status string `gorm:"default:'active'" json:"status"`
}

// User represents a system or tenant user
type User struct {
	BaseModel
	TenantID    *uuid.UUID `gorm:"type:uuid;index;constraint:OnDelete:SET NULL" json:"tenant_id,omitempty"` // null for system admins
	Email       string     `gorm:"unique;not null" json:"email" validate:"required,email"`
	Password    string     `gorm:"not null" json:"-"`
	Name        string     `gorm:"not null" json:"name" validate:"required"`
	Role        string     `gorm:"not null" json:"role" validate:"required"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
}
