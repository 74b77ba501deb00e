package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseTenantModel is the base model for all tenant-scoped entities
type BaseTenantModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID       `gorm:"type:uuid;index;not null;constraint:OnDelete:RESTRICT" json:"tenant_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BaseModel is the base model for system-wide entities
type BaseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt *gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook to generate UUID if not set
func (b *BaseTenantModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook to generate UUID if not set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// PaginationResult represents paginated results
type PaginationResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// GetAllModels returns every model registered for AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		&Tenant{},
		&User{},
		&Product{},
		&ProductVariant{},
	}
}
