package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog
type Product struct {
	BaseTenantModel
	Name        string           `gorm:"not null" json:"name" validate:"required"`
	Description string           `json:"description"`
	Brand       string           `json:"brand"`
	CostPrice   *decimal.Decimal `gorm:"type:numeric(12,2)" json:"cost_price,omitempty"` // fallback when a variant has no cost of its own
	IsActive    bool             `gorm:"default:true" json:"is_active"`
	SortOrder   int              `gorm:"default:0" json:"sort_order"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// ProductVariant represents a purchasable configuration of a product,
// owning its own stock and pricing
type ProductVariant struct {
	BaseTenantModel
	ProductID         uuid.UUID        `gorm:"type:uuid;not null;constraint:OnDelete:RESTRICT" json:"product_id"`
	Name              string           `gorm:"not null" json:"name" validate:"required"`
	SKU               string           `gorm:"not null" json:"sku" validate:"required"`
	Barcode           string           `json:"barcode"`
	CostPrice         *decimal.Decimal `gorm:"type:numeric(12,2)" json:"cost_price,omitempty"`
	SellingPrice      *decimal.Decimal `gorm:"type:numeric(12,2)" json:"selling_price,omitempty"`
	StockQuantity     int              `gorm:"default:0" json:"stock_quantity"`
	LowStockThreshold int              `gorm:"default:5" json:"low_stock_threshold"`
	IsActive          bool             `gorm:"default:true" json:"is_active"`
}
