package model

import (
	"github.com/shopspring/decimal"
)

// Product is a catalogue item. It holds a non-owning reference to its
// category; deleting the category nulls the reference.
type Product struct {
	ID         int64           `gorm:"primaryKey"`
	CategoryID *int64          `gorm:"index"`
	Category   *Category       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Name       string          `gorm:"size:255;not null"`
	SKU        string          `gorm:"column:sku;size:64;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName pins the table name used by gorm.
func (p *Product) TableName() string {
	return "product"
}

// ProductView is the flattened product/category projection.
type ProductView struct {
	ID       int64           `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    decimal.Decimal `json:"price"`
}

// ProductPayload is the request body for creating or partially updating a
// product. A nil field means the key was absent (or null) in the request.
type ProductPayload struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,notblank"`
	Category *string          `json:"category,omitempty" validate:"omitempty,notblank"`
	SKU      *string          `json:"sku,omitempty" validate:"omitempty,notblank"`
	Price    *decimal.Decimal `json:"price,omitempty" validate:"-"`
}
