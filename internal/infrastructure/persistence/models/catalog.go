package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// AttributeList stores an ordered attribute list as a JSON document
type AttributeList []catalog.Attribute

// Value implements driver.Valuer
func (a AttributeList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]catalog.Attribute(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (a *AttributeList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = AttributeList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AttributeList", src)
	}
	var attrs []catalog.Attribute
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return fmt.Errorf("failed to decode attributes: %w", err)
	}
	*a = attrs
	return nil
}

func cloneAttributes(attrs []catalog.Attribute) AttributeList {
	out := make(AttributeList, len(attrs))
	copy(out, attrs)
	return out
}

// CategoryModel is the persistence model for catalog.Category
type CategoryModel struct {
	BaseModel
	Name       string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	Attributes AttributeList `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the model to a domain category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseAggregateRoot: m.BaseModel.ToDomain(),
		Name:              m.Name,
		Attributes:        cloneAttributes(m.Attributes),
	}
}

// CategoryModelFromDomain converts a domain category to its model
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{
		Name:       c.Name,
		Attributes: cloneAttributes(c.Attributes),
	}
	m.BaseModel.FromDomain(c.BaseAggregateRoot)
	return m
}

// MasterProductModel is the persistence model for catalog.MasterProduct.
// The category snapshot is flattened into category_* columns.
type MasterProductModel struct {
	BaseModel
	Name               string         `gorm:"type:varchar(200);not null;uniqueIndex"`
	SKU                string         `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Description        string         `gorm:"type:text"`
	CategoryID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	CategoryName       string         `gorm:"type:varchar(200);not null"`
	CategoryAttributes AttributeList  `gorm:"type:jsonb;not null"`
	Status             catalog.Status `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (MasterProductModel) TableName() string {
	return "master_products"
}

// ToDomain converts the model to a domain master product
func (m *MasterProductModel) ToDomain() *catalog.MasterProduct {
	return &catalog.MasterProduct{
		BaseAggregateRoot: m.BaseModel.ToDomain(),
		Name:              m.Name,
		SKU:               m.SKU,
		Description:       m.Description,
		Category: catalog.CategorySnapshot{
			ID:         m.CategoryID,
			Name:       m.CategoryName,
			Attributes: cloneAttributes(m.CategoryAttributes),
		},
		Status: m.Status,
	}
}

// MasterProductModelFromDomain converts a domain master product to its model
func MasterProductModelFromDomain(p *catalog.MasterProduct) *MasterProductModel {
	m := &MasterProductModel{
		Name:               p.Name,
		SKU:                p.SKU,
		Description:        p.Description,
		CategoryID:         p.Category.ID,
		CategoryName:       p.Category.Name,
		CategoryAttributes: cloneAttributes(p.Category.Attributes),
		Status:             p.Status,
	}
	m.BaseModel.FromDomain(p.BaseAggregateRoot)
	return m
}

// SubProductModel is the persistence model for catalog.SubProduct
type SubProductModel struct {
	BaseModel
	MasterProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Attributes      AttributeList   `gorm:"type:jsonb;not null"`
	Price           decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          catalog.Status  `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (SubProductModel) TableName() string {
	return "sub_products"
}

// ToDomain converts the model to a domain sub-product
func (m *SubProductModel) ToDomain() *catalog.SubProduct {
	return &catalog.SubProduct{
		BaseAggregateRoot: m.BaseModel.ToDomain(),
		MasterProductID:   m.MasterProductID,
		Name:              m.Name,
		Attributes:        cloneAttributes(m.Attributes),
		Price:             m.Price,
		Status:            m.Status,
	}
}

// SubProductModelFromDomain converts a domain sub-product to its model
func SubProductModelFromDomain(s *catalog.SubProduct) *SubProductModel {
	m := &SubProductModel{
		MasterProductID: s.MasterProductID,
		Name:            s.Name,
		Attributes:      cloneAttributes(s.Attributes),
		Price:           s.Price,
		Status:          s.Status,
	}
	m.BaseModel.FromDomain(s.BaseAggregateRoot)
	return m
}
