package models

import (
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name             string           `gorm:"type:varchar(200);not null"`
	Category         catalog.Category `gorm:"type:varchar(20);not null;default:'flower'"`
	Strain           catalog.Strain   `gorm:"type:varchar(20);not null;default:'hybrid'"`
	THC              string           `gorm:"column:thc;type:varchar(50);not null;default:''"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Icon             string           `gorm:"type:varchar(10);not null"`
	ImageData        []byte
	ImageContentType string `gorm:"type:varchar(50);not null;default:''"`
	ImageKey         string `gorm:"type:varchar(255);not null;default:''"`
	ImageURL         string `gorm:"column:image_url;type:varchar(500);not null;default:''"`
	Description      string `gorm:"type:text;not null;default:''"`
	IsActive         bool   `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Category:    m.Category,
		Strain:      m.Strain,
		THC:         m.THC,
		Price:       m.Price,
		Icon:        m.Icon,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
	switch {
	case m.ImageKey != "":
		p.Image = &catalog.ProductImage{ContentType: m.ImageContentType, StorageKey: m.ImageKey, URL: m.ImageURL}
	case len(m.ImageData) > 0:
		p.Image = &catalog.ProductImage{ContentType: m.ImageContentType, Data: m.ImageData}
	}
	return p
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Category = p.Category
	m.Strain = p.Strain
	m.THC = p.THC
	m.Price = p.Price
	m.Icon = p.Icon
	m.Description = p.Description
	m.IsActive = p.IsActive

	m.ImageData = nil
	m.ImageContentType = ""
	m.ImageKey = ""
	m.ImageURL = ""
	if p.Image != nil {
		m.ImageContentType = p.Image.ContentType
		m.ImageData = p.Image.Data
		m.ImageKey = p.Image.StorageKey
		m.ImageURL = p.Image.URL
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
