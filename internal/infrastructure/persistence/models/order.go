package models

import (
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity.
type OrderModel struct {
	BaseModel
	FirstName         string              `gorm:"type:varchar(100);not null;default:''"`
	LastName          string              `gorm:"type:varchar(100);not null;default:''"`
	CustomerEmail     string              `gorm:"type:varchar(254);not null;default:''"`
	CustomerPhone     string              `gorm:"type:varchar(50);not null;default:''"`
	DeliveryType      order.DeliveryType  `gorm:"type:varchar(20);not null;default:'delivery'"`
	ShippingOption    string              `gorm:"type:varchar(50);not null;default:''"`
	AddressStreet     string              `gorm:"type:varchar(255);not null;default:''"`
	AddressSuburb     string              `gorm:"type:varchar(100);not null;default:''"`
	AddressCity       string              `gorm:"type:varchar(100);not null;default:''"`
	AddressProvince   string              `gorm:"type:varchar(100);not null;default:''"`
	AddressPostalCode string              `gorm:"type:varchar(10);not null;default:''"`
	PaymentMethod     order.PaymentMethod `gorm:"type:varchar(20);not null;default:'eft'"`
	ItemsJSON         string              `gorm:"column:items_json;type:text;not null"`
	Subtotal          decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	Shipping          decimal.Decimal     `gorm:"type:decimal(10,2);not null;default:0"`
	TotalAmount       decimal.Decimal     `gorm:"type:decimal(10,2);not null"`
	Status            order.Status        `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes             string              `gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *order.Order {
	return &order.Order{
		BaseEntity: m.BaseModel.ToDomain(),
		Customer: order.Customer{
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.CustomerEmail,
			Phone:     m.CustomerPhone,
		},
		DeliveryType:   m.DeliveryType,
		ShippingOption: m.ShippingOption,
		Address: order.Address{
			Street:     m.AddressStreet,
			Suburb:     m.AddressSuburb,
			City:       m.AddressCity,
			Province:   m.AddressProvince,
			PostalCode: m.AddressPostalCode,
		},
		PaymentMethod: m.PaymentMethod,
		ItemsJSON:     m.ItemsJSON,
		Subtotal:      m.Subtotal,
		Shipping:      m.Shipping,
		TotalAmount:   m.TotalAmount,
		Status:        m.Status,
		Notes:         m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.FirstName = o.Customer.FirstName
	m.LastName = o.Customer.LastName
	m.CustomerEmail = o.Customer.Email
	m.CustomerPhone = o.Customer.Phone
	m.DeliveryType = o.DeliveryType
	m.ShippingOption = o.ShippingOption
	m.AddressStreet = o.Address.Street
	m.AddressSuburb = o.Address.Suburb
	m.AddressCity = o.Address.City
	m.AddressProvince = o.Address.Province
	m.AddressPostalCode = o.Address.PostalCode
	m.PaymentMethod = o.PaymentMethod
	m.ItemsJSON = o.ItemsJSON
	m.Subtotal = o.Subtotal
	m.Shipping = o.Shipping
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status
	m.Notes = o.Notes
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *order.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
