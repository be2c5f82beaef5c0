package models

import (
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/settings"
)

// SiteSettingsModel is the persistence model for the SiteSettings singleton.
type SiteSettingsModel struct {
	BaseModel
	SiteName         string `gorm:"type:varchar(200);not null;default:'QueueBlaze'"`
	SiteDescription  string `gorm:"type:text;not null;default:''"`
	ContactPhone     string `gorm:"type:varchar(50);not null;default:''"`
	ContactEmail     string `gorm:"type:varchar(254);not null;default:''"`
	ContactAddress   string `gorm:"type:text;not null;default:''"`
	WhatsAppNumber   string `gorm:"column:whatsapp_number;type:varchar(50);not null;default:''"`
	OperatingHours   string `gorm:"type:varchar(200);not null;default:''"`
	AboutTitle       string `gorm:"type:varchar(200);not null;default:''"`
	AboutContent     string `gorm:"type:text;not null;default:''"`
	HeroTitle        string `gorm:"type:varchar(200);not null;default:''"`
	HeroSubtitle     string `gorm:"type:text;not null;default:''"`
	BankName         string `gorm:"type:varchar(100);not null;default:''"`
	AccountNumber    string `gorm:"type:varchar(50);not null;default:''"`
	AccountType      string `gorm:"type:varchar(50);not null;default:''"`
	BranchCode       string `gorm:"type:varchar(20);not null;default:''"`
	AccountHolder    string `gorm:"type:varchar(100);not null;default:''"`
	PaymentReference string `gorm:"type:varchar(100);not null;default:''"`
	IsActive         bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// ToDomain converts the persistence model to a domain SiteSettings entity.
func (m *SiteSettingsModel) ToDomain() *settings.SiteSettings {
	return &settings.SiteSettings{
		BaseEntity:      m.BaseModel.ToDomain(),
		SiteName:        m.SiteName,
		SiteDescription: m.SiteDescription,
		ContactPhone:    m.ContactPhone,
		ContactEmail:    m.ContactEmail,
		ContactAddress:  m.ContactAddress,
		WhatsAppNumber:  m.WhatsAppNumber,
		OperatingHours:  m.OperatingHours,
		AboutTitle:      m.AboutTitle,
		AboutContent:    m.AboutContent,
		HeroTitle:       m.HeroTitle,
		HeroSubtitle:    m.HeroSubtitle,
		Bank: settings.BankDetails{
			BankName:         m.BankName,
			AccountNumber:    m.AccountNumber,
			AccountType:      m.AccountType,
			BranchCode:       m.BranchCode,
			AccountHolder:    m.AccountHolder,
			PaymentReference: m.PaymentReference,
		},
		IsActive: m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain SiteSettings entity.
func (m *SiteSettingsModel) FromDomain(s *settings.SiteSettings) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.SiteName = s.SiteName
	m.SiteDescription = s.SiteDescription
	m.ContactPhone = s.ContactPhone
	m.ContactEmail = s.ContactEmail
	m.ContactAddress = s.ContactAddress
	m.WhatsAppNumber = s.WhatsAppNumber
	m.OperatingHours = s.OperatingHours
	m.AboutTitle = s.AboutTitle
	m.AboutContent = s.AboutContent
	m.HeroTitle = s.HeroTitle
	m.HeroSubtitle = s.HeroSubtitle
	m.BankName = s.Bank.BankName
	m.AccountNumber = s.Bank.AccountNumber
	m.AccountType = s.Bank.AccountType
	m.BranchCode = s.Bank.BranchCode
	m.AccountHolder = s.Bank.AccountHolder
	m.PaymentReference = s.Bank.PaymentReference
	m.IsActive = s.IsActive
}
