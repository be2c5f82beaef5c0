package settings

import (
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/settings"
)

// PublicSettings is the flat settings object served to the storefront
type PublicSettings struct {
	SiteName         string `json:"site_name"`
	SiteDescription  string `json:"site_description"`
	ContactPhone     string `json:"contact_phone"`
	ContactEmail     string `json:"contact_email"`
	ContactAddress   string `json:"contact_address"`
	WhatsAppNumber   string `json:"whatsapp_number"`
	OperatingHours   string `json:"operating_hours"`
	AboutTitle       string `json:"about_title"`
	AboutContent     string `json:"about_content"`
	HeroTitle        string `json:"hero_title"`
	HeroSubtitle     string `json:"hero_subtitle"`
	BankName         string `json:"bank_name"`
	AccountNumber    string `json:"account_number"`
	AccountType      string `json:"account_type"`
	BranchCode       string `json:"branch_code"`
	AccountHolder    string `json:"account_holder"`
	PaymentReference string `json:"payment_reference"`
}

// SettingsResponse represents the settings in admin API responses
type SettingsResponse struct {
	PublicSettings
	IsActive  bool      `json:"is_active"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateSettingsRequest represents the admin settings form
type UpdateSettingsRequest struct {
	SiteName         string `json:"site_name" form:"site_name" binding:"required,max=200"`
	SiteDescription  string `json:"site_description" form:"site_description"`
	ContactPhone     string `json:"contact_phone" form:"contact_phone" binding:"max=50"`
	ContactEmail     string `json:"contact_email" form:"contact_email" binding:"omitempty,email,max=254"`
	ContactAddress   string `json:"contact_address" form:"contact_address"`
	WhatsAppNumber   string `json:"whatsapp_number" form:"whatsapp_number" binding:"max=50"`
	OperatingHours   string `json:"operating_hours" form:"operating_hours" binding:"max=200"`
	AboutTitle       string `json:"about_title" form:"about_title" binding:"max=200"`
	AboutContent     string `json:"about_content" form:"about_content"`
	HeroTitle        string `json:"hero_title" form:"hero_title" binding:"max=200"`
	HeroSubtitle     string `json:"hero_subtitle" form:"hero_subtitle"`
	BankName         string `json:"bank_name" form:"bank_name" binding:"max=100"`
	AccountNumber    string `json:"account_number" form:"account_number" binding:"max=50"`
	AccountType      string `json:"account_type" form:"account_type" binding:"max=50"`
	BranchCode       string `json:"branch_code" form:"branch_code" binding:"max=20"`
	AccountHolder    string `json:"account_holder" form:"account_holder" binding:"max=100"`
	PaymentReference string `json:"payment_reference" form:"payment_reference" binding:"max=100"`
	IsActive         *bool  `json:"is_active" form:"is_active"`
}

// ToPublicSettings converts domain settings to the storefront view
func ToPublicSettings(s *settings.SiteSettings) *PublicSettings {
	return &PublicSettings{
		SiteName:         s.SiteName,
		SiteDescription:  s.SiteDescription,
		ContactPhone:     s.ContactPhone,
		ContactEmail:     s.ContactEmail,
		ContactAddress:   s.ContactAddress,
		WhatsAppNumber:   s.WhatsAppNumber,
		OperatingHours:   s.OperatingHours,
		AboutTitle:       s.AboutTitle,
		AboutContent:     s.AboutContent,
		HeroTitle:        s.HeroTitle,
		HeroSubtitle:     s.HeroSubtitle,
		BankName:         s.Bank.BankName,
		AccountNumber:    s.Bank.AccountNumber,
		AccountType:      s.Bank.AccountType,
		BranchCode:       s.Bank.BranchCode,
		AccountHolder:    s.Bank.AccountHolder,
		PaymentReference: s.Bank.PaymentReference,
	}
}

// ToSettingsResponse converts domain settings to an admin response DTO
func ToSettingsResponse(s *settings.SiteSettings) *SettingsResponse {
	return &SettingsResponse{
		PublicSettings: *ToPublicSettings(s),
		IsActive:       s.IsActive,
		UpdatedAt:      s.UpdatedAt,
	}
}

func (r UpdateSettingsRequest) toDomain(current bool) settings.SiteSettings {
	active := current
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return settings.SiteSettings{
		SiteName:        r.SiteName,
		SiteDescription: r.SiteDescription,
		ContactPhone:    r.ContactPhone,
		ContactEmail:    r.ContactEmail,
		ContactAddress:  r.ContactAddress,
		WhatsAppNumber:  r.WhatsAppNumber,
		OperatingHours:  r.OperatingHours,
		AboutTitle:      r.AboutTitle,
		AboutContent:    r.AboutContent,
		HeroTitle:       r.HeroTitle,
		HeroSubtitle:    r.HeroSubtitle,
		Bank: settings.BankDetails{
			BankName:         r.BankName,
			AccountNumber:    r.AccountNumber,
			AccountType:      r.AccountType,
			BranchCode:       r.BranchCode,
			AccountHolder:    r.AccountHolder,
			PaymentReference: r.PaymentReference,
		},
		IsActive: active,
	}
}
