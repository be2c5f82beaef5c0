package settings

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
)

// SingletonID is the primary key of the only settings row
const SingletonID uint64 = 1

// DefaultSiteName is used when the settings row is first created
const DefaultSiteName = "QueueBlaze"

// BankDetails holds the EFT payment instructions shown at checkout
type BankDetails struct {
	BankName         string
	AccountNumber    string
	AccountType      string
	BranchCode       string
	AccountHolder    string
	PaymentReference string
}

// SiteSettings is the storefront configuration. There is exactly one row.
type SiteSettings struct {
	shared.BaseEntity
	SiteName        string
	SiteDescription string
	ContactPhone    string
	ContactEmail    string
	ContactAddress  string
	WhatsAppNumber  string
	OperatingHours  string
	AboutTitle      string
	AboutContent    string
	HeroTitle       string
	HeroSubtitle    string
	Bank            BankDetails
	IsActive        bool
}

// NewDefaultSettings returns the settings row created on first start
func NewDefaultSettings() *SiteSettings {
	s := &SiteSettings{
		BaseEntity: shared.NewBaseEntity(),
		SiteName:   DefaultSiteName,
		IsActive:   true,
	}
	s.ID = SingletonID
	return s
}

// Apply validates and replaces all editable fields
func (s *SiteSettings) Apply(in SiteSettings) error {
	in.SiteName = strings.TrimSpace(in.SiteName)
	if in.SiteName == "" {
		return shared.NewValidationError("Site name cannot be empty")
	}
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
	if in.ContactEmail != "" {
		if _, err := mail.ParseAddress(in.ContactEmail); err != nil {
			return shared.NewValidationError("Invalid contact email")
		}
	}
	if err := validateLengths(in); err != nil {
		return err
	}

	s.SiteName = in.SiteName
	s.SiteDescription = in.SiteDescription
	s.ContactPhone = in.ContactPhone
	s.ContactEmail = in.ContactEmail
	s.ContactAddress = in.ContactAddress
	s.WhatsAppNumber = in.WhatsAppNumber
	s.OperatingHours = in.OperatingHours
	s.AboutTitle = in.AboutTitle
	s.AboutContent = in.AboutContent
	s.HeroTitle = in.HeroTitle
	s.HeroSubtitle = in.HeroSubtitle
	s.Bank = in.Bank
	s.IsActive = in.IsActive
	s.Touch()
	return nil
}

func validateLengths(in SiteSettings) error {
	limits := []struct {
		field string
		value string
		max   int
	}{
		{"site_name", in.SiteName, 200},
		{"contact_phone", in.ContactPhone, 50},
		{"contact_email", in.ContactEmail, 254},
		{"whatsapp_number", in.WhatsAppNumber, 50},
		{"operating_hours", in.OperatingHours, 200},
		{"about_title", in.AboutTitle, 200},
		{"hero_title", in.HeroTitle, 200},
		{"bank_name", in.Bank.BankName, 100},
		{"account_number", in.Bank.AccountNumber, 50},
		{"account_type", in.Bank.AccountType, 50},
		{"branch_code", in.Bank.BranchCode, 20},
		{"account_holder", in.Bank.AccountHolder, 100},
		{"payment_reference", in.Bank.PaymentReference, 100},
	}
	for _, l := range limits {
		if utf8.RuneCountInString(l.value) > l.max {
			return shared.NewValidationError(fmt.Sprintf("%s cannot exceed %d characters", l.field, l.max))
		}
	}
	return nil
}
