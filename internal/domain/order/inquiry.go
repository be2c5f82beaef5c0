package order

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
)

const (
	MaxInquiryNameLength    = 100
	MaxInquiryPhoneLength   = 20
	MaxInquirySubjectLength = 100
	MaxInquiryMessageLength = 2000

	DefaultInquirySubject = "General"

	inquiryNotesPrefix = "Contact Inquiry - Subject: "
	inquiryNotesFormat = inquiryNotesPrefix + "%s\n\nMessage: %s"
)

// Validation messages returned to the contact form
const (
	MsgNameEmailRequired = "Name and email are required."
	MsgInvalidEmail      = "Invalid email format."
	MsgNameTooLong       = "Name too long."
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Inquiry is a contact form submission
type Inquiry struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
	// Website is the hidden honeypot field
	Website string
}

// IsHoneypotTripped reports whether the hidden field was filled in
func (q Inquiry) IsHoneypotTripped() bool {
	return q.Website != ""
}

// ToOrder validates the inquiry and converts it into a pending pickup order
// with no items and zero amounts. Overlong phone, subject and message are truncated.
func (q Inquiry) ToOrder() (*Order, error) {
	name := strings.TrimSpace(q.Name)
	email := strings.TrimSpace(q.Email)
	if name == "" || email == "" {
		return nil, shared.NewValidationError(MsgNameEmailRequired)
	}
	if !IsValidEmail(email) {
		return nil, shared.NewValidationError(MsgInvalidEmail)
	}
	if utf8.RuneCountInString(name) > MaxInquiryNameLength {
		return nil, shared.NewValidationError(MsgNameTooLong)
	}

	// Only name and email are trimmed; the rest is kept as submitted
	phone := Truncate(q.Phone, MaxInquiryPhoneLength)
	subject := q.Subject
	if subject == "" {
		subject = DefaultInquirySubject
	}
	subject = Truncate(subject, MaxInquirySubjectLength)
	message := Truncate(q.Message, MaxInquiryMessageLength)

	first, last := SplitName(name)

	return NewOrder(NewOrderParams{
		Customer: Customer{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Phone:     phone,
		},
		DeliveryType:  DeliveryTypePickup,
		PaymentMethod: PaymentMethodEFT,
		ItemsJSON:     EmptyItems,
		Subtotal:      decimal.Zero,
		Shipping:      decimal.Zero,
		TotalAmount:   decimal.Zero,
		Notes:         fmt.Sprintf(inquiryNotesFormat, subject, message),
	})
}

// IsValidEmail reports whether email matches the accepted address pattern
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// SplitName splits a full name into the first token and the remaining tokens
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// Truncate shortens s to at most max characters
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
