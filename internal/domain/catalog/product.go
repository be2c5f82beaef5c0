package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category is the product category shown on the storefront
type Category string

const (
	CategoryFlower       Category = "flower"
	CategoryEdibles      Category = "edibles"
	CategoryConcentrates Category = "concentrates"
	CategoryAccessories  Category = "accessories"
)

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryFlower, CategoryEdibles, CategoryConcentrates, CategoryAccessories:
		return true
	}
	return false
}

// Strain is the plant strain classification
type Strain string

const (
	StrainSativa Strain = "sativa"
	StrainIndica Strain = "indica"
	StrainHybrid Strain = "hybrid"
	StrainAll    Strain = "all"
)

// IsValid reports whether s is a known strain
func (s Strain) IsValid() bool {
	switch s {
	case StrainSativa, StrainIndica, StrainHybrid, StrainAll:
		return true
	}
	return false
}

const (
	DefaultCategory = CategoryFlower
	DefaultStrain   = StrainHybrid

	maxNameLength = 200
	maxTHCLength  = 50
)

// Product is a catalog item. It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseEntity
	Name        string
	Category    Category
	Strain      Strain
	THC         string
	Price       decimal.Decimal
	Icon        string
	Image       *ProductImage
	Description string
	IsActive    bool
}

// ProductInput carries the editable fields of a product
type ProductInput struct {
	Name        string
	Category    Category
	Strain      Strain
	THC         string
	Price       decimal.Decimal
	Icon        string
	Description string
	IsActive    bool
}

// NewProduct creates a new product, applying defaults for blank category, strain and icon
func NewProduct(in ProductInput) (*Product, error) {
	p := &Product{BaseEntity: shared.NewBaseEntity()}
	if err := p.apply(in); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the editable fields of the product. The image is left untouched.
func (p *Product) Update(in ProductInput) error {
	if err := p.apply(in); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *Product) apply(in ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if err := validateName(name); err != nil {
		return err
	}

	category := in.Category
	if category == "" {
		category = DefaultCategory
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown product category: "+string(category))
	}

	strain := in.Strain
	if strain == "" {
		strain = DefaultStrain
	}
	if !strain.IsValid() {
		return shared.NewDomainError("INVALID_STRAIN", "Unknown strain: "+string(strain))
	}

	thc := strings.TrimSpace(in.THC)
	if utf8.RuneCountInString(thc) > maxTHCLength {
		return shared.NewDomainError("INVALID_THC", "THC label cannot exceed 50 characters")
	}

	if in.Price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	icon := in.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	if !IsValidIcon(icon) {
		return shared.NewDomainError("INVALID_ICON", "Unknown product icon")
	}

	p.Name = name
	p.Category = category
	p.Strain = strain
	p.THC = thc
	p.Price = in.Price.Round(2)
	p.Icon = icon
	p.Description = in.Description
	p.IsActive = in.IsActive
	return nil
}

// SetImage attaches or replaces the product image
func (p *Product) SetImage(img *ProductImage) error {
	if img == nil {
		return shared.NewDomainError("INVALID_IMAGE", "Image cannot be nil")
	}
	if err := img.Validate(); err != nil {
		return err
	}
	p.Image = img
	p.Touch()
	return nil
}

// RemoveImage detaches the image and returns the previous one, if any
func (p *Product) RemoveImage() *ProductImage {
	old := p.Image
	p.Image = nil
	p.Touch()
	return old
}

// HasImage reports whether the product carries an image
func (p *Product) HasImage() bool {
	return p.Image != nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
