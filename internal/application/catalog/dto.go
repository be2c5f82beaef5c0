package catalog

import (
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
)

// ProductRequest represents a request to create or update a product.
// It binds from JSON or from a multipart form.
type ProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required,max=200"`
	Category    string `json:"category" form:"category" binding:"omitempty,oneof=flower edibles concentrates accessories"`
	Strain      string `json:"strain" form:"strain" binding:"omitempty,oneof=sativa indica hybrid all"`
	THC         string `json:"thc" form:"thc" binding:"max=50"`
	Price       string `json:"price" form:"price" binding:"required"`
	Icon        string `json:"icon" form:"icon" binding:"max=10"`
	Description string `json:"description" form:"description"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
	RemoveImage bool   `json:"remove_image" form:"remove_image"`
}

// ImageUpload is an uploaded product image
type ImageUpload struct {
	ContentType string
	Data        []byte
}

// ListProductsQuery filters the admin product list
type ListProductsQuery struct {
	Search   string `form:"search" binding:"max=100"`
	Category string `form:"category" binding:"omitempty,oneof=flower edibles concentrates accessories"`
	Active   *bool  `form:"active"`
}

// PublicProduct is a product as shown on the storefront
type PublicProduct struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Strain      string  `json:"strain"`
	THC         string  `json:"thc"`
	Price       string  `json:"price"`
	Icon        string  `json:"icon"`
	Image       *string `json:"image"`
	Description string  `json:"description"`
}

// ProductResponse represents a product in admin API responses
type ProductResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Strain      string    `json:"strain"`
	THC         string    `json:"thc"`
	Price       string    `json:"price"`
	Icon        string    `json:"icon"`
	Image       *string   `json:"image"`
	HasImage    bool      `json:"has_image"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductOptions lists the selectable values of the product form
type ProductOptions struct {
	Categories []string `json:"categories"`
	Strains    []string `json:"strains"`
	Icons      []string `json:"icons"`
}

func imageURL(p *catalog.Product) *string {
	if p.Image == nil {
		return nil
	}
	url := p.Image.DisplayURL()
	return &url
}

// ToPublicProduct converts a domain product to its storefront view
func ToPublicProduct(p *catalog.Product) PublicProduct {
	return PublicProduct{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Strain:      string(p.Strain),
		THC:         p.THC,
		Price:       p.Price.StringFixed(2),
		Icon:        p.Icon,
		Image:       imageURL(p),
		Description: p.Description,
	}
}

// ToProductResponse converts a domain product to an admin response DTO
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Strain:      string(p.Strain),
		THC:         p.THC,
		Price:       p.Price.StringFixed(2),
		Icon:        p.Icon,
		Image:       imageURL(p),
		HasImage:    p.HasImage(),
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products to admin response DTOs
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses
}
