package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/quinntest007-creator/QueueBlaze/internal/application/catalog"
	domaincatalog "github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
)

// ProductImageField is the multipart field carrying the product image
const ProductImageField = "image"

// ProductHandler handles admin product requests
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /api/admin/products
func (h *ProductHandler) List(c *gin.Context) {
	var query catalog.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	products, err := h.productService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// Options handles GET /api/admin/products/options
func (h *ProductHandler) Options(c *gin.Context) {
	h.Success(c, h.productService.Options())
}

// Get handles GET /api/admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Create handles POST /api/admin/products (JSON or multipart with an image)
func (h *ProductHandler) Create(c *gin.Context) {
	req, upload, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req, upload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Update handles PUT /api/admin/products/:id.
// remove_image=true clears the image; without a new file the old one is kept.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	req, upload, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req, upload)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /api/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Product deleted"})
}

// bindProduct binds the product fields and the optional image upload
func (h *ProductHandler) bindProduct(c *gin.Context) (catalog.ProductRequest, *catalog.ImageUpload, bool) {
	var req catalog.ProductRequest
	if err := c.ShouldBind(&req); err != nil {
		h.ValidationError(c, err)
		return req, nil, false
	}

	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		return req, nil, true
	}

	upload, err := readImageUpload(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return req, nil, false
	}
	return req, upload, true
}

// readImageUpload returns the uploaded image, or nil when none was sent.
// At most one byte over the size limit is read so oversized files fail validation.
func readImageUpload(c *gin.Context) (*catalog.ImageUpload, error) {
	header, err := c.FormFile(ProductImageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid image upload: %w", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, domaincatalog.MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image upload: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return &catalog.ImageUpload{ContentType: contentType, Data: data}, nil
}
