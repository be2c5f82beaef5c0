package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/catalog"
	"github.com/quinntest007-creator/QueueBlaze/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ImageStorage keeps product images outside the database.
// When no storage is configured images are stored inline with the product.
type ImageStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, key string) error
}

// ProductService handles product-related business operations
type ProductService struct {
	products catalog.ProductRepository
	images   ImageStorage
	logger   *zap.Logger
}

// NewProductService creates a new ProductService. images may be nil.
func NewProductService(products catalog.ProductRepository, images ImageStorage, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		products: products,
		images:   images,
		logger:   logger,
	}
}

// ListActive returns the storefront product list, newest first
func (s *ProductService) ListActive(ctx context.Context) ([]PublicProduct, error) {
	products, err := s.products.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]PublicProduct, len(products))
	for i := range products {
		result[i] = ToPublicProduct(&products[i])
	}
	return result, nil
}

// List returns products for the admin list, newest first
func (s *ProductService) List(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	filter := shared.DefaultFilter()
	filter.Search = strings.TrimSpace(query.Search)
	if query.Category != "" {
		filter = filter.With("category", query.Category)
	}
	if query.Active != nil {
		filter = filter.With("is_active", *query.Active)
	}

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id uint64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Create creates a product, optionally with an image. Products are active unless stated otherwise.
func (s *ProductService) Create(ctx context.Context, req ProductRequest, upload *ImageUpload) (*ProductResponse, error) {
	input, err := toProductInput(req, true)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(input)
	if err != nil {
		return nil, err
	}

	var uploaded *catalog.ProductImage
	if upload != nil {
		uploaded, err = s.prepareImage(ctx, upload)
		if err != nil {
			return nil, err
		}
		if err := product.SetImage(uploaded); err != nil {
			s.discardImage(ctx, uploaded)
			return nil, err
		}
	}

	if err := s.products.Save(ctx, product); err != nil {
		s.discardImage(ctx, uploaded)
		return nil, err
	}

	s.logger.Info("product created", zap.Uint64("product_id", product.ID), zap.String("name", product.Name))
	return ToProductResponse(product), nil
}

// Update replaces the product fields. A new upload replaces the image,
// RemoveImage clears it, and otherwise the current image is kept.
func (s *ProductService) Update(ctx context.Context, id uint64, req ProductRequest, upload *ImageUpload) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input, err := toProductInput(req, product.IsActive)
	if err != nil {
		return nil, err
	}
	if err := product.Update(input); err != nil {
		return nil, err
	}

	var replaced, uploaded *catalog.ProductImage
	switch {
	case req.RemoveImage:
		replaced = product.RemoveImage()
	case upload != nil:
		uploaded, err = s.prepareImage(ctx, upload)
		if err != nil {
			return nil, err
		}
		previous := product.Image
		if err := product.SetImage(uploaded); err != nil {
			s.discardImage(ctx, uploaded)
			return nil, err
		}
		replaced = previous
	}

	if err := s.products.Save(ctx, product); err != nil {
		s.discardImage(ctx, uploaded)
		return nil, err
	}
	s.discardImage(ctx, replaced)

	s.logger.Info("product updated", zap.Uint64("product_id", product.ID))
	return ToProductResponse(product), nil
}

// Delete removes a product and its image
func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImage(ctx, product.Image)

	s.logger.Info("product deleted", zap.Uint64("product_id", id))
	return nil
}

// Options returns the selectable categories, strains and icons
func (s *ProductService) Options() ProductOptions {
	return ProductOptions{
		Categories: []string{
			string(catalog.CategoryFlower),
			string(catalog.CategoryEdibles),
			string(catalog.CategoryConcentrates),
			string(catalog.CategoryAccessories),
		},
		Strains: []string{
			string(catalog.StrainSativa),
			string(catalog.StrainIndica),
			string(catalog.StrainHybrid),
			string(catalog.StrainAll),
		},
		Icons: append([]string(nil), catalog.Icons...),
	}
}

// prepareImage validates the upload and, with external storage, uploads it
func (s *ProductService) prepareImage(ctx context.Context, upload *ImageUpload) (*catalog.ProductImage, error) {
	inline, err := catalog.NewInlineImage(upload.ContentType, upload.Data)
	if err != nil {
		return nil, err
	}
	if s.images == nil {
		return inline, nil
	}

	key := uuid.New().String() + extensionFor(inline.ContentType)
	url, err := s.images.Upload(ctx, key, inline.ContentType, inline.Data)
	if err != nil {
		s.logger.Error("failed to upload product image", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return catalog.NewStoredImage(inline.ContentType, key, url)
}

// discardImage removes an image object that is no longer referenced
func (s *ProductService) discardImage(ctx context.Context, img *catalog.ProductImage) {
	if img == nil || !img.IsStored() || s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, img.StorageKey); err != nil {
		s.logger.Warn("failed to delete product image", zap.String("key", img.StorageKey), zap.Error(err))
	}
}

func toProductInput(req ProductRequest, defaultActive bool) (catalog.ProductInput, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return catalog.ProductInput{}, shared.NewDomainError("INVALID_PRICE", "Price must be a number")
	}

	active := defaultActive
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return catalog.ProductInput{
		Name:        req.Name,
		Category:    catalog.Category(req.Category),
		Strain:      catalog.Strain(req.Strain),
		THC:         req.THC,
		Price:       price,
		Icon:        req.Icon,
		Description: req.Description,
		IsActive:    active,
	}, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
