package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mySkinMatch/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("failed to create product batch: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, errors.New("product not found")
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindPage(ctx context.Context, opts domain.ProductListOptions) (domain.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProductPage{}, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Model(&domain.Product{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("nama_produk ILIKE ? OR brand ILIKE ? OR deskripsi_produk ILIKE ?", pattern, pattern, pattern)
	}
	if opts.Brand != "" {
		query = query.Where("brand = ?", opts.Brand)
	}
	if opts.MinPrice > 0 {
		query = query.Where("harga >= ?", opts.MinPrice)
	}
	if opts.MaxPrice > 0 {
		query = query.Where("harga <= ?", opts.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return domain.ProductPage{}, fmt.Errorf("failed to count products: %w", err)
	}

	var totalBrands int64
	if err := r.DB.WithContext(ctx).Model(&domain.Product{}).Distinct("brand").Count(&totalBrands).Error; err != nil {
		return domain.ProductPage{}, fmt.Errorf("failed to count brands: %w", err)
	}

	switch opts.SortBy {
	case "price_low":
		query = query.Order("harga ASC")
	case "price_high":
		query = query.Order("harga DESC")
	case "rating":
		query = query.Order("rating_bintang DESC")
	default:
		query = query.Order("nama_produk ASC")
	}

	offset := (opts.Page - 1) * opts.PerPage

	var products []domain.Product
	if err := query.Offset(offset).Limit(opts.PerPage).Find(&products).Error; err != nil {
		return domain.ProductPage{}, fmt.Errorf("failed to find product page: %w", err)
	}

	pages := int(math.Ceil(float64(total) / float64(opts.PerPage)))

	return domain.ProductPage{
		Products:    products,
		Total:       total,
		TotalBrands: totalBrands,
		Page:        opts.Page,
		PerPage:     opts.PerPage,
		Pages:       pages,
	}, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"nama_produk":      product.ProductName,
		"brand":            product.Brand,
		"harga":            product.Price,
		"deskripsi_produk": product.Description,
		"rating_bintang":   product.Rating,
		"bahan_utama":      product.Ingredients,
		"jenis_kulit":      product.SkinType,
		"link_produk":      product.ProductLink,
		"marketplace":      product.Marketplace,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}
