package rest

import (
	"context"
	"fmt"
	"io"
	"mySkinMatch/business/product"
	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetProductPage(ctx context.Context, opts domain.ProductListOptions) (domain.ProductPage, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
	ImportCSV(ctx context.Context, r io.Reader) (product.ImportResult, error)
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductRequest struct {
	ProductName string  `json:"nama_produk" validate:"required,min=2,max=255"`
	Brand       string  `json:"brand" validate:"required,min=1,max=100"`
	Price       int64   `json:"harga" validate:"required,gt=0"`
	Description string  `json:"deskripsi_produk,omitempty"`
	Rating      float64 `json:"rating_bintang,omitempty" validate:"omitempty,gte=0,lte=5"`
	Ingredients string  `json:"bahan_utama,omitempty"`
	SkinType    string  `json:"jenis_kulit,omitempty"`
	ProductLink string  `json:"link_produk,omitempty"`
	Marketplace string  `json:"marketplace,omitempty"`
}

// ListProducts serves the paginated catalog with search, brand, price and
// sort filters.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	minPrice, _ := strconv.ParseInt(c.QueryParam("min_price"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.QueryParam("max_price"), 10, 64)

	opts := domain.ProductListOptions{
		Page:     page,
		PerPage:  perPage,
		Search:   c.QueryParam("search"),
		Brand:    c.QueryParam("brand"),
		SortBy:   c.QueryParam("sort_by"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	productPage, err := h.productService.GetProductPage(ctx, opts)
	if err != nil {
		logger.Error("Failed to list products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, productPage)
}

// GetProductByID handles getting a product by ID
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id := c.Param("id")

	var productID uint64
	if _, err := fmt.Sscan(id, &productID); err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product retrieved successfully",
		"product": result,
	})
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product create", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.productService.CreateProduct(ctx, &domain.Product{
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		Ingredients: req.Ingredients,
		SkinType:    req.SkinType,
		ProductLink: req.ProductLink,
		Marketplace: req.Marketplace,
	})
	if err != nil {
		logger.Error("Failed to create product", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product created successfully",
		"product": created,
	})
}

// UpdateProduct handles updating a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id := c.Param("id")

	var productID uint64
	if _, err := fmt.Sscan(id, &productID); err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product update", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.productService.UpdateProduct(ctx, &domain.Product{
		ID:          productID,
		ProductName: req.ProductName,
		Brand:       req.Brand,
		Price:       req.Price,
		Description: req.Description,
		Rating:      req.Rating,
		Ingredients: req.Ingredients,
		SkinType:    req.SkinType,
		ProductLink: req.ProductLink,
		Marketplace: req.Marketplace,
	})
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
		"product": updated,
	})
}

// DeleteProduct handles deleting a product
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")

	var productID uint64
	if _, err := fmt.Sscan(id, &productID); err != nil {
		logger.Error("Invalid product ID", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.productService.DeleteProduct(ctx, productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

// ImportProducts ingests the product dataset as a multipart CSV upload. The
// import can take a while on large files, so a longer timeout applies.
func (h *ProductHandler) ImportProducts(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("Missing csv upload", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "csv file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open csv upload", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	result, err := h.productService.ImportCSV(ctx, file)
	if err != nil {
		logger.Error("Failed to import products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Import completed",
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
}
