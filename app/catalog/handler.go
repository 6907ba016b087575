// Package catalog exposes the product endpoints.
package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/alirezadev/shop-api/app/httpx"
	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pagination"
)

var validate = validator.New()

type ProductResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Description      string    `json:"description,omitempty"`
	Price            float64   `json:"price"`
	DiscountPrice    *float64  `json:"discountPrice,omitempty"`
	Stock            int       `json:"stock"`
	SKU              string    `json:"sku"`
	CategoryID       uint      `json:"categoryId"`
	CategoryName     string    `json:"categoryName,omitempty"`
	ThumbnailURL     string    `json:"thumbnailUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	IsActive         bool      `json:"isActive"`
	IsFeatured       bool      `json:"isFeatured"`
}

type ProductRequest struct {
	ID               uint             `json:"id"`
	Name             string           `json:"name" validate:"required"`
	ShortDescription string           `json:"shortDescription"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	DiscountPrice    *decimal.Decimal `json:"discountPrice"`
	Stock            int              `json:"stock" validate:"gte=0"`
	SKU              string           `json:"sku" validate:"required"`
	CategoryID       uint             `json:"categoryId" validate:"required"`
	ThumbnailURL     string           `json:"thumbnailUrl"`
	IsActive         bool             `json:"isActive"`
	IsFeatured       bool             `json:"isFeatured"`
}

type ProductProvider interface {
	GetAllWithCategory() ([]models.Product, error)
	GetByIDWithCategory(id uint) (*models.Product, error)
	GetByCategory(categoryID uint) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Add(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{repo: r}
}

// HandleList returns a page of products, newest first, optionally
// filtered by a case-sensitive substring over name and description.
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseParams(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.repo.GetAllWithCategory()
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	page := pagination.Paginate(products, params,
		func(p models.Product, q string) bool {
			return strings.Contains(p.Name, q) || strings.Contains(p.Description, q)
		},
		func(a, b models.Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		},
	)

	items := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		items[i] = toProductResponse(&p)
	}
	httpx.WriteJSON(w, http.StatusOK, pagination.Page[ProductResponse]{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    items,
	})
}

// HandleGet returns one product with its category attached.
func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByIDWithCategory(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

// HandleGetByCategory lists the products of one category.
func (h *CatalogHandler) HandleGetByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	products, err := h.repo.GetByCategory(id)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(&p)
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleCreate inserts a product and echoes it back with the generated
// id.
func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	product := toProduct(in)
	if err := h.repo.Add(product); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

// HandleUpdate replaces every mutable field of an existing product.
// CreatedAt is kept from the stored row.
func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	in, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	if in.ID != id {
		httpx.WriteError(w, http.StatusBadRequest, "path id and body id do not match")
		return
	}

	existing, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	updated := toProduct(in)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(updated); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a product by id.
func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if err := h.repo.Delete(product); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (*ProductRequest, bool) {
	var in ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	if err := validate.Struct(in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "name, sku and categoryId are required; stock must not be negative")
		return nil, false
	}
	if in.Price.IsNegative() {
		httpx.WriteError(w, http.StatusBadRequest, "price must not be negative")
		return nil, false
	}
	if in.DiscountPrice != nil && in.DiscountPrice.GreaterThan(in.Price) {
		httpx.WriteError(w, http.StatusBadRequest, "discountPrice must not exceed price")
		return nil, false
	}
	return &in, true
}

func toProduct(in *ProductRequest) *models.Product {
	return &models.Product{
		ID:               in.ID,
		Name:             in.Name,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Price:            in.Price,
		DiscountPrice:    in.DiscountPrice,
		Stock:            in.Stock,
		SKU:              in.SKU,
		CategoryID:       in.CategoryID,
		ThumbnailURL:     in.ThumbnailURL,
		IsActive:         in.IsActive,
		IsFeatured:       in.IsFeatured,
	}
}

func toProductResponse(p *models.Product) ProductResponse {
	var discount *float64
	if p.DiscountPrice != nil {
		v := p.DiscountPrice.InexactFloat64()
		discount = &v
	}
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Price:            p.Price.InexactFloat64(),
		DiscountPrice:    discount,
		Stock:            p.Stock,
		SKU:              p.SKU,
		CategoryID:       p.CategoryID,
		CategoryName:     p.Category.Name,
		ThumbnailURL:     p.ThumbnailURL,
		CreatedAt:        p.CreatedAt,
		IsActive:         p.IsActive,
		IsFeatured:       p.IsFeatured,
	}
}
