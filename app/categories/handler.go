// Package categories exposes the category endpoints.
package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alirezadev/shop-api/app/httpx"
	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pagination"
)

var validate = validator.New()

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

type CategoryRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type CategoryProvider interface {
	GetAll() ([]models.Category, error)
	GetActive() ([]models.Category, error)
	GetWithProducts(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Add(category *models.Category) error
	Update(category *models.Category) error
	Delete(category *models.Category) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleList returns a page of categories sorted by name, optionally
// filtered by a case-sensitive substring of the name.
func (h *CategoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseParams(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cats, err := h.repo.GetAll()
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	page := pagination.Paginate(cats, params,
		func(c models.Category, q string) bool {
			return strings.Contains(c.Name, q)
		},
		func(a, b models.Category) bool {
			return a.Name < b.Name
		},
	)

	items := make([]CategoryResponse, len(page.Items))
	for i, c := range page.Items {
		items[i] = toCategoryResponse(&c)
	}
	httpx.WriteJSON(w, http.StatusOK, pagination.Page[CategoryResponse]{
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Items:    items,
	})
}

// HandleGetActive returns only the categories flagged active.
func (h *CategoryHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	cats, err := h.repo.GetActive()
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	items := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		items[i] = toCategoryResponse(&c)
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

// HandleGet returns a single category by id.
func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCategoryResponse(category))
}

// HandleGetBySlug returns the category matching the slug.
func (h *CategoryHandler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	category, err := h.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCategoryResponse(category))
}

// HandleGetProducts returns a category together with its eagerly-loaded
// product collection.
func (h *CategoryHandler) HandleGetProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.repo.GetWithProducts(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, category)
}

// HandleCreate inserts a category and echoes it back with the
// generated id.
func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	category := toCategory(in)
	if err := h.repo.Add(category); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCategoryResponse(category))
}

// HandleUpdate replaces every field of an existing category.
func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	in, ok := decodeCategory(w, r)
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
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	updated := toCategory(in)
	updated.ID = existing.ID
	if err := h.repo.Update(updated); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a category by id. Products referencing it are
// left to the store's referential integrity.
func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	category, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	if err := h.repo.Delete(category); err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete category")
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

func decodeCategory(w http.ResponseWriter, r *http.Request) (*CategoryRequest, bool) {
	var in CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return nil, false
	}
	if err := validate.Struct(in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "name and slug are required")
		return nil, false
	}
	return &in, true
}

func toCategory(in *CategoryRequest) *models.Category {
	return &models.Category{
		ID:          in.ID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}
