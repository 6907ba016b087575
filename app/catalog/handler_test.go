package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pagination"
)

// --- Mock Repository ---

type MockProductRepo struct {
	SourceProducts []models.Product
	Err            error
	LastSaved      *models.Product
	LastDeleted    *models.Product
}

func (m *MockProductRepo) GetAllWithCategory() ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.SourceProducts, nil
}

func (m *MockProductRepo) GetByIDWithCategory(id uint) (*models.Product, error) {
	return m.GetByID(id)
}

func (m *MockProductRepo) GetByCategory(categoryID uint) ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []models.Product
	for _, p := range m.SourceProducts {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockProductRepo) GetByID(id uint) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.SourceProducts {
		if m.SourceProducts[i].ID == id {
			return &m.SourceProducts[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MockProductRepo) Add(product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	product.ID = 101
	m.LastSaved = product
	return nil
}

func (m *MockProductRepo) Update(product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	m.LastSaved = product
	return nil
}

func (m *MockProductRepo) Delete(product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	m.LastDeleted = product
	return nil
}

func fixtureProducts() []models.Product {
	laptops := models.Category{ID: 1, Name: "Laptops", Slug: "laptop", IsActive: true}
	mobiles := models.Category{ID: 2, Name: "Mobiles", Slug: "mobile", IsActive: true}
	t0 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID: 1, Name: "X1 Carbon", SKU: "LAP-001", Description: "business laptop",
			Price: decimal.NewFromInt(1000), CategoryID: 1, Category: laptops,
			CreatedAt: t0,
		},
		{
			ID: 2, Name: "Galaxy A54", SKU: "MOB-001", Description: "mid-range phone",
			Price: decimal.NewFromInt(500), CategoryID: 2, Category: mobiles,
			CreatedAt: t0.Add(time.Hour),
		},
		{
			ID: 3, Name: "MacBook Air", SKU: "LAP-002", Description: "thin laptop",
			Price: decimal.NewFromInt(1200), CategoryID: 1, Category: laptops,
			CreatedAt: t0.Add(2 * time.Hour),
		},
	}
}

// --- Tests: GET /api/products ---

func TestHandleList(t *testing.T) {
	testCases := []struct {
		name               string
		url                string
		mockRepoSetup      func() *MockProductRepo
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Newest first with totals",
			url:  "/api/products?page=1&pageSize=10",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: fixtureProducts()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp pagination.Page[ProductResponse]
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, 3, resp.Total)
				assert.Equal(t, 1, resp.Page)
				assert.Equal(t, 10, resp.PageSize)
				require.Len(t, resp.Items, 3)
				assert.Equal(t, "MacBook Air", resp.Items[0].Name, "most recent product comes first")
				assert.Equal(t, "Galaxy A54", resp.Items[1].Name)
				assert.Equal(t, "X1 Carbon", resp.Items[2].Name)
				assert.Equal(t, "Laptops", resp.Items[0].CategoryName)
			},
		},
		{
			name: "Query filters name or description case-sensitively",
			url:  "/api/products?q=laptop",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: fixtureProducts()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp pagination.Page[ProductResponse]
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				// Matches the two descriptions containing "laptop", not
				// the names ("Laptops" category is irrelevant here).
				assert.Equal(t, 2, resp.Total)
				require.Len(t, resp.Items, 2)
				assert.Equal(t, "MacBook Air", resp.Items[0].Name)
				assert.Equal(t, "X1 Carbon", resp.Items[1].Name)
			},
		},
		{
			name: "Total stays stable across pages",
			url:  "/api/products?page=2&pageSize=2",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: fixtureProducts()}
			},
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp pagination.Page[ProductResponse]
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, 3, resp.Total)
				require.Len(t, resp.Items, 1)
				assert.Equal(t, "X1 Carbon", resp.Items[0].Name)
			},
		},
		{
			name: "Page below one rejected",
			url:  "/api/products?page=0",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{SourceProducts: fixtureProducts()}
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "Repository error",
			url:  "/api/products",
			mockRepoSetup: func() *MockProductRepo {
				return &MockProductRepo{Err: errors.New("db down")}
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(tc.mockRepoSetup())
			req := httptest.NewRequest("GET", tc.url, nil)
			rec := httptest.NewRecorder()

			handler.HandleList(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}
		})
	}
}

// --- Tests: GET /api/products/{id} ---

func TestHandleGet(t *testing.T) {
	t.Run("Success includes the category", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{SourceProducts: fixtureProducts()})
		req := httptest.NewRequest("GET", "/api/products/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.HandleGet(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ProductResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "X1 Carbon", resp.Name)
		assert.Equal(t, "Laptops", resp.CategoryName)
		assert.Equal(t, 1000.0, resp.Price)
	})

	t.Run("Not found", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{SourceProducts: fixtureProducts()})
		req := httptest.NewRequest("GET", "/api/products/999", nil)
		req.SetPathValue("id", "999")
		rec := httptest.NewRecorder()

		handler.HandleGet(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{})
		req := httptest.NewRequest("GET", "/api/products/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		handler.HandleGet(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// --- Tests: GET /api/products/category/{id} ---

func TestHandleGetByCategory(t *testing.T) {
	handler := NewCatalogHandler(&MockProductRepo{SourceProducts: fixtureProducts()})
	req := httptest.NewRequest("GET", "/api/products/category/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()

	handler.HandleGetByCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []ProductResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	for _, p := range resp {
		assert.Equal(t, uint(1), p.CategoryID)
		assert.Equal(t, "Laptops", p.CategoryName)
	}
}

// --- Tests: POST /api/products ---

func TestHandleCreate(t *testing.T) {
	testCases := []struct {
		name               string
		requestBody        string
		expectedStatusCode int
		checkRepoCall      func(t *testing.T, repo *MockProductRepo)
	}{
		{
			name:               "Success",
			requestBody:        `{"name":"X1","sku":"LAP-001","price":1000,"categoryId":1}`,
			expectedStatusCode: http.StatusCreated,
			checkRepoCall: func(t *testing.T, repo *MockProductRepo) {
				require.NotNil(t, repo.LastSaved)
				assert.Equal(t, "X1", repo.LastSaved.Name)
				assert.Equal(t, uint(101), repo.LastSaved.ID)
			},
		},
		{
			name:               "Missing sku",
			requestBody:        `{"name":"X1","price":1000,"categoryId":1}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Negative price",
			requestBody:        `{"name":"X1","sku":"LAP-001","price":-5,"categoryId":1}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Negative stock",
			requestBody:        `{"name":"X1","sku":"LAP-001","price":10,"stock":-1,"categoryId":1}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Discount above price",
			requestBody:        `{"name":"X1","sku":"LAP-001","price":100,"discountPrice":150,"categoryId":1}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "Invalid JSON body",
			requestBody:        `{invalid`,
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockProductRepo{}
			handler := NewCatalogHandler(mockRepo)
			req := httptest.NewRequest("POST", "/api/products", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.checkRepoCall != nil {
				tc.checkRepoCall(t, mockRepo)
			}
			if tc.expectedStatusCode == http.StatusCreated {
				var resp ProductResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, uint(101), resp.ID, "generated id is echoed back")
			}
		})
	}
}

// --- Tests: PUT /api/products/{id} ---

func TestHandleUpdate(t *testing.T) {
	body := `{"id":1,"name":"X1 Carbon Gen 2","sku":"LAP-001","price":1100,"categoryId":1}`

	t.Run("Success keeps the original creation time", func(t *testing.T) {
		mockRepo := &MockProductRepo{SourceProducts: fixtureProducts()}
		handler := NewCatalogHandler(mockRepo)
		req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(body))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.HandleUpdate(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, mockRepo.LastSaved)
		assert.Equal(t, "X1 Carbon Gen 2", mockRepo.LastSaved.Name)
		assert.Equal(t, uint(1), mockRepo.LastSaved.ID)
		assert.True(t, mockRepo.LastSaved.CreatedAt.Equal(fixtureProducts()[0].CreatedAt))
	})

	t.Run("Path and body id mismatch", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{SourceProducts: fixtureProducts()})
		req := httptest.NewRequest("PUT", "/api/products/2", strings.NewReader(body))
		req.SetPathValue("id", "2")
		rec := httptest.NewRecorder()

		handler.HandleUpdate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown id", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{})
		req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(body))
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.HandleUpdate(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// --- Tests: DELETE /api/products/{id} ---

func TestHandleDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockRepo := &MockProductRepo{SourceProducts: fixtureProducts()}
		handler := NewCatalogHandler(mockRepo)
		req := httptest.NewRequest("DELETE", "/api/products/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()

		handler.HandleDelete(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, mockRepo.LastDeleted)
		assert.Equal(t, uint(1), mockRepo.LastDeleted.ID)
	})

	t.Run("Unknown id", func(t *testing.T) {
		handler := NewCatalogHandler(&MockProductRepo{})
		req := httptest.NewRequest("DELETE", "/api/products/42", nil)
		req.SetPathValue("id", "42")
		rec := httptest.NewRecorder()

		handler.HandleDelete(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
