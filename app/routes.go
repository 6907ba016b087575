// Package app wires handlers, middleware and routes into one http.Handler.
package app

import (
	"net/http"

	"github.com/alirezadev/shop-api/app/auth"
	"github.com/alirezadev/shop-api/app/catalog"
	"github.com/alirezadev/shop-api/app/categories"
	"github.com/alirezadev/shop-api/app/middleware"
	"github.com/alirezadev/shop-api/pkg/logger"
	"github.com/alirezadev/shop-api/pkg/token"
)

type Handlers struct {
	Auth       *auth.AuthHandler
	Catalog    *catalog.CatalogHandler
	Categories *categories.CategoryHandler
}

// Routes builds the full route table. Reads are public; create, update
// and delete on the catalog require an authenticated admin.
func Routes(h Handlers, tokens token.Config, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(tokens, middleware.RequireAdmin(fn))
	}

	mux.HandleFunc("POST /api/auth/register", h.Auth.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", h.Auth.HandleLogin)

	mux.HandleFunc("GET /api/products", h.Catalog.HandleList)
	mux.HandleFunc("GET /api/products/{id}", h.Catalog.HandleGet)
	mux.HandleFunc("GET /api/products/category/{id}", h.Catalog.HandleGetByCategory)
	mux.Handle("POST /api/products", admin(h.Catalog.HandleCreate))
	mux.Handle("PUT /api/products/{id}", admin(h.Catalog.HandleUpdate))
	mux.Handle("DELETE /api/products/{id}", admin(h.Catalog.HandleDelete))

	mux.HandleFunc("GET /api/categories", h.Categories.HandleList)
	mux.HandleFunc("GET /api/categories/active", h.Categories.HandleGetActive)
	mux.HandleFunc("GET /api/categories/slug/{slug}", h.Categories.HandleGetBySlug)
	mux.HandleFunc("GET /api/categories/{id}", h.Categories.HandleGet)
	mux.HandleFunc("GET /api/categories/{id}/products", h.Categories.HandleGetProducts)
	mux.Handle("POST /api/categories", admin(h.Categories.HandleCreate))
	mux.Handle("PUT /api/categories/{id}", admin(h.Categories.HandleUpdate))
	mux.Handle("DELETE /api/categories/{id}", admin(h.Categories.HandleDelete))

	return middleware.Recover(log, middleware.RequestLog(log, mux))
}
