package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/alirezadev/shop-api/app"
	"github.com/alirezadev/shop-api/app/auth"
	"github.com/alirezadev/shop-api/app/catalog"
	"github.com/alirezadev/shop-api/app/categories"
	"github.com/alirezadev/shop-api/config"
	"github.com/alirezadev/shop-api/database"
	"github.com/alirezadev/shop-api/models"
	"github.com/alirezadev/shop-api/pkg/logger"
	"github.com/alirezadev/shop-api/pkg/token"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.Log})

	db, err := database.Open(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("database setup failed")
	}
	if err := database.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	tokens := token.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.JWT.Expiration,
	}

	handlers := app.Handlers{
		Auth:       auth.NewAuthHandler(models.NewUsersRepository(db), tokens),
		Catalog:    catalog.NewCatalogHandler(models.NewProductsRepository(db)),
		Categories: categories.NewCategoryHandler(models.NewCategoriesRepository(db)),
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           app.Routes(handlers, tokens, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Str("env", cfg.App.Env).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
