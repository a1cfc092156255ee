package routes

import (
	"provider-match/internal/config"
	"provider-match/internal/database/sqlite"
	"provider-match/internal/delivery/http/handler"
	"provider-match/internal/delivery/http/middleware"
	persistence "provider-match/internal/infrastructure/persistence/sqlite"
	"provider-match/internal/pkg/token"
	ucauth "provider-match/internal/usecase/auth"
	ucmatching "provider-match/internal/usecase/matching"
	ucprovider "provider-match/internal/usecase/provider"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

func Register(app *fiber.App, cfg config.Config, db *sqlite.SQLiteDB) {
	if app == nil {
		return
	}

	tokenSvc := token.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(tokenSvc)
	authLimitMw := middleware.NewRateLimitMiddleware(middleware.AuthLimit)

	userRepo := persistence.NewUserRepository(db)
	providerRepo := persistence.NewProviderRepository(db)
	accountRepo := persistence.NewAccountRepository(db)

	authUC := ucauth.NewService(accountRepo, userRepo, tokenSvc)
	providerUC := ucprovider.NewService(providerRepo)
	matchingUC := ucmatching.NewService(userRepo, providerRepo)

	authHandler := handler.NewAuthHandler(authUC)
	providerHandler := handler.NewProviderHandler(providerUC)
	matchHandler := handler.NewMatchHandler(matchingUC)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	authHandler.RegisterRoutes(api.Group("/auth"), authLimitMw.Middleware(), authMw.Middleware())

	providerHandler.RegisterRoutes(api.Group("/providers", authMw.Middleware()))
	matchHandler.RegisterRoutes(api.Group("/match", authMw.Middleware()))
}
