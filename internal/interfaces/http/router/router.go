// Package router wires the HTTP endpoints onto a gin engine.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/procure/backend/internal/infrastructure/auth"
	"github.com/procure/backend/internal/infrastructure/logger"
	"github.com/procure/backend/internal/interfaces/http/handler"
	"github.com/procure/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers bundles every endpoint handler the router mounts.
type Handlers struct {
	User    *handler.UserHandler
	Catalog *handler.CatalogHandler
	Basket  *handler.BasketHandler
	Order   *handler.OrderHandler
	Partner *handler.PartnerHandler
}

// Config carries everything route setup needs besides the handlers.
type Config struct {
	JWTService       *auth.JWTService
	TokenBlacklist   auth.TokenBlacklist
	Logger           *zap.Logger
	CORSAllowOrigins []string
	// Health serves GET /health; a plain ok response when nil.
	Health gin.HandlerFunc
}

// New builds the gin engine with middleware and all routes mounted
// under /api/v1.
func New(handlers Handlers, cfg Config) *gin.Engine {
	engine := gin.New()
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(corsMiddleware(cfg.CORSAllowOrigins))

	health := cfg.Health
	if health == nil {
		health = func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		}
	}
	engine.GET("/health", health)

	api := engine.Group("/api/v1")
	authRequired := middleware.RequireAuth(cfg.JWTService, cfg.TokenBlacklist, cfg.Logger)
	shopOnly := middleware.RequireShop()

	user := api.Group("/user")
	{
		user.POST("/register", handlers.User.Register)
		user.POST("/login", handlers.User.Login)
		user.POST("/logout", authRequired, handlers.User.Logout)
		user.GET("/details", authRequired, handlers.User.Details)
		user.POST("/details", authRequired, handlers.User.UpdateDetails)
		user.GET("/contact", authRequired, handlers.User.Contacts)
		user.POST("/contact", authRequired, handlers.User.CreateContact)
		user.PUT("/contact", authRequired, handlers.User.UpdateContact)
		user.DELETE("/contact", authRequired, handlers.User.DeleteContacts)
	}

	api.GET("/categories", handlers.Catalog.Categories)
	api.GET("/shops", handlers.Catalog.Shops)
	api.GET("/products", handlers.Catalog.Products)

	basket := api.Group("/basket", authRequired)
	{
		basket.GET("", handlers.Basket.View)
		basket.POST("", handlers.Basket.AddItems)
		basket.PUT("", handlers.Basket.UpdateItems)
		basket.DELETE("", handlers.Basket.RemoveAll)
	}

	order := api.Group("/order", authRequired)
	{
		order.GET("", handlers.Order.List)
		order.POST("", handlers.Order.Place)
	}

	partner := api.Group("/partner", authRequired, shopOnly)
	{
		partner.POST("/update", handlers.Partner.Update)
		partner.GET("/export", handlers.Partner.Export)
		partner.GET("/state", handlers.Partner.State)
		partner.POST("/state", handlers.Partner.SetState)
		partner.GET("/orders", handlers.Partner.Orders)
		partner.POST("/orders", handlers.Partner.SetOrderStatus)
	}

	return engine
}

func corsMiddleware(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
