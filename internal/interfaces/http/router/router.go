// Package router wires handlers, middleware and route groups into the gin
// engine. Route protection is layered: the public storefront carries no
// auth, merchant routes require a merchant session, admin routes an admin
// session.
package router

import (
	"github.com/bazaar/console/internal/infrastructure/auth"
	"github.com/bazaar/console/internal/infrastructure/logger"
	"github.com/bazaar/console/internal/infrastructure/session"
	"github.com/bazaar/console/internal/interfaces/http/handler"
	"github.com/bazaar/console/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	System        *handler.SystemHandler
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	ChangeRequest *handler.ChangeRequestHandler
	Backoffice    *handler.BackofficeHandler
	Admin         *handler.AdminHandler
	Storefront    *handler.StorefrontHandler
}

// Config holds the router's dependencies
type Config struct {
	Logger           *zap.Logger
	Tokens           *auth.SessionTokenService
	Sessions         session.Store
	SessionCookie    string
	CORS             middleware.CORSConfig
	ServiceName      string
	TelemetryEnabled bool
	TrustedProxies   []string
}

// New builds the gin engine with all routes mounted
func New(cfg Config, h Handlers) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	if cfg.TelemetryEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	sessionAuth := middleware.SessionAuth(cfg.Tokens, cfg.Sessions, cfg.SessionCookie)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", sessionAuth, h.Auth.Refresh)
		authGroup.POST("/logout", sessionAuth, h.Auth.Logout)
		authGroup.GET("/me", sessionAuth, h.Auth.Me)
	}

	merchantGroup := api.Group("/merchant", sessionAuth, middleware.RequireRole(middleware.RoleMerchant))
	{
		merchantGroup.GET("/products", h.Product.List)
		merchantGroup.POST("/products", h.Product.Create)
		merchantGroup.GET("/products/:id", h.Product.Get)
		merchantGroup.PATCH("/products/:id", h.Product.Update)
		merchantGroup.POST("/products/:id/submit", h.Product.SubmitForReview)
		merchantGroup.GET("/products/:id/variants", h.Product.ListVariants)
		merchantGroup.POST("/products/:id/variants", h.Product.CreateVariant)
		merchantGroup.PATCH("/variants/:id", h.Product.UpdateVariant)
		merchantGroup.POST("/variants/:id/stock-adjustments", h.Product.AdjustStock)

		merchantGroup.POST("/products/:id/change-requests", h.ChangeRequest.SubmitProductChange)
		merchantGroup.POST("/variants/:id/change-requests", h.ChangeRequest.SubmitVariantChange)
		merchantGroup.GET("/change-requests", h.ChangeRequest.List)
		merchantGroup.POST("/category-requests", h.ChangeRequest.SuggestCategory)
		merchantGroup.GET("/category-requests", h.ChangeRequest.ListCategoryRequests)

		merchantGroup.GET("/orders", h.Backoffice.ListOrders)
		merchantGroup.GET("/orders/:id", h.Backoffice.GetOrder)
		merchantGroup.POST("/orders/:id/ship", h.Backoffice.ShipOrder)
		merchantGroup.GET("/wallet", h.Backoffice.GetWallet)
		merchantGroup.GET("/wallet/payouts", h.Backoffice.ListPayouts)
		merchantGroup.POST("/wallet/payouts", h.Backoffice.RequestPayout)
		merchantGroup.GET("/reviews", h.Backoffice.ListReviews)
		merchantGroup.POST("/reviews/:id/reply", h.Backoffice.ReplyReview)
	}

	adminGroup := api.Group("/admin", sessionAuth, middleware.RequireRole(middleware.RoleAdmin))
	{
		adminGroup.GET("/products/pending", h.Admin.ListPendingProducts)
		adminGroup.POST("/products/:id/approve", h.Admin.ApproveProduct)
		adminGroup.POST("/products/:id/reject", h.Admin.RejectProduct)

		adminGroup.GET("/change-requests", h.Admin.ListChangeRequests)
		adminGroup.POST("/change-requests/:id/approve", h.Admin.ApproveChangeRequest)
		adminGroup.POST("/change-requests/:id/reject", h.Admin.RejectChangeRequest)

		adminGroup.GET("/category-requests", h.Admin.ListCategoryRequests)
		adminGroup.POST("/category-requests/:id/approve", h.Admin.ApproveCategoryRequest)
		adminGroup.POST("/category-requests/:id/reject", h.Admin.RejectCategoryRequest)

		adminGroup.GET("/coupons", h.Admin.ListCoupons)
		adminGroup.POST("/coupons", h.Admin.CreateCoupon)
		adminGroup.PUT("/coupons/:id", h.Admin.UpdateCoupon)
		adminGroup.DELETE("/coupons/:id", h.Admin.DeleteCoupon)
	}

	storefrontGroup := api.Group("/storefront")
	{
		storefrontGroup.GET("/products", h.Storefront.ListProducts)
		storefrontGroup.GET("/products/:id", h.Storefront.GetProduct)
		storefrontGroup.GET("/categories", h.Storefront.ListCategories)
	}

	return engine, nil
}
