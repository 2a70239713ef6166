// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"localfy/internal/delivery/http/middleware"
	"localfy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	ReviewHandler   *handler.ReviewHandler
	SessionHandler  *handler.SessionHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler *handler.BusinessHandler
	reviewHandler   *handler.ReviewHandler
	sessionHandler  *handler.SessionHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		reviewHandler:   params.ReviewHandler,
		sessionHandler:  params.SessionHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.sessionHandler.Exchange)
		authGroup.POST("/refresh", r.sessionHandler.Refresh)
	}

	// Directory routes, readable anonymously
	businessGroup := e.Group("/businesses")
	businessGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		businessGroup.GET("", r.businessHandler.ListBusinesses)
		businessGroup.POST("/more", r.businessHandler.LoadMore)
		businessGroup.PUT("/category", r.businessHandler.SelectCategory)
		businessGroup.POST("/pagination/reset", r.businessHandler.ResetPagination)
		businessGroup.GET("/search", r.businessHandler.SearchBusinesses)
		businessGroup.GET("/nearby", r.businessHandler.Nearby)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		businessGroup.GET("/:id/qr", r.mediaHandler.ShareQR)
	}

	// Directory routes that require authentication
	ownerGroup := e.Group("/businesses")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	{
		ownerGroup.PATCH("/:id", r.businessHandler.UpdateBusiness)
		ownerGroup.POST("/:id/reviews", r.reviewHandler.AddReview)
		ownerGroup.POST("/:id/images", r.mediaHandler.UploadImage)
		ownerGroup.GET("/:id/analytics", r.businessHandler.AnalyticsSummary)
	}

	// Favorite routes, always tied to an authenticated user
	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.GET("", r.businessHandler.ListFavorites)
		favoriteGroup.POST("/:id/toggle", r.businessHandler.ToggleFavorite)
	}

	// Live update routes
	watchGroup := e.Group("/watch")
	{
		watchGroup.PUT("", r.businessHandler.Watch)
		watchGroup.DELETE("", r.businessHandler.Unwatch)
	}
}
