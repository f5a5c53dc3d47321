// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ppoth/internal/delivery/http/middleware"
	"ppoth/internal/delivery/http/router/handler"
	"ppoth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DirectoryHandler *handler.DirectoryHandler
	ContentHandler   *handler.ContentHandler
	ConciergeHandler *handler.ConciergeHandler
	AuthHandler      *handler.AuthHandler
	AdminHandler     *handler.AdminHandler
	PartnerHandler   *handler.PartnerHandler
	EventsHandler    *handler.EventsHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	directoryHandler *handler.DirectoryHandler
	contentHandler   *handler.ContentHandler
	conciergeHandler *handler.ConciergeHandler
	authHandler      *handler.AuthHandler
	adminHandler     *handler.AdminHandler
	partnerHandler   *handler.PartnerHandler
	eventsHandler    *handler.EventsHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		directoryHandler: params.DirectoryHandler,
		contentHandler:   params.ContentHandler,
		conciergeHandler: params.ConciergeHandler,
		authHandler:      params.AuthHandler,
		adminHandler:     params.AdminHandler,
		partnerHandler:   params.PartnerHandler,
		eventsHandler:    params.EventsHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public directory reads
	e.GET("/directory", r.directoryHandler.GetDirectory)
	e.GET("/directory/hierarchy", r.directoryHandler.GetHierarchy)
	e.GET("/businesses/:id", r.directoryHandler.GetBusiness)
	e.POST("/businesses/:id/metrics/:kind", r.directoryHandler.IncrementMetric)

	// Public content reads
	e.GET("/settings/homepage", r.contentHandler.GetHomepageSettings)
	e.GET("/pages/:slug", r.contentHandler.GetPage)

	// Concierge chat
	e.POST("/concierge/ask", r.conciergeHandler.Ask)

	// Change notification stream
	e.GET("/events", r.eventsHandler.Stream)

	// Admin routes that require authentication and the ADMIN role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/categories", r.adminHandler.AddCategory)
		adminGroup.PUT("/categories/:id", r.adminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.adminHandler.DeleteCategory)
		adminGroup.POST("/categories/:id/subcategories", r.adminHandler.AddSubCategory)
		adminGroup.PUT("/categories/:id/subcategories/:subId", r.adminHandler.UpdateSubCategory)
		adminGroup.DELETE("/categories/:id/subcategories/:subId", r.adminHandler.DeleteSubCategory)
		adminGroup.PUT("/businesses", r.adminHandler.UpsertBusiness)
		adminGroup.DELETE("/businesses/:id", r.adminHandler.DeleteBusiness)
		adminGroup.PUT("/settings/homepage", r.adminHandler.SaveHomepageSettings)
		adminGroup.PUT("/pages/:slug", r.adminHandler.SavePage)
		adminGroup.POST("/media", r.adminHandler.UploadMedia)
	}

	// Partner routes that require authentication and the PARTNER role
	partnerGroup := e.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	partnerGroup.Use(r.authMiddleware.RequireRole(entity.RolePartner))
	{
		partnerGroup.GET("/dashboard", r.partnerHandler.Dashboard)
		partnerGroup.PUT("/business", r.partnerHandler.UpdateBusiness)
		partnerGroup.GET("/share-qr", r.partnerHandler.ShareQR)
	}
}
