// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fisiohub/internal/delivery/http/middleware"
	"fisiohub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PhysiotherapistHandler *handler.PhysiotherapistHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	physiotherapistHandler *handler.PhysiotherapistHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		physiotherapistHandler: params.PhysiotherapistHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	group := e.Group("/physiotherapists")
	{
		// Account lifecycle routes, open to anyone
		group.POST("/register", r.physiotherapistHandler.Register)
		group.POST("/login", r.physiotherapistHandler.Login)
		group.POST("/forgot-password", r.physiotherapistHandler.ForgotPassword)
		group.POST("/reset-password", r.physiotherapistHandler.ResetPassword)

		// Public directory of professionals
		group.GET("", r.physiotherapistHandler.ListAll)
		group.GET("/:id", r.physiotherapistHandler.GetProfile)

		// Mutating routes require a valid session token
		group.PATCH("/:id", r.physiotherapistHandler.UpdateProfile, r.authMiddleware.Authenticate)
		group.DELETE("/:id", r.physiotherapistHandler.DeleteProfile, r.authMiddleware.Authenticate)
	}
}
