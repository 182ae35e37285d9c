// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medbotanica/internal/delivery/http/middleware"
	"medbotanica/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	DetectionHandler *handler.DetectionHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	detectionHandler *handler.DetectionHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		detectionHandler: params.DetectionHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
	}

	userGroup := e.Group("/user", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.Me)
	}

	e.POST("/predict", r.detectionHandler.Predict, r.authMiddleware.Authenticate)

	detectionGroup := e.Group("/detections", r.authMiddleware.Authenticate)
	{
		detectionGroup.GET("", r.detectionHandler.List)
		detectionGroup.GET("/:id", r.detectionHandler.Get)
	}
}
