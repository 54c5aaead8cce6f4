// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sentimenta/internal/delivery/http/middleware"
	"sentimenta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	MoodHandler    *handler.MoodHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	moodHandler    *handler.MoodHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		moodHandler:    params.MoodHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Liveness endpoint, no authentication
	api.GET("/status", handler.Status)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Account routes that require authentication
	userGroup := api.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/get", r.userHandler.GetProfile)
		userGroup.PATCH("/update", r.userHandler.UpdateProfile)
		userGroup.PUT("/update/password", r.userHandler.ChangePassword)
		userGroup.DELETE("/delete", r.userHandler.DeleteAccount)
	}

	// Mood routes that require authentication
	moodGroup := api.Group("/moods")
	moodGroup.Use(r.authMiddleware.Authenticate)
	{
		moodGroup.POST("/add", r.moodHandler.Add)
		moodGroup.GET("/get", r.moodHandler.List)
		moodGroup.PUT("/update", r.moodHandler.Update)
		moodGroup.DELETE("/delete/:id", r.moodHandler.Delete)
	}
}
