// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tutorhub/internal/delivery/http/middleware"
	"tutorhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MentorHandler  *handler.MentorHandler
	ChatHandler    *handler.ChatHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	mentorHandler  *handler.MentorHandler
	chatHandler    *handler.ChatHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		mentorHandler:  params.MentorHandler,
		chatHandler:    params.ChatHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
	}

	// Mentor routes: reads are public, mutations require authentication
	mentorGroup := e.Group("/mentors")
	{
		mentorGroup.GET("", r.mentorHandler.List)
		mentorGroup.GET("/:mentorId", r.mentorHandler.Get)
		mentorGroup.POST("", r.mentorHandler.Create, r.authMiddleware.Authenticate)
		mentorGroup.PUT("/:mentorId", r.mentorHandler.Update, r.authMiddleware.Authenticate)
		mentorGroup.DELETE("/:mentorId", r.mentorHandler.Delete, r.authMiddleware.Authenticate)
	}

	// Room and message routes
	roomGroup := e.Group("/rooms")
	{
		roomGroup.POST("", r.chatHandler.CreateRoom, r.authMiddleware.Authenticate)
		roomGroup.POST("/:roomId/messages", r.chatHandler.SendMessage, r.authMiddleware.Authenticate)
		roomGroup.GET("/:roomId/messages", r.chatHandler.ListMessages)
	}
}
