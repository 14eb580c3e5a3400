// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"verifiedtutors/internal/delivery/http/middleware"
	"verifiedtutors/internal/delivery/http/router/handler"
	"verifiedtutors/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the server mounts.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	TutorHandler        *handler.TutorHandler
	VerificationHandler *handler.VerificationHandler
	CatalogHandler      *handler.CatalogHandler
	LocationHandler     *handler.LocationHandler
	BookingHandler      *handler.BookingHandler
	RatingHandler       *handler.RatingHandler
	FavoriteHandler     *handler.FavoriteHandler
	NotificationHandler *handler.NotificationHandler
	WSHandler           *handler.WSHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate
	adminOnly := p.AuthMiddleware.RequireRole(entity.RoleAdmin)
	tutorOnly := p.AuthMiddleware.RequireRole(entity.RoleTutor)
	studentOnly := p.AuthMiddleware.RequireRole(entity.RoleStudent)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Real-time push socket
	e.GET("/ws", p.WSHandler.Connect)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/google", p.UserHandler.GoogleLogin)
		authGroup.POST("/select-role", p.UserHandler.SelectRole, authed)
		authGroup.POST("/forgot-password", p.UserHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.UserHandler.ResetPassword)
	}

	// Account routes
	userGroup := e.Group("/users", authed)
	{
		userGroup.GET("/me", p.UserHandler.GetMe)
		userGroup.PUT("/me", p.UserHandler.UpdateProfile)
		userGroup.PUT("/me/password", p.UserHandler.ChangePassword)
	}

	// Public directory
	e.GET("/tutors", p.TutorHandler.Search)
	e.GET("/tutors/:id", p.TutorHandler.Get)
	e.GET("/tutors/:id/ratings", p.RatingHandler.ListForTutor)
	e.GET("/subjects", p.CatalogHandler.ListSubjects)
	e.GET("/subjects/:id", p.CatalogHandler.GetSubject)
	e.GET("/subjects/:id/topics", p.CatalogHandler.ListTopics)
	e.GET("/locations/tree", p.LocationHandler.GetTree)

	// Tutor self-service
	tutorGroup := e.Group("/tutor", authed, tutorOnly)
	{
		tutorGroup.GET("/profile", p.TutorHandler.GetOwn)
		tutorGroup.PUT("/profile", p.TutorHandler.UpdateProfile)
		tutorGroup.POST("/documents", p.TutorHandler.AddDocument)
		tutorGroup.DELETE("/documents/:documentId", p.TutorHandler.RemoveDocument)
		tutorGroup.DELETE("/profile", p.TutorHandler.Delete)
	}

	// Bookings
	bookingGroup := e.Group("/bookings", authed)
	{
		bookingGroup.POST("", p.BookingHandler.Create, studentOnly)
		bookingGroup.GET("", p.BookingHandler.List)
		bookingGroup.GET("/:id", p.BookingHandler.Get)
		bookingGroup.POST("/:id/confirm", p.BookingHandler.Confirm, tutorOnly)
		bookingGroup.POST("/:id/complete", p.BookingHandler.Complete, tutorOnly)
		bookingGroup.POST("/:id/cancel", p.BookingHandler.Cancel)
	}

	// Ratings
	e.POST("/ratings", p.RatingHandler.Create, authed, studentOnly)
	e.DELETE("/ratings/:id", p.RatingHandler.Delete, authed)

	// Favorites
	favoriteGroup := e.Group("/favorites", authed, studentOnly)
	{
		favoriteGroup.GET("", p.FavoriteHandler.List)
		favoriteGroup.POST("/:tutorId", p.FavoriteHandler.Add)
		favoriteGroup.DELETE("/:tutorId", p.FavoriteHandler.Remove)
	}

	// Notification feed
	notificationGroup := e.Group("/notifications", authed)
	{
		notificationGroup.GET("", p.NotificationHandler.List)
		notificationGroup.GET("/unread-count", p.NotificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", p.NotificationHandler.MarkRead)
		notificationGroup.POST("/read-all", p.NotificationHandler.MarkAllRead)
		notificationGroup.DELETE("/:id", p.NotificationHandler.Delete)
	}

	// Admin surface
	adminGroup := e.Group("/admin", authed, adminOnly)
	{
		adminGroup.GET("/verifications", p.VerificationHandler.ListByStatus)
		adminGroup.POST("/tutors/:id/approve", p.VerificationHandler.Approve)
		adminGroup.POST("/tutors/:id/reject", p.VerificationHandler.Reject)
		adminGroup.POST("/tutors/:id/toggle-verification", p.VerificationHandler.Toggle)

		adminGroup.POST("/subjects", p.CatalogHandler.CreateSubject)
		adminGroup.PUT("/subjects/:id", p.CatalogHandler.UpdateSubject)
		adminGroup.DELETE("/subjects/:id", p.CatalogHandler.DeactivateSubject)
		adminGroup.POST("/subjects/:id/topics", p.CatalogHandler.CreateTopic)
		adminGroup.PUT("/topics/:id", p.CatalogHandler.UpdateTopic)
		adminGroup.DELETE("/topics/:id", p.CatalogHandler.DeactivateTopic)

		adminGroup.POST("/locations", p.LocationHandler.Create)
		adminGroup.PUT("/locations/:id", p.LocationHandler.Update)
		adminGroup.DELETE("/locations/:id", p.LocationHandler.Delete)
	}
}
