// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/api/middleware"
	"roster/internal/delivery/api/router/handler"
	"roster/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler        *handler.AccountHandler
	ProfileHandler        *handler.ProfileHandler
	UserManagementHandler *handler.UserManagementHandler
	AuthMiddleware        *middleware.AuthMiddleware
	RateLimitMiddleware   *middleware.RateLimitMiddleware `optional:"true"`
	MetricsMiddleware     *middleware.MetricsMiddleware   `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler        *handler.AccountHandler
	profileHandler        *handler.ProfileHandler
	userManagementHandler *handler.UserManagementHandler
	authMiddleware        *middleware.AuthMiddleware
	rateLimitMiddleware   *middleware.RateLimitMiddleware
	metricsMiddleware     *middleware.MetricsMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:        params.AccountHandler,
		profileHandler:        params.ProfileHandler,
		userManagementHandler: params.UserManagementHandler,
		authMiddleware:        params.AuthMiddleware,
		rateLimitMiddleware:   params.RateLimitMiddleware,
		metricsMiddleware:     params.MetricsMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.metricsMiddleware.Record)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	if r.metricsMiddleware != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsMiddleware.Handler()))
	}

	// Account routes
	accountGroup := e.Group("/account")
	{
		accountGroup.POST("/register", r.accountHandler.Register, r.rateLimitMiddleware.Limit)
		accountGroup.POST("/login", r.accountHandler.Login, r.rateLimitMiddleware.Limit)
		accountGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		accountGroup.PUT("/password", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)
		accountGroup.PUT("/phone-number", r.accountHandler.ChangePhoneNumber, r.authMiddleware.Authenticate)
	}

	// Own profile
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.EditProfile)
	}

	managementGroup := e.Group("/user-management")
	managementGroup.Use(r.authMiddleware.Authenticate)

	// Staff management, admin only
	staffGroup := managementGroup.Group("/staff")
	staffGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		staffGroup.GET("", r.userManagementHandler.ListStaff)
		staffGroup.POST("", r.userManagementHandler.CreateStaff)
		staffGroup.GET("/account/:id", r.userManagementHandler.GetStaffAccount)
		staffGroup.PUT("/account/:id", r.userManagementHandler.UpdateStaffAccount)
		staffGroup.GET("/profile/:id", r.userManagementHandler.GetStaffProfile)
		staffGroup.PUT("/profile/:id", r.userManagementHandler.UpdateStaffProfile)
		staffGroup.PUT("/add-customer", r.userManagementHandler.AddCustomer)
		staffGroup.PUT("/remove-customer", r.userManagementHandler.RemoveCustomer)
	}

	// Customer management, staff or admin
	customerGroup := managementGroup.Group("/customer")
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleStaff))
	{
		customerGroup.GET("", r.userManagementHandler.ListCustomers)
		customerGroup.POST("", r.userManagementHandler.CreateCustomer)
		customerGroup.GET("/account/:id", r.userManagementHandler.GetCustomerAccount)
		customerGroup.PUT("/account/:id", r.userManagementHandler.UpdateCustomerAccount)
		customerGroup.GET("/profile/:id", r.userManagementHandler.GetCustomerProfile)
		customerGroup.PUT("/profile/:id", r.userManagementHandler.UpdateCustomerProfile)
	}
}
