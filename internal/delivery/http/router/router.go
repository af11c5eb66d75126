// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"simsure/internal/delivery/http/middleware"
	"simsure/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AlertHandler   *handler.AlertHandler
	ExportHandler  *handler.ExportHandler
	DealerHandler  *handler.DealerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	alertHandler   *handler.AlertHandler
	exportHandler  *handler.ExportHandler
	dealerHandler  *handler.DealerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		alertHandler:   params.AlertHandler,
		exportHandler:  params.ExportHandler,
		dealerHandler:  params.DealerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration happens right after Firebase sign-up, before an account
	// document exists, so it is authenticated but not account-scoped.
	e.POST("/accounts", r.accountHandler.Register, r.authMiddleware.Authenticate)

	// Account routes are scoped to the caller's own account document.
	accountGroup := e.Group("/accounts/:id")
	accountGroup.Use(r.authMiddleware.Authenticate)
	accountGroup.Use(r.authMiddleware.RequireAccountMatch)
	{
		accountGroup.GET("", r.accountHandler.Get)
		accountGroup.PUT("/profile", r.accountHandler.UpsertProtection)
		accountGroup.PUT("/language", r.accountHandler.ChangeLanguage)
		accountGroup.GET("/summary", r.accountHandler.Summary)
		accountGroup.GET("/events", r.accountHandler.Events)
		accountGroup.GET("/enrollment-qr", r.accountHandler.EnrollmentQR)
		accountGroup.POST("/verification/face", r.accountHandler.FaceCapture)

		// Alert lifecycle
		accountGroup.POST("/alerts", r.alertHandler.Trigger)
		accountGroup.GET("/alerts", r.alertHandler.List)
		accountGroup.POST("/alerts/:alertID/challenge", r.alertHandler.Challenge)
		accountGroup.POST("/alerts/:alertID/authorize", r.alertHandler.Authorize)
		accountGroup.POST("/alerts/:alertID/deny", r.alertHandler.Deny)
		accountGroup.POST("/alerts/:alertID/resolve", r.alertHandler.Resolve)

		// Alert history downloads
		accountGroup.GET("/alerts/export/csv", r.exportHandler.CSV)
		accountGroup.GET("/alerts/export/pdf", r.exportHandler.PDF)
	}

	// Distributor back-office routes require the distributor claim.
	dealerGroup := e.Group("/dealers/:id")
	dealerGroup.Use(r.authMiddleware.Authenticate)
	dealerGroup.Use(r.authMiddleware.RequireDistributor)
	{
		dealerGroup.POST("/sales", r.dealerHandler.RecordSale)
		dealerGroup.GET("/sales", r.dealerHandler.ListSales)
		dealerGroup.POST("/ewaste", r.dealerHandler.RecordEwaste)
		dealerGroup.GET("/ewaste", r.dealerHandler.ListEwaste)
		dealerGroup.POST("/fraud-scan", r.dealerHandler.ScanFraud)
		dealerGroup.GET("/fraud-cases", r.dealerHandler.ListFraudCases)
	}
}
