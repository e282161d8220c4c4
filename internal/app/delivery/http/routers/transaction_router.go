package routers

import (
	"lablink-service/internal/app/delivery/http/middlewares"
	"lablink-service/internal/app/models"
	"lablink-service/internal/app/services/core/transactions"

	"github.com/go-chi/chi/v5"
)

func attachTransactionRoutes(router chi.Router, middlewares *middlewares.Middlewares, transactionController *transactions.TransactionController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	router.With(adminOnly).Patch("/{transactionID}/status", transactionController.UpdateTransactionStatus)
	router.With(adminOnly).Get("/monthly-revenue", transactionController.GetMonthlyRevenue)
}
