package routers

import (
	"lablink-service/internal/app/delivery/http/middlewares"
	"lablink-service/internal/app/models"
	"lablink-service/internal/app/services/core/dashboard"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.Use(middlewares.Authenticate)

	viewers := middlewares.RequireRoles(models.RoleAdmin, models.RoleLaboratory)
	router.With(viewers).Get("/", dashboardController.GetDashboard)
}
