package routers

import (
	"lablink-service/internal/app/delivery/http/middlewares"
	"lablink-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", notificationController.ListNotifications)
	router.Patch("/{notificationID}/read", notificationController.MarkNotificationRead)
	router.Delete("/", notificationController.DeleteNotifications)
	router.Patch("/toggle", notificationController.ToggleNotifications)
}
