package routers

import (
	"lablink-service/internal/app/delivery/http/middlewares"
	"lablink-service/internal/app/models"
	"lablink-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(models.RoleAdmin)
	employeeOnly := middlewares.RequireRoles(models.RoleEmployee)
	bookers := middlewares.RequireRoles(models.RoleAdmin, models.RoleLaboratory)

	router.With(bookers).Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.ListAppointments)
	router.Get("/archived", appointmentController.ListArchivedAppointments)
	router.With(employeeOnly).Get("/today", appointmentController.TodayAppointments)
	router.Get("/{appointmentID}", appointmentController.GetAppointment)
	router.With(adminOnly).Patch("/{appointmentID}/employee", appointmentController.AssignEmployee)
	router.With(adminOnly).Patch("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	router.With(employeeOnly).Post("/{appointmentID}/tracking-id", appointmentController.UploadTrackingID)
	router.With(adminOnly).Post("/reassign/{employeeID}", appointmentController.ReassignEmployeeAppointments)
}
