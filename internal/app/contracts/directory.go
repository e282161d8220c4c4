package contracts

import (
	"context"
	"lablink-service/internal/app/models"
)

// DirectoryRepository is the read-mostly store of actor identities. The
// core resolves directory records into role-tagged Actors and never
// mutates them beyond the notification opt-in flag.
type DirectoryRepository interface {
	FindActor(ctx context.Context, role models.Role, id string) (*models.Actor, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (*models.Employee, error)
	FindEmployees(ctx context.Context) ([]models.Employee, error)
	FindLaboratoryByID(ctx context.Context, laboratoryID string) (*models.Laboratory, error)
	FindLaboratoryByName(ctx context.Context, fullName string) (*models.Laboratory, error)
	FindAdministrator(ctx context.Context) (*models.Administrator, error)
	SetNotificationEnabled(ctx context.Context, role models.Role, id string, enabled bool) (*models.Actor, error)
}
