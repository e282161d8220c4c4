package contracts

import (
	"context"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentQuery is the repository-level listing filter. Zero values
// mean "no constraint"; DateTo and CreatedTo are exclusive.
type AppointmentQuery struct {
	LaboratoryName string
	LaboratoryID   *primitive.ObjectID
	EmployeeID     *primitive.ObjectID
	Statuses       []models.AppointmentStatus
	PriorityLevel  models.PriorityLevel
	DateFrom       *time.Time
	DateTo         *time.Time
	CreatedFrom    *time.Time
	CreatedTo      *time.Time
	HasTrackingID  *bool
	IsAssigned     *bool
	SortField      string
	SortAscending  bool
	Skip           int64
	Limit          int64
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Find(ctx context.Context, query *AppointmentQuery) ([]models.Appointment, error)
	Count(ctx context.Context, query *AppointmentQuery) (int64, error)
	FindPendingByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Appointment, error)
	// UpdateEmployee sets (or clears, when employeeID is nil) the assignee.
	UpdateEmployee(ctx context.Context, appointmentID primitive.ObjectID, employeeID *primitive.ObjectID) (*models.Appointment, error)
	// UpdateStatusFromPending transitions Pending -> next with an atomic
	// conditional update keyed on the prior Pending state; a nil result
	// without error means no eligible document matched, so the caller can
	// tell a lost race or missing assignee apart from a store failure.
	// requireAssignee is false only for the Pending -> Pending no-op.
	UpdateStatusFromPending(ctx context.Context, appointmentID primitive.ObjectID, next models.AppointmentStatus, requireAssignee bool) (*models.Appointment, error)
	// SetTrackingID writes the tracking reference iff it is still null and
	// the appointment is assigned to employeeID; nil result means the
	// guard did not match.
	SetTrackingID(ctx context.Context, appointmentID, employeeID primitive.ObjectID, trackingRef string) (*models.Appointment, error)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, actor *models.Actor, request *requests.CreateAppointment) (*models.Appointment, error)
	FindByID(ctx context.Context, actor *models.Actor, appointmentID string) (*models.Appointment, error)
	List(ctx context.Context, actor *models.Actor, request *requests.ListAppointments) ([]models.Appointment, *responses.Pagination, error)
	TodayForEmployee(ctx context.Context, actor *models.Actor) ([]models.Appointment, error)
	AssignEmployee(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.AssignEmployee) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error)
	UploadTrackingID(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UploadTrackingID) (*models.Appointment, error)
	ReassignOnEmployeeRemoval(ctx context.Context, employeeID string) error
}
