package contracts

import (
	"context"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/dto/requests"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionRepository interface {
	Insert(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	FindByID(ctx context.Context, transactionID string) (*models.Transaction, error)
	FindByAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID primitive.ObjectID, status models.TransactionStatus) (*models.Transaction, error)
	// CompletedTotal sums amount over Completed transactions created in
	// [from, to); laboratoryID narrows to one laboratory when non-nil.
	// Returns 0, never an error, when nothing matches.
	CompletedTotal(ctx context.Context, laboratoryID *primitive.ObjectID, from, to time.Time) (float64, error)
}

type TransactionUsecase interface {
	UpdateStatus(ctx context.Context, actor *models.Actor, transactionID string, request *requests.UpdateTransactionStatus) (*models.Transaction, error)
	MonthlyCompletedTotal(ctx context.Context) (float64, error)
}
