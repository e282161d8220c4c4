package contracts

import (
	"context"
	"lablink-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) (*models.Notification, error)
	FindByReceiver(ctx context.Context, receiverID primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, receiverID primitive.ObjectID) (*models.Notification, error)
	DeleteByReceiver(ctx context.Context, receiverID primitive.ObjectID) (int64, error)
}

type NotificationUsecase interface {
	ListForActor(ctx context.Context, actor *models.Actor) ([]models.Notification, error)
	MarkRead(ctx context.Context, actor *models.Actor, notificationID string) (*models.Notification, error)
	DeleteForActor(ctx context.Context, actor *models.Actor) (int64, error)
	ToggleNotifications(ctx context.Context, actor *models.Actor) (*models.Actor, error)
}
