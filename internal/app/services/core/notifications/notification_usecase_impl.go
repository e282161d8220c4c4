package notifications

import (
	"context"
	"errors"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	DirectoryRepository    contracts.DirectoryRepository
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	directoryRepository contracts.DirectoryRepository,
) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		DirectoryRepository:    directoryRepository,
	}
}

func (uc *notificationUsecase) ListForActor(ctx context.Context, actor *models.Actor) ([]models.Notification, error) {
	notifications, err := uc.NotificationRepository.FindByReceiver(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, actor *models.Actor, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}

	notification, err := uc.NotificationRepository.MarkRead(ctx, objectID, actor.ID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotFound(errors.New("notification not found for receiver"))
	}
	return notification, nil
}

func (uc *notificationUsecase) DeleteForActor(ctx context.Context, actor *models.Actor) (int64, error) {
	return uc.NotificationRepository.DeleteByReceiver(ctx, actor.ID)
}

// ToggleNotifications flips the actor's push opt-in flag and returns the
// refreshed actor.
func (uc *notificationUsecase) ToggleNotifications(ctx context.Context, actor *models.Actor) (*models.Actor, error) {
	updated, err := uc.DirectoryRepository.SetNotificationEnabled(ctx, actor.Role, actor.ID.Hex(), !actor.IsNotification)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrNotAuthorized(errors.New("directory record no longer exists"))
	}
	return updated, nil
}
