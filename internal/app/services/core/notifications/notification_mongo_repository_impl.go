package notifications

import (
	"context"
	"errors"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (repo *NotificationMongoRepository) Insert(ctx context.Context, notification *models.Notification) (*models.Notification, error) {
	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return notification, nil
}

func (repo *NotificationMongoRepository) FindByReceiver(ctx context.Context, receiverID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"receiverId": receiverID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return notifications, nil
}

// MarkRead flips IsRead on the receiver's own notification; a nil result
// means it does not exist or belongs to someone else.
func (repo *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID, receiverID primitive.ObjectID) (*models.Notification, error) {
	filter := bson.M{"_id": notificationID, "receiverId": receiverID}
	update := bson.M{"$set": bson.M{"isRead": true}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notification models.Notification
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &notification, nil
}

func (repo *NotificationMongoRepository) DeleteByReceiver(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"receiverId": receiverID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
