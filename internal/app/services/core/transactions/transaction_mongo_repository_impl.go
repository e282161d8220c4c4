package transactions

import (
	"context"
	"errors"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (repo *TransactionMongoRepository) Insert(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	result, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	transaction.ID = result.InsertedID.(primitive.ObjectID)
	return transaction, nil
}

func (repo *TransactionMongoRepository) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	var transaction models.Transaction
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&transaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *TransactionMongoRepository) FindByAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*models.Transaction, error) {
	var transaction models.Transaction
	err := repo.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&transaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &transaction, nil
}

func (repo *TransactionMongoRepository) UpdateStatus(ctx context.Context, transactionID primitive.ObjectID, status models.TransactionStatus) (*models.Transaction, error) {
	filter := bson.M{"_id": transactionID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var transaction models.Transaction
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&transaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &transaction, nil
}

// CompletedTotal sums Completed transaction amounts created in [from, to).
// An empty match yields 0, not an error.
func (repo *TransactionMongoRepository) CompletedTotal(ctx context.Context, laboratoryID *primitive.ObjectID, from, to time.Time) (float64, error) {
	match := bson.M{
		"status":    models.TransactionStatusCompleted,
		"createdAt": bson.M{"$gte": from, "$lt": to},
	}
	if laboratoryID != nil {
		match["laboratoryId"] = *laboratoryID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
