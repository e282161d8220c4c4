package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	appointment.ID = result.InsertedID.(primitive.ObjectID)
	return appointment, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func buildAppointmentFilter(query *contracts.AppointmentQuery) bson.M {
	filter := bson.M{}
	if query.LaboratoryName != "" {
		filter["laboratoryName"] = query.LaboratoryName
	}
	if query.LaboratoryID != nil {
		filter["laboratoryId"] = *query.LaboratoryID
	}
	if query.EmployeeID != nil {
		filter["employeeId"] = *query.EmployeeID
	}
	if len(query.Statuses) > 0 {
		filter["status"] = bson.M{"$in": query.Statuses}
	}
	if query.PriorityLevel != "" {
		filter["priorityLevel"] = query.PriorityLevel
	}
	dateRange := bson.M{}
	if query.DateFrom != nil {
		dateRange["$gte"] = *query.DateFrom
	}
	if query.DateTo != nil {
		dateRange["$lt"] = *query.DateTo
	}
	if len(dateRange) > 0 {
		filter["appointmentDateTime"] = dateRange
	}
	createdRange := bson.M{}
	if query.CreatedFrom != nil {
		createdRange["$gte"] = *query.CreatedFrom
	}
	if query.CreatedTo != nil {
		createdRange["$lt"] = *query.CreatedTo
	}
	if len(createdRange) > 0 {
		filter["createdAt"] = createdRange
	}
	if query.HasTrackingID != nil {
		if *query.HasTrackingID {
			filter["trackingId"] = bson.M{"$ne": nil}
		} else {
			filter["trackingId"] = nil
		}
	}
	if query.IsAssigned != nil {
		if *query.IsAssigned {
			filter["employeeId"] = bson.M{"$ne": nil}
		} else {
			filter["employeeId"] = nil
		}
	}
	return filter
}

// Find lists appointments matching the query. String sorting and the
// laboratory-name match are collated so ordering and matching are locale
// aware and case insensitive.
func (repo *AppointmentMongoRepository) Find(ctx context.Context, query *contracts.AppointmentQuery) ([]models.Appointment, error) {
	sortField := query.SortField
	if sortField == "" {
		sortField = constvars.SortFieldDefault
	}
	sortOrder := -1
	if query.SortAscending {
		sortOrder = 1
	}

	opts := options.Find().
		SetCollation(&options.Collation{
			Locale:   constvars.CollationLocale,
			Strength: constvars.CollationStrength,
		}).
		SetSort(bson.D{{Key: sortField, Value: sortOrder}}).
		SetSkip(query.Skip)
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}

	cursor, err := repo.Collection.Find(ctx, buildAppointmentFilter(query), opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Count(ctx context.Context, query *contracts.AppointmentQuery) (int64, error) {
	opts := options.Count().SetCollation(&options.Collation{
		Locale:   constvars.CollationLocale,
		Strength: constvars.CollationStrength,
	})
	count, err := repo.Collection.CountDocuments(ctx, buildAppointmentFilter(query), opts)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *AppointmentMongoRepository) FindPendingByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Appointment, error) {
	filter := bson.M{
		"employeeId": employeeID,
		"status":     models.AppointmentStatusPending,
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) UpdateEmployee(ctx context.Context, appointmentID primitive.ObjectID, employeeID *primitive.ObjectID) (*models.Appointment, error) {
	set := bson.M{"updatedAt": time.Now()}
	if employeeID != nil {
		set["employeeId"] = *employeeID
	} else {
		set["employeeId"] = nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := repo.Collection.FindOneAndUpdate(ctx, bson.M{"_id": appointmentID}, bson.M{"$set": set}, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

// UpdateStatusFromPending is the atomic Pending -> next transition. The
// prior Pending state sits in the filter so two racing transitions cannot
// both succeed; a nil result means no eligible document matched.
func (repo *AppointmentMongoRepository) UpdateStatusFromPending(ctx context.Context, appointmentID primitive.ObjectID, next models.AppointmentStatus, requireAssignee bool) (*models.Appointment, error) {
	filter := bson.M{
		"_id":    appointmentID,
		"status": models.AppointmentStatusPending,
	}
	if requireAssignee {
		filter["employeeId"] = bson.M{"$ne": nil}
	}
	update := bson.M{"$set": bson.M{"status": next, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

// SetTrackingID writes the reference only while trackingId is still null
// and the appointment belongs to employeeID, making the write-once rule a
// single conditional update.
func (repo *AppointmentMongoRepository) SetTrackingID(ctx context.Context, appointmentID, employeeID primitive.ObjectID, trackingRef string) (*models.Appointment, error) {
	filter := bson.M{
		"_id":        appointmentID,
		"trackingId": nil,
		"employeeId": employeeID,
	}
	update := bson.M{"$set": bson.M{"trackingId": trackingRef, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}
