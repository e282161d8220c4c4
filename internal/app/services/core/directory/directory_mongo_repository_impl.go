package directory

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

type DirectoryMongoRepository struct {
	Employees    *mongo.Collection
	Laboratories *mongo.Collection
	Admins       *mongo.Collection
}

func NewDirectoryMongoRepository(db *mongo.Client, dbName string) contracts.DirectoryRepository {
	database := db.Database(dbName)
	return &DirectoryMongoRepository{
		Employees:    database.Collection(constvars.MongoCollectionEmployees),
		Laboratories: database.Collection(constvars.MongoCollectionLaboratories),
		Admins:       database.Collection(constvars.MongoCollectionAdmins),
	}
}

// FindActor resolves any directory record into a role-tagged Actor. A nil
// result without error means the record does not exist.
func (repo *DirectoryMongoRepository) FindActor(ctx context.Context, role models.Role, id string) (*models.Actor, error) {
	switch role {
	case models.RoleEmployee:
		employee, err := repo.FindEmployeeByID(ctx, id)
		if err != nil || employee == nil {
			return nil, err
		}
		return employee.Actor(), nil
	case models.RoleLaboratory:
		laboratory, err := repo.FindLaboratoryByID(ctx, id)
		if err != nil || laboratory == nil {
			return nil, err
		}
		return laboratory.Actor(), nil
	case models.RoleAdmin:
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, exceptions.ErrInvalidObjectID(err)
		}
		var admin models.Administrator
		err = repo.Admins.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, exceptions.ErrMongoDBFindDocument(err)
		}
		return admin.Actor(), nil
	default:
		return nil, exceptions.ErrInvalidRoleType(errors.New("unknown role " + string(role)))
	}
}

func (repo *DirectoryMongoRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	var employee models.Employee
	err = repo.Employees.FindOne(ctx, bson.M{"_id": objectID}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &employee, nil
}

func (repo *DirectoryMongoRepository) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	cursor, err := repo.Employees.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return employees, nil
}

func (repo *DirectoryMongoRepository) FindLaboratoryByID(ctx context.Context, laboratoryID string) (*models.Laboratory, error) {
	objectID, err := primitive.ObjectIDFromHex(laboratoryID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	var laboratory models.Laboratory
	err = repo.Laboratories.FindOne(ctx, bson.M{"_id": objectID}).Decode(&laboratory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &laboratory, nil
}

// FindLaboratoryByName matches case insensitively so the lookup survives
// casing differences between the request and the stored record.
func (repo *DirectoryMongoRepository) FindLaboratoryByName(ctx context.Context, fullName string) (*models.Laboratory, error) {
	var laboratory models.Laboratory
	opts := options.FindOne().SetCollation(&options.Collation{
		Locale:   constvars.CollationLocale,
		Strength: constvars.CollationStrength,
	})
	err := repo.Laboratories.FindOne(ctx, bson.M{"fullName": fullName}, opts).Decode(&laboratory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &laboratory, nil
}

func (repo *DirectoryMongoRepository) FindAdministrator(ctx context.Context) (*models.Administrator, error) {
	var admin models.Administrator
	err := repo.Admins.FindOne(ctx, bson.M{}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &admin, nil
}

func (repo *DirectoryMongoRepository) SetNotificationEnabled(ctx context.Context, role models.Role, id string, enabled bool) (*models.Actor, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}

	var collection *mongo.Collection
	switch role {
	case models.RoleEmployee:
		collection = repo.Employees
	case models.RoleLaboratory:
		collection = repo.Laboratories
	case models.RoleAdmin:
		collection = repo.Admins
	default:
		return nil, exceptions.ErrInvalidRoleType(errors.New("unknown role " + string(role)))
	}

	update := bson.M{"$set": bson.M{"isNotification": enabled, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts)

	switch role {
	case models.RoleEmployee:
		var employee models.Employee
		if err := result.Decode(&employee); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		return employee.Actor(), nil
	case models.RoleLaboratory:
		var laboratory models.Laboratory
		if err := result.Decode(&laboratory); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		return laboratory.Actor(), nil
	default:
		var admin models.Administrator
		if err := result.Decode(&admin); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, nil
			}
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		return admin.Actor(), nil
	}
}
