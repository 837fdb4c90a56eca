// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sproutly/models"
)

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc T
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoCatalogRepo) GetRoomsByIDs(ctx context.Context, ids []string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *mongoCatalogRepo) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	return findOne[models.Staff](ctx, r.staff, id)
}

func (r *mongoCatalogRepo) ListStaffByBranch(ctx context.Context, branchID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.staff.Find(ctx, bson.M{"branchId": branchID},
		options.Find().SetSort(bson.D{{Key: "fullName", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *mongoCatalogRepo) GetTimeframe(ctx context.Context, id string) (*models.Timeframe, error) {
	return findOne[models.Timeframe](ctx, r.timeframes, id)
}

func (r *mongoCatalogRepo) GetSlotType(ctx context.Context, id string) (*models.SlotType, error) {
	return findOne[models.SlotType](ctx, r.slotTypes, id)
}

func (r *mongoCatalogRepo) GetStudentLevel(ctx context.Context, id string) (*models.StudentLevel, error) {
	return findOne[models.StudentLevel](ctx, r.levels, id)
}

func (r *mongoCatalogRepo) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return findOne[models.Student](ctx, r.students, id)
}
