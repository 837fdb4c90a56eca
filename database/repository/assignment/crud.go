// File: database/repository/assignment/crud.go
package assignmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sproutly/models"
)

func (r *mongoAssignmentRepo) InsertRoom(ctx context.Context, ra *models.RoomAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.rooms.InsertOne(ctx, ra)
	return err
}

func (r *mongoAssignmentRepo) RemoveRoom(ctx context.Context, branchSlotID, roomID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.rooms.DeleteOne(ctx, bson.M{"branchSlotId": branchSlotID, "roomId": roomID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoAssignmentRepo) RemoveStaffByRoom(ctx context.Context, branchSlotID, roomID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.staff.DeleteMany(ctx, bson.M{"branchSlotId": branchSlotID, "roomId": roomID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoAssignmentRepo) InsertStaff(ctx context.Context, sa *models.StaffAssignment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.staff.InsertOne(ctx, sa)
	return err
}

func (r *mongoAssignmentRepo) RemoveStaff(ctx context.Context, branchSlotID, staffID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.staff.DeleteOne(ctx, bson.M{"branchSlotId": branchSlotID, "staffId": staffID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoAssignmentRepo) ListRooms(ctx context.Context, branchSlotID string) ([]models.RoomAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.rooms.Find(ctx, bson.M{"branchSlotId": branchSlotID},
		options.Find().SetSort(bson.D{{Key: "assignedAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.RoomAssignment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoAssignmentRepo) ListStaff(ctx context.Context, branchSlotID string) ([]models.StaffAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.staff.Find(ctx, bson.M{"branchSlotId": branchSlotID},
		options.Find().SetSort(bson.D{{Key: "assignedAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []models.StaffAssignment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoAssignmentRepo) ListRoomsPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) ([]models.RoomAssignment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"branchSlotId": branchSlotID}
	total, err := r.rooms.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.rooms.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "assignedAt", Value: 1}}).
		SetSkip(int64(pageIndex*pageSize)).
		SetLimit(int64(pageSize)))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []models.RoomAssignment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *mongoAssignmentRepo) ListStaffPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) ([]models.StaffAssignment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"branchSlotId": branchSlotID}
	total, err := r.staff.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.staff.Find(ctx, query, options.Find().
		SetSort(bson.D{{Key: "assignedAt", Value: 1}}).
		SetSkip(int64(pageIndex*pageSize)).
		SetLimit(int64(pageSize)))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []models.StaffAssignment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// RemoveAllForSlot clears both assignment collections for a deleted slot.
func (r *mongoAssignmentRepo) RemoveAllForSlot(ctx context.Context, branchSlotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.staff.DeleteMany(ctx, bson.M{"branchSlotId": branchSlotID}); err != nil {
		return err
	}
	_, err := r.rooms.DeleteMany(ctx, bson.M{"branchSlotId": branchSlotID})
	return err
}
