// File: database/repository/assignment/interface.go
package assignmentRepo

import (
	"context"
	"fmt"

	"sproutly/database"
	"sproutly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AssignmentRepository persists room and staff assignments of branch slots.
// Exclusivity (one row per room per slot, one row per staff per slot) is
// enforced by unique compound indexes, so concurrent assignment requests
// cannot both succeed; client-side exclusion filtering is advisory only.
type AssignmentRepository interface {
	InsertRoom(ctx context.Context, ra *models.RoomAssignment) error
	RemoveRoom(ctx context.Context, branchSlotID, roomID string) (int64, error)
	RemoveStaffByRoom(ctx context.Context, branchSlotID, roomID string) (int64, error)
	InsertStaff(ctx context.Context, sa *models.StaffAssignment) error
	RemoveStaff(ctx context.Context, branchSlotID, staffID string) (int64, error)
	ListRooms(ctx context.Context, branchSlotID string) ([]models.RoomAssignment, error)
	ListStaff(ctx context.Context, branchSlotID string) ([]models.StaffAssignment, error)
	ListRoomsPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) ([]models.RoomAssignment, int64, error)
	ListStaffPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) ([]models.StaffAssignment, int64, error)
	RemoveAllForSlot(ctx context.Context, branchSlotID string) error
}

type mongoAssignmentRepo struct {
	rooms *mongo.Collection
	staff *mongo.Collection
}

// NewMongoAssignmentRepo constructs a new MongoDB AssignmentRepository.
func NewMongoAssignmentRepo() AssignmentRepository {
	repo := &mongoAssignmentRepo{
		rooms: database.DB().Collection("room_assignments"),
		staff: database.DB().Collection("staff_assignments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// IsDuplicate reports whether err is a unique-index violation. The assignment
// service turns these into idempotent no-ops (rooms) or conflicts (staff).
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
