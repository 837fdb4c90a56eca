// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"sproutly/database"
	"sproutly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository reads the reference catalogs owned by other services:
// rooms, staff, timeframes, slot types, student levels and students. This
// service only ever reads these collections.
type CatalogRepository interface {
	GetRoomsByIDs(ctx context.Context, ids []string) ([]models.Room, error)
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	ListStaffByBranch(ctx context.Context, branchID string) ([]models.Staff, error)
	GetTimeframe(ctx context.Context, id string) (*models.Timeframe, error)
	GetSlotType(ctx context.Context, id string) (*models.SlotType, error)
	GetStudentLevel(ctx context.Context, id string) (*models.StudentLevel, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
}

type mongoCatalogRepo struct {
	rooms      *mongo.Collection
	staff      *mongo.Collection
	timeframes *mongo.Collection
	slotTypes  *mongo.Collection
	levels     *mongo.Collection
	students   *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	return &mongoCatalogRepo{
		rooms:      db.Collection("rooms"),
		staff:      db.Collection("staff"),
		timeframes: db.Collection("timeframes"),
		slotTypes:  db.Collection("slot_types"),
		levels:     db.Collection("student_levels"),
		students:   db.Collection("students"),
	}
}
