// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"fmt"

	"sproutly/database"
	"sproutly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityFilter describes the slots a student's subscription can book.
// Date and WeekDate implement the dated-vs-recurring matching rule: a dated
// slot must match Date exactly, a recurring slot matches on WeekDate.
type AvailabilityFilter struct {
	BranchID       string
	SlotTypeIDs    []string
	StudentLevelID *string
	Date           string
	WeekDate       *int
}

type SlotRepository interface {
	Insert(ctx context.Context, slot *models.BranchSlot) error
	Replace(ctx context.Context, slot *models.BranchSlot) error
	GetByID(ctx context.Context, id string) (*models.BranchSlot, error)
	DeleteByID(ctx context.Context, id string) error
	ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error)
	ListAvailable(ctx context.Context, filter AvailabilityFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	repo := &mongoSlotRepo{
		coll: database.DB().Collection("branch_slots"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
