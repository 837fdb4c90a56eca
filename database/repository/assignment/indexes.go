// File: database/repository/assignment/indexes.go
package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the assignment invariants. The
// unique compound indexes are the authoritative enforcement of "one row per
// room per slot" and "one row per staff per slot" under concurrent requests.
func (r *mongoAssignmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	roomModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "branchSlotId", Value: 1}, {Key: "roomId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot_room"),
		},
		{
			Keys:    bson.D{{Key: "branchSlotId", Value: 1}},
			Options: options.Index().SetName("slot_idx"),
		},
	}
	if _, err := r.rooms.Indexes().CreateMany(ctx, roomModels); err != nil {
		return fmt.Errorf("failed to create room_assignments indexes: %w", err)
	}

	staffModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "branchSlotId", Value: 1}, {Key: "staffId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slot_staff"),
		},
		{
			Keys:    bson.D{{Key: "branchSlotId", Value: 1}, {Key: "roomId", Value: 1}},
			Options: options.Index().SetName("slot_room_idx"),
		},
	}
	if _, err := r.staff.Indexes().CreateMany(ctx, staffModels); err != nil {
		return fmt.Errorf("failed to create staff_assignments indexes: %w", err)
	}
	return nil
}
