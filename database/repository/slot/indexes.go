// File: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the branch_slots collection.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary listing pattern: branch + status + weekday
		{
			Keys:    bson.D{{Key: "branchId", Value: 1}, {Key: "status", Value: 1}, {Key: "weekDate", Value: 1}},
			Options: options.Index().SetName("branch_status_weekdate_idx"),
		},
		// Dated slots looked up by exact calendar date
		{
			Keys:    bson.D{{Key: "branchId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("branch_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create branch_slots indexes: %w", err)
	}
	return nil
}
