// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sproutly/models"
)

func (r *mongoSlotRepo) ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error) {
	query := bson.M{}
	if filter.BranchID != "" {
		query["branchId"] = filter.BranchID
	}
	if filter.SlotTypeID != "" {
		query["slotTypeId"] = filter.SlotTypeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.WeekDate != nil {
		query["weekDate"] = *filter.WeekDate
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	return r.findPaged(ctx, query, pageIndex, pageSize)
}

// ListAvailable returns AVAILABLE slots bookable under the given subscription
// context. A slot pinned to a date is only returned when that date is
// requested; recurring slots match on weekday.
func (r *mongoSlotRepo) ListAvailable(ctx context.Context, filter AvailabilityFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error) {
	query := bson.M{
		"status":     models.SlotAvailable,
		"branchId":   filter.BranchID,
		"slotTypeId": bson.M{"$in": filter.SlotTypeIDs},
	}
	if filter.StudentLevelID != nil {
		query["$and"] = []bson.M{
			{"$or": []bson.M{
				{"studentLevelId": bson.M{"$exists": false}},
				{"studentLevelId": *filter.StudentLevelID},
			}},
		}
	} else {
		query["studentLevelId"] = bson.M{"$exists": false}
	}
	if filter.Date != "" && filter.WeekDate != nil {
		dateMatch := []bson.M{
			{"date": filter.Date},
			{"date": bson.M{"$exists": false}, "weekDate": *filter.WeekDate},
		}
		if existing, ok := query["$and"].([]bson.M); ok {
			query["$and"] = append(existing, bson.M{"$or": dateMatch})
		} else {
			query["$or"] = dateMatch
		}
	}
	return r.findPaged(ctx, query, pageIndex, pageSize)
}

// Matches reports whether a slot satisfies the filter. It is the in-memory
// equivalent of the query ListAvailable sends to the store; test doubles use
// it so fake stores and the real query agree on the matching rules.
func (f AvailabilityFilter) Matches(slot models.BranchSlot) bool {
	if slot.Status != models.SlotAvailable || slot.BranchID != f.BranchID {
		return false
	}
	covered := false
	for _, id := range f.SlotTypeIDs {
		if id == slot.SlotTypeID {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}
	if slot.StudentLevelID != nil {
		if f.StudentLevelID == nil || *f.StudentLevelID != *slot.StudentLevelID {
			return false
		}
	}
	if f.Date != "" && f.WeekDate != nil {
		// A dated slot only matches its own date; a recurring slot matches
		// any date falling on its weekday.
		if slot.Date != nil {
			return *slot.Date == f.Date
		}
		return slot.WeekDate == *f.WeekDate
	}
	return true
}

func (r *mongoSlotRepo) findPaged(ctx context.Context, query bson.M, pageIndex, pageSize int) ([]models.BranchSlot, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "weekDate", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetSkip(int64(pageIndex * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var slots []models.BranchSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, 0, err
	}
	return slots, total, nil
}
