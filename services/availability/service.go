// File: services/availability/service.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	catalogRepo "sproutly/database/repository/catalog"
	slotRepo "sproutly/database/repository/slot"
	subscriptionRepo "sproutly/database/repository/subscription"
	"sproutly/models"
	"sproutly/services/fault"
	"sproutly/timerule"
	"sproutly/utils"
)

// Query answers which branch slots a student can book.
type Query interface {
	// AvailableSlotsForStudent returns AVAILABLE slots compatible with the
	// student's active subscription. When date is non-empty, dated slots must
	// match it exactly and recurring slots match on its weekday. No matches
	// is an empty page, never an error.
	AvailableSlotsForStudent(ctx context.Context, studentID, date string, pageIndex, pageSize int) (models.Page[models.BranchSlot], error)
}

// DefaultQuery is the production Query backed by MongoDB.
type DefaultQuery struct {
	Slots         slotRepo.SlotRepository
	Catalog       catalogRepo.CatalogRepository
	Subscriptions subscriptionRepo.SubscriptionRepository

	// Now supplies the current time; tests override it.
	Now func() time.Time
}

func (q *DefaultQuery) now() time.Time {
	if q.Now != nil {
		return q.Now()
	}
	return time.Now()
}

func (q *DefaultQuery) AvailableSlotsForStudent(ctx context.Context, studentID, date string, pageIndex, pageSize int) (models.Page[models.BranchSlot], error) {
	pageIndex, pageSize = normalizePaging(pageIndex, pageSize)
	empty := models.EmptyPage[models.BranchSlot](pageIndex, pageSize)

	student, err := q.Catalog.GetStudent(ctx, studentID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return empty, fault.NotFound("student", studentID)
	}
	if err != nil {
		return empty, fault.Transport(fmt.Errorf("failed to resolve student: %w", err))
	}

	now := q.now()
	sub, err := q.Subscriptions.GetActiveForStudent(ctx, studentID, now)
	if err != nil {
		return empty, fault.Transport(fmt.Errorf("failed to read subscription ledger: %w", err))
	}
	if sub == nil || !sub.Usable(now) || len(sub.SlotTypeIDs) == 0 {
		// Nothing bookable without a usable subscription.
		return empty, nil
	}

	filter := slotRepo.AvailabilityFilter{
		BranchID:       sub.BranchID,
		SlotTypeIDs:    sub.SlotTypeIDs,
		StudentLevelID: student.StudentLevelID,
	}
	if date != "" {
		normalized, weekday, err := timerule.NormalizeDate(date)
		if err != nil {
			return empty, fault.Validation("date", err.Error())
		}
		filter.Date = normalized
		filter.WeekDate = &weekday
	}

	items, total, err := q.Slots.ListAvailable(ctx, filter, pageIndex, pageSize)
	if err != nil {
		return empty, fault.Transport(fmt.Errorf("failed to query available slots: %w", err))
	}
	if items == nil {
		items = []models.BranchSlot{}
	}

	utils.GetLogger().Debug("availability query",
		zap.String("studentId", studentID),
		zap.String("date", date),
		zap.Int64("matches", total))
	return models.Page[models.BranchSlot]{Items: items, TotalCount: total, PageIndex: pageIndex, PageSize: pageSize}, nil
}

func normalizePaging(pageIndex, pageSize int) (int, int) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageIndex, pageSize
}
