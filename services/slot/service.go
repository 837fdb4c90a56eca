// File: services/slot/service.go
package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	assignmentRepo "sproutly/database/repository/assignment"
	catalogRepo "sproutly/database/repository/catalog"
	slotRepo "sproutly/database/repository/slot"
	"sproutly/metrics"
	"sproutly/models"
	"sproutly/services/fault"
	"sproutly/timerule"
	"sproutly/utils"
)

// Input carries the fields a manager submits when creating or updating a
// branch slot. Date, when present, is authoritative: the weekday is derived
// from it in the reference timezone and any caller-supplied WeekDate is
// ignored.
type Input struct {
	BranchID       string  `json:"branchId"`
	TimeframeID    string  `json:"timeframeId"`
	SlotTypeID     string  `json:"slotTypeId"`
	WeekDate       *int    `json:"weekDate,omitempty"`
	Date           *string `json:"date,omitempty"`
	Status         string  `json:"status,omitempty"`
	StudentLevelID *string `json:"studentLevelId,omitempty"`
}

// Registry owns the BranchSlot lifecycle.
type Registry interface {
	Create(ctx context.Context, in Input) (*models.BranchSlot, error)
	Update(ctx context.Context, id string, in Input) (*models.BranchSlot, error)
	GetByID(ctx context.Context, id string) (*models.BranchSlot, error)
	Delete(ctx context.Context, id string) error
	ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) (models.Page[models.BranchSlot], error)
}

// DefaultRegistry is the production Registry backed by MongoDB.
type DefaultRegistry struct {
	Repo        slotRepo.SlotRepository
	Catalog     catalogRepo.CatalogRepository
	Assignments assignmentRepo.AssignmentRepository
}

func (s *DefaultRegistry) Create(ctx context.Context, in Input) (*models.BranchSlot, error) {
	if in.BranchID == "" {
		return nil, fault.Validation("branchId", "branchId is required")
	}
	resolved, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	slot := &models.BranchSlot{
		ID:             uuid.New().String(),
		BranchID:       in.BranchID,
		TimeframeID:    in.TimeframeID,
		SlotTypeID:     in.SlotTypeID,
		WeekDate:       resolved.weekDate,
		Date:           resolved.date,
		Status:         resolved.status,
		StudentLevelID: in.StudentLevelID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Insert(ctx, slot); err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to create branch slot: %w", err))
	}

	metrics.IncSlotCreated(string(slot.Status))
	utils.GetLogger().Info("branch slot created",
		zap.String("slotId", slot.ID),
		zap.String("branchId", slot.BranchID),
		zap.Int("weekDate", slot.WeekDate))
	return slot, nil
}

func (s *DefaultRegistry) Update(ctx context.Context, id string, in Input) (*models.BranchSlot, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.BranchID == "" {
		in.BranchID = existing.BranchID
	}
	resolved, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	updated := &models.BranchSlot{
		ID:             existing.ID,
		BranchID:       in.BranchID,
		TimeframeID:    in.TimeframeID,
		SlotTypeID:     in.SlotTypeID,
		WeekDate:       resolved.weekDate,
		Date:           resolved.date,
		Status:         resolved.status,
		StudentLevelID: in.StudentLevelID,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Replace(ctx, updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fault.NotFound("branch slot", id)
		}
		return nil, fault.Transport(fmt.Errorf("failed to update branch slot: %w", err))
	}
	return updated, nil
}

func (s *DefaultRegistry) GetByID(ctx context.Context, id string) (*models.BranchSlot, error) {
	slot, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fault.NotFound("branch slot", id)
	}
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to fetch branch slot: %w", err))
	}
	return slot, nil
}

// Delete removes the slot and clears its room and staff assignments.
func (s *DefaultRegistry) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fault.NotFound("branch slot", id)
		}
		return fault.Transport(fmt.Errorf("failed to delete branch slot: %w", err))
	}
	if err := s.Assignments.RemoveAllForSlot(ctx, id); err != nil {
		return fault.Transport(fmt.Errorf("failed to clear assignments of deleted slot: %w", err))
	}
	metrics.IncSlotDeleted()
	return nil
}

func (s *DefaultRegistry) ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) (models.Page[models.BranchSlot], error) {
	pageIndex, pageSize = normalizePaging(pageIndex, pageSize)
	items, total, err := s.Repo.ListPaged(ctx, filter, pageIndex, pageSize)
	if err != nil {
		return models.Page[models.BranchSlot]{}, fault.Transport(fmt.Errorf("failed to list branch slots: %w", err))
	}
	if items == nil {
		items = []models.BranchSlot{}
	}
	return models.Page[models.BranchSlot]{Items: items, TotalCount: total, PageIndex: pageIndex, PageSize: pageSize}, nil
}

type resolvedInput struct {
	weekDate int
	date     *string
	status   models.SlotStatus
}

// validate checks the shared create/update rules and resolves the derived
// fields (weekday, canonical date, defaulted status).
func (s *DefaultRegistry) validate(ctx context.Context, in Input) (resolvedInput, error) {
	var out resolvedInput

	if in.TimeframeID == "" {
		return out, fault.Validation("timeframeId", "timeframeId is required")
	}
	if in.SlotTypeID == "" {
		return out, fault.Validation("slotTypeId", "slotTypeId is required")
	}
	if _, err := s.Catalog.GetTimeframe(ctx, in.TimeframeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return out, fault.Validation("timeframeId", "unknown timeframe "+in.TimeframeID)
		}
		return out, fault.Transport(fmt.Errorf("failed to resolve timeframe: %w", err))
	}
	if _, err := s.Catalog.GetSlotType(ctx, in.SlotTypeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return out, fault.Validation("slotTypeId", "unknown slot type "+in.SlotTypeID)
		}
		return out, fault.Transport(fmt.Errorf("failed to resolve slot type: %w", err))
	}
	if in.StudentLevelID != nil {
		if _, err := s.Catalog.GetStudentLevel(ctx, *in.StudentLevelID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return out, fault.Validation("studentLevelId", "unknown student level "+*in.StudentLevelID)
			}
			return out, fault.Transport(fmt.Errorf("failed to resolve student level: %w", err))
		}
	}

	if in.Date != nil && *in.Date != "" {
		date, weekday, err := timerule.NormalizeDate(*in.Date)
		if err != nil {
			return out, fault.Validation("date", err.Error())
		}
		out.date = &date
		out.weekDate = weekday
	} else {
		if in.WeekDate == nil {
			return out, fault.Validation("weekDate", "weekDate is required for recurring slots")
		}
		if !timerule.ValidWeekDate(*in.WeekDate) {
			return out, fault.Validation("weekDate", fmt.Sprintf("weekDate %d is out of range [0,6]", *in.WeekDate))
		}
		out.weekDate = *in.WeekDate
	}

	out.status = models.SlotAvailable
	if in.Status != "" {
		status := models.SlotStatus(in.Status)
		if !status.Valid() {
			return out, fault.Validation("status", "unknown status "+in.Status)
		}
		out.status = status
	}
	return out, nil
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
