// File: services/assignment/service.go
package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	assignmentRepo "sproutly/database/repository/assignment"
	catalogRepo "sproutly/database/repository/catalog"
	slotRepo "sproutly/database/repository/slot"
	"sproutly/metrics"
	"sproutly/models"
	"sproutly/services/fault"
	"sproutly/utils"
)

// Service assigns rooms and staff to branch slots while holding the
// exclusivity invariants: a room at most once per slot, a staff member at
// most once per slot, and staff room references always pointing at a room
// assigned to the same slot.
type Service interface {
	AssignRooms(ctx context.Context, branchSlotID string, roomIDs []string) error
	UnassignRoom(ctx context.Context, branchSlotID, roomID string) error
	AssignStaff(ctx context.Context, branchSlotID, staffID string, roomID *string, roleLabel string) error
	UnassignStaff(ctx context.Context, branchSlotID, staffID string) error
	ListAssignments(ctx context.Context, branchSlotID string) (*models.SlotAssignments, error)
	StaffCandidates(ctx context.Context, branchSlotID string) ([]models.Staff, error)
	ListRoomsPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.RoomAssignment], error)
	ListStaffPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.StaffAssignment], error)
}

// DefaultService is the production assignment service backed by MongoDB.
type DefaultService struct {
	Repo    assignmentRepo.AssignmentRepository
	Slots   slotRepo.SlotRepository
	Catalog catalogRepo.CatalogRepository
}

// AssignRooms assigns each room to the slot. Rooms already assigned are
// skipped, not errors: re-submitting the same set is a no-op.
func (s *DefaultService) AssignRooms(ctx context.Context, branchSlotID string, roomIDs []string) error {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return err
	}
	if len(roomIDs) == 0 {
		return nil
	}

	rooms, err := s.Catalog.GetRoomsByIDs(ctx, roomIDs)
	if err != nil {
		return fault.Transport(fmt.Errorf("failed to resolve rooms: %w", err))
	}
	byID := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	// Every id must resolve before anything is inserted, so a failed call
	// never leaves part of the batch assigned.
	for _, roomID := range roomIDs {
		if _, ok := byID[roomID]; !ok {
			return fault.NotFound("room", roomID)
		}
	}

	now := time.Now().UTC()
	for _, roomID := range roomIDs {
		room := byID[roomID]
		ra := &models.RoomAssignment{
			BranchSlotID: branchSlotID,
			RoomID:       room.ID,
			RoomName:     room.Name,
			Facility:     room.Facility,
			Capacity:     room.Capacity,
			AssignedAt:   now,
		}
		if err := s.Repo.InsertRoom(ctx, ra); err != nil {
			if assignmentRepo.IsDuplicate(err) {
				continue
			}
			return fault.Transport(fmt.Errorf("failed to assign room %s: %w", roomID, err))
		}
		metrics.IncAssignmentOp("room_assigned")
	}
	return nil
}

// UnassignRoom removes the room from the slot and, as part of the same
// operation, every staff assignment tied to that room. Removing a room that
// is not assigned is a no-op.
func (s *DefaultService) UnassignRoom(ctx context.Context, branchSlotID, roomID string) error {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return err
	}

	removed, err := s.Repo.RemoveRoom(ctx, branchSlotID, roomID)
	if err != nil {
		return fault.Transport(fmt.Errorf("failed to unassign room %s: %w", roomID, err))
	}
	if removed == 0 {
		return nil
	}

	cascaded, err := s.Repo.RemoveStaffByRoom(ctx, branchSlotID, roomID)
	if err != nil {
		return fault.Transport(fmt.Errorf("failed to cascade staff removal for room %s: %w", roomID, err))
	}

	metrics.IncAssignmentOp("room_unassigned")
	utils.GetLogger().Info("room unassigned",
		zap.String("slotId", branchSlotID),
		zap.String("roomId", roomID),
		zap.Int64("staffCascaded", cascaded))
	return nil
}

// AssignStaff assigns one staff member to the slot, optionally inside one of
// the slot's rooms. A staff member already holding an assignment in the slot
// is a conflict; a room reference without a matching room assignment is a
// validation failure.
func (s *DefaultService) AssignStaff(ctx context.Context, branchSlotID, staffID string, roomID *string, roleLabel string) error {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return err
	}
	if staffID == "" {
		return fault.Validation("staffId", "staffId is required")
	}

	staff, err := s.Catalog.GetStaff(ctx, staffID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fault.NotFound("staff member", staffID)
	}
	if err != nil {
		return fault.Transport(fmt.Errorf("failed to resolve staff member: %w", err))
	}

	if roomID != nil {
		rooms, err := s.Repo.ListRooms(ctx, branchSlotID)
		if err != nil {
			return fault.Transport(fmt.Errorf("failed to list room assignments: %w", err))
		}
		if !roomAssigned(rooms, *roomID) {
			return fault.Validation("roomId", fmt.Sprintf("room %s is not assigned to slot %s", *roomID, branchSlotID))
		}
	}

	sa := &models.StaffAssignment{
		BranchSlotID: branchSlotID,
		StaffID:      staff.ID,
		StaffName:    staff.FullName,
		RoomID:       roomID,
		RoleLabel:    roleLabel,
		AssignedAt:   time.Now().UTC(),
	}
	if err := s.Repo.InsertStaff(ctx, sa); err != nil {
		if assignmentRepo.IsDuplicate(err) {
			return fault.Conflict(fmt.Sprintf("staff member %s is already assigned to slot %s", staffID, branchSlotID))
		}
		return fault.Transport(fmt.Errorf("failed to assign staff %s: %w", staffID, err))
	}
	metrics.IncAssignmentOp("staff_assigned")
	return nil
}

// UnassignStaff removes the staff member's assignment. No-op when absent.
func (s *DefaultService) UnassignStaff(ctx context.Context, branchSlotID, staffID string) error {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return err
	}
	removed, err := s.Repo.RemoveStaff(ctx, branchSlotID, staffID)
	if err != nil {
		return fault.Transport(fmt.Errorf("failed to unassign staff %s: %w", staffID, err))
	}
	if removed > 0 {
		metrics.IncAssignmentOp("staff_unassigned")
	}
	return nil
}

func (s *DefaultService) ListRoomsPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.RoomAssignment], error) {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return models.Page[models.RoomAssignment]{}, err
	}
	pageIndex, pageSize = normalizePaging(pageIndex, pageSize)
	items, total, err := s.Repo.ListRoomsPaged(ctx, branchSlotID, pageIndex, pageSize)
	if err != nil {
		return models.Page[models.RoomAssignment]{}, fault.Transport(fmt.Errorf("failed to list rooms: %w", err))
	}
	if items == nil {
		items = []models.RoomAssignment{}
	}
	return models.Page[models.RoomAssignment]{Items: items, TotalCount: total, PageIndex: pageIndex, PageSize: pageSize}, nil
}

func (s *DefaultService) ListStaffPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.StaffAssignment], error) {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return models.Page[models.StaffAssignment]{}, err
	}
	pageIndex, pageSize = normalizePaging(pageIndex, pageSize)
	items, total, err := s.Repo.ListStaffPaged(ctx, branchSlotID, pageIndex, pageSize)
	if err != nil {
		return models.Page[models.StaffAssignment]{}, fault.Transport(fmt.Errorf("failed to list staff: %w", err))
	}
	if items == nil {
		items = []models.StaffAssignment{}
	}
	return models.Page[models.StaffAssignment]{Items: items, TotalCount: total, PageIndex: pageIndex, PageSize: pageSize}, nil
}

func (s *DefaultService) requireSlot(ctx context.Context, branchSlotID string) (*models.BranchSlot, error) {
	slot, err := s.Slots.GetByID(ctx, branchSlotID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fault.NotFound("branch slot", branchSlotID)
	}
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to fetch branch slot: %w", err))
	}
	return slot, nil
}

func roomAssigned(rooms []models.RoomAssignment, roomID string) bool {
	for _, room := range rooms {
		if room.RoomID == roomID {
			return true
		}
	}
	return false
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
