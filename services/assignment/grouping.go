// File: services/assignment/grouping.go
package assignment

import (
	"context"
	"fmt"

	"sproutly/models"
	"sproutly/services/fault"
)

// ListAssignments returns the slot's assignments pre-joined: every room
// paired with the staff working in it, plus the bucket of staff with no room.
// The same result drives both display and picker candidate filtering, so
// there is exactly one place deriving the join.
func (s *DefaultService) ListAssignments(ctx context.Context, branchSlotID string) (*models.SlotAssignments, error) {
	if _, err := s.requireSlot(ctx, branchSlotID); err != nil {
		return nil, err
	}

	rooms, err := s.Repo.ListRooms(ctx, branchSlotID)
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to list room assignments: %w", err))
	}
	staff, err := s.Repo.ListStaff(ctx, branchSlotID)
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to list staff assignments: %w", err))
	}
	if rooms == nil {
		rooms = []models.RoomAssignment{}
	}
	if staff == nil {
		staff = []models.StaffAssignment{}
	}

	return &models.SlotAssignments{
		BranchSlotID: branchSlotID,
		Rooms:        rooms,
		Staff:        staff,
		Grouped:      GroupByRoom(rooms, staff),
		Unassigned:   unassignedStaff(staff),
	}, nil
}

// GroupByRoom pairs each room assignment with its staff, in room assignment
// order.
func GroupByRoom(rooms []models.RoomAssignment, staff []models.StaffAssignment) []models.RoomGroup {
	groups := make([]models.RoomGroup, 0, len(rooms))
	for _, room := range rooms {
		group := models.RoomGroup{Room: room, Staff: []models.StaffAssignment{}}
		for _, sa := range staff {
			if sa.RoomID != nil && *sa.RoomID == room.RoomID {
				group.Staff = append(group.Staff, sa)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func unassignedStaff(staff []models.StaffAssignment) []models.StaffAssignment {
	out := []models.StaffAssignment{}
	for _, sa := range staff {
		if sa.RoomID == nil {
			out = append(out, sa)
		}
	}
	return out
}

// StaffCandidates returns the slot branch's staff that are selectable for the
// staff picker: anyone not already holding an assignment in the slot.
func (s *DefaultService) StaffCandidates(ctx context.Context, branchSlotID string) ([]models.Staff, error) {
	slot, err := s.requireSlot(ctx, branchSlotID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.Repo.ListStaff(ctx, branchSlotID)
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to list staff assignments: %w", err))
	}
	candidates, err := s.Catalog.ListStaffByBranch(ctx, slot.BranchID)
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to list branch staff: %w", err))
	}

	return SelectableStaff(candidates, &models.SlotAssignments{Staff: assigned}), nil
}

// SelectableStaff filters picker candidates: staff already holding any
// assignment in the slot are excluded.
func SelectableStaff(candidates []models.Staff, current *models.SlotAssignments) []models.Staff {
	assigned := make(map[string]bool, len(current.Staff))
	for _, sa := range current.Staff {
		assigned[sa.StaffID] = true
	}
	out := []models.Staff{}
	for _, c := range candidates {
		if !assigned[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// SelectableRooms returns the slot's rooms that have no staff yet. This is a
// picker nudge toward one-room-one-staff, not a stored invariant: a room may
// legitimately hold several staff.
func SelectableRooms(current *models.SlotAssignments) []models.RoomAssignment {
	out := []models.RoomAssignment{}
	for _, group := range GroupByRoom(current.Rooms, current.Staff) {
		if len(group.Staff) == 0 {
			out = append(out, group.Room)
		}
	}
	return out
}
