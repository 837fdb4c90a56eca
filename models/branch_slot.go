package models

import "time"

// SlotStatus enumerates the lifecycle states of a branch slot. The four states
// are mutually exclusive; the registry itself forbids no transition between
// them (booking-level rules live upstream).
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "AVAILABLE"
	SlotOccupied    SlotStatus = "OCCUPIED"
	SlotCancelled   SlotStatus = "CANCELLED"
	SlotMaintenance SlotStatus = "MAINTENANCE"
)

// Valid reports whether s is a member of the status enum.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotAvailable, SlotOccupied, SlotCancelled, SlotMaintenance:
		return true
	}
	return false
}

// BranchSlot is a single bookable unit of childcare time at a branch.
//
// A slot either recurs weekly on WeekDate, or is pinned to one calendar date.
// When Date is set it is authoritative and WeekDate is always derived from it
// in the reference timezone; for recurring slots WeekDate is set directly.
type BranchSlot struct {
	ID             string     `bson:"id" json:"id"`
	BranchID       string     `bson:"branchId" json:"branchId"`
	TimeframeID    string     `bson:"timeframeId" json:"timeframeId"`
	SlotTypeID     string     `bson:"slotTypeId" json:"slotTypeId"`
	WeekDate       int        `bson:"weekDate" json:"weekDate"`
	Date           *string    `bson:"date,omitempty" json:"date,omitempty"`
	Status         SlotStatus `bson:"status" json:"status"`
	StudentLevelID *string    `bson:"studentLevelId,omitempty" json:"studentLevelId,omitempty"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// BranchSlotDetail is the full read view of a slot: the slot itself plus its
// current room and staff assignments.
type BranchSlotDetail struct {
	BranchSlot `bson:",inline"`
	Rooms      []RoomAssignment  `json:"rooms"`
	Staff      []StaffAssignment `json:"staff"`
}

// SlotFilter narrows paged slot listings. Zero values mean "no constraint";
// WeekDate uses a pointer because 0 (Sunday) is a valid filter value.
type SlotFilter struct {
	BranchID   string
	SlotTypeID string
	Status     SlotStatus
	WeekDate   *int
	Date       string
}
