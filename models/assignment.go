package models

import "time"

// RoomAssignment binds a room to a branch slot. Room name, facility and
// capacity are denormalized from the room catalog at assignment time for
// display. A room appears at most once per slot (unique index).
type RoomAssignment struct {
	BranchSlotID string    `bson:"branchSlotId" json:"branchSlotId"`
	RoomID       string    `bson:"roomId" json:"roomId"`
	RoomName     string    `bson:"roomName" json:"roomName"`
	Facility     string    `bson:"facility,omitempty" json:"facility,omitempty"`
	Capacity     int       `bson:"capacity" json:"capacity"`
	AssignedAt   time.Time `bson:"assignedAt" json:"assignedAt"`
}

// StaffAssignment binds a staff member to a branch slot, optionally inside one
// of the slot's assigned rooms. A staff member appears at most once per slot
// (unique index); when RoomID is set it must reference a RoomAssignment of the
// same slot.
type StaffAssignment struct {
	BranchSlotID string    `bson:"branchSlotId" json:"branchSlotId"`
	StaffID      string    `bson:"staffId" json:"staffId"`
	StaffName    string    `bson:"staffName" json:"staffName"`
	RoomID       *string   `bson:"roomId,omitempty" json:"roomId,omitempty"`
	RoleLabel    string    `bson:"roleLabel,omitempty" json:"roleLabel,omitempty"`
	AssignedAt   time.Time `bson:"assignedAt" json:"assignedAt"`
}

// RoomGroup pairs one assigned room with the staff working in it.
type RoomGroup struct {
	Room  RoomAssignment    `json:"room"`
	Staff []StaffAssignment `json:"staff"`
}

// SlotAssignments is the authoritative joined view of a slot's resources,
// computed once by the assignment service and reused both for display and for
// picker candidate filtering.
type SlotAssignments struct {
	BranchSlotID string            `json:"branchSlotId"`
	Rooms        []RoomAssignment  `json:"rooms"`
	Staff        []StaffAssignment `json:"staff"`
	Grouped      []RoomGroup       `json:"grouped"`
	Unassigned   []StaffAssignment `json:"unassigned"`
}
