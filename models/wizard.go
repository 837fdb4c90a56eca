package models

import "time"

// Wizard stage markers. Stages commit independently: a flow abandoned after
// the basic-info stage leaves a valid, partially configured slot behind.
const (
	WizardStageBasicInfo = 1
	WizardStageRooms     = 2
	WizardStageStaff     = 3
)

// WizardSession holds the durable state of one slot-creation or slot-edit
// flow between stage submissions. It is serialized to JSON and kept in redis
// with a TTL, so a manager can close the browser and resume later.
type WizardSession struct {
	FlowID         string    `json:"flowId"`
	BranchID       string    `json:"branchId"`
	BranchSlotID   string    `json:"branchSlotId,omitempty"`
	Editing        bool      `json:"editing"`
	CompletedStage int       `json:"completedStage"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BasicInfoInput is the stage-1 payload. Date, when present, is authoritative
// and the weekday is derived from it; WeekDate is only read for recurring
// slots with no date.
type BasicInfoInput struct {
	TimeframeID    string  `json:"timeframeId"`
	SlotTypeID     string  `json:"slotTypeId"`
	WeekDate       *int    `json:"weekDate,omitempty"`
	Date           *string `json:"date,omitempty"`
	Status         string  `json:"status,omitempty"`
	StudentLevelID *string `json:"studentLevelId,omitempty"`
}

// StaffStageInput is the stage-3 payload. All fields optional; an empty
// submission defers staff assignment.
type StaffStageInput struct {
	StaffID   string  `json:"staffId,omitempty"`
	RoomID    *string `json:"roomId,omitempty"`
	RoleLabel string  `json:"roleLabel,omitempty"`
}

// FlowState is the hydrated view returned when a flow is resumed: the session
// plus whatever the committed stages have already persisted.
type FlowState struct {
	Session     WizardSession    `json:"session"`
	Slot        *BranchSlot      `json:"slot,omitempty"`
	Assignments *SlotAssignments `json:"assignments,omitempty"`
}
