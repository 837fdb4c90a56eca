package models

// Reference data owned by other services. This service reads these
// collections and never writes them.

// Room is a physical room at a branch.
type Room struct {
	ID       string `bson:"id" json:"id"`
	BranchID string `bson:"branchId" json:"branchId"`
	Name     string `bson:"name" json:"name"`
	Facility string `bson:"facility,omitempty" json:"facility,omitempty"`
	Capacity int    `bson:"capacity" json:"capacity"`
}

// Staff is a staff member employed at a branch.
type Staff struct {
	ID       string `bson:"id" json:"id"`
	BranchID string `bson:"branchId" json:"branchId"`
	FullName string `bson:"fullName" json:"fullName"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Timeframe is a named start/end time-of-day window.
type Timeframe struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// SlotType is a category of childcare session.
type SlotType struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// StudentLevel is an age/skill tier a slot may be restricted to.
type StudentLevel struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Student is a child enrolled at a branch.
type Student struct {
	ID             string  `bson:"id" json:"id"`
	FullName       string  `bson:"fullName" json:"fullName"`
	BranchID       string  `bson:"branchId" json:"branchId"`
	StudentLevelID *string `bson:"studentLevelId,omitempty" json:"studentLevelId,omitempty"`
}
