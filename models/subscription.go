package models

import "time"

// SubscriptionStatus enumerates ledger states of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

// Subscription is a ledger record tying a student to a branch and the slot
// types their package covers. Read-only for this service.
type Subscription struct {
	ID          string             `bson:"id" json:"id"`
	StudentID   string             `bson:"studentId" json:"studentId"`
	BranchID    string             `bson:"branchId" json:"branchId"`
	SlotTypeIDs []string           `bson:"slotTypeIds" json:"slotTypeIds"`
	Status      SubscriptionStatus `bson:"status" json:"status"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`
}

// Usable reports whether the subscription can admit a booking at the given
// instant.
func (s Subscription) Usable(now time.Time) bool {
	return s.Status == SubscriptionActive && now.Before(s.ExpiresAt)
}
