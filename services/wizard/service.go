// File: services/wizard/service.go
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sproutly/metrics"
	"sproutly/models"
	"sproutly/services/assignment"
	"sproutly/services/fault"
	slotSvc "sproutly/services/slot"
	"sproutly/utils"
)

// Orchestrator drives the three-stage slot creation/edit flow. Every stage is
// committed to the registry and assignment service the moment it is
// submitted, so abandoning the flow after stage 1 leaves a valid, partially
// configured slot behind; nothing is batched or rolled back across stages.
type Orchestrator interface {
	StartFlow(ctx context.Context, branchID string) (*models.FlowState, error)
	StartEditFlow(ctx context.Context, branchSlotID string) (*models.FlowState, error)
	GetFlow(ctx context.Context, flowID string) (*models.FlowState, error)
	SubmitBasicInfo(ctx context.Context, flowID string, in models.BasicInfoInput) (*models.FlowState, error)
	SubmitRooms(ctx context.Context, flowID string, roomIDs []string) (*models.FlowState, error)
	SubmitStaff(ctx context.Context, flowID string, in models.StaffStageInput) (*models.FlowState, error)
	Abandon(ctx context.Context, flowID string) error
}

// DefaultOrchestrator is the production Orchestrator.
type DefaultOrchestrator struct {
	Store       SessionStore
	Registry    slotSvc.Registry
	Assignments assignment.Service
}

// StartFlow opens a new creation flow for a branch.
func (o *DefaultOrchestrator) StartFlow(ctx context.Context, branchID string) (*models.FlowState, error) {
	if branchID == "" {
		return nil, fault.Validation("branchId", "branchId is required")
	}
	session := &models.WizardSession{
		FlowID:    uuid.New().String(),
		BranchID:  branchID,
		CreatedAt: time.Now().UTC(),
	}
	if err := o.Store.Put(ctx, session); err != nil {
		return nil, fault.Transport(err)
	}
	utils.GetLogger().Info("wizard flow started",
		zap.String("flowId", session.FlowID),
		zap.String("branchId", branchID))
	return &models.FlowState{Session: *session}, nil
}

// StartEditFlow opens a flow over an existing slot, re-hydrating all three
// stages from the registry and the assignment service.
func (o *DefaultOrchestrator) StartEditFlow(ctx context.Context, branchSlotID string) (*models.FlowState, error) {
	slot, err := o.Registry.GetByID(ctx, branchSlotID)
	if err != nil {
		return nil, err
	}
	session := &models.WizardSession{
		FlowID:         uuid.New().String(),
		BranchID:       slot.BranchID,
		BranchSlotID:   slot.ID,
		Editing:        true,
		CompletedStage: models.WizardStageBasicInfo,
		CreatedAt:      time.Now().UTC(),
	}
	if err := o.Store.Put(ctx, session); err != nil {
		return nil, fault.Transport(err)
	}
	return o.hydrate(ctx, session)
}

// GetFlow returns the session plus whatever committed stages have persisted,
// for resuming an interrupted flow.
func (o *DefaultOrchestrator) GetFlow(ctx context.Context, flowID string) (*models.FlowState, error) {
	session, err := o.getSession(ctx, flowID)
	if err != nil {
		return nil, err
	}
	return o.hydrate(ctx, session)
}

// SubmitBasicInfo commits stage 1: the first submission creates the slot, a
// resubmission (resumed or edit flow) updates it in place.
func (o *DefaultOrchestrator) SubmitBasicInfo(ctx context.Context, flowID string, in models.BasicInfoInput) (*models.FlowState, error) {
	session, err := o.getSession(ctx, flowID)
	if err != nil {
		return nil, err
	}

	input := slotSvc.Input{
		BranchID:       session.BranchID,
		TimeframeID:    in.TimeframeID,
		SlotTypeID:     in.SlotTypeID,
		WeekDate:       in.WeekDate,
		Date:           in.Date,
		Status:         in.Status,
		StudentLevelID: in.StudentLevelID,
	}

	var slot *models.BranchSlot
	if session.BranchSlotID == "" {
		slot, err = o.Registry.Create(ctx, input)
	} else {
		slot, err = o.Registry.Update(ctx, session.BranchSlotID, input)
	}
	if err != nil {
		return nil, err
	}

	session.BranchSlotID = slot.ID
	if session.CompletedStage < models.WizardStageBasicInfo {
		session.CompletedStage = models.WizardStageBasicInfo
	}
	if err := o.Store.Put(ctx, session); err != nil {
		return nil, fault.Transport(err)
	}
	metrics.IncWizardStage("basic_info")
	return o.hydrate(ctx, session)
}

// SubmitRooms commits stage 2. An empty set is a valid submission that simply
// defers room assignment.
func (o *DefaultOrchestrator) SubmitRooms(ctx context.Context, flowID string, roomIDs []string) (*models.FlowState, error) {
	session, err := o.getSession(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if session.BranchSlotID == "" {
		return nil, fault.Validation("flowId", "basic info stage has not been committed yet")
	}

	if len(roomIDs) > 0 {
		if err := o.Assignments.AssignRooms(ctx, session.BranchSlotID, roomIDs); err != nil {
			return nil, err
		}
	}

	if session.CompletedStage < models.WizardStageRooms {
		session.CompletedStage = models.WizardStageRooms
	}
	if err := o.Store.Put(ctx, session); err != nil {
		return nil, fault.Transport(err)
	}
	metrics.IncWizardStage("rooms")
	return o.hydrate(ctx, session)
}

// SubmitStaff commits stage 3. A submission without a staff id defers staff
// assignment.
func (o *DefaultOrchestrator) SubmitStaff(ctx context.Context, flowID string, in models.StaffStageInput) (*models.FlowState, error) {
	session, err := o.getSession(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if session.BranchSlotID == "" {
		return nil, fault.Validation("flowId", "basic info stage has not been committed yet")
	}

	if in.StaffID != "" {
		if err := o.Assignments.AssignStaff(ctx, session.BranchSlotID, in.StaffID, in.RoomID, in.RoleLabel); err != nil {
			return nil, err
		}
	}

	if session.CompletedStage < models.WizardStageStaff {
		session.CompletedStage = models.WizardStageStaff
	}
	if err := o.Store.Put(ctx, session); err != nil {
		return nil, fault.Transport(err)
	}
	metrics.IncWizardStage("staff")
	return o.hydrate(ctx, session)
}

// Abandon drops the session. Stages committed before abandoning stay
// persisted.
func (o *DefaultOrchestrator) Abandon(ctx context.Context, flowID string) error {
	if err := o.Store.Delete(ctx, flowID); err != nil {
		return fault.Transport(err)
	}
	return nil
}

func (o *DefaultOrchestrator) getSession(ctx context.Context, flowID string) (*models.WizardSession, error) {
	session, err := o.Store.Get(ctx, flowID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, fault.NotFound("wizard flow", flowID)
	}
	if err != nil {
		return nil, fault.Transport(fmt.Errorf("failed to load wizard session: %w", err))
	}
	return session, nil
}

func (o *DefaultOrchestrator) hydrate(ctx context.Context, session *models.WizardSession) (*models.FlowState, error) {
	state := &models.FlowState{Session: *session}
	if session.BranchSlotID == "" {
		return state, nil
	}

	slot, err := o.Registry.GetByID(ctx, session.BranchSlotID)
	if err != nil {
		return nil, err
	}
	assignments, err := o.Assignments.ListAssignments(ctx, session.BranchSlotID)
	if err != nil {
		return nil, err
	}
	state.Slot = slot
	state.Assignments = assignments
	return state, nil
}
