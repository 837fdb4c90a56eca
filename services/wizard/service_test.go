// File: services/wizard/service_test.go
package wizard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/models"
	"sproutly/services/fault"
	slotSvc "sproutly/services/slot"
)

type memStore struct {
	sessions map[string]models.WizardSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.WizardSession)}
}

func (m *memStore) Get(ctx context.Context, flowID string) (*models.WizardSession, error) {
	session, ok := m.sessions[flowID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *memStore) Put(ctx context.Context, session *models.WizardSession) error {
	m.sessions[session.FlowID] = *session
	return nil
}

func (m *memStore) Delete(ctx context.Context, flowID string) error {
	delete(m.sessions, flowID)
	return nil
}

type fakeRegistry struct {
	slots   map[string]models.BranchSlot
	creates int
	updates int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{slots: make(map[string]models.BranchSlot)}
}

func (r *fakeRegistry) Create(ctx context.Context, in slotSvc.Input) (*models.BranchSlot, error) {
	r.creates++
	slot := models.BranchSlot{
		ID:          fmt.Sprintf("slot-%d", r.creates),
		BranchID:    in.BranchID,
		TimeframeID: in.TimeframeID,
		SlotTypeID:  in.SlotTypeID,
		Status:      models.SlotAvailable,
	}
	if in.WeekDate != nil {
		slot.WeekDate = *in.WeekDate
	}
	slot.Date = in.Date
	r.slots[slot.ID] = slot
	return &slot, nil
}

func (r *fakeRegistry) Update(ctx context.Context, id string, in slotSvc.Input) (*models.BranchSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, fault.NotFound("branch slot", id)
	}
	r.updates++
	slot.TimeframeID = in.TimeframeID
	slot.SlotTypeID = in.SlotTypeID
	r.slots[id] = slot
	return &slot, nil
}

func (r *fakeRegistry) GetByID(ctx context.Context, id string) (*models.BranchSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, fault.NotFound("branch slot", id)
	}
	return &slot, nil
}

func (r *fakeRegistry) Delete(ctx context.Context, id string) error {
	delete(r.slots, id)
	return nil
}

func (r *fakeRegistry) ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) (models.Page[models.BranchSlot], error) {
	return models.EmptyPage[models.BranchSlot](pageIndex, pageSize), nil
}

type fakeAssignments struct {
	rooms map[string][]string
	staff map[string][]string
}

func newFakeAssignments() *fakeAssignments {
	return &fakeAssignments{rooms: make(map[string][]string), staff: make(map[string][]string)}
}

func (a *fakeAssignments) AssignRooms(ctx context.Context, branchSlotID string, roomIDs []string) error {
	for _, roomID := range roomIDs {
		if !contains(a.rooms[branchSlotID], roomID) {
			a.rooms[branchSlotID] = append(a.rooms[branchSlotID], roomID)
		}
	}
	return nil
}

func (a *fakeAssignments) UnassignRoom(ctx context.Context, branchSlotID, roomID string) error {
	return nil
}

func (a *fakeAssignments) AssignStaff(ctx context.Context, branchSlotID, staffID string, roomID *string, roleLabel string) error {
	if contains(a.staff[branchSlotID], staffID) {
		return fault.Conflict("staff member " + staffID + " is already assigned")
	}
	a.staff[branchSlotID] = append(a.staff[branchSlotID], staffID)
	return nil
}

func (a *fakeAssignments) UnassignStaff(ctx context.Context, branchSlotID, staffID string) error {
	return nil
}

func (a *fakeAssignments) ListAssignments(ctx context.Context, branchSlotID string) (*models.SlotAssignments, error) {
	out := &models.SlotAssignments{
		BranchSlotID: branchSlotID,
		Rooms:        []models.RoomAssignment{},
		Staff:        []models.StaffAssignment{},
	}
	for _, roomID := range a.rooms[branchSlotID] {
		out.Rooms = append(out.Rooms, models.RoomAssignment{BranchSlotID: branchSlotID, RoomID: roomID})
	}
	for _, staffID := range a.staff[branchSlotID] {
		out.Staff = append(out.Staff, models.StaffAssignment{BranchSlotID: branchSlotID, StaffID: staffID})
	}
	return out, nil
}

func (a *fakeAssignments) StaffCandidates(ctx context.Context, branchSlotID string) ([]models.Staff, error) {
	return []models.Staff{}, nil
}

func (a *fakeAssignments) ListRoomsPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.RoomAssignment], error) {
	return models.EmptyPage[models.RoomAssignment](pageIndex, pageSize), nil
}

func (a *fakeAssignments) ListStaffPaged(ctx context.Context, branchSlotID string, pageIndex, pageSize int) (models.Page[models.StaffAssignment], error) {
	return models.EmptyPage[models.StaffAssignment](pageIndex, pageSize), nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func intPtr(i int) *int { return &i }

func newTestOrchestrator() (*DefaultOrchestrator, *fakeRegistry, *fakeAssignments) {
	registry := newFakeRegistry()
	assignments := newFakeAssignments()
	orchestrator := &DefaultOrchestrator{
		Store:       newMemStore(),
		Registry:    registry,
		Assignments: assignments,
	}
	return orchestrator, registry, assignments
}

func basicInfo() models.BasicInfoInput {
	return models.BasicInfoInput{
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    intPtr(2),
	}
}

func TestStartFlowRequiresBranch(t *testing.T) {
	orchestrator, _, _ := newTestOrchestrator()

	_, err := orchestrator.StartFlow(context.Background(), "")
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindValidation))
}

func TestFullCreationFlow(t *testing.T) {
	orchestrator, registry, assignments := newTestOrchestrator()
	ctx := context.Background()

	state, err := orchestrator.StartFlow(ctx, "branch-1")
	require.NoError(t, err)
	flowID := state.Session.FlowID
	require.NotEmpty(t, flowID)
	assert.Zero(t, state.Session.CompletedStage)
	assert.Nil(t, state.Slot)

	state, err = orchestrator.SubmitBasicInfo(ctx, flowID, basicInfo())
	require.NoError(t, err)
	assert.Equal(t, models.WizardStageBasicInfo, state.Session.CompletedStage)
	require.NotNil(t, state.Slot)
	assert.Equal(t, "branch-1", state.Slot.BranchID)
	assert.Equal(t, 1, registry.creates)

	state, err = orchestrator.SubmitRooms(ctx, flowID, []string{"room-1", "room-2"})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStageRooms, state.Session.CompletedStage)
	require.NotNil(t, state.Assignments)
	assert.Len(t, state.Assignments.Rooms, 2)

	state, err = orchestrator.SubmitStaff(ctx, flowID, models.StaffStageInput{StaffID: "staff-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStageStaff, state.Session.CompletedStage)
	assert.Len(t, state.Assignments.Staff, 1)

	assert.Len(t, assignments.rooms[state.Session.BranchSlotID], 2)
}

func TestSubmitRoomsBeforeBasicInfo(t *testing.T) {
	orchestrator, _, _ := newTestOrchestrator()
	ctx := context.Background()

	state, err := orchestrator.StartFlow(ctx, "branch-1")
	require.NoError(t, err)

	_, err = orchestrator.SubmitRooms(ctx, state.Session.FlowID, []string{"room-1"})
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindValidation))
}

func TestSubmitStaffEmptyDefers(t *testing.T) {
	orchestrator, _, assignments := newTestOrchestrator()
	ctx := context.Background()

	state, err := orchestrator.StartFlow(ctx, "branch-1")
	require.NoError(t, err)
	flowID := state.Session.FlowID

	_, err = orchestrator.SubmitBasicInfo(ctx, flowID, basicInfo())
	require.NoError(t, err)

	state, err = orchestrator.SubmitStaff(ctx, flowID, models.StaffStageInput{})
	require.NoError(t, err)
	assert.Equal(t, models.WizardStageStaff, state.Session.CompletedStage)
	assert.Empty(t, assignments.staff[state.Session.BranchSlotID])
}

func TestGetFlowUnknown(t *testing.T) {
	orchestrator, _, _ := newTestOrchestrator()

	_, err := orchestrator.GetFlow(context.Background(), "flow-nope")
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

func TestResumeFlowHydratesCommittedStages(t *testing.T) {
	orchestrator, _, _ := newTestOrchestrator()
	ctx := context.Background()

	state, err := orchestrator.StartFlow(ctx, "branch-1")
	require.NoError(t, err)
	flowID := state.Session.FlowID

	_, err = orchestrator.SubmitBasicInfo(ctx, flowID, basicInfo())
	require.NoError(t, err)
	_, err = orchestrator.SubmitRooms(ctx, flowID, []string{"room-1"})
	require.NoError(t, err)

	resumed, err := orchestrator.GetFlow(ctx, flowID)
	require.NoError(t, err)
	assert.Equal(t, models.WizardStageRooms, resumed.Session.CompletedStage)
	require.NotNil(t, resumed.Slot)
	require.NotNil(t, resumed.Assignments)
	assert.Len(t, resumed.Assignments.Rooms, 1)
}

func TestAbandonKeepsCommittedStages(t *testing.T) {
	orchestrator, registry, _ := newTestOrchestrator()
	ctx := context.Background()

	state, err := orchestrator.StartFlow(ctx, "branch-1")
	require.NoError(t, err)
	flowID := state.Session.FlowID

	state, err = orchestrator.SubmitBasicInfo(ctx, flowID, basicInfo())
	require.NoError(t, err)
	slotID := state.Session.BranchSlotID

	require.NoError(t, orchestrator.Abandon(ctx, flowID))

	_, err = orchestrator.GetFlow(ctx, flowID)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))

	_, ok := registry.slots[slotID]
	assert.True(t, ok, "the stage-1 slot outlives the abandoned flow")
}

func TestEditFlowUpdatesInPlace(t *testing.T) {
	orchestrator, registry, _ := newTestOrchestrator()
	ctx := context.Background()

	registry.slots["slot-9"] = models.BranchSlot{
		ID:          "slot-9",
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    4,
	}

	state, err := orchestrator.StartEditFlow(ctx, "slot-9")
	require.NoError(t, err)
	assert.True(t, state.Session.Editing)
	assert.Equal(t, models.WizardStageBasicInfo, state.Session.CompletedStage)
	require.NotNil(t, state.Slot)

	in := basicInfo()
	in.TimeframeID = "tf-2"
	state, err = orchestrator.SubmitBasicInfo(ctx, state.Session.FlowID, in)
	require.NoError(t, err)

	assert.Zero(t, registry.creates)
	assert.Equal(t, 1, registry.updates)
	assert.Equal(t, "tf-2", state.Slot.TimeframeID)
	assert.Equal(t, "slot-9", state.Session.BranchSlotID)
}
