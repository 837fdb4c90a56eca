// File: services/slot/service_test.go
package slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	assignmentRepo "sproutly/database/repository/assignment"
	catalogRepo "sproutly/database/repository/catalog"
	slotRepo "sproutly/database/repository/slot"
	"sproutly/models"
	"sproutly/services/fault"
)

type fakeSlotRepo struct {
	slots map[string]models.BranchSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]models.BranchSlot)}
}

func (r *fakeSlotRepo) Insert(ctx context.Context, slot *models.BranchSlot) error {
	r.slots[slot.ID] = *slot
	return nil
}

func (r *fakeSlotRepo) Replace(ctx context.Context, slot *models.BranchSlot) error {
	if _, ok := r.slots[slot.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.slots[slot.ID] = *slot
	return nil
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, id string) (*models.BranchSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &slot, nil
}

func (r *fakeSlotRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := r.slots[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.slots, id)
	return nil
}

func (r *fakeSlotRepo) ListPaged(ctx context.Context, filter models.SlotFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error) {
	items := make([]models.BranchSlot, 0, len(r.slots))
	for _, slot := range r.slots {
		items = append(items, slot)
	}
	return items, int64(len(items)), nil
}

func (r *fakeSlotRepo) ListAvailable(ctx context.Context, filter slotRepo.AvailabilityFilter, pageIndex, pageSize int) ([]models.BranchSlot, int64, error) {
	return nil, 0, nil
}

type fakeCatalog struct {
	catalogRepo.CatalogRepository

	timeframes map[string]models.Timeframe
	slotTypes  map[string]models.SlotType
	levels     map[string]models.StudentLevel
}

func (c *fakeCatalog) GetTimeframe(ctx context.Context, id string) (*models.Timeframe, error) {
	if tf, ok := c.timeframes[id]; ok {
		return &tf, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (c *fakeCatalog) GetSlotType(ctx context.Context, id string) (*models.SlotType, error) {
	if st, ok := c.slotTypes[id]; ok {
		return &st, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (c *fakeCatalog) GetStudentLevel(ctx context.Context, id string) (*models.StudentLevel, error) {
	if lvl, ok := c.levels[id]; ok {
		return &lvl, nil
	}
	return nil, mongo.ErrNoDocuments
}

type fakeAssignments struct {
	assignmentRepo.AssignmentRepository

	cleared []string
}

func (a *fakeAssignments) RemoveAllForSlot(ctx context.Context, branchSlotID string) error {
	a.cleared = append(a.cleared, branchSlotID)
	return nil
}

func newTestRegistry() (*DefaultRegistry, *fakeSlotRepo, *fakeAssignments) {
	repo := newFakeSlotRepo()
	assignments := &fakeAssignments{}
	registry := &DefaultRegistry{
		Repo: repo,
		Catalog: &fakeCatalog{
			timeframes: map[string]models.Timeframe{"tf-1": {ID: "tf-1", Name: "Morning"}},
			slotTypes:  map[string]models.SlotType{"st-1": {ID: "st-1", Name: "Playgroup"}},
			levels:     map[string]models.StudentLevel{"lvl-1": {ID: "lvl-1", Name: "Toddler"}},
		},
		Assignments: assignments,
	}
	return registry, repo, assignments
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateDatedSlotDerivesWeekday(t *testing.T) {
	registry, _, _ := newTestRegistry()

	// 2025-03-10 is a Monday.
	slot, err := registry.Create(context.Background(), Input{
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		Date:        strPtr("2025-03-10"),
		WeekDate:    intPtr(5), // ignored: date is authoritative
	})
	require.NoError(t, err)

	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, 1, slot.WeekDate)
	require.NotNil(t, slot.Date)
	assert.Equal(t, "2025-03-10", *slot.Date)
	assert.Equal(t, models.SlotAvailable, slot.Status)
}

func TestCreateDatedSlotNormalizesWireTimestamp(t *testing.T) {
	registry, _, _ := newTestRegistry()

	// 17:00Z is already the next day in the reference timezone.
	slot, err := registry.Create(context.Background(), Input{
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		Date:        strPtr("2025-03-09T17:00:00Z"),
	})
	require.NoError(t, err)

	require.NotNil(t, slot.Date)
	assert.Equal(t, "2025-03-10", *slot.Date)
	assert.Equal(t, 1, slot.WeekDate)
}

func TestCreateRecurringSlotOnSunday(t *testing.T) {
	registry, _, _ := newTestRegistry()

	slot, err := registry.Create(context.Background(), Input{
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    intPtr(0),
		Status:      "MAINTENANCE",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, slot.WeekDate)
	assert.Nil(t, slot.Date)
	assert.Equal(t, models.SlotMaintenance, slot.Status)
}

func TestCreateSlotValidation(t *testing.T) {
	registry, _, _ := newTestRegistry()

	tests := []struct {
		name    string
		input   Input
		wantMsg string
	}{
		{
			name:    "missing branchId",
			input:   Input{TimeframeID: "tf-1", SlotTypeID: "st-1", WeekDate: intPtr(1)},
			wantMsg: "branchId",
		},
		{
			name:    "missing timeframeId",
			input:   Input{BranchID: "branch-1", SlotTypeID: "st-1", WeekDate: intPtr(1)},
			wantMsg: "timeframeId",
		},
		{
			name:    "missing slotTypeId",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", WeekDate: intPtr(1)},
			wantMsg: "slotTypeId",
		},
		{
			name:    "unknown timeframe",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-nope", SlotTypeID: "st-1", WeekDate: intPtr(1)},
			wantMsg: "unknown timeframe",
		},
		{
			name:    "unknown slot type",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-nope", WeekDate: intPtr(1)},
			wantMsg: "unknown slot type",
		},
		{
			name: "unknown student level",
			input: Input{
				BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-1",
				WeekDate: intPtr(1), StudentLevelID: strPtr("lvl-nope"),
			},
			wantMsg: "unknown student level",
		},
		{
			name:    "neither date nor weekDate",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-1"},
			wantMsg: "weekDate is required",
		},
		{
			name:    "weekDate out of range",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-1", WeekDate: intPtr(7)},
			wantMsg: "out of range",
		},
		{
			name:    "malformed date",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-1", Date: strPtr("10/03/2025")},
			wantMsg: "date",
		},
		{
			name:    "unknown status",
			input:   Input{BranchID: "branch-1", TimeframeID: "tf-1", SlotTypeID: "st-1", WeekDate: intPtr(1), Status: "FROZEN"},
			wantMsg: "unknown status",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := registry.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.True(t, fault.IsKind(err, fault.KindValidation), "expected validation error, got %v", err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestUpdateSlotKeepsCreatedAt(t *testing.T) {
	registry, _, _ := newTestRegistry()

	created, err := registry.Create(context.Background(), Input{
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    intPtr(2),
	})
	require.NoError(t, err)

	updated, err := registry.Update(context.Background(), created.ID, Input{
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		Date:        strPtr("2025-06-02"),
		Status:      "OCCUPIED",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.BranchID, updated.BranchID, "branchId falls back to the existing slot")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 1, updated.WeekDate)
	assert.Equal(t, models.SlotOccupied, updated.Status)
}

func TestUpdateSlotNotFound(t *testing.T) {
	registry, _, _ := newTestRegistry()

	_, err := registry.Update(context.Background(), "missing", Input{
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    intPtr(1),
	})
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

func TestDeleteSlotClearsAssignments(t *testing.T) {
	registry, repo, assignments := newTestRegistry()

	created, err := registry.Create(context.Background(), Input{
		BranchID:    "branch-1",
		TimeframeID: "tf-1",
		SlotTypeID:  "st-1",
		WeekDate:    intPtr(3),
	})
	require.NoError(t, err)

	require.NoError(t, registry.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.slots)
	assert.Equal(t, []string{created.ID}, assignments.cleared)

	err = registry.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, fault.IsKind(err, fault.KindNotFound))
}

func TestListPagedNormalizesPaging(t *testing.T) {
	registry, _, _ := newTestRegistry()

	page, err := registry.ListPaged(context.Background(), models.SlotFilter{}, -3, 1000)
	require.NoError(t, err)

	assert.Equal(t, 0, page.PageIndex)
	assert.Equal(t, 100, page.PageSize)
	assert.NotNil(t, page.Items)
}
