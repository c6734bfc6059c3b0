package staff

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
)

type fakeStaffRepo struct {
	staff map[int]staff.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[int]staff.Staff)}
}

func (r *fakeStaffRepo) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, m := range r.staff {
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id int) (staff.Staff, error) {
	m, ok := r.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (r *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if existing, ok := r.staff[s.ID]; ok && existing.IsActive {
		return staff.Staff{}, staff.ErrStaffIDTaken
	}
	s.IsActive = true
	r.staff[s.ID] = s
	return s, nil
}

func (r *fakeStaffRepo) UpdateName(ctx context.Context, id int, name string) error {
	m, ok := r.staff[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	m.Name = name
	r.staff[id] = m
	return nil
}

func (r *fakeStaffRepo) UpdateStores(ctx context.Context, id int, stores []string) error {
	m, ok := r.staff[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	m.Stores = stores
	r.staff[id] = m
	return nil
}

func (r *fakeStaffRepo) Deactivate(ctx context.Context, id int) error {
	m, ok := r.staff[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	m.IsActive = false
	r.staff[id] = m
	return nil
}

func (r *fakeStaffRepo) ReassignID(ctx context.Context, fromID, toID int) error {
	m, ok := r.staff[fromID]
	if !ok {
		return staff.ErrStaffNotFound
	}
	if target, taken := r.staff[toID]; taken && target.IsActive {
		return staff.ErrStaffIDTaken
	}
	delete(r.staff, fromID)
	m.ID = toID
	r.staff[toID] = m
	return nil
}

func TestStaffService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStaffRepo()
	service := NewStaffService(repo)

	created, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 7, Name: "Aoi"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)

	_, err = service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 7, Name: "Other"})
	assert.ErrorIs(t, err, staff.ErrStaffIDTaken)

	list, err := service.ListStaff(ctx, false, "")
	require.NoError(t, err)
	require.Len(t, list.Staff, 1)
	assert.Equal(t, "Aoi", list.Staff[0].Name)
}

func TestStaffService_CreateStaff_Invalid(t *testing.T) {
	ctx := context.Background()
	service := NewStaffService(newFakeStaffRepo())

	_, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 0, Name: ""})
	assert.Error(t, err)
}

func TestStaffService_DeactivateHidesFromActiveList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStaffRepo()
	service := NewStaffService(repo)

	_, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 1, Name: "Aoi"})
	require.NoError(t, err)
	_, err = service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 2, Name: "Rin"})
	require.NoError(t, err)

	require.NoError(t, service.DeactivateStaff(ctx, 1))

	active, err := service.ListStaff(ctx, false, "")
	require.NoError(t, err)
	require.Len(t, active.Staff, 1)
	assert.Equal(t, 2, active.Staff[0].ID)

	all, err := service.ListStaff(ctx, true, "")
	require.NoError(t, err)
	assert.Len(t, all.Staff, 2)
}

func TestStaffService_ListStaff_FiltersByStoreEligibility(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStaffRepo()
	service := NewStaffService(repo)

	_, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 1, Name: "Aoi", Stores: []string{store.Store201}})
	require.NoError(t, err)
	_, err = service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 2, Name: "Rin"})
	require.NoError(t, err)

	at201, err := service.ListStaff(ctx, false, store.Store201)
	require.NoError(t, err)
	assert.Len(t, at201.Staff, 2, "empty eligibility list means everywhere")

	atTeppen, err := service.ListStaff(ctx, false, store.Teppen)
	require.NoError(t, err)
	require.Len(t, atTeppen.Staff, 1)
	assert.Equal(t, "Rin", atTeppen.Staff[0].Name)
}

func TestStaffService_RenameStaff_ReplacesStores(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStaffRepo()
	service := NewStaffService(repo)

	_, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 5, Name: "Aoi", Stores: []string{store.Teppen}})
	require.NoError(t, err)

	stores := []string{store.Store201, store.Store202}
	updated, err := service.RenameStaff(ctx, staff.UpdateStaffRequest{ID: 5, Name: "Aoi", Stores: &stores})
	require.NoError(t, err)
	assert.Equal(t, stores, updated.Stores)

	// Nil leaves the list alone.
	updated, err = service.RenameStaff(ctx, staff.UpdateStaffRequest{ID: 5, Name: "Aoi R."})
	require.NoError(t, err)
	assert.Equal(t, stores, updated.Stores)
}

func TestStaffService_ReassignStaffID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStaffRepo()
	service := NewStaffService(repo)

	_, err := service.CreateStaff(ctx, staff.CreateStaffRequest{ID: 3, Name: "Aoi"})
	require.NoError(t, err)

	moved, err := service.ReassignStaffID(ctx, staff.ReassignIDRequest{FromID: 3, ToID: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, moved.ID)
	assert.Equal(t, "Aoi", moved.Name)

	_, err = service.ReassignStaffID(ctx, staff.ReassignIDRequest{FromID: 12, ToID: 12})
	assert.Error(t, err, "reassigning onto itself is rejected")
}
