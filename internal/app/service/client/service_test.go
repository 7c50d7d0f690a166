package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.MembershipPlan{}))
	return conn
}

type fakeStore struct {
	clients  map[string]*models.Client
	statuses map[string]types.ClientStatus
	plans    map[string][2]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:  map[string]*models.Client{},
		statuses: map[string]types.ClientStatus{},
		plans:    map[string][2]string{},
	}
}

func (f *fakeStore) Get(_ context.Context, id string) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return c, nil
}

func (f *fakeStore) List(_ context.Context) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) ListActive(_ context.Context) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		if c.Status == types.ClientStatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id string, status types.ClientStatus) error {
	f.statuses[id] = status
	return nil
}

func (f *fakeStore) UpdatePlan(_ context.Context, id, planID, planName string) error {
	f.plans[id] = [2]string{planID, planName}
	return nil
}

func (f *fakeStore) AdvanceBilling(_ context.Context, _ string, _ *models.BillingAdvance) error {
	return nil
}

func TestUpdateStatus_Validation(t *testing.T) {
	store := newFakeStore()
	svc := NewService(zap.NewNop().Sugar(), store, nil)

	err := svc.UpdateStatus(context.Background(), "c1", "frozen", "admin-1")
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Empty(t, store.statuses)

	require.NoError(t, svc.UpdateStatus(context.Background(), "c1", types.ClientStatusSuspended, "admin-1"))
	require.Equal(t, types.ClientStatusSuspended, store.statuses["c1"])
}

func TestListActive_FiltersByStatus(t *testing.T) {
	store := newFakeStore()
	store.clients["c1"] = &models.Client{ID: "c1", Status: types.ClientStatusActive}
	store.clients["c2"] = &models.Client{ID: "c2", Status: types.ClientStatusInactive}
	svc := NewService(zap.NewNop().Sugar(), store, nil)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "c1", active[0].ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(zap.NewNop().Sugar(), newFakeStore(), nil)
	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestChangePlan(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.MembershipPlan{
		ID: "plan-ft", Name: "Full Time", Price: 15000, Currency: "ARS",
		BillingPeriod: "monthly", Active: true,
	}).Error)

	store := newFakeStore()
	svc := NewService(zap.NewNop().Sugar(), store, db)

	plan, err := svc.ChangePlan(context.Background(), "c1", "plan-ft", "admin-1")
	require.NoError(t, err)
	require.Equal(t, "Full Time", plan.Name)
	require.Equal(t, [2]string{"plan-ft", "Full Time"}, store.plans["c1"])
}

func TestChangePlan_UnknownOrInactivePlan(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.MembershipPlan{
		ID: "plan-old", Name: "Legacy", Price: 9000, Currency: "ARS",
		BillingPeriod: "monthly", Active: false,
	}).Error)

	store := newFakeStore()
	svc := NewService(zap.NewNop().Sugar(), store, db)

	_, err := svc.ChangePlan(context.Background(), "c1", "missing", "admin-1")
	require.ErrorIs(t, err, ErrPlanNotFound)

	_, err = svc.ChangePlan(context.Background(), "c1", "plan-old", "admin-1")
	require.ErrorIs(t, err, ErrPlanNotFound)
	require.Empty(t, store.plans)
}
