package printing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/espacionido/nido-backend/internal/models"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.PrintRecord{}, &models.PrintingSettings{}))
	return conn
}

func newTestService(t *testing.T) *Service {
	cfg := &cfgpkg.Config{Printing: cfgpkg.PrintingConfig{DefaultPricePerSheet: 1.0}}
	return NewService(cfg, zap.NewNop().Sugar(), newTestDB(t))
}

func TestCreateRecord_SheetBounds(t *testing.T) {
	svc := newTestService(t)

	for _, sheets := range []int{0, -1, MaxSheets + 1, 500} {
		_, err := svc.CreateRecord(context.Background(), "c1", "u1", sheets)
		require.ErrorIs(t, err, ErrInvalidSheets)
	}

	all, err := svc.ListByClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestCreateRecord_PricesFromSettings(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, 5, "admin-1")
	require.NoError(t, err)

	rec, err := svc.CreateRecord(ctx, "c1", "u1", 10)
	require.NoError(t, err)
	require.Equal(t, 5.0, rec.PricePerSheet)
	require.Equal(t, 50.0, rec.TotalPrice)
	require.Equal(t, types.PrintRecordStatusPending, rec.Status)
	require.Nil(t, rec.PaidAt)
}

func TestCreateRecord_DefaultPriceWithoutSettingsRow(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.CreateRecord(context.Background(), "c1", "u1", 7)
	require.NoError(t, err)
	require.Equal(t, 1.0, rec.PricePerSheet)
	require.Equal(t, 7.0, rec.TotalPrice)
}

func TestPayRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateRecord(ctx, "c1", "u1", 3)
	require.NoError(t, err)

	paid, err := svc.PayRecord(ctx, rec.ID, "admin-1")
	require.NoError(t, err)
	require.Equal(t, types.PrintRecordStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
}

func TestPayRecord_SecondPayConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.CreateRecord(ctx, "c1", "u1", 3)
	require.NoError(t, err)

	first, err := svc.PayRecord(ctx, rec.ID, "admin-1")
	require.NoError(t, err)

	_, err = svc.PayRecord(ctx, rec.ID, "admin-2")
	require.ErrorIs(t, err, ErrRecordAlreadyPaid)

	rows, err := svc.ListByClient(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PaidAt)
	require.True(t, rows[0].PaidAt.Equal(*first.PaidAt))
}

func TestPayRecord_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PayRecord(context.Background(), "missing", "admin-1")
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSettleBatch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.CreateRecord(ctx, "c1", "u1", 2)
	require.NoError(t, err)
	b, err := svc.CreateRecord(ctx, "c1", "u1", 4)
	require.NoError(t, err)
	outside, err := svc.CreateRecord(ctx, "c1", "u1", 6)
	require.NoError(t, err)

	alreadyPaid, err := svc.CreateRecord(ctx, "c1", "u1", 8)
	require.NoError(t, err)
	paidBefore, err := svc.PayRecord(ctx, alreadyPaid.ID, "admin-1")
	require.NoError(t, err)

	require.NoError(t, svc.SettleBatch(ctx, []string{a.ID, b.ID, alreadyPaid.ID}, "pr-1"))

	rows, err := svc.ListByClient(ctx, "c1")
	require.NoError(t, err)
	byID := map[string]*models.PrintRecord{}
	for _, r := range rows {
		byID[r.ID] = r
	}

	for _, id := range []string{a.ID, b.ID} {
		require.Equal(t, types.PrintRecordStatusPaid, byID[id].Status)
		require.NotNil(t, byID[id].PaidAt)
		require.NotNil(t, byID[id].PaymentRequestID)
		require.Equal(t, "pr-1", *byID[id].PaymentRequestID)
	}

	require.Equal(t, types.PrintRecordStatusPending, byID[outside.ID].Status)
	require.Nil(t, byID[outside.ID].PaymentRequestID)
	require.True(t, byID[alreadyPaid.ID].PaidAt.Equal(*paidBefore.PaidAt))
	require.Nil(t, byID[alreadyPaid.ID].PaymentRequestID)
}

func TestSettleBatch_EmptyIsNoop(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.SettleBatch(context.Background(), nil, "pr-1"))
}

func TestUpdateSettings_PriceBounds(t *testing.T) {
	svc := newTestService(t)

	for _, price := range []float64{0, -0.5, MaxPrice + 0.01} {
		_, err := svc.UpdateSettings(context.Background(), price, "admin-1")
		require.ErrorIs(t, err, ErrInvalidPrice)
	}
}

func TestUpdateSettings_LastWriterWins(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, 3, "admin-1")
	require.NoError(t, err)
	_, err = svc.UpdateSettings(ctx, 4.5, "admin-2")
	require.NoError(t, err)

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, 4.5, settings.PricePerSheet)
	require.Equal(t, "admin-2", settings.UpdatedBy)
}
