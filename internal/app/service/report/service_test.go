package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

type fakeStore struct {
	inserted []*models.Report
	statuses map[string]types.ReportStatus
}

func (f *fakeStore) Insert(_ context.Context, r *models.Report) error {
	f.inserted = append(f.inserted, r)
	return nil
}

func (f *fakeStore) List(_ context.Context, status types.ReportStatus) ([]*models.Report, error) {
	if status == "" {
		return f.inserted, nil
	}
	var out []*models.Report
	for _, r := range f.inserted {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByClient(_ context.Context, clientID string) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range f.inserted {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id string, status types.ReportStatus) error {
	if f.statuses == nil {
		f.statuses = map[string]types.ReportStatus{}
	}
	f.statuses[id] = status
	return nil
}

type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) types.SendOutcome {
	f.sent = append(f.sent, msg)
	return types.OutcomeSent(msg.To)
}

func newReportFixture() (*Service, *fakeStore, *fakeMailer) {
	store := &fakeStore{}
	mail := &fakeMailer{}
	cfg := &cfgpkg.Config{Mail: cfgpkg.MailConfig{OperatorEmail: "operador@nido.test"}}
	return NewService(cfg, zap.NewNop().Sugar(), store, mail), store, mail
}

func TestCreateReport_InvalidFields(t *testing.T) {
	svc, store, _ := newReportFixture()

	_, err := svc.Create(context.Background(), "c1", "u1", &CreateRequest{
		Type: "bogus", Priority: types.PriorityLow, Message: "x",
	})
	require.ErrorIs(t, err, ErrInvalidReport)

	_, err = svc.Create(context.Background(), "c1", "u1", &CreateRequest{
		Type: types.ReportTypeOther, Priority: types.PriorityLow, Message: "   ",
	})
	require.ErrorIs(t, err, ErrInvalidReport)

	require.Empty(t, store.inserted)
}

func TestCreateReport_ImageValidation(t *testing.T) {
	svc, _, _ := newReportFixture()

	_, err := svc.Create(context.Background(), "c1", "u1", &CreateRequest{
		Type: types.ReportTypeBroken, Priority: types.PriorityHigh,
		Message: "silla rota", Image: "https://example.com/foto.png",
	})
	require.ErrorIs(t, err, ErrInvalidImage)

	huge := "data:image/png;base64," + strings.Repeat("A", MaxImageBytes)
	_, err = svc.Create(context.Background(), "c1", "u1", &CreateRequest{
		Type: types.ReportTypeBroken, Priority: types.PriorityHigh,
		Message: "silla rota", Image: huge,
	})
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestCreateReport_NotifiesOperator(t *testing.T) {
	svc, store, mail := newReportFixture()

	r, err := svc.Create(context.Background(), "c1", "u1", &CreateRequest{
		Type: types.ReportTypeYerba, Priority: types.PriorityLow,
		Message: "falta yerba", Image: "data:image/jpeg;base64,abc123",
	})
	require.NoError(t, err)
	require.Equal(t, types.ReportStatusPending, r.Status)
	require.Len(t, store.inserted, 1)

	require.Len(t, mail.sent, 1)
	require.Equal(t, "operador@nido.test", mail.sent[0].To)
	require.Contains(t, mail.sent[0].HTMLContent, "falta yerba")
	require.Contains(t, mail.sent[0].HTMLContent, "data:image/jpeg;base64,abc123")
}

func TestListReports_StatusFilter(t *testing.T) {
	svc, _, _ := newReportFixture()

	_, err := svc.List(context.Background(), "weird")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	_, err = svc.List(context.Background(), types.ReportStatusResolved)
	require.NoError(t, err)
}

func TestUpdateReportStatus(t *testing.T) {
	svc, store, _ := newReportFixture()

	require.ErrorIs(t, svc.UpdateStatus(context.Background(), "r1", "weird", "admin-1"), ErrInvalidStatus)

	require.NoError(t, svc.UpdateStatus(context.Background(), "r1", types.ReportStatusInProgress, "admin-1"))
	require.Equal(t, types.ReportStatusInProgress, store.statuses["r1"])
}
