package announcement

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	"github.com/espacionido/nido-backend/internal/platform/push"
	"github.com/espacionido/nido-backend/pkg/types"
)

type fakeStore struct {
	inserted []*models.Announcement
	deleted  []string
}

func (f *fakeStore) Insert(_ context.Context, a *models.Announcement) error {
	f.inserted = append(f.inserted, a)
	return nil
}

func (f *fakeStore) ListActive(_ context.Context) ([]*models.Announcement, error) {
	return f.inserted, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTokenStore struct {
	tokens   []string
	upserted []*models.FCMToken
	err      error
}

func (f *fakeTokenStore) Upsert(_ context.Context, tok *models.FCMToken) error {
	f.upserted = append(f.upserted, tok)
	return nil
}

func (f *fakeTokenStore) ListTokens(_ context.Context) ([]string, error) {
	return f.tokens, f.err
}

type fakeClientLister struct {
	clients []*models.Client
	err     error
}

func (f *fakeClientLister) ListActive(_ context.Context) ([]*models.Client, error) {
	return f.clients, f.err
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) types.SendOutcome {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.failFor[msg.To] {
		return types.OutcomeFailed(msg.To, errors.New("bounce"))
	}
	return types.OutcomeSent(msg.To)
}

type fakePush struct {
	tokens []string
	fail   bool
}

func (f *fakePush) SendToTokens(_ context.Context, tokens []string, _ push.Notification) []types.SendOutcome {
	f.tokens = tokens
	out := make([]types.SendOutcome, 0, len(tokens))
	for _, tok := range tokens {
		if f.fail {
			out = append(out, types.OutcomeFailed(tok, errors.New("fcm down")))
		} else {
			out = append(out, types.OutcomeSent(tok))
		}
	}
	return out
}

type announcementFixture struct {
	svc     *Service
	store   *fakeStore
	tokens  *fakeTokenStore
	clients *fakeClientLister
	mail    *fakeMailer
	push    *fakePush
}

func newAnnouncementFixture() *announcementFixture {
	f := &announcementFixture{
		store:   &fakeStore{},
		tokens:  &fakeTokenStore{},
		clients: &fakeClientLister{},
		mail:    &fakeMailer{failFor: map[string]bool{}},
		push:    &fakePush{},
	}
	f.svc = NewService(zap.NewNop().Sugar(), f.store, f.tokens, f.clients, f.mail, f.push)
	return f
}

func validCreate() *CreateRequest {
	return &CreateRequest{
		Title:    "Corte de luz",
		Content:  "El viernes no hay electricidad de 9 a 12.",
		Type:     types.AnnouncementTypeMaintenance,
		Priority: types.PriorityHigh,
	}
}

func TestCreate_InvalidFields(t *testing.T) {
	f := newAnnouncementFixture()

	for _, req := range []*CreateRequest{
		{Title: "", Content: "x", Type: types.AnnouncementTypeInfo, Priority: types.PriorityLow},
		{Title: "   ", Content: "x", Type: types.AnnouncementTypeInfo, Priority: types.PriorityLow},
		{Title: "x", Content: "", Type: types.AnnouncementTypeInfo, Priority: types.PriorityLow},
		{Title: "x", Content: "y", Type: "spam", Priority: types.PriorityLow},
		{Title: "x", Content: "y", Type: types.AnnouncementTypeInfo, Priority: "urgent"},
	} {
		_, err := f.svc.Create(context.Background(), "admin-1", req)
		require.ErrorIs(t, err, ErrInvalidAnnouncement)
	}
	require.Empty(t, f.store.inserted)
}

func TestCreate_FansOutToActiveClients(t *testing.T) {
	f := newAnnouncementFixture()
	f.clients.clients = []*models.Client{
		{ID: "c1", UserName: "Ana", UserEmail: "ana@nido.test"},
		{ID: "c2", UserName: "Beto", UserEmail: "beto@nido.test"},
		{ID: "c3", UserName: "Cata", UserEmail: ""},
	}
	f.mail.failFor["beto@nido.test"] = true
	f.tokens.tokens = []string{"tok1", "tok2"}

	res, err := f.svc.Create(context.Background(), "admin-1", validCreate())
	require.NoError(t, err)

	require.Len(t, f.store.inserted, 1)
	require.True(t, res.Announcement.Active)
	require.Equal(t, "admin-1", res.Announcement.CreatedBy)

	// c3 has no email and counts as failed without a send attempt.
	require.Equal(t, types.SendStats{Total: 3, Sent: 1, Failed: 2}, res.EmailStats)
	require.Len(t, f.mail.sent, 2)

	require.Equal(t, types.SendStats{Total: 2, Sent: 2, Failed: 0}, res.PushStats)
	require.Equal(t, []string{"tok1", "tok2"}, f.push.tokens)
}

func TestCreate_NoActiveClients(t *testing.T) {
	f := newAnnouncementFixture()

	res, err := f.svc.Create(context.Background(), "admin-1", validCreate())
	require.NoError(t, err)
	require.Equal(t, types.SendStats{}, res.EmailStats)
	require.Empty(t, f.mail.sent)
}

func TestCreate_ClientListFailureStillCreates(t *testing.T) {
	f := newAnnouncementFixture()
	f.clients.err = errors.New("mongo down")

	res, err := f.svc.Create(context.Background(), "admin-1", validCreate())
	require.NoError(t, err)
	require.Len(t, f.store.inserted, 1)
	require.Zero(t, res.EmailStats.Total)
}

func TestCreate_TokenListFailureSkipsPush(t *testing.T) {
	f := newAnnouncementFixture()
	f.tokens.err = errors.New("mongo down")

	res, err := f.svc.Create(context.Background(), "admin-1", validCreate())
	require.NoError(t, err)
	require.Zero(t, res.PushStats.Total)
}

func TestDelete(t *testing.T) {
	f := newAnnouncementFixture()
	require.NoError(t, f.svc.Delete(context.Background(), "a1", "admin-1"))
	require.Equal(t, []string{"a1"}, f.store.deleted)
}

func TestRegisterToken(t *testing.T) {
	f := newAnnouncementFixture()

	require.ErrorIs(t, f.svc.RegisterToken(context.Background(), "", "tok", "android"), ErrInvalidAnnouncement)
	require.ErrorIs(t, f.svc.RegisterToken(context.Background(), "u1", "", "android"), ErrInvalidAnnouncement)

	require.NoError(t, f.svc.RegisterToken(context.Background(), "u1", "tok", "android"))
	require.Len(t, f.tokens.upserted, 1)
	require.Equal(t, "u1", f.tokens.upserted[0].UserID)
	require.Equal(t, "tok", f.tokens.upserted[0].Token)
}
