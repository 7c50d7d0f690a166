package announcement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	"github.com/espacionido/nido-backend/internal/platform/push"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/metrics"
	"github.com/espacionido/nido-backend/pkg/tool"
	"github.com/espacionido/nido-backend/pkg/types"
)

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrInvalidAnnouncement  = errors.New("invalid announcement fields")
)

type Store interface {
	Insert(ctx context.Context, a *models.Announcement) error
	ListActive(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// TokenStore is the fcm_tokens collection access.
type TokenStore interface {
	Upsert(ctx context.Context, t *models.FCMToken) error
	ListTokens(ctx context.Context) ([]string, error)
}

// ClientLister yields the active clients the fan-out targets.
type ClientLister interface {
	ListActive(ctx context.Context) ([]*models.Client, error)
}

type Service struct {
	log     *zap.SugaredLogger
	store   Store
	tokens  TokenStore
	clients ClientLister
	mail    mailer.Sender
	push    push.Sender
}

func NewService(log *zap.SugaredLogger, store Store, tokens TokenStore, clients ClientLister, mail mailer.Sender, pushSender push.Sender) *Service {
	return &Service{log: log, store: store, tokens: tokens, clients: clients, mail: mail, push: pushSender}
}

type CreateRequest struct {
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Type     types.AnnouncementType `json:"type"`
	Priority types.Priority         `json:"priority"`
}

// CreateResult reports the announcement plus the fan-out statistics.
type CreateResult struct {
	Announcement *models.Announcement `json:"announcement"`
	EmailStats   types.SendStats      `json:"email_stats"`
	PushStats    types.SendStats      `json:"push_stats"`
}

// Create persists the announcement, then fans an email out to every active
// client concurrently. Every send runs to completion regardless of
// individual failures; failed sends are counted, not retried.
func (s *Service) Create(ctx context.Context, adminID string, req *CreateRequest) (*CreateResult, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" ||
		!req.Type.Valid() || !req.Priority.Valid() {
		return nil, ErrInvalidAnnouncement
	}

	a := &models.Announcement{
		ID:        tool.GenerateUUIDV7(),
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		Priority:  req.Priority,
		Active:    true,
		CreatedBy: adminID,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to insert announcement: %w", err)
	}

	log := logctx.FromCtx(ctx, s.log)

	clients, err := s.clients.ListActive(ctx)
	if err != nil {
		// The announcement exists; the fan-out just has nobody to reach.
		log.Errorw("announcement fan-out: listing active clients failed",
			"announcement_id", a.ID, "err", err)
		clients = nil
	}

	emailStats := types.CollectStats(s.fanOutEmails(ctx, a, clients))
	pushStats := types.CollectStats(s.fanOutPush(ctx, a))
	metrics.CountNotifications("email", emailStats.Sent, emailStats.Failed)
	metrics.CountNotifications("push", pushStats.Sent, pushStats.Failed)

	log.Infow("announcement created",
		"announcement_id", a.ID,
		"email_total", emailStats.Total, "email_sent", emailStats.Sent, "email_failed", emailStats.Failed,
		"push_total", pushStats.Total, "push_sent", pushStats.Sent, "push_failed", pushStats.Failed)

	return &CreateResult{Announcement: a, EmailStats: emailStats, PushStats: pushStats}, nil
}

func (s *Service) fanOutEmails(ctx context.Context, a *models.Announcement, clients []*models.Client) []types.SendOutcome {
	outcomes := make([]types.SendOutcome, len(clients))
	var wg sync.WaitGroup
	for i, c := range clients {
		if c.UserEmail == "" {
			outcomes[i] = types.OutcomeFailed("", errors.New("client has no email"))
			continue
		}
		wg.Add(1)
		go func(i int, c *models.Client) {
			defer wg.Done()
			outcomes[i] = s.mail.Send(ctx, announcementEmail(a, c))
		}(i, c)
	}
	wg.Wait()
	return outcomes
}

func (s *Service) fanOutPush(ctx context.Context, a *models.Announcement) []types.SendOutcome {
	tokens, err := s.tokens.ListTokens(ctx)
	if err != nil {
		logctx.FromCtx(ctx, s.log).Warnw("announcement fan-out: listing push tokens failed",
			"announcement_id", a.ID, "err", err)
		return nil
	}
	return s.push.SendToTokens(ctx, tokens, push.Notification{Title: a.Title, Body: a.Content})
}

func (s *Service) ListActive(ctx context.Context) ([]*models.Announcement, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) Delete(ctx context.Context, id, adminID string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logctx.FromCtx(ctx, s.log).Infow("announcement deleted", "announcement_id", id, "admin_id", adminID)
	return nil
}

// RegisterToken upserts the caller's push token.
func (s *Service) RegisterToken(ctx context.Context, userID, token, platform string) error {
	if userID == "" || token == "" {
		return ErrInvalidAnnouncement
	}
	return s.tokens.Upsert(ctx, &models.FCMToken{
		ID:       tool.GenerateUUIDV7(),
		UserID:   userID,
		Token:    token,
		Platform: platform,
	})
}

func announcementEmail(a *models.Announcement, c *models.Client) mailer.Message {
	return mailer.Message{
		To:      c.UserEmail,
		ToName:  c.UserName,
		Subject: fmt.Sprintf("Espacio Nido - %s", a.Title),
		HTMLContent: fmt.Sprintf(
			`<p>Hola %s,</p><h3>%s</h3><p>%s</p>`,
			c.UserName, a.Title, a.Content),
		TextContent: fmt.Sprintf("Hola %s,\n\n%s\n\n%s", c.UserName, a.Title, a.Content),
	}
}
