package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/metrics"
	"github.com/espacionido/nido-backend/pkg/tool"
	"github.com/espacionido/nido-backend/pkg/types"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidReport  = errors.New("invalid report fields")
	ErrInvalidImage   = errors.New("image must be a data URL of at most 1MB")
	ErrInvalidStatus  = errors.New("invalid report status")
)

// MaxImageBytes bounds the embedded data URL so the operator email stays deliverable.
const MaxImageBytes = 1 << 20

type Store interface {
	Insert(ctx context.Context, r *models.Report) error
	List(ctx context.Context, status types.ReportStatus) ([]*models.Report, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.Report, error)
	UpdateStatus(ctx context.Context, id string, status types.ReportStatus) error
}

type Service struct {
	cfg   *cfgpkg.Config
	log   *zap.SugaredLogger
	store Store
	mail  mailer.Sender
}

func NewService(cfg *cfgpkg.Config, log *zap.SugaredLogger, store Store, mail mailer.Sender) *Service {
	return &Service{cfg: cfg, log: log, store: store, mail: mail}
}

type CreateRequest struct {
	Type     types.ReportType `json:"type"`
	Priority types.Priority   `json:"priority"`
	Message  string           `json:"message"`
	Image    string           `json:"image"`
}

func (s *Service) Create(ctx context.Context, clientID, userID string, req *CreateRequest) (*models.Report, error) {
	if !req.Type.Valid() || !req.Priority.Valid() || strings.TrimSpace(req.Message) == "" {
		return nil, ErrInvalidReport
	}
	if req.Image != "" {
		if !strings.HasPrefix(req.Image, "data:image/") || len(req.Image) > MaxImageBytes {
			return nil, ErrInvalidImage
		}
	}

	now := time.Now()
	r := &models.Report{
		ID:        tool.GenerateUUIDV7(),
		ClientID:  clientID,
		UserID:    userID,
		Type:      req.Type,
		Priority:  req.Priority,
		Message:   req.Message,
		Image:     req.Image,
		Status:    types.ReportStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to insert report: %w", err)
	}

	outcome := s.mail.Send(ctx, operatorReportEmail(s.cfg.Mail.OperatorEmail, r))
	log := logctx.FromCtx(ctx, s.log)
	if outcome.Sent {
		metrics.CountNotifications("email", 1, 0)
		log.Infow("report email sent", "report_id", r.ID)
	} else {
		metrics.CountNotifications("email", 0, 1)
		log.Warnw("report email failed", "report_id", r.ID, "reason", outcome.Reason)
	}

	return r, nil
}

func (s *Service) List(ctx context.Context, status types.ReportStatus) ([]*models.Report, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.store.List(ctx, status)
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*models.Report, error) {
	return s.store.ListByClient(ctx, clientID)
}

// UpdateStatus moves a report between the three states freely.
func (s *Service) UpdateStatus(ctx context.Context, id string, status types.ReportStatus, adminID string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	logctx.FromCtx(ctx, s.log).Infow("report status updated",
		"report_id", id, "status", status, "admin_id", adminID)
	return nil
}

func operatorReportEmail(operator string, r *models.Report) mailer.Message {
	var img string
	if r.Image != "" {
		img = fmt.Sprintf(`<p><img src="%s" alt="adjunto" style="max-width:480px"/></p>`, r.Image)
	}
	return mailer.Message{
		To:      operator,
		Subject: fmt.Sprintf("Nuevo reporte (%s) - prioridad %s", r.Type, r.Priority),
		HTMLContent: fmt.Sprintf(
			`<p>Reporte nuevo del cliente %s.</p><p><b>Tipo:</b> %s<br/><b>Prioridad:</b> %s</p><p>%s</p>%s`,
			r.ClientID, r.Type, r.Priority, r.Message, img),
		TextContent: fmt.Sprintf(
			"Reporte nuevo del cliente %s.\nTipo: %s\nPrioridad: %s\n\n%s",
			r.ClientID, r.Type, r.Priority, r.Message),
	}
}
