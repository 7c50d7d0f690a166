package client

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/types"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrPlanNotFound   = errors.New("membership plan not found")
	ErrInvalidStatus  = errors.New("invalid client status")
)

// Store is the document-store access the service needs; the mongo
// implementation lives in internal/platform/docstore.
type Store interface {
	Get(ctx context.Context, id string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	ListActive(ctx context.Context) ([]*models.Client, error)
	UpdateStatus(ctx context.Context, id string, status types.ClientStatus) error
	UpdatePlan(ctx context.Context, id, planID, planName string) error
	AdvanceBilling(ctx context.Context, id string, adv *models.BillingAdvance) error
}

type Service struct {
	log   *zap.SugaredLogger
	store Store
	db    *gorm.DB
}

func NewService(log *zap.SugaredLogger, store Store, db *gorm.DB) *Service {
	return &Service{log: log, store: store, db: db}
}

func (s *Service) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*models.Client, error) {
	return s.store.List(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]*models.Client, error) {
	return s.store.ListActive(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status types.ClientStatus, adminID string) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	logctx.FromCtx(ctx, s.log).Infow("client status updated",
		"client_id", id, "status", status, "admin_id", adminID)
	return nil
}

// ChangePlan assigns an active membership plan from the relational store to
// the client document and returns the plan.
func (s *Service) ChangePlan(ctx context.Context, id, planID, adminID string) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	err := s.db.WithContext(ctx).First(&plan, "id = ? AND active = ?", planID, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read membership plan: %w", err)
	}

	if err := s.store.UpdatePlan(ctx, id, plan.ID, plan.Name); err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("client plan changed",
		"client_id", id, "plan_id", plan.ID, "admin_id", adminID)
	return &plan, nil
}

// AdvanceBilling applies the billing fields written by a payment approval.
func (s *Service) AdvanceBilling(ctx context.Context, id string, adv *models.BillingAdvance) error {
	return s.store.AdvanceBilling(ctx, id, adv)
}
