package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/gateway"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/logctx"
	"github.com/espacionido/nido-backend/pkg/metrics"
	"github.com/espacionido/nido-backend/pkg/tool"
	"github.com/espacionido/nido-backend/pkg/types"
)

// RequestStore is the payment_requests collection access.
type RequestStore interface {
	Insert(ctx context.Context, req *models.PaymentRequest) error
	Get(ctx context.Context, id string) (*models.PaymentRequest, error)
	GetByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*models.PaymentRequest, error)
	ListByStatus(ctx context.Context, status types.PaymentRequestStatus) ([]*models.PaymentRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]*models.PaymentRequest, error)
	PendingExists(ctx context.Context, clientID, period string) (bool, error)
	ApplyDecision(ctx context.Context, id string, d *models.PaymentDecision) error
}

// HistoryStore is the append-only payment_history collection access.
type HistoryStore interface {
	Append(ctx context.Context, h *models.PaymentHistory) error
	ListByClient(ctx context.Context, clientID string) ([]*models.PaymentHistory, error)
}

// ClientDirectory is the slice of the client service the payment flow needs.
type ClientDirectory interface {
	Get(ctx context.Context, id string) (*models.Client, error)
	AdvanceBilling(ctx context.Context, id string, adv *models.BillingAdvance) error
}

// Settler marks print records paid in bulk on approval.
type Settler interface {
	SettleBatch(ctx context.Context, ids []string, requestID string) error
}

// Gateway is the payment-gateway surface used by the webhook flow.
type Gateway interface {
	GetPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
	CreatePreference(ctx context.Context, req *gateway.PreferenceRequest) (*gateway.Preference, error)
}

// Deduper suppresses replayed gateway notifications.
type Deduper interface {
	FirstSeen(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

const (
	webhookDedupTTL = 24 * time.Hour

	// webhookActor is recorded as processed_by for webhook-driven approvals.
	webhookActor = "mercadopago-webhook"
)

type Service struct {
	cfg      *cfgpkg.Config
	log      *zap.SugaredLogger
	requests RequestStore
	history  HistoryStore
	clients  ClientDirectory
	settler  Settler
	mail     mailer.Sender
	gw       Gateway
	dedup    Deduper
}

func NewService(
	cfg *cfgpkg.Config,
	log *zap.SugaredLogger,
	requests RequestStore,
	history HistoryStore,
	clients ClientDirectory,
	settler Settler,
	mail mailer.Sender,
	gw Gateway,
	dedup Deduper,
) *Service {
	return &Service{
		cfg:      cfg,
		log:      log,
		requests: requests,
		history:  history,
		clients:  clients,
		settler:  settler,
		mail:     mail,
		gw:       gw,
		dedup:    dedup,
	}
}

type CreateRequest struct {
	ClientID         string            `json:"client_id"`
	UserID           string            `json:"user_id"`
	UserName         string            `json:"user_name"`
	UserEmail        string            `json:"user_email"`
	Amount           float64           `json:"amount"`
	PlanName         string            `json:"plan_name"`
	Period           string            `json:"period"`
	DueDate          *time.Time        `json:"due_date"`
	PaymentType      types.PaymentType `json:"payment_type"`
	PrintRecordIDs   []string          `json:"print_record_ids"`
	PrintAmount      float64           `json:"print_amount"`
	MembershipAmount float64           `json:"membership_amount"`
}

// Create persists a pending request and notifies the operator inbox
// best-effort. A pending request for the same (client, period) is a conflict.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*models.PaymentRequest, error) {
	if req.ClientID == "" || req.UserID == "" || req.PlanName == "" || req.Period == "" || req.Amount <= 0 {
		return nil, ErrMissingFields
	}

	exists, err := s.requests.PendingExists(ctx, req.ClientID, req.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if exists {
		return nil, ErrDuplicatePending
	}

	paymentType := req.PaymentType
	if paymentType == "" {
		paymentType = types.PaymentTypeMembership
	}

	pr := &models.PaymentRequest{
		ID:               tool.GenerateUUIDV7(),
		ClientID:         req.ClientID,
		UserID:           req.UserID,
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		Amount:           req.Amount,
		PlanName:         req.PlanName,
		Period:           req.Period,
		DueDate:          req.DueDate,
		RequestDate:      time.Now(),
		Status:           types.PaymentRequestStatusPending,
		PaymentType:      paymentType,
		PrintRecordIDs:   req.PrintRecordIDs,
		PrintAmount:      req.PrintAmount,
		MembershipAmount: req.MembershipAmount,
	}
	if err := s.requests.Insert(ctx, pr); err != nil {
		return nil, fmt.Errorf("failed to insert payment request: %w", err)
	}

	outcome := s.mail.Send(ctx, operatorNewRequestEmail(s.cfg.Mail.OperatorEmail, pr))
	s.logOutcome(ctx, "operator_new_request_email", outcome)

	return pr, nil
}

func (s *Service) ListPending(ctx context.Context) ([]*models.PaymentRequest, error) {
	return s.requests.ListByStatus(ctx, types.PaymentRequestStatusPending)
}

func (s *Service) ListByClient(ctx context.Context, clientID string) ([]*models.PaymentRequest, error) {
	return s.requests.ListByClient(ctx, clientID)
}

func (s *Service) HistoryByClient(ctx context.Context, clientID string) ([]*models.PaymentHistory, error) {
	return s.history.ListByClient(ctx, clientID)
}

// ApproveResult reports what the approval wrote and how notification went.
type ApproveResult struct {
	Request         *models.PaymentRequest `json:"request"`
	NextPeriodLabel string                 `json:"next_period_label"`
	EmailOutcome    types.SendOutcome      `json:"email_outcome"`
}

// Approve runs the pending→approved transition and its side effects in
// order: decision write, print-record settlement, history append, billing
// advance, approval email. The two stores are not covered by one
// transaction; a failure after the decision write is logged as partial and
// surfaced to the caller.
func (s *Service) Approve(ctx context.Context, id, adminID string) (*ApproveResult, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, ErrRequestAlreadyProcessed
	}

	now := time.Now()
	if err := s.requests.ApplyDecision(ctx, id, &models.PaymentDecision{
		Status:      types.PaymentRequestStatusApproved,
		ProcessedAt: now,
		ProcessedBy: adminID,
	}); err != nil {
		return nil, err
	}
	req.Status = types.PaymentRequestStatusApproved
	req.ProcessedAt = &now
	req.ProcessedBy = adminID

	log := logctx.FromCtx(ctx, s.log)

	// Print settlement failures never roll the approval back; the admin
	// re-settles the records individually.
	if len(req.PrintRecordIDs) > 0 {
		if err := s.settler.SettleBatch(ctx, req.PrintRecordIDs, req.ID); err != nil {
			log.Errorw("approval partial: print settlement failed",
				"request_id", req.ID, "err", err)
		}
	}

	if err := s.history.Append(ctx, &models.PaymentHistory{
		ID:            tool.GenerateUUIDV7(),
		ClientID:      req.ClientID,
		UserID:        req.UserID,
		Amount:        req.Amount,
		PlanName:      req.PlanName,
		Period:        req.Period,
		Status:        models.PaymentHistoryStatusPaid,
		TransactionID: req.GatewayPaymentID,
		PaymentDate:   now,
		RequestID:     req.ID,
	}); err != nil {
		log.Errorw("approval partial: history append failed", "request_id", req.ID, "err", err)
		return nil, fmt.Errorf("failed to append payment history: %w", err)
	}

	label, err := s.advanceClientBilling(ctx, req.ClientID, now)
	if err != nil {
		log.Errorw("approval partial: billing advance failed", "request_id", req.ID, "err", err)
		return nil, err
	}

	outcome := s.mail.Send(ctx, approvalEmail(req, label))
	s.logOutcome(ctx, "approval_email", outcome)

	metrics.PaymentDecisions.WithLabelValues("approved", decisionSource(adminID)).Inc()
	log.Infow("payment request approved",
		"request_id", req.ID, "client_id", req.ClientID, "admin_id", adminID, "next_period", label)

	return &ApproveResult{Request: req, NextPeriodLabel: label, EmailOutcome: outcome}, nil
}

// advanceClientBilling bumps current_period by exactly 1 and recomputes the
// next-payment label from the stored anchor (seeded on first approval).
func (s *Service) advanceClientBilling(ctx context.Context, clientID string, paidAt time.Time) (string, error) {
	c, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return "", err
	}

	anchor := paidAt
	if c.BillingAnchor != nil {
		anchor = *c.BillingAnchor
	}
	nextPeriod := c.CurrentPeriod + 1
	label := PeriodLabel(anchor, nextPeriod)

	if err := s.clients.AdvanceBilling(ctx, clientID, &models.BillingAdvance{
		CurrentPeriod:     nextPeriod,
		NextPaymentPeriod: label,
		BillingAnchor:     anchor,
		LastPaymentDate:   paidAt,
		PaymentStatus:     "active",
	}); err != nil {
		return "", err
	}
	return label, nil
}

// RejectResult mirrors ApproveResult for the reject transition.
type RejectResult struct {
	Request      *models.PaymentRequest `json:"request"`
	EmailOutcome types.SendOutcome      `json:"email_outcome"`
}

func (s *Service) Reject(ctx context.Context, id, adminID, reason string) (*RejectResult, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, ErrRequestAlreadyProcessed
	}

	if reason == "" {
		reason = DefaultRejectionReason
	}
	now := time.Now()
	if err := s.requests.ApplyDecision(ctx, id, &models.PaymentDecision{
		Status:          types.PaymentRequestStatusRejected,
		ProcessedAt:     now,
		ProcessedBy:     adminID,
		RejectionReason: reason,
	}); err != nil {
		return nil, err
	}
	req.Status = types.PaymentRequestStatusRejected
	req.ProcessedAt = &now
	req.ProcessedBy = adminID
	req.RejectionReason = reason

	outcome := s.mail.Send(ctx, rejectionEmail(req))
	s.logOutcome(ctx, "rejection_email", outcome)

	metrics.PaymentDecisions.WithLabelValues("rejected", decisionSource(adminID)).Inc()
	logctx.FromCtx(ctx, s.log).Infow("payment request rejected",
		"request_id", req.ID, "client_id", req.ClientID, "admin_id", adminID, "reason", reason)

	return &RejectResult{Request: req, EmailOutcome: outcome}, nil
}

// CreatePreference opens a hosted-checkout preference at the gateway for a
// client-initiated payment.
func (s *Service) CreatePreference(ctx context.Context, clientID, userEmail, planName, period string, amount float64) (*gateway.Preference, error) {
	if clientID == "" || period == "" || amount <= 0 {
		return nil, ErrMissingFields
	}
	return s.gw.CreatePreference(ctx, &gateway.PreferenceRequest{
		Title:             fmt.Sprintf("Membresía %s - %s", planName, period),
		Quantity:          1,
		UnitPrice:         amount,
		CurrencyID:        "ARS",
		ExternalReference: externalReference(clientID, period),
		PayerEmail:        userEmail,
	})
}

// ProcessGatewayPayment handles one webhook delivery for a payment topic.
// Replayed deliveries are suppressed via the dedup store; non-approved
// payments are acknowledged without side effects.
func (s *Service) ProcessGatewayPayment(ctx context.Context, paymentID string) error {
	log := logctx.FromCtx(ctx, s.log)

	first, err := s.dedup.FirstSeen(ctx, "mp:payment:"+paymentID, webhookDedupTTL)
	if err != nil {
		// Dedup is an optimization; on redis failure fall through and rely
		// on the gateway_payment_id lookup below.
		log.Warnw("webhook dedup check failed", "payment_id", paymentID, "err", err)
	} else if !first {
		log.Infow("webhook delivery replayed, skipping", "payment_id", paymentID)
		return nil
	}

	p, err := s.gw.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("failed to fetch gateway payment: %w", err)
	}
	if p.Status != "approved" {
		log.Infow("gateway payment not approved, ignoring",
			"payment_id", paymentID, "status", p.Status)
		return nil
	}

	gwID := strconv.FormatInt(p.ID, 10)
	switch _, err := s.requests.GetByGatewayPaymentID(ctx, gwID); {
	case err == nil:
		log.Infow("gateway payment already recorded", "payment_id", gwID)
		return nil
	case !errors.Is(err, ErrRequestNotFound):
		// A failing lookup must not be read as "not recorded": combined
		// with a dedup outage that would approve the same payment twice.
		// Returning the error lets the gateway redeliver.
		return fmt.Errorf("failed to look up gateway payment %s: %w", gwID, err)
	}

	clientID, period := parseExternalReference(p.ExternalReference)
	if clientID == "" {
		return fmt.Errorf("gateway payment %s has no usable external reference", gwID)
	}

	c, err := s.clients.Get(ctx, clientID)
	if err != nil {
		return fmt.Errorf("gateway payment %s references unknown client %s: %w", gwID, clientID, err)
	}
	if period == "" {
		period = c.NextPaymentPeriod
	}

	pr := &models.PaymentRequest{
		ID:               tool.GenerateUUIDV7(),
		ClientID:         c.ID,
		UserID:           c.UserID,
		UserName:         c.UserName,
		UserEmail:        c.UserEmail,
		Amount:           p.TransactionAmount,
		PlanName:         c.PlanName,
		Period:           period,
		RequestDate:      time.Now(),
		Status:           types.PaymentRequestStatusPending,
		PaymentType:      types.PaymentTypeMembership,
		MembershipAmount: p.TransactionAmount,
		GatewayPaymentID: gwID,
	}
	if err := s.requests.Insert(ctx, pr); err != nil {
		return fmt.Errorf("failed to insert webhook payment request: %w", err)
	}

	// Gateway already collected the money, so the request is approved
	// immediately with the same side effects as an admin approval.
	if _, err := s.Approve(ctx, pr.ID, webhookActor); err != nil {
		return fmt.Errorf("failed to approve webhook payment request: %w", err)
	}
	return nil
}

func (s *Service) logOutcome(ctx context.Context, kind string, o types.SendOutcome) {
	log := logctx.FromCtx(ctx, s.log)
	if o.Sent {
		metrics.CountNotifications("email", 1, 0)
		log.Infow("notification sent", "kind", kind, "recipient", o.Recipient)
		return
	}
	metrics.CountNotifications("email", 0, 1)
	log.Warnw("notification failed", "kind", kind, "recipient", o.Recipient, "reason", o.Reason)
}

func decisionSource(adminID string) string {
	if adminID == webhookActor {
		return "webhook"
	}
	return "admin"
}

func externalReference(clientID, period string) string {
	return clientID + "|" + period
}

func parseExternalReference(ref string) (clientID, period string) {
	clientID, period, _ = strings.Cut(ref, "|")
	return clientID, period
}
