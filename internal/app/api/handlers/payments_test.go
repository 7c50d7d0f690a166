package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mw "github.com/espacionido/nido-backend/internal/app/api/middleware"
	"github.com/espacionido/nido-backend/internal/app/service/payment"
	"github.com/espacionido/nido-backend/internal/models"
	"github.com/espacionido/nido-backend/internal/platform/mailer"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

type stubVerifier struct {
	claims *types.TokenClaims
}

func (v *stubVerifier) Verify(string) (*types.TokenClaims, error) {
	return v.claims, nil
}

type recordingRequestStore struct {
	inserted []*models.PaymentRequest
}

func (s *recordingRequestStore) Insert(_ context.Context, req *models.PaymentRequest) error {
	s.inserted = append(s.inserted, req)
	return nil
}

func (s *recordingRequestStore) Get(context.Context, string) (*models.PaymentRequest, error) {
	return nil, payment.ErrRequestNotFound
}

func (s *recordingRequestStore) GetByGatewayPaymentID(context.Context, string) (*models.PaymentRequest, error) {
	return nil, payment.ErrRequestNotFound
}

func (s *recordingRequestStore) ListByStatus(context.Context, types.PaymentRequestStatus) ([]*models.PaymentRequest, error) {
	return nil, nil
}

func (s *recordingRequestStore) ListByClient(context.Context, string) ([]*models.PaymentRequest, error) {
	return nil, nil
}

func (s *recordingRequestStore) PendingExists(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *recordingRequestStore) ApplyDecision(context.Context, string, *models.PaymentDecision) error {
	return nil
}

type noopMailer struct{}

func (noopMailer) Send(_ context.Context, msg mailer.Message) types.SendOutcome {
	return types.OutcomeSent(msg.To)
}

func clientPaymentRouter(store *recordingRequestStore, claims *types.TokenClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := payment.NewService(&cfgpkg.Config{}, zap.NewNop().Sugar(),
		store, nil, nil, nil, noopMailer{}, nil, nil)

	r := gin.New()
	grp := r.Group("/api/v1/client")
	grp.Use(mw.Auth(&stubVerifier{claims: claims}, types.RoleClient))
	RegisterClientPaymentRoutes(grp, svc)
	return r
}

func TestCreatePaymentRequest_TokenClientIDWins(t *testing.T) {
	store := &recordingRequestStore{}
	r := clientPaymentRouter(store, &types.TokenClaims{
		UserID: "u1", ClientID: "c1", Email: "ana@nido.test", Name: "Ana", Role: types.RoleClient,
	})

	body := `{"client_id":"c-other","plan_name":"Full Time","period":"abril 2026","amount":15000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/client/payment-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.inserted, 1)
	require.Equal(t, "c1", store.inserted[0].ClientID)
	require.Equal(t, "u1", store.inserted[0].UserID)
}
