package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/espacionido/nido-backend/internal/platform/gateway"
	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
)

const webhookTestSecret = "secreto"

func webhookTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	gw := gateway.NewClient(&cfgpkg.Config{
		MercadoPago: cfgpkg.MercadoPagoConfig{WebhookSecret: webhookTestSecret},
	}, zap.NewNop().Sugar())

	r := gin.New()
	RegisterWebhookRoutes(r.Group("/api/v1/webhooks"), nil, gw, zap.NewNop().Sugar())
	return r
}

func signedHeader(dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(webhookTestSecret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(r *gin.Engine, body, signature, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/mercadopago", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("x-signature", signature)
	}
	req.Header.Set("x-request-id", requestID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook_RejectsMissingSignature(t *testing.T) {
	r := webhookTestRouter()
	w := postWebhook(r, `{"type":"payment","data":{"id":"555"}}`, "", "req-1")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhook_RejectsTamperedSignature(t *testing.T) {
	r := webhookTestRouter()
	sig := signedHeader("999", "req-1", "1700000000")
	w := postWebhook(r, `{"type":"payment","data":{"id":"555"}}`, sig, "req-1")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhook_AcknowledgesOtherTopics(t *testing.T) {
	r := webhookTestRouter()
	sig := signedHeader("555", "req-1", "1700000000")
	w := postWebhook(r, `{"type":"plan","data":{"id":"555"}}`, sig, "req-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"received":true`)
}

func TestWebhook_RejectsMalformedBody(t *testing.T) {
	r := webhookTestRouter()
	w := postWebhook(r, `{not json`, "", "req-1")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
