package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	cfgpkg "github.com/espacionido/nido-backend/pkg/config"
	"github.com/espacionido/nido-backend/pkg/types"
)

const fcmEndpoint = "https://fcm.googleapis.com/fcm/send"

// Notification is the visible payload of a push message.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Sender fans a notification out to device tokens, best-effort per token.
type Sender interface {
	SendToTokens(ctx context.Context, tokens []string, n Notification) []types.SendOutcome
}

type fcmSender struct {
	serverKey string
	client    *http.Client
	log       *zap.SugaredLogger
}

func NewFCMSender(cfg *cfgpkg.Config, log *zap.SugaredLogger) Sender {
	return &fcmSender{
		serverKey: cfg.Push.ServerKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

type fcmMessage struct {
	To           string       `json:"to"`
	Notification Notification `json:"notification"`
}

func (s *fcmSender) SendToTokens(ctx context.Context, tokens []string, n Notification) []types.SendOutcome {
	outcomes := make([]types.SendOutcome, 0, len(tokens))
	for _, token := range tokens {
		outcomes = append(outcomes, s.sendOne(ctx, token, n))
	}
	return outcomes
}

func (s *fcmSender) sendOne(ctx context.Context, token string, n Notification) types.SendOutcome {
	if s.serverKey == "" {
		return types.OutcomeFailed(token, fmt.Errorf("push server key not configured"))
	}

	body, err := json.Marshal(fcmMessage{To: token, Notification: n})
	if err != nil {
		return types.OutcomeFailed(token, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fcmEndpoint, bytes.NewReader(body))
	if err != nil {
		return types.OutcomeFailed(token, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.serverKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return types.OutcomeFailed(token, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return types.OutcomeFailed(token, fmt.Errorf("fcm status %d: %s", resp.StatusCode, raw))
	}
	return types.OutcomeSent(token)
}

var Module = fx.Options(
	fx.Provide(NewFCMSender),
)
