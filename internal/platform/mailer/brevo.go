package mailer

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

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Message is one outbound transactional email.
type Message struct {
	To          string
	ToName      string
	Subject     string
	HTMLContent string
	TextContent string
}

// Sender delivers an email and reports a typed outcome. Delivery is
// best-effort; callers must not fail their primary operation on a failed send.
type Sender interface {
	Send(ctx context.Context, msg Message) types.SendOutcome
}

type brevoSender struct {
	apiKey    string
	fromEmail string
	fromName  string
	client    *http.Client
	log       *zap.SugaredLogger
}

func NewBrevoSender(cfg *cfgpkg.Config, log *zap.SugaredLogger) Sender {
	return &brevoSender{
		apiKey:    cfg.Mail.APIKey,
		fromEmail: cfg.Mail.FromEmail,
		fromName:  cfg.Mail.FromName,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

type brevoRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent,omitempty"`
	TextContent string       `json:"textContent,omitempty"`
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (s *brevoSender) Send(ctx context.Context, msg Message) types.SendOutcome {
	if s.apiKey == "" {
		return types.OutcomeFailed(msg.To, fmt.Errorf("mail api key not configured"))
	}

	body, err := json.Marshal(brevoRequest{
		Sender:      brevoParty{Name: s.fromName, Email: s.fromEmail},
		To:          []brevoParty{{Email: msg.To, Name: msg.ToName}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLContent,
		TextContent: msg.TextContent,
	})
	if err != nil {
		return types.OutcomeFailed(msg.To, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return types.OutcomeFailed(msg.To, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return types.OutcomeFailed(msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return types.OutcomeFailed(msg.To, fmt.Errorf("brevo status %d: %s", resp.StatusCode, raw))
	}
	return types.OutcomeSent(msg.To)
}

var Module = fx.Options(
	fx.Provide(NewBrevoSender),
)
