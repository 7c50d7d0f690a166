package gateway

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
)

const defaultBaseURL = "https://api.mercadopago.com"

// Payment is the slice of MercadoPago's payment resource the backend reads.
type Payment struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	TransactionAmount float64 `json:"transaction_amount"`
	ExternalReference string  `json:"external_reference"`
	Description       string  `json:"description"`
	PayerEmail        string  `json:"-"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
	DateApproved *time.Time `json:"date_approved"`
}

// PreferenceRequest creates a hosted-checkout preference.
type PreferenceRequest struct {
	Title             string  `json:"title"`
	Quantity          int     `json:"quantity"`
	UnitPrice         float64 `json:"unit_price"`
	CurrencyID        string  `json:"currency_id"`
	ExternalReference string  `json:"external_reference"`
	PayerEmail        string  `json:"payer_email"`
}

type Preference struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type Client struct {
	baseURL       string
	accessToken   string
	webhookSecret string
	http          *http.Client
	log           *zap.SugaredLogger
}

// NewClient builds the MercadoPago REST client. The HTTP timeout is the one
// explicit timeout in the system (5s by default).
func NewClient(cfg *cfgpkg.Config, log *zap.SugaredLogger) *Client {
	timeout := cfg.MercadoPago.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:       defaultBaseURL,
		accessToken:   cfg.MercadoPago.AccessToken,
		webhookSecret: cfg.MercadoPago.WebhookSecret,
		http:          &http.Client{Timeout: timeout},
		log:           log,
	}
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var p Payment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePreference(ctx context.Context, req *PreferenceRequest) (*Preference, error) {
	body := map[string]any{
		"items": []map[string]any{{
			"title":       req.Title,
			"quantity":    req.Quantity,
			"unit_price":  req.UnitPrice,
			"currency_id": req.CurrencyID,
		}},
		"external_reference": req.ExternalReference,
	}
	if req.PayerEmail != "" {
		body["payer"] = map[string]any{"email": req.PayerEmail}
	}

	var pref Preference
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", body, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if c.accessToken == "" {
		return fmt.Errorf("mercadopago access token not configured")
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mercadopago %s %s: status %d: %s", method, path, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var Module = fx.Options(
	fx.Provide(NewClient),
)
