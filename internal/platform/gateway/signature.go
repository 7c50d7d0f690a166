package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifyWebhookSignature checks the x-signature header on a MercadoPago
// webhook delivery. The header carries "ts=<unix>,v1=<hex hmac>" and the
// signed manifest is "id:<dataID>;request-id:<requestID>;ts:<ts>;".
func (c *Client) VerifyWebhookSignature(signatureHeader, requestID, dataID string) error {
	if c.webhookSecret == "" {
		return fmt.Errorf("webhook secret not configured")
	}

	ts, v1, err := parseSignatureHeader(signatureHeader)
	if err != nil {
		return err
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(v1)) {
		return ErrInvalidSignature
	}
	return nil
}

func parseSignatureHeader(header string) (ts, v1 string, err error) {
	if header == "" {
		return "", "", ErrInvalidSignature
	}
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return "", "", ErrInvalidSignature
	}
	return ts, v1, nil
}
