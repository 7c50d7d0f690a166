package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func signManifest(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", dataID, requestID, ts)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature_Valid(t *testing.T) {
	c := &Client{webhookSecret: "secreto"}
	v1 := signManifest("secreto", "12345", "req-abc", "1700000000")
	header := "ts=1700000000,v1=" + v1

	require.NoError(t, c.VerifyWebhookSignature(header, "req-abc", "12345"))
}

func TestVerifyWebhookSignature_SpacesInHeader(t *testing.T) {
	c := &Client{webhookSecret: "secreto"}
	v1 := signManifest("secreto", "12345", "req-abc", "1700000000")
	header := "ts=1700000000, v1=" + v1

	require.NoError(t, c.VerifyWebhookSignature(header, "req-abc", "12345"))
}

func TestVerifyWebhookSignature_Tampered(t *testing.T) {
	c := &Client{webhookSecret: "secreto"}
	v1 := signManifest("secreto", "12345", "req-abc", "1700000000")
	header := "ts=1700000000,v1=" + v1

	require.ErrorIs(t, c.VerifyWebhookSignature(header, "req-abc", "99999"), ErrInvalidSignature)
	require.ErrorIs(t, c.VerifyWebhookSignature(header, "other", "12345"), ErrInvalidSignature)
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	c := &Client{webhookSecret: "otro"}
	v1 := signManifest("secreto", "12345", "req-abc", "1700000000")

	require.ErrorIs(t, c.VerifyWebhookSignature("ts=1700000000,v1="+v1, "req-abc", "12345"), ErrInvalidSignature)
}

func TestVerifyWebhookSignature_MalformedHeader(t *testing.T) {
	c := &Client{webhookSecret: "secreto"}

	require.ErrorIs(t, c.VerifyWebhookSignature("", "req-abc", "12345"), ErrInvalidSignature)
	require.ErrorIs(t, c.VerifyWebhookSignature("v1=deadbeef", "req-abc", "12345"), ErrInvalidSignature)
	require.ErrorIs(t, c.VerifyWebhookSignature("ts=1700000000", "req-abc", "12345"), ErrInvalidSignature)
}

func TestVerifyWebhookSignature_NoSecretConfigured(t *testing.T) {
	c := &Client{}
	err := c.VerifyWebhookSignature("ts=1,v1=aa", "req-abc", "12345")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidSignature)
}
