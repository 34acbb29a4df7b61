package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/service"
)

const (
	signatureScheme  = "v1"
	defaultTolerance = 5 * time.Minute
)

type webhookEnvelope struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type checkoutSessionObject struct {
	ID              string            `json:"id"`
	PaymentStatus   string            `json:"payment_status"`
	CustomerEmail   string            `json:"customer_email"`
	AmountTotal     int64             `json:"amount_total"`
	Currency        string            `json:"currency"`
	Metadata        map[string]string `json:"metadata"`
	CustomerDetails *struct {
		Email string `json:"email"`
	} `json:"customer_details"`
}

// ParseWebhook checks the Stripe-Signature header and decodes the event.
func (c *Client) ParseWebhook(payload []byte, signatureHeader string) (*service.WebhookEvent, error) {
	if err := c.verifySignature(payload, signatureHeader); err != nil {
		c.observeWebhook("unknown", "invalid_signature")

		return nil, err
	}

	var env webhookEnvelope
	if err := json.Unmarshal(payload, &env); err != nil || env.Type == "" {
		c.observeWebhook("unknown", "invalid_payload")

		return nil, domainerrors.ErrInvalidWebhookPayload
	}

	event := &service.WebhookEvent{
		ID:        env.ID,
		Type:      env.Type,
		CreatedAt: time.Unix(env.Created, 0).UTC(),
	}

	if strings.HasPrefix(env.Type, "checkout.session.") {
		var obj checkoutSessionObject
		if err := json.Unmarshal(env.Data.Object, &obj); err != nil || obj.ID == "" {
			c.observeWebhook(env.Type, "invalid_payload")

			return nil, domainerrors.ErrInvalidWebhookPayload
		}
		event.SessionID = obj.ID
		event.PaymentStatus = obj.PaymentStatus
		event.AmountTotal = obj.AmountTotal
		event.Currency = obj.Currency
		event.Metadata = obj.Metadata
		event.CustomerEmail = obj.CustomerEmail
		if event.CustomerEmail == "" && obj.CustomerDetails != nil {
			event.CustomerEmail = obj.CustomerDetails.Email
		}
	}

	return event, nil
}

// verifySignature implements Stripe's scheme: HMAC-SHA256 over "<t>.<payload>",
// hex encoded in one or more v1 entries, with t inside the tolerance window.
func (c *Client) verifySignature(payload []byte, header string) error {
	if c.webhookSecret == "" || header == "" {
		return domainerrors.ErrInvalidWebhookSignature
	}

	var timestamp int64
	var signatures [][]byte
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return domainerrors.ErrInvalidWebhookSignature
			}
			timestamp = ts
		case signatureScheme:
			sig, err := hex.DecodeString(value)
			if err == nil {
				signatures = append(signatures, sig)
			}
		}
	}
	if timestamp == 0 || len(signatures) == 0 {
		return domainerrors.ErrInvalidWebhookSignature
	}

	tolerance := c.tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	age := c.now().Sub(time.Unix(timestamp, 0))
	if age > tolerance || age < -tolerance {
		return domainerrors.ErrInvalidWebhookSignature.WrapMessage("timestamp outside tolerance")
	}

	expected := ComputeSignature(c.webhookSecret, timestamp, payload)
	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}

	return domainerrors.ErrInvalidWebhookSignature
}

// ComputeSignature returns the raw v1 signature for a payload signed at timestamp.
func ComputeSignature(secret string, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}

// SignatureHeader formats a Stripe-Signature header value.
func SignatureHeader(secret string, timestamp int64, payload []byte) string {
	return "t=" + strconv.FormatInt(timestamp, 10) + "," + signatureScheme + "=" + hex.EncodeToString(ComputeSignature(secret, timestamp, payload))
}

func (c *Client) observeWebhook(eventType, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.WebhookEvents.WithLabelValues(eventType, outcome).Inc()
}
