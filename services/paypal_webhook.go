package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"net/http"

	"go.uber.org/zap"
)

const (
	headerTransmissionID   = "Paypal-Transmission-Id"
	headerTransmissionTime = "Paypal-Transmission-Time"
	headerTransmissionSig  = "Paypal-Transmission-Sig"
	headerAuthAlgo         = "Paypal-Auth-Algo"
)

var paypalRequiredHeaders = []string{
	headerTransmissionID,
	headerTransmissionTime,
	headerTransmissionSig,
	headerAuthAlgo,
}

// VerifyWebhook authenticates an inbound PayPal webhook delivery. The
// signature base string is
//
//	transmissionID|transmissionTime|webhookID|crc32(body)
//
// signed with HMAC-SHA256 under the shared webhook secret and base64 encoded.
// Verification fails closed: a missing header, a signature mismatch or an
// unparseable body all reject the delivery.
func (c *PayPalClient) VerifyWebhook(body []byte, header http.Header) (*PayPalWebhookEvent, error) {
	for _, h := range paypalRequiredHeaders {
		if header.Get(h) == "" {
			c.logger.Warn("PayPal webhook missing required header", zap.String("header", h))
			return nil, fmt.Errorf("%w: missing required header %s", ErrSignatureInvalid, h)
		}
	}

	transmissionID := header.Get(headerTransmissionID)
	transmissionTime := header.Get(headerTransmissionTime)
	transmissionSig := header.Get(headerTransmissionSig)

	base := fmt.Sprintf("%s|%s|%s|%d", transmissionID, transmissionTime, c.webhookID, crc32.ChecksumIEEE(body))
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write([]byte(base))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(transmissionSig)) {
		c.logger.Warn("PayPal webhook signature mismatch", zap.String("transmission_id", transmissionID))
		return nil, ErrSignatureInvalid
	}

	var event PayPalWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: malformed payload", ErrSignatureInvalid)
	}
	return &event, nil
}
