package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stakeledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// webhookRetryIntervals spaces the redelivery attempts of a failed
// notification.
var webhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.EventNotifier: a best-effort, signed POST
// of every committed event to a configured subscriber URL. Delivery happens
// after commit and never affects the outcome of the ledger operation; no
// ledger logic depends on events being read.
type WebhookNotifier struct {
	url        string
	secret     string
	sigSvc     *HMACSignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookNotifier creates a webhook notifier. Returns nil when url is
// empty, which disables notifications in the services.
func NewWebhookNotifier(url, secret string, httpClient HTTPClient, log zerolog.Logger) *WebhookNotifier {
	if url == "" {
		return nil
	}
	return &WebhookNotifier{
		url:        url,
		secret:     secret,
		sigSvc:     NewHMACSignatureService(),
		httpClient: httpClient,
		log:        log,
	}
}

// Notify delivers the event asynchronously with retries.
func (n *WebhookNotifier) Notify(ctx context.Context, event *domain.Event) {
	payloadBytes, err := json.Marshal(event)
	if err != nil {
		n.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("webhook: failed to marshal event")
		return
	}
	signature := n.sigSvc.Sign(n.secret, string(payloadBytes))

	go n.deliverWithRetries(payloadBytes, signature, event.ID.String())
}

func (n *WebhookNotifier) deliverWithRetries(payload []byte, signature, eventID string) {
	for attempt := 0; attempt <= len(webhookRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(webhookRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(payload))
		if err != nil {
			n.log.Error().Err(err).Str("event_id", eventID).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Ledger-Signature", signature)

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.log.Warn().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			n.log.Debug().Str("event_id", eventID).Int("attempt", attempt+1).Msg("webhook: delivered")
			return
		}
		n.log.Warn().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}
	n.log.Error().Str("event_id", eventID).Msg("webhook: all retry attempts exhausted")
}
