package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"stakeledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingHTTPClient struct {
	mu   sync.Mutex
	reqs []*http.Request
	body []string
	done chan struct{}
}

func (c *capturingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, _ := io.ReadAll(req.Body)
	c.reqs = append(c.reqs, req)
	c.body = append(c.body, string(b))
	close(c.done)
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}, nil
}

func TestWebhookNotifier_DeliversSignedEvent(t *testing.T) {
	client := &capturingHTTPClient{done: make(chan struct{})}
	n := NewWebhookNotifier("https://subscriber.example/hook", "hook-secret", client, zerolog.Nop())
	require.NotNil(t, n)

	ev := domain.NewEvent(domain.EventMint, alice, map[string]string{"amount": "100"})
	n.Notify(context.Background(), ev)

	select {
	case <-client.done:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.reqs, 1)
	req := client.reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	sig := req.Header.Get("X-Ledger-Signature")
	require.NotEmpty(t, sig)
	assert.True(t, NewHMACSignatureService().Verify("hook-secret", client.body[0], sig))
}

func TestNewWebhookNotifier_EmptyURLDisabled(t *testing.T) {
	n := NewWebhookNotifier("", "secret", http.DefaultClient, zerolog.Nop())
	assert.Nil(t, n)
}
