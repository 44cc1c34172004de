// Package client provides the booking-status poller used by checkout UIs
// while they wait for the payment webhook to land server-side.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrPollTimeout means the booking never reached a terminal status within the
// polling window. It is not evidence of failure — webhook delivery may simply
// be delayed — so callers should fall back to manual verification instead of
// reporting the payment as failed.
var ErrPollTimeout = errors.New("booking status polling timed out; verify manually")

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 2 * time.Minute
)

type statusResponse struct {
	Success bool `json:"success"`
	Data    struct {
		BookingID string `json:"bookingId"`
		Status    string `json:"status"`
	} `json:"data"`
	Error string `json:"error"`
}

// StatusPoller polls a booking until it leaves PENDING_PAYMENT. It is purely
// read-only; it never cancels or influences server-side processing.
type StatusPoller struct {
	BaseURL  string
	Interval time.Duration
	Timeout  time.Duration
	HTTP     *http.Client
}

func NewStatusPoller(baseURL string) *StatusPoller {
	return &StatusPoller{
		BaseURL:  baseURL,
		Interval: DefaultPollInterval,
		Timeout:  DefaultPollTimeout,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Poll fetches the booking status every Interval until a terminal status is
// observed or Timeout elapses, returning the final status. A transient fetch
// error does not abort the loop; the next tick retries.
func (p *StatusPoller) Poll(ctx context.Context, bookingID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		status, err := p.fetchStatus(ctx, bookingID)
		if err == nil && isTerminal(status) {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return "", ErrPollTimeout
		case <-ticker.C:
		}
	}
}

func (p *StatusPoller) fetchStatus(ctx context.Context, bookingID string) (string, error) {
	url := fmt.Sprintf("%s/api/bookings/%s", p.BaseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Data.Status, nil
}

func isTerminal(status string) bool {
	switch status {
	case "CONFIRMED", "CANCELLED", "FAILED":
		return true
	}
	return false
}
