package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"booking-service/client"

	"github.com/stretchr/testify/assert"
)

func statusServer(statuses ...string) (*httptest.Server, *int32) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		idx := int(n) - 1
		if idx >= len(statuses) {
			idx = len(statuses) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"data":{"bookingId":"b1","status":%q}}`, statuses[idx])
	}))
	return srv, &calls
}

func TestPoll_ReturnsWhenConfirmed(t *testing.T) {
	srv, calls := statusServer("PENDING_PAYMENT", "PENDING_PAYMENT", "CONFIRMED")
	defer srv.Close()

	p := client.NewStatusPoller(srv.URL)
	p.Interval = 10 * time.Millisecond
	p.Timeout = 2 * time.Second

	status, err := p.Poll(context.Background(), "b1")
	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", status)
	assert.GreaterOrEqual(t, atomic.LoadInt32(calls), int32(3))
}

func TestPoll_ReturnsWhenFailed(t *testing.T) {
	srv, _ := statusServer("FAILED")
	defer srv.Close()

	p := client.NewStatusPoller(srv.URL)
	p.Interval = 10 * time.Millisecond
	p.Timeout = 2 * time.Second

	status, err := p.Poll(context.Background(), "b1")
	assert.NoError(t, err)
	assert.Equal(t, "FAILED", status)
}

func TestPoll_TimesOutWhileStillPending(t *testing.T) {
	srv, _ := statusServer("PENDING_PAYMENT")
	defer srv.Close()

	p := client.NewStatusPoller(srv.URL)
	p.Interval = 10 * time.Millisecond
	p.Timeout = 100 * time.Millisecond

	_, err := p.Poll(context.Background(), "b1")
	assert.ErrorIs(t, err, client.ErrPollTimeout)
}

func TestPoll_SurvivesTransientServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":{"bookingId":"b1","status":"CONFIRMED"}}`)
	}))
	defer srv.Close()

	p := client.NewStatusPoller(srv.URL)
	p.Interval = 10 * time.Millisecond
	p.Timeout = 2 * time.Second

	status, err := p.Poll(context.Background(), "b1")
	assert.NoError(t, err)
	assert.Equal(t, "CONFIRMED", status)
}
