package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestDrainThenCloseWaitsForRequests(t *testing.T) {
	var closed atomic.Bool
	var closedDuringRequest atomic.Bool
	started := make(chan struct{})

	srv := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			time.Sleep(100 * time.Millisecond)
			closedDuringRequest.Store(closed.Load())
			w.WriteHeader(http.StatusOK)
		}),
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go srv.Serve(ln)

	done := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String())
		if err == nil {
			resp.Body.Close()
		}
		done <- err
	}()
	<-started

	op := drainThenClose(srv, func() error {
		closed.Store(true)
		return nil
	})
	if err := op(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if closedDuringRequest.Load() {
		t.Error("store closed before the request finished")
	}
	if !closed.Load() {
		t.Error("store was not closed")
	}
}

func TestDrainThenCloseReportsCloseError(t *testing.T) {
	srv := &http.Server{}
	closeErr := errors.New("database is locked")

	err := drainThenClose(srv, func() error { return closeErr })(context.Background())
	if !errors.Is(err, closeErr) {
		t.Errorf("expected %v, got %v", closeErr, err)
	}
}
