package main

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"crosshair-overlay/src/singleinstance"
)

type fakeClient struct {
	delegated bool
	err       error
	called    bool
}

func (f *fakeClient) TryShow(ctx context.Context) (bool, error) {
	f.called = true
	return f.delegated, f.err
}

func TestDelegateToResident(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
		exit   bool
	}{
		{"resident shows settings", &fakeClient{delegated: true}, true},
		{"no resident", &fakeClient{}, false},
		{"resident answered but SHOW failed", &fakeClient{delegated: true, err: errors.New("reset")}, true},
		{"scan error without resident", &fakeClient{err: errors.New("busy")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := delegateToResident(context.Background(), tt.client)
			if !tt.client.called {
				t.Fatal("Expected client.TryShow to be called")
			}
			if got != tt.exit {
				t.Fatalf("Expected exit=%v, got %v", tt.exit, got)
			}
		})
	}
}

type fakeSource struct {
	reqs []singleinstance.Request
}

func (f *fakeSource) Next(ctx context.Context) (singleinstance.Request, error) {
	if len(f.reqs) == 0 {
		<-ctx.Done()
		return singleinstance.Request{}, ctx.Err()
	}
	req := f.reqs[0]
	f.reqs = f.reqs[1:]
	return req, nil
}

func TestServeShowRequests(t *testing.T) {
	src := &fakeSource{reqs: []singleinstance.Request{
		{Command: singleinstance.CommandShow},
		{Command: "BOGUS"},
		{Command: singleinstance.CommandShow},
	}}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	shown := 0
	serveShowRequests(ctx, src, func() { shown++ })

	if shown != 2 {
		t.Errorf("Expected 2 show calls, got %d", shown)
	}
}

func TestWindowOptions(t *testing.T) {
	bounds := image.Rect(0, 0, 1920, 1080)
	opts := windowOptions(bounds)

	if opts.Bounds != bounds {
		t.Errorf("Expected bounds %v, got %v", bounds, opts.Bounds)
	}
	if opts.Title != appName {
		t.Errorf("Expected title %q, got %q", appName, opts.Title)
	}
	if opts.ClickThrough == nil {
		t.Error("Expected a click-through adapter")
	}
}
