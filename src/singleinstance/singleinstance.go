package singleinstance

// This file defines the API for single-instance ownership and show-settings delegation.

import (
	"context"
)

// Commands a second launch can send to the resident process.
const (
	CommandShow = "SHOW"
)

// Server owns the TCP endpoint and answers delegated requests.
type Server interface {
	// Start begins listening on the first port of the configured range.
	Start(ctx context.Context) error
	// Port returns the bound TCP port, or 0 if not started.
	Port() int
	// Next returns the next accepted request, or ctx error.
	Next(ctx context.Context) (Request, error)
	// Close releases ownership and stops accepting clients.
	Close() error
}

// Request is one delegated command from another launch.
type Request struct {
	Command string
}

// Client asks a resident process to act instead of starting a second overlay.
type Client interface {
	// TryShow scans the port range and asks the resident to raise its settings panel.
	// If no resident is found, returns delegated=false, err=nil.
	TryShow(ctx context.Context) (delegated bool, err error)
}

// NewServer returns TCP implementation.
func NewServer() Server { return newTcpServer() }

// NewClient returns TCP implementation.
func NewClient() Client { return newTcpClient() }
