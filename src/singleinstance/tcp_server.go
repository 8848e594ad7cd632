package singleinstance

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	residentHost = "127.0.0.1"
	pingRequest  = "PING\n"
	pongResponse = "PONG\n"
	okResponse   = "OK\n"
	errResponse  = "ERROR\n"
)

// tcpServer implements Server over TCP loopback.
type tcpServer struct {
	lis       net.Listener
	incoming  chan Request
	port      int
	closeOnce sync.Once
}

func newTcpServer() Server { return &tcpServer{incoming: make(chan Request, 8)} }

// Start binds ONLY the start port of the configured range. If occupied, fail.
func (s *tcpServer) Start(ctx context.Context) error {
	if s.lis != nil {
		return nil
	}
	start, _ := getPortRange()
	addr := fmt.Sprintf("%s:%d", residentHost, start)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Printf("singleinstance: failed to bind %s: %v", addr, err)
		return err
	}
	s.lis = lis
	s.port = start
	log.Printf("singleinstance: listening on %s", addr)
	go s.acceptLoop(ctx, lis)
	return nil
}

// Port returns the bound port (0 if not started).
func (s *tcpServer) Port() int { return s.port }

func (s *tcpServer) acceptLoop(ctx context.Context, lis net.Listener) {
	for {
		c, err := lis.Accept()
		if err != nil {
			return
		}
		if !s.handle(ctx, c) {
			return
		}
	}
}

// handle answers one connection; it returns false once ctx is done.
func (s *tcpServer) handle(ctx context.Context, c net.Conn) bool {
	defer c.Close()
	remote := c.RemoteAddr().String()
	_ = c.SetDeadline(time.Now().Add(3 * time.Second))
	line, _ := bufio.NewReader(c).ReadString('\n')
	bw := bufio.NewWriter(c)
	defer bw.Flush()

	if line == pingRequest {
		log.Printf("singleinstance: PING from %s -> PONG", remote)
		_, _ = bw.WriteString(pongResponse)
		return true
	}

	cmd := strings.TrimSpace(line)
	if cmd != CommandShow {
		log.Printf("singleinstance: unknown request %q from %s", cmd, remote)
		_, _ = bw.WriteString(errResponse + "unknown command")
		return true
	}
	log.Printf("singleinstance: %s from %s", cmd, remote)
	select {
	case s.incoming <- Request{Command: cmd}:
		_, _ = bw.WriteString(okResponse)
		return true
	case <-ctx.Done():
		_, _ = bw.WriteString(errResponse + "shutting down")
		return false
	}
}

func (s *tcpServer) Next(ctx context.Context) (Request, error) {
	select {
	case <-ctx.Done():
		return Request{}, ctx.Err()
	case req := <-s.incoming:
		return req, nil
	}
}

func (s *tcpServer) Close() error {
	s.closeOnce.Do(func() {
		if s.lis != nil {
			_ = s.lis.Close()
		}
	})
	return nil
}
