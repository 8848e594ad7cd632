package singleinstance

import (
	"bufio"
	"context"
	"io"
	"net"
	"strconv"
	"time"
)

// detectResidentPort scans the port range and returns (port, true) if a resident responds to PING.
func detectResidentPort(ctx context.Context) (int, bool) {
	port, _, ok := scan(ctx, 300*time.Millisecond)
	return port, ok
}

// scan returns the first port in range whose listener answers PING, and the
// per-connection timeout derived from ctx.
func scan(ctx context.Context, fallback time.Duration) (int, time.Duration, bool) {
	timeout := fallback
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d > 0 {
			timeout = d
		}
	}
	start, end := getPortRange()
	for port := start; port <= end; port++ {
		if ctx.Err() != nil {
			break
		}
		if ping(residentAddr(port), timeout) {
			return port, timeout, true
		}
	}
	return 0, timeout, false
}

func residentAddr(port int) string { return net.JoinHostPort(residentHost, strconv.Itoa(port)) }

func ping(addr string, timeout time.Duration) bool {
	resp, _, err := exchange(addr, pingRequest, timeout)
	return err == nil && resp == pongResponse
}

// exchange sends one request line and returns the status line plus whatever
// the resident wrote after it.
func exchange(addr, line string, timeout time.Duration) (string, []byte, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return "", nil, err
	}
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(timeout))

	w := bufio.NewWriter(conn)
	if _, err := w.WriteString(line); err != nil {
		return "", nil, err
	}
	if err := w.Flush(); err != nil {
		return "", nil, err
	}
	br := bufio.NewReader(conn)
	status, err := br.ReadString('\n')
	if err != nil {
		return "", nil, err
	}
	rest, _ := io.ReadAll(br)
	return status, rest, nil
}
