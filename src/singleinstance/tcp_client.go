package singleinstance

import (
	"context"
	"errors"
	"log"
	"time"
)

type tcpClient struct{}

func newTcpClient() Client { return &tcpClient{} }

func (c *tcpClient) TryShow(ctx context.Context) (bool, error) {
	port, timeout, ok := scan(ctx, 2*time.Second)
	if !ok {
		return false, nil
	}
	log.Printf("singleinstance: resident found on port %d, sending %s", port, CommandShow)
	return true, sendCommand(residentAddr(port), CommandShow, timeout)
}

func sendCommand(addr, cmd string, timeout time.Duration) error {
	status, rest, err := exchange(addr, cmd+"\n", timeout)
	if err != nil {
		return err
	}
	switch status {
	case okResponse:
		return nil
	case errResponse:
		return errors.New(string(rest))
	default:
		return errors.New("unexpected resident response: " + status)
	}
}
