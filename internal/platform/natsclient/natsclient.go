// Package natsclient wraps a NATS connection with JetStream publishing.
package natsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Config holds NATS connection settings.
type Config struct {
	URL        string
	ClientName string
	// JetStream publishes through JetStream and waits for the stream ack.
	// Core NATS publish is used otherwise.
	JetStream bool
}

// Client publishes messages to NATS.
type Client struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// Connect opens a connection that reconnects indefinitely.
func Connect(cfg Config) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.ClientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	c := &Client{nc: nc}
	if cfg.JetStream {
		js, err := jetstream.New(nc)
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("init jetstream: %w", err)
		}
		c.js = js
	}
	return c, nil
}

// Publish sends data on subject.
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	if c.js != nil {
		_, err := c.js.Publish(ctx, subject, data)
		return err
	}
	return c.nc.Publish(subject, data)
}

// Close drains and closes the connection.
func (c *Client) Close() {
	if c.nc != nil {
		_ = c.nc.Drain()
	}
}
