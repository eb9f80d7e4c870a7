package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/cabbooking/internal/pkg/logger"
)

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewClient connects to the NATS server at url and opens JetStream
func NewClient(url, name string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// EnsureStream creates the stream or updates it to match config
func (c *Client) EnsureStream(ctx context.Context, config StreamConfig) error {
	_, err := c.js.CreateOrUpdateStream(ctx, config.toJetStream())
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", config.Name, err)
	}
	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))
	return nil
}

// CreateConsumer creates or updates a durable consumer and returns it
func (c *Client) CreateConsumer(ctx context.Context, config ConsumerConfig) (jetstream.Consumer, error) {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s on %s: %w", config.ConsumerName, config.StreamName, err)
	}
	return consumer, nil
}

// Publish stores data on subject. A non-empty msgID lets the stream drop duplicates
// inside its duplicate window.
func (c *Client) Publish(ctx context.Context, subject string, data []byte, msgID string) error {
	var opts []jetstream.PublishOpt
	if msgID != "" {
		opts = append(opts, jetstream.WithMsgID(msgID))
	}

	ack, err := c.js.Publish(ctx, subject, data, opts...)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	if ack.Duplicate {
		logger.Debug("Duplicate message dropped by stream",
			logger.String("subject", subject),
			logger.String("msg_id", msgID))
	}
	return nil
}

// IsConnected reports whether the connection is currently up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains the connection
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			c.conn.Close()
		}
	}
}
