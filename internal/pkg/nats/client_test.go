package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runJetStreamServer(t *testing.T) *server.Server {
	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()
	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)
	return srv
}

func setupClient(t *testing.T) *Client {
	srv := runJetStreamServer(t)
	client, err := NewClient(srv.ClientURL(), "test")
	require.NoError(t, err)
	t.Cleanup(client.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.EnsureStream(ctx, NotificationStreamConfig()))
	return client
}

func TestClient_EnsureStreamIsIdempotent(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.EnsureStream(ctx, NotificationStreamConfig()))

	stream, err := client.JetStream().Stream(ctx, constants.StreamNotifications)
	require.NoError(t, err)
	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, jetstream.WorkQueuePolicy, info.Config.Retention)
	assert.True(t, client.IsConnected())
}

func TestClient_PublishDropsDuplicateMsgID(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	producer := NewProducer(client)
	payload := map[string]string{"user_id": "user-1"}
	require.NoError(t, producer.Publish(ctx, constants.SubjectDiscountEarned, "discount-user-1", payload))
	require.NoError(t, producer.Publish(ctx, constants.SubjectDiscountEarned, "discount-user-1", payload))

	stream, err := client.JetStream().Stream(ctx, constants.StreamNotifications)
	require.NoError(t, err)
	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestPullConsumer_DeliversAndAcks(t *testing.T) {
	client := setupClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configs := NotificationConsumerConfigs()
	consumer, err := client.CreateConsumer(ctx, configs[0])
	require.NoError(t, err)

	require.NoError(t, NewProducer(client).Publish(ctx, constants.SubjectDiscountEarned, "m-1",
		map[string]string{"user_id": "user-7"}))

	var (
		mu   sync.Mutex
		seen []string
	)
	handler := func(_ context.Context, data []byte) error {
		var body map[string]string
		if err := json.Unmarshal(data, &body); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		mu.Lock()
		seen = append(seen, body["user_id"])
		mu.Unlock()
		cancel()
		return nil
	}

	loop := NewPullConsumer(consumer, handler, PullConsumerConfig{
		Name:      configs[0].ConsumerName,
		BatchSize: 1,
		FetchWait: 200 * time.Millisecond,
		Backoff:   50 * time.Millisecond,
	})

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pull consumer did not stop")
	}

	mu.Lock()
	assert.Equal(t, []string{"user-7"}, seen)
	mu.Unlock()

	// acked on a work-queue stream means removed
	infoCtx, infoCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer infoCancel()
	stream, err := client.JetStream().Stream(infoCtx, constants.StreamNotifications)
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		info, err := stream.Info(infoCtx)
		return err == nil && info.State.Msgs == 0
	}, 2*time.Second, 50*time.Millisecond)
}
