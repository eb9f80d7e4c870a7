package nats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type fakeMsg struct {
	jetstream.Msg
	data []byte

	mu       sync.Mutex
	acked    bool
	termed   bool
	nakDelay time.Duration
	naked    bool
}

func (m *fakeMsg) Data() []byte    { return m.data }
func (m *fakeMsg) Subject() string { return "notifications.test" }

func (m *fakeMsg) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked = true
	return nil
}

func (m *fakeMsg) Term() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.termed = true
	return nil
}

func (m *fakeMsg) NakWithDelay(d time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.naked = true
	m.nakDelay = d
	return nil
}

type fakeBatch struct {
	jetstream.MessageBatch
	msgs chan jetstream.Msg
}

func newFakeBatch(msgs ...jetstream.Msg) *fakeBatch {
	ch := make(chan jetstream.Msg, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return &fakeBatch{msgs: ch}
}

func (b *fakeBatch) Messages() <-chan jetstream.Msg { return b.msgs }
func (b *fakeBatch) Error() error                   { return nil }

// fakeFetcher serves the queued batches and then cancels the run
type fakeFetcher struct {
	batches []*fakeBatch
	cancel  context.CancelFunc
	calls   int
	failN   int
}

func (f *fakeFetcher) Fetch(batch int, opts ...jetstream.FetchOpt) (jetstream.MessageBatch, error) {
	f.calls++
	if f.failN > 0 {
		f.failN--
		return nil, errors.New("connection closed")
	}
	if len(f.batches) == 0 {
		f.cancel()
		return nil, context.Canceled
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b, nil
}

type retryLater struct{ d time.Duration }

func (e retryLater) Error() string             { return "not due" }
func (e retryLater) RetryAfter() time.Duration { return e.d }

func TestPullConsumer_Run(t *testing.T) {
	ok := &fakeMsg{data: []byte("ok")}
	bad := &fakeMsg{data: []byte("bad")}
	later := &fakeMsg{data: []byte("later")}
	broken := &fakeMsg{data: []byte("broken")}

	handler := func(ctx context.Context, data []byte) error {
		switch string(data) {
		case "ok":
			return nil
		case "bad":
			return fmt.Errorf("decode: %w", models.ErrValidation)
		case "later":
			return fmt.Errorf("deliver: %w", retryLater{d: 42 * time.Second})
		default:
			return errors.New("database unavailable")
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{batches: []*fakeBatch{newFakeBatch(ok, bad, later, broken)}, cancel: cancel}
	consumer := NewPullConsumer(fetcher, handler, PullConsumerConfig{Name: "test", Backoff: 10 * time.Millisecond})

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}

	assert.True(t, ok.acked)
	assert.True(t, bad.termed)
	assert.False(t, bad.acked)
	assert.True(t, later.naked)
	assert.Equal(t, 42*time.Second, later.nakDelay)
	assert.True(t, broken.naked)
	assert.Equal(t, 10*time.Millisecond, broken.nakDelay)
	assert.False(t, broken.acked)
}

func TestPullConsumer_RetriesFetchFailures(t *testing.T) {
	msg := &fakeMsg{data: []byte("ok")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := &fakeFetcher{batches: []*fakeBatch{newFakeBatch(msg)}, cancel: cancel, failN: 3}
	consumer := NewPullConsumer(fetcher, func(ctx context.Context, data []byte) error { return nil },
		PullConsumerConfig{Name: "test", Backoff: time.Millisecond})

	consumer.Run(ctx)

	assert.True(t, msg.acked)
	assert.Equal(t, 5, fetcher.calls)
}

func TestPullConsumer_StopsDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetcher := &fakeFetcher{failN: 1000, cancel: cancel}
	consumer := NewPullConsumer(fetcher, func(ctx context.Context, data []byte) error { return nil },
		PullConsumerConfig{Name: "test", Backoff: time.Hour})

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer kept sleeping after cancellation")
	}
	assert.Equal(t, 1, fetcher.calls)
}

func TestNewPullConsumer_Defaults(t *testing.T) {
	c := NewPullConsumer(&fakeFetcher{}, nil, PullConsumerConfig{})
	assert.Equal(t, 10, c.config.BatchSize)
	assert.Equal(t, 5*time.Second, c.config.FetchWait)
	assert.Equal(t, 5*time.Second, c.config.Backoff)
}
