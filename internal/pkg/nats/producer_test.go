package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/piresc/cabbooking/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subject string
	data    []byte
	msgID   string
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, data []byte, msgID string) error {
	p.subject, p.data, p.msgID = subject, data, msgID
	return p.err
}

func TestProducer_Publish(t *testing.T) {
	t.Run("encodes payload and forwards msg id", func(t *testing.T) {
		pub := &recordingPublisher{}
		producer := NewProducer(pub)

		err := producer.Publish(context.Background(), constants.SubjectDiscountEarned, "discount:u1", map[string]string{"uid": "u1"})
		require.NoError(t, err)

		assert.Equal(t, constants.SubjectDiscountEarned, pub.subject)
		assert.Equal(t, "discount:u1", pub.msgID)
		var decoded map[string]string
		require.NoError(t, json.Unmarshal(pub.data, &decoded))
		assert.Equal(t, "u1", decoded["uid"])
	})

	t.Run("unencodable payload", func(t *testing.T) {
		producer := NewProducer(&recordingPublisher{})
		err := producer.Publish(context.Background(), "s", "", make(chan int))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal message")
	})

	t.Run("publisher error propagates", func(t *testing.T) {
		producer := NewProducer(&recordingPublisher{err: errors.New("no responders")})
		err := producer.Publish(context.Background(), "s", "", "x")
		assert.EqualError(t, err, "no responders")
	})
}

func TestNotificationConfigs(t *testing.T) {
	stream := NotificationStreamConfig()
	assert.Equal(t, constants.StreamNotifications, stream.Name)
	assert.Equal(t, []string{constants.SubjectNotificationsAll}, stream.Subjects)

	consumers := NotificationConsumerConfigs()
	require.Len(t, consumers, 2)
	for _, c := range consumers {
		assert.Equal(t, constants.StreamNotifications, c.StreamName)
		assert.Equal(t, -1, c.MaxDeliver)
	}
	assert.Equal(t, constants.SubjectDiscountEarned, consumers[0].FilterSubject)
	assert.Equal(t, constants.SubjectCabReady, consumers[1].FilterSubject)
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("invalid://address", "test")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}
