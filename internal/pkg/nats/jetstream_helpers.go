package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/cabbooking/internal/pkg/constants"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name       string
	Subjects   []string
	Retention  jetstream.RetentionPolicy
	Storage    jetstream.StorageType
	Replicas   int
	MaxAge     time.Duration
	MaxBytes   int64
	MaxMsgs    int64
	Discard    jetstream.DiscardPolicy
	Duplicates time.Duration
}

func (s StreamConfig) toJetStream() jetstream.StreamConfig {
	return jetstream.StreamConfig{
		Name:       s.Name,
		Subjects:   s.Subjects,
		Retention:  s.Retention,
		Storage:    s.Storage,
		Replicas:   s.Replicas,
		MaxAge:     s.MaxAge,
		MaxBytes:   s.MaxBytes,
		MaxMsgs:    s.MaxMsgs,
		Discard:    s.Discard,
		Duplicates: s.Duplicates,
	}
}

// ConsumerConfig describes a durable pull consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	DeliverPolicy jetstream.DeliverPolicy
	AckPolicy     jetstream.AckPolicy
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:       c.ConsumerName,
		Name:          c.ConsumerName,
		FilterSubject: c.FilterSubject,
		DeliverPolicy: c.DeliverPolicy,
		AckPolicy:     c.AckPolicy,
		AckWait:       c.AckWait,
		MaxDeliver:    c.MaxDeliver,
		MaxAckPending: c.MaxAckPending,
	}
}

// StreamConfigBuilder helps build stream configurations
type StreamConfigBuilder struct {
	config StreamConfig
}

// NewStreamConfigBuilder creates a stream builder with file storage and limits retention
func NewStreamConfigBuilder(name string) *StreamConfigBuilder {
	return &StreamConfigBuilder{
		config: StreamConfig{
			Name:       name,
			Retention:  jetstream.LimitsPolicy,
			Storage:    jetstream.FileStorage,
			Replicas:   1,
			MaxAge:     24 * time.Hour,
			MaxBytes:   100 * 1024 * 1024, // 100MB
			MaxMsgs:    1000000,
			Discard:    jetstream.DiscardOld,
			Duplicates: 2 * time.Minute,
		},
	}
}

// WithSubjects sets the subjects for the stream
func (b *StreamConfigBuilder) WithSubjects(subjects ...string) *StreamConfigBuilder {
	b.config.Subjects = subjects
	return b
}

// WithRetention sets the retention policy
func (b *StreamConfigBuilder) WithRetention(retention jetstream.RetentionPolicy) *StreamConfigBuilder {
	b.config.Retention = retention
	return b
}

// WithMaxAge sets the maximum age for messages
func (b *StreamConfigBuilder) WithMaxAge(maxAge time.Duration) *StreamConfigBuilder {
	b.config.MaxAge = maxAge
	return b
}

// WithDuplicateWindow sets how long message ids are remembered
func (b *StreamConfigBuilder) WithDuplicateWindow(window time.Duration) *StreamConfigBuilder {
	b.config.Duplicates = window
	return b
}

// Build returns the stream configuration
func (b *StreamConfigBuilder) Build() StreamConfig {
	return b.config
}

// ConsumerConfigBuilder helps build consumer configurations
type ConsumerConfigBuilder struct {
	config ConsumerConfig
}

// NewConsumerConfigBuilder creates a consumer builder with explicit acks and unlimited redelivery
func NewConsumerConfigBuilder(streamName, consumerName string) *ConsumerConfigBuilder {
	return &ConsumerConfigBuilder{
		config: ConsumerConfig{
			StreamName:    streamName,
			ConsumerName:  consumerName,
			DeliverPolicy: jetstream.DeliverAllPolicy,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       30 * time.Second,
			MaxDeliver:    -1,
			MaxAckPending: 1000,
		},
	}
}

// WithSubject sets the filter subject
func (b *ConsumerConfigBuilder) WithSubject(subject string) *ConsumerConfigBuilder {
	b.config.FilterSubject = subject
	return b
}

// WithAckWait sets the acknowledgment wait time
func (b *ConsumerConfigBuilder) WithAckWait(ackWait time.Duration) *ConsumerConfigBuilder {
	b.config.AckWait = ackWait
	return b
}

// WithMaxDeliver sets the maximum delivery attempts, -1 for unlimited
func (b *ConsumerConfigBuilder) WithMaxDeliver(maxDeliver int) *ConsumerConfigBuilder {
	b.config.MaxDeliver = maxDeliver
	return b
}

// Build returns the consumer configuration
func (b *ConsumerConfigBuilder) Build() ConsumerConfig {
	return b.config
}

// NotificationStreamConfig is the work-queue stream holding every notification
// event. Cab-ready events wait in it until due, so the age limit is generous.
func NotificationStreamConfig() StreamConfig {
	return NewStreamConfigBuilder(constants.StreamNotifications).
		WithSubjects(constants.SubjectNotificationsAll).
		WithRetention(jetstream.WorkQueuePolicy).
		WithMaxAge(7 * 24 * time.Hour).
		WithDuplicateWindow(10 * time.Minute).
		Build()
}

// NotificationConsumerConfigs returns one durable consumer per notification subject
func NotificationConsumerConfigs() []ConsumerConfig {
	return []ConsumerConfig{
		NewConsumerConfigBuilder(constants.StreamNotifications, constants.ConsumerDiscountNotifier).
			WithSubject(constants.SubjectDiscountEarned).
			Build(),
		NewConsumerConfigBuilder(constants.StreamNotifications, constants.ConsumerCabReadyNotifier).
			WithSubject(constants.SubjectCabReady).
			Build(),
	}
}
