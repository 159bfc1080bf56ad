package services

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"

	"github.com/sbilibin2017/gw-image-vault/internal/logger"
	"github.com/sbilibin2017/gw-image-vault/internal/models"
)

const (
	eventSource  = "gw-image-vault"
	eventVersion = "1.0.0"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher records domain events without blocking the caller.
type EventPublisher interface {
	PublishImageEvent(username, imageName, eventType string, backend models.Backend)
	PublishUserEvent(username, eventType string)
}

// NotifierConfig sizes the pool and names the topics.
type NotifierConfig struct {
	ImageTopic      string
	UserTopic       string
	Workers         int
	QueueSize       int
	BreakerCooldown time.Duration
	SendTimeout     time.Duration
}

// DefaultNotifierConfig returns the stock topics and pool sizes.
func DefaultNotifierConfig() NotifierConfig {
	return NotifierConfig{
		ImageTopic:      "image-events",
		UserTopic:       "user-events",
		Workers:         2,
		QueueSize:       1000,
		BreakerCooldown: 5 * time.Minute,
		SendTimeout:     10 * time.Second,
	}
}

// Notifier publishes events to Kafka from a bounded queue drained by a
// fixed worker pool. Sends go through a circuit breaker that opens on the
// first failure and lets one attempt through after the cooldown.
type Notifier struct {
	writer  KafkaWriter
	cfg     NotifierConfig
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time

	jobs   chan kafka.Message
	mu     sync.RWMutex
	closed bool
	start  sync.Once
	wg     sync.WaitGroup
}

// NewNotifier creates a Notifier. A nil writer turns publishing into logging.
func NewNotifier(writer KafkaWriter, cfg NotifierConfig) *Notifier {
	def := DefaultNotifierConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = def.BreakerCooldown
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = def.SendTimeout
	}

	n := &Notifier{
		writer: writer,
		cfg:    cfg,
		now:    time.Now,
		jobs:   make(chan kafka.Message, cfg.QueueSize),
	}
	n.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kafka",
		MaxRequests: 1,
		Timeout:     cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 1
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Log.Warnw("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return n
}

// Start launches the workers. Calling it more than once has no effect.
func (n *Notifier) Start() {
	n.start.Do(func() {
		for i := 0; i < n.cfg.Workers; i++ {
			n.wg.Add(1)
			go n.work()
		}
	})
}

// Stop refuses new events, drains the queue and waits for the workers or ctx.
func (n *Notifier) Stop(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.jobs)
	}
	n.mu.Unlock()

	// drain with the workers that never started
	n.Start()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *Notifier) PublishImageEvent(username, imageName, eventType string, backend models.Backend) {
	n.enqueue(n.cfg.ImageTopic, models.Event{
		Username:      username,
		EventType:     eventType,
		EventCategory: models.EventCategoryImage,
		ImageName:     imageName,
		Backend:       backend,
	})
}

func (n *Notifier) PublishUserEvent(username, eventType string) {
	n.enqueue(n.cfg.UserTopic, models.Event{
		Username:      username,
		EventType:     eventType,
		EventCategory: models.EventCategoryUser,
	})
}

func (n *Notifier) enqueue(topic string, event models.Event) {
	if n.writer == nil {
		logger.Log.Infow("Kafka disabled, skipping event", "event_type", event.EventType, "username", event.Username)
		return
	}

	event.Timestamp = n.now().UTC()
	event.Source = eventSource
	event.Version = eventVersion

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_type", event.EventType, "error", err)
		return
	}
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(event.Username),
		Value: data,
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		logger.Log.Warnw("Notifier stopped, dropping event", "event_type", event.EventType, "username", event.Username)
		return
	}
	select {
	case n.jobs <- msg:
	default:
		logger.Log.Warnw("Event queue full, dropping event", "event_type", event.EventType, "username", event.Username)
	}
}

func (n *Notifier) work() {
	defer n.wg.Done()
	for msg := range n.jobs {
		n.send(msg)
	}
}

func (n *Notifier) send(msg kafka.Message) {
	_, err := n.breaker.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), n.cfg.SendTimeout)
		defer cancel()
		return nil, n.writer.WriteMessages(ctx, msg)
	})
	switch {
	case err == nil:
		logger.Log.Infow("Event published to Kafka", "topic", msg.Topic, "key", string(msg.Key))
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		logger.Log.Warnw("Kafka circuit open, skipping event", "topic", msg.Topic, "key", string(msg.Key))
	default:
		logger.Log.Errorw("Failed to publish event to Kafka", "topic", msg.Topic, "key", string(msg.Key), "error", err)
	}
}

// BreakerState reports the circuit breaker state.
func (n *Notifier) BreakerState() gobreaker.State {
	return n.breaker.State()
}
