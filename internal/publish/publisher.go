// Package publish exports completed analysis results to Kafka for downstream
// analytics. Publishing is fire-and-forget; API responses never wait on it.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/spacesedan/reviewsense/internal/metrics"
	"github.com/spacesedan/reviewsense/internal/models"
)

const (
	flushBatchSize = 25
	flushInterval  = 5 * time.Second
)

// ResultEnvelope is the wire record for one exported analysis result.
type ResultEnvelope struct {
	EventID    string                `json:"event_id"`
	Result     models.AnalysisResult `json:"result"`
	AnalyzedAt time.Time             `json:"analyzed_at"`
}

// ResultPublisher buffers result envelopes and flushes them to a Kafka topic
// on size or interval.
type ResultPublisher struct {
	producer *kafka.Producer
	topic    string
	buffer   *buffer[ResultEnvelope]
}

func NewResultPublisher(broker, topic string) (*ResultPublisher, error) {
	slog.Info("[ResultPublisher] Initializing Kafka producer",
		slog.String("broker", broker),
		slog.String("topic", topic))

	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": broker,
		"security.protocol": "PLAINTEXT",
		"acks":              "all",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &ResultPublisher{
		producer: producer,
		topic:    topic,
		buffer:   newBuffer[ResultEnvelope](flushBatchSize),
	}, nil
}

// Enqueue records one result for export. Never blocks the caller.
func (p *ResultPublisher) Enqueue(result models.AnalysisResult) {
	p.buffer.Add(ResultEnvelope{
		EventID:    uuid.NewString(),
		Result:     result,
		AnalyzedAt: time.Now().UTC(),
	})
	if p.buffer.Size() >= flushBatchSize {
		go p.flush()
	}
}

// Start runs the flush loop until ctx is cancelled.
func (p *ResultPublisher) Start(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("[ResultPublisher] Stopping flush loop")
			p.flush()
			return
		case <-ticker.C:
			p.flush()
		}
	}
}

func (p *ResultPublisher) flush() {
	batch := p.buffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for _, envelope := range batch {
		value, err := json.Marshal(envelope)
		if err != nil {
			slog.Warn("[ResultPublisher] Failed to serialize result envelope",
				slog.String("error", err.Error()))
			metrics.PublishedResultsTotal.WithLabelValues("serialize_error").Inc()
			continue
		}

		msg := &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
			Key:            []byte(envelope.EventID),
			Value:          value,
		}
		if err := p.producer.Produce(msg, nil); err != nil {
			slog.Warn("[ResultPublisher] Failed to produce message",
				slog.String("error", err.Error()))
			metrics.PublishedResultsTotal.WithLabelValues("produce_error").Inc()
			continue
		}
		metrics.PublishedResultsTotal.WithLabelValues("ok").Inc()
	}

	slog.Debug("[ResultPublisher] Flushed result batch",
		slog.Int("batch_size", len(batch)))
}

// Close flushes outstanding deliveries and shuts the producer down.
func (p *ResultPublisher) Close() {
	slog.Info("[ResultPublisher] Shutting down Kafka producer...")
	p.flush()
	if remaining := p.producer.Flush(5000); remaining > 0 {
		slog.Warn("[ResultPublisher] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
}
