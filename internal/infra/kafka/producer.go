package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vidtube/internal/config"
	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// Video index event actions.
const (
	IndexActionUpsert = "upsert"
	IndexActionDelete = "delete"
)

// VideoIndexEvent tells the indexing worker to sync one video document
// in the search index.
type VideoIndexEvent struct {
	Action      string   `json:"action"`
	VideoID     string   `json:"video_id"`
	OwnerID     string   `json:"owner_id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	VideoFile   string   `json:"video_file,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	IsPublished bool     `json:"is_published,omitempty"`
	CreatedAt   int64    `json:"created_at,omitempty"`
}

// InitProducer creates the Kafka producer.
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendVideoIndexEvent publishes a video index event. Keyed by video ID
// so events for the same video stay ordered.
func SendVideoIndexEvent(ctx context.Context, topic string, event *VideoIndexEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video index event: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte("video-" + event.VideoID),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video index event: %w", err)
	}

	logger.Info("Video index event sent",
		zap.String("video_id", event.VideoID),
		zap.String("action", event.Action),
		zap.String("topic", topic),
	)

	return nil
}

// CloseProducer closes the producer.
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
