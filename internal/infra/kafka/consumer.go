package kafka

import (
	"context"
	"encoding/json"
	"time"

	"vidtube/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// IndexEventHandler processes one video index event.
type IndexEventHandler func(event *VideoIndexEvent) error

// StartVideoIndexConsumer runs the index event consumer until ctx is
// cancelled. Blocking, run it in a goroutine.
func StartVideoIndexConsumer(ctx context.Context, brokers []string, topic, groupID string, handler IndexEventHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka video index consumer stopped")
	}()

	logger.Info("Kafka video index consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var event VideoIndexEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("Failed to unmarshal video index event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(&event); err != nil {
			logger.Error("Failed to handle video index event",
				zap.String("video_id", event.VideoID),
				zap.String("action", event.Action),
				zap.Error(err),
			)
		}
	}
}
