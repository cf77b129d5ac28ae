package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"vidtube/internal/infra/kafka"
	"vidtube/pkg/logger"

	"go.uber.org/zap"
)

// ESVideoDoc is the video document stored in the search index.
type ESVideoDoc struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Thumbnail   string   `json:"thumbnail"`
	VideoFile   string   `json:"video_file"`
	Duration    int      `json:"duration"`
	IsPublished bool     `json:"is_published"`
	CreatedAt   int64    `json:"created_at"`
}

// ApplyIndexEvent applies one index event coming off the Kafka topic.
func ApplyIndexEvent(ctx context.Context, event *kafka.VideoIndexEvent) error {
	switch event.Action {
	case kafka.IndexActionDelete:
		return DeleteVideoDoc(ctx, event.VideoID)
	case kafka.IndexActionUpsert:
		doc := &ESVideoDoc{
			ID:          event.VideoID,
			OwnerID:     event.OwnerID,
			Title:       event.Title,
			Description: event.Description,
			Tags:        event.Tags,
			Thumbnail:   event.Thumbnail,
			VideoFile:   event.VideoFile,
			Duration:    event.Duration,
			IsPublished: event.IsPublished,
			CreatedAt:   event.CreatedAt,
		}
		return IndexVideoDoc(ctx, doc)
	default:
		return fmt.Errorf("unknown index action: %s", event.Action)
	}
}

// IndexVideoDoc writes one video document into the index.
func IndexVideoDoc(ctx context.Context, doc *ESVideoDoc) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	resp, err := Index(ctx, videosIndexName(), doc.ID, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.String("video_id", doc.ID))
	return nil
}

// DeleteVideoDoc removes one video document. Missing documents are not
// an error, a delete event can arrive before the upsert was indexed.
func DeleteVideoDoc(ctx context.Context, videoID string) error {
	resp, err := Delete(ctx, videosIndexName(), videoID)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// SearchVideos queries published videos matching the text and returns
// the raw documents with the total hit count.
func SearchVideos(ctx context.Context, query string, skip, limit int) ([]ESVideoDoc, int64, error) {
	q := map[string]interface{}{
		"from": skip,
		"size": limit,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"title^3", "tags^2", "description"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"is_published": true},
				},
			},
		},
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, 0, err
	}

	resp, err := Search(ctx, videosIndexName(), bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, fmt.Errorf("search failed: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ESVideoDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("decode search response: %w", err)
	}

	docs := make([]ESVideoDoc, 0, len(result.Hits.Hits))
	for _, h := range result.Hits.Hits {
		docs = append(docs, h.Source)
	}

	return docs, result.Hits.Total.Value, nil
}
