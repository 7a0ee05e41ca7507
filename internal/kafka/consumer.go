package kafka

import (
	"context"
	"encoding/json"
	"log"

	"graph_service/internal/events"
	"graph_service/internal/redis"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	projectReader *kafka.Reader
	graphReader   *kafka.Reader
	redisService  *redis.Service
}

// NewConsumer creates readers for both topics sharing one consumer group
func NewConsumer(brokers []string, groupID string, redisService *redis.Service) *Consumer {
	projectReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.ProjectActivityTopic,
	})

	graphReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   events.GraphChangesTopic,
	})

	return &Consumer{
		projectReader: projectReader,
		graphReader:   graphReader,
		redisService:  redisService,
	}
}

// StartProjectEventConsumer consumes project events and keeps the cache
// in step with project mutations
func (c *Consumer) StartProjectEventConsumer(ctx context.Context) {
	log.Printf("Starting consumer for topic %s", events.ProjectActivityTopic)
	for {
		message, err := c.projectReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Failed to read project event: %v", err)
			continue
		}

		var event events.ProjectEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Failed to unmarshal project event: %v", err)
			continue
		}

		log.Printf("Consumed project event: %s for project %s", event.EventType, event.ProjectID)
		c.handleProjectEvent(ctx, &event)
	}
}

// StartGraphEventConsumer consumes graph entity events and invalidates
// the cached metadata of affected entities
func (c *Consumer) StartGraphEventConsumer(ctx context.Context) {
	log.Printf("Starting consumer for topic %s", events.GraphChangesTopic)
	for {
		message, err := c.graphReader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Failed to read graph event: %v", err)
			continue
		}

		var event events.GraphEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Failed to unmarshal graph event: %v", err)
			continue
		}

		log.Printf("Consumed graph event: %s for %s %s", event.EventType, event.EntityType, event.EntityID)
		c.handleGraphEvent(ctx, &event)
	}
}

func (c *Consumer) handleProjectEvent(ctx context.Context, event *events.ProjectEvent) {
	if c.redisService == nil {
		return
	}

	projectID, err := uuid.Parse(event.ProjectID)
	if err != nil {
		log.Printf("Invalid project ID in event: %s", event.ProjectID)
		return
	}

	switch event.EventType {
	case events.ProjectUpdated, events.ProjectDeleted, events.ProjectImported:
		if err := c.redisService.InvalidateProjectMetadata(ctx, projectID); err != nil {
			log.Printf("Failed to invalidate project cache for %s: %v", projectID, err)
		}
	}
}

func (c *Consumer) handleGraphEvent(ctx context.Context, event *events.GraphEvent) {
	if c.redisService == nil {
		return
	}

	projectID, err := uuid.Parse(event.ProjectID)
	if err != nil {
		log.Printf("Invalid project ID in event: %s", event.ProjectID)
		return
	}

	// Any change to a node, link or attachment makes the cached project
	// snapshot stale.
	if err := c.redisService.InvalidateProjectMetadata(ctx, projectID); err != nil {
		log.Printf("Failed to invalidate project cache for %s: %v", projectID, err)
	}

	if event.EntityType == events.EntityTypeNode {
		nodeID, err := uuid.Parse(event.EntityID)
		if err != nil {
			log.Printf("Invalid node ID in event: %s", event.EntityID)
			return
		}
		if err := c.redisService.InvalidateNodeMetadata(ctx, nodeID); err != nil {
			log.Printf("Failed to invalidate node cache for %s: %v", nodeID, err)
		}
	}
}

// Close closes both readers
func (c *Consumer) Close() error {
	var err1, err2 error
	if c.projectReader != nil {
		err1 = c.projectReader.Close()
	}
	if c.graphReader != nil {
		err2 = c.graphReader.Close()
	}

	if err1 != nil {
		return err1
	}
	return err2
}
