package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"graph_service/internal/events"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	projectWriter *kafka.Writer
	graphWriter   *kafka.Writer
}

// NewProducer creates a new Kafka producer with writers for different topics
func NewProducer(brokers []string) *Producer {
	// Configure project activity writer
	projectWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.ProjectActivityTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	// Configure graph changes writer
	graphWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        events.GraphChangesTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}

	return &Producer{
		projectWriter: projectWriter,
		graphWriter:   graphWriter,
	}
}

// PublishProjectEvent publishes a project event to the project.activity topic
func (p *Producer) PublishProjectEvent(ctx context.Context, event *events.ProjectEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal project event: %v", err)
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.ProjectID),
		Value: value,
		Time:  event.Timestamp,
	}

	err = p.projectWriter.WriteMessages(ctx, message)
	if err != nil {
		log.Printf("Failed to publish project event: %v", err)
		return err
	}

	log.Printf("Published project event: %s for project %s", event.EventType, event.ProjectID)
	return nil
}

// PublishGraphEvent publishes a graph entity event to the graph.changes topic
func (p *Producer) PublishGraphEvent(ctx context.Context, event *events.GraphEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal graph event: %v", err)
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: value,
		Time:  event.Timestamp,
	}

	err = p.graphWriter.WriteMessages(ctx, message)
	if err != nil {
		log.Printf("Failed to publish graph event: %v", err)
		return err
	}

	log.Printf("Published graph event: %s for %s %s", event.EventType, event.EntityType, event.EntityID)
	return nil
}

// Close closes the Kafka writers
func (p *Producer) Close() error {
	var err1, err2 error
	if p.projectWriter != nil {
		err1 = p.projectWriter.Close()
	}
	if p.graphWriter != nil {
		err2 = p.graphWriter.Close()
	}

	if err1 != nil {
		return err1
	}
	return err2
}
