package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"graph_service/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Service struct {
	client *redis.Client
}

// NewService creates a new Redis service
func NewService(addr, password string, db int) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return &Service{client: client}
}

// Project Metadata Cache Methods

// SetProjectMetadata caches project metadata
func (s *Service) SetProjectMetadata(ctx context.Context, project *models.Project) error {
	key := fmt.Sprintf("project:%s", project.ID.String())

	data, err := json.Marshal(project)
	if err != nil {
		log.Printf("Failed to marshal project metadata: %v", err)
		return err
	}

	err = s.client.Set(ctx, key, data, 24*time.Hour).Err()
	if err != nil {
		log.Printf("Failed to cache project metadata for %s: %v", project.ID, err)
		return err
	}

	log.Printf("Cached project metadata for %s", project.ID)
	return nil
}

// GetProjectMetadata retrieves project metadata from cache
func (s *Service) GetProjectMetadata(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	key := fmt.Sprintf("project:%s", projectID.String())

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		log.Printf("Failed to get project metadata for %s: %v", projectID, err)
		return nil, err
	}

	var project models.Project
	err = json.Unmarshal([]byte(data), &project)
	if err != nil {
		log.Printf("Failed to unmarshal project metadata: %v", err)
		return nil, err
	}

	return &project, nil
}

// InvalidateProjectMetadata removes project metadata from cache
func (s *Service) InvalidateProjectMetadata(ctx context.Context, projectID uuid.UUID) error {
	key := fmt.Sprintf("project:%s", projectID.String())
	return s.client.Del(ctx, key).Err()
}

// Node Metadata Cache Methods

// SetNodeMetadata caches node metadata
func (s *Service) SetNodeMetadata(ctx context.Context, node *models.Node) error {
	key := fmt.Sprintf("node:%s", node.ID.String())

	data, err := json.Marshal(node)
	if err != nil {
		log.Printf("Failed to marshal node metadata: %v", err)
		return err
	}

	err = s.client.Set(ctx, key, data, 24*time.Hour).Err()
	if err != nil {
		log.Printf("Failed to cache node metadata for %s: %v", node.ID, err)
		return err
	}

	log.Printf("Cached node metadata for %s", node.ID)
	return nil
}

// GetNodeMetadata retrieves node metadata from cache
func (s *Service) GetNodeMetadata(ctx context.Context, nodeID uuid.UUID) (*models.Node, error) {
	key := fmt.Sprintf("node:%s", nodeID.String())

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		log.Printf("Failed to get node metadata for %s: %v", nodeID, err)
		return nil, err
	}

	var node models.Node
	err = json.Unmarshal([]byte(data), &node)
	if err != nil {
		log.Printf("Failed to unmarshal node metadata: %v", err)
		return nil, err
	}

	return &node, nil
}

// InvalidateNodeMetadata removes node metadata from cache
func (s *Service) InvalidateNodeMetadata(ctx context.Context, nodeID uuid.UUID) error {
	key := fmt.Sprintf("node:%s", nodeID.String())
	return s.client.Del(ctx, key).Err()
}

// Close closes the Redis connection
func (s *Service) Close() error {
	return s.client.Close()
}
