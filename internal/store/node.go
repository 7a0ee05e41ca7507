package store

import (
	"errors"
	"fmt"
	"time"

	"graph_service/internal/dto"
	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateNode inserts a node after confirming its parent project exists.
// The existence check and insert share one transaction so a concurrent
// project delete cannot slip between them. URL values are normalized
// before they are persisted.
func CreateNode(db *gorm.DB, node *models.Node) (*models.Node, error) {
	if !node.Type.Valid() {
		return nil, ErrInvalid("node", node.ID, fmt.Sprintf("unknown node type %q", node.Type))
	}
	if node.ID == uuid.Nil {
		node.ID = uuid.New()
	}
	if node.Type == models.NodeTypeURL {
		node.Value = models.NormalizeURLValue(node.Value)
	}
	node.Updated = time.Now().UTC()

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Project{}).Where("id = ?", node.ProjectID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify project %s: %w", node.ProjectID, err)
		}
		if count == 0 {
			return ErrNotFound("project", node.ProjectID)
		}
		if err := tx.Create(node).Error; err != nil {
			return fmt.Errorf("failed to create node %s: %w", node.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

// GetNode fetches one node by id.
func GetNode(db *gorm.DB, id uuid.UUID) (*models.Node, error) {
	var node models.Node
	if err := db.First(&node, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("node", id)
		}
		return nil, fmt.Errorf("failed to get node %s: %w", id, err)
	}
	return &node, nil
}

// ListNodesByProject returns every node of one project.
func ListNodesByProject(db *gorm.DB, projectID uuid.UUID) ([]models.Node, error) {
	var nodes []models.Node
	if err := db.Where("project_id = ?", projectID).Find(&nodes).Error; err != nil {
		return nil, fmt.Errorf("failed to list nodes of project %s: %w", projectID, err)
	}
	return nodes, nil
}

// UpdateNode applies a patch to an existing node. updated is always set
// to now, and a URL value is re-normalized on every update.
func UpdateNode(db *gorm.DB, id uuid.UUID, patch dto.NodePatch) (*models.Node, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, ErrInvalid("node", id, fmt.Sprintf("unknown node type %q", *patch.Type))
	}

	var updated *models.Node
	err := db.Transaction(func(tx *gorm.DB) error {
		var node models.Node
		if err := tx.First(&node, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("node", id)
			}
			return fmt.Errorf("failed to look up node %s: %w", id, err)
		}

		patch.Apply(&node)
		if node.Type == models.NodeTypeURL {
			node.Value = models.NormalizeURLValue(node.Value)
		}
		node.Updated = time.Now().UTC()
		if err := tx.Save(&node).Error; err != nil {
			return fmt.Errorf("failed to update node %s: %w", id, err)
		}
		updated = &node
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNode removes a node, its attachments, and every link that uses it
// as an endpoint, atomically.
func DeleteNode(db *gorm.DB, id uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var node models.Node
		if err := tx.First(&node, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("node", id)
			}
			return fmt.Errorf("failed to look up node %s: %w", id, err)
		}

		if err := tx.Where("node_id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
			return fmt.Errorf("failed to delete attachments of node %s: %w", id, err)
		}
		if err := tx.Where("\"left\" = ? OR \"right\" = ?", id, id).Delete(&models.NodeLink{}).Error; err != nil {
			return fmt.Errorf("failed to delete links of node %s: %w", id, err)
		}
		if err := tx.Delete(&node).Error; err != nil {
			return fmt.Errorf("failed to delete node %s: %w", id, err)
		}
		return nil
	})
}
