package store

import (
	"errors"
	"fmt"

	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateNodeLink inserts a link between two nodes. Reusing an existing id
// is a conflict, not an upsert - links are immutable once created and the
// only mutation path is delete and recreate.
func CreateNodeLink(db *gorm.DB, link *models.NodeLink) (*models.NodeLink, error) {
	if !link.LinkType.Valid() {
		return nil, ErrInvalid("nodelink", link.ID, fmt.Sprintf("unknown link type %q", link.LinkType))
	}
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.NodeLink{}).Where("id = ?", link.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for existing nodelink %s: %w", link.ID, err)
		}
		if count > 0 {
			return ErrConflict("nodelink", link.ID)
		}
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("failed to create nodelink %s: %w", link.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListNodeLinksByProject returns every link of one project.
func ListNodeLinksByProject(db *gorm.DB, projectID uuid.UUID) ([]models.NodeLink, error) {
	var links []models.NodeLink
	if err := db.Where("project_id = ?", projectID).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list nodelinks of project %s: %w", projectID, err)
	}
	return links, nil
}

// GetNodeLink fetches one link by id.
func GetNodeLink(db *gorm.DB, id uuid.UUID) (*models.NodeLink, error) {
	var link models.NodeLink
	if err := db.First(&link, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("nodelink", id)
		}
		return nil, fmt.Errorf("failed to get nodelink %s: %w", id, err)
	}
	return &link, nil
}

// DeleteNodeLink removes one link by id.
func DeleteNodeLink(db *gorm.DB, id uuid.UUID) error {
	res := db.Where("id = ?", id).Delete(&models.NodeLink{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete nodelink %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound("nodelink", id)
	}
	return nil
}
