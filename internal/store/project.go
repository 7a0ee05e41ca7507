// Package store implements the core graph operations over an injected
// *gorm.DB handle. Multi-step operations that must observe then mutate
// (parent checks, fan-out deletes, export reads) run inside a single
// transaction; single-row reads and writes go straight to the handle.
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

// UpsertProject creates the project, or merges name, description and tags
// into the existing row when the id is already present. last_updated is
// refreshed on merge, never on first insert.
func UpsertProject(db *gorm.DB, project *models.Project) (*models.Project, error) {
	var existing models.Project
	err := db.First(&existing, "id = ?", project.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if project.CreationDate.IsZero() {
			project.CreationDate = time.Now().UTC()
		}
		if err := db.Create(project).Error; err != nil {
			return nil, fmt.Errorf("failed to create project %s: %w", project.ID, err)
		}
		return project, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up project %s: %w", project.ID, err)
	}

	now := time.Now().UTC()
	existing.Name = project.Name
	existing.Description = project.Description
	existing.Tags = project.Tags
	existing.LastUpdated = &now
	if err := db.Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", project.ID, err)
	}
	return &existing, nil
}

// GetProject fetches one project by id.
func GetProject(db *gorm.DB, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("project", id)
		}
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return &project, nil
}

// ListProjects returns every project.
func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies a patch to an existing project and refreshes
// last_updated. Unknown ids are a not-found failure, unlike UpsertProject.
func UpdateProject(db *gorm.DB, id uuid.UUID, patch dto.ProjectPatch) (*models.Project, error) {
	var updated *models.Project
	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("project", id)
			}
			return fmt.Errorf("failed to look up project %s: %w", id, err)
		}

		patch.Apply(&project)
		now := time.Now().UTC()
		project.LastUpdated = &now
		if err := tx.Save(&project).Error; err != nil {
			return fmt.Errorf("failed to update project %s: %w", id, err)
		}
		updated = &project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project and fans out to everything it owns:
// attachments of its nodes, its node links, then its nodes. The fan-out is
// atomic. The Inbox project (nil UUID) is protected.
func DeleteProject(db *gorm.DB, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalid("project", id, "cannot delete the Inbox project")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("project", id)
			}
			return fmt.Errorf("failed to look up project %s: %w", id, err)
		}

		var nodeIDs []uuid.UUID
		if err := tx.Model(&models.Node{}).Where("project_id = ?", id).Pluck("id", &nodeIDs).Error; err != nil {
			return fmt.Errorf("failed to collect nodes of project %s: %w", id, err)
		}

		if len(nodeIDs) > 0 {
			if err := tx.Where("node_id IN ?", nodeIDs).Delete(&models.Attachment{}).Error; err != nil {
				return fmt.Errorf("failed to delete attachments of project %s: %w", id, err)
			}
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.NodeLink{}).Error; err != nil {
			return fmt.Errorf("failed to delete node links of project %s: %w", id, err)
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Node{}).Error; err != nil {
			return fmt.Errorf("failed to delete nodes of project %s: %w", id, err)
		}
		if err := tx.Delete(&project).Error; err != nil {
			return fmt.Errorf("failed to delete project %s: %w", id, err)
		}
		return nil
	})
}
