package store

import (
	"fmt"
	"strings"

	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Search result kinds.
const (
	ResultTypeNode       = "node"
	ResultTypeProject    = "project"
	ResultTypeAttachment = "attachment"
)

// SearchResult points at a node in some project. Project and attachment
// matches are resolved back to a node so the frontend can focus the graph.
type SearchResult struct {
	ID         uuid.UUID       `json:"id"`
	ProjectID  uuid.UUID       `json:"project_id"`
	Title      string          `json:"title"`
	ResultType string          `json:"result_type"`
	NodeType   models.NodeType `json:"node_type,omitempty"`
}

// Search runs a case-insensitive substring search across node
// display/value/notes, attachment filenames, and project
// name/description/tags. An empty or whitespace-only term returns an
// empty result set rather than an error or a full table scan.
//
// A project-name match is reported through a representative node of that
// project; a project with zero nodes is therefore omitted from results.
func Search(db *gorm.DB, term string) ([]SearchResult, error) {
	results := []SearchResult{}
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return results, nil
	}
	pattern := "%" + strings.ToLower(trimmed) + "%"

	err := db.Transaction(func(tx *gorm.DB) error {
		var nodes []models.Node
		if err := tx.
			Where("LOWER(display) LIKE ? OR LOWER(value) LIKE ? OR LOWER(notes) LIKE ?", pattern, pattern, pattern).
			Find(&nodes).Error; err != nil {
			return fmt.Errorf("failed to search nodes: %w", err)
		}
		for _, node := range nodes {
			results = append(results, SearchResult{
				ID:         node.ID,
				ProjectID:  node.ProjectID,
				Title:      node.Display,
				ResultType: ResultTypeNode,
				NodeType:   node.Type,
			})
		}

		var attachments []models.Attachment
		if err := tx.Select(models.MetadataColumns).
			Where("LOWER(filename) LIKE ?", pattern).
			Find(&attachments).Error; err != nil {
			return fmt.Errorf("failed to search attachments: %w", err)
		}
		for _, attachment := range attachments {
			var node models.Node
			if err := tx.First(&node, "id = ?", attachment.NodeID).Error; err != nil {
				// Orphaned rows cannot be resolved to a project.
				continue
			}
			results = append(results, SearchResult{
				ID:         node.ID,
				ProjectID:  node.ProjectID,
				Title:      fmt.Sprintf("%s (attachment: %s)", node.Display, attachment.Filename),
				ResultType: ResultTypeAttachment,
				NodeType:   node.Type,
			})
		}

		var projects []models.Project
		if err := tx.
			Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(CAST(tags AS TEXT)) LIKE ?", pattern, pattern, pattern).
			Find(&projects).Error; err != nil {
			return fmt.Errorf("failed to search projects: %w", err)
		}
		for _, project := range projects {
			var node models.Node
			if err := tx.Where("project_id = ?", project.ID).First(&node).Error; err != nil {
				// No representative node, so the project cannot be
				// surfaced in graph-focused results.
				continue
			}
			results = append(results, SearchResult{
				ID:         node.ID,
				ProjectID:  project.ID,
				Title:      fmt.Sprintf("Project: %s", project.Name),
				ResultType: ResultTypeProject,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
