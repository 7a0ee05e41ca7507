package store

import (
	"fmt"
	"time"

	"graph_service/internal/codec"
	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportVersion is the producer version stamped into every export
// document. Bump it when the document shape changes.
const ExportVersion = "1.3.0"

// ExportDocument is a transferable snapshot of one project. Attachment
// blobs, when included, carry decompressed raw bytes so the document does
// not depend on the storage codec.
type ExportDocument struct {
	Project     models.Project      `json:"project"`
	Nodes       []models.Node       `json:"nodes"`
	NodeLinks   []models.NodeLink   `json:"nodelinks"`
	Attachments []models.Attachment `json:"attachments"`
	ExportedAt  time.Time           `json:"exported_at"`
	Version     string              `json:"version"`
}

// ImportResult summarises an import, with one error string per rejected
// record.
type ImportResult struct {
	Nodes       int      `json:"nodes"`
	NodeLinks   int      `json:"nodelinks"`
	Attachments int      `json:"attachments"`
	Errors      []string `json:"errors,omitempty"`
}

// ExportProject snapshots the project, its nodes, its links and its
// attachments inside one read transaction, so a concurrent writer cannot
// produce a torn document. With includeAttachments the blobs are
// decompressed into the document; without it the attachment entries are
// blob-free metadata.
func ExportProject(db *gorm.DB, id uuid.UUID, includeAttachments bool) (*ExportDocument, error) {
	var doc *ExportDocument
	err := db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound("project", id)
			}
			return fmt.Errorf("failed to look up project %s: %w", id, err)
		}

		nodes, err := ListNodesByProject(tx, id)
		if err != nil {
			return err
		}
		links, err := ListNodeLinksByProject(tx, id)
		if err != nil {
			return err
		}

		var attachments []models.Attachment
		if includeAttachments {
			nodeIDs := make([]uuid.UUID, 0, len(nodes))
			for _, n := range nodes {
				nodeIDs = append(nodeIDs, n.ID)
			}
			if len(nodeIDs) > 0 {
				if err := tx.Where("node_id IN ?", nodeIDs).Find(&attachments).Error; err != nil {
					return fmt.Errorf("failed to export attachments of project %s: %w", id, err)
				}
			}
			for i := range attachments {
				raw, err := codec.Decompress(attachments[i].Data)
				if err != nil {
					return fmt.Errorf("attachment %s: %w", attachments[i].ID, err)
				}
				attachments[i].Data = raw
			}
		} else {
			attachments, err = ListProjectAttachmentMetadata(tx, id)
			if err != nil {
				return err
			}
		}

		doc = &ExportDocument{
			Project:     project,
			Nodes:       nodes,
			NodeLinks:   links,
			Attachments: attachments,
			ExportedAt:  time.Now().UTC(),
			Version:     ExportVersion,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ImportProject replays an export document through the ordinary store
// operations, so every foreign key is re-validated exactly as it would be
// for manual creation. Rejected records are reported, not fatal; the
// project itself failing is.
func ImportProject(db *gorm.DB, doc *ExportDocument) (*ImportResult, error) {
	if _, err := UpsertProject(db, &doc.Project); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i := range doc.Nodes {
		node := doc.Nodes[i]
		node.ProjectID = doc.Project.ID
		if _, err := CreateNode(db, &node); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("node %s: %v", node.ID, err))
			continue
		}
		result.Nodes++
	}
	for i := range doc.NodeLinks {
		link := doc.NodeLinks[i]
		link.ProjectID = doc.Project.ID
		if _, err := CreateNodeLink(db, &link); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("nodelink %s: %v", link.ID, err))
			continue
		}
		result.NodeLinks++
	}
	for _, attachment := range doc.Attachments {
		if len(attachment.Data) == 0 {
			// Metadata-only exports carry nothing to restore.
			continue
		}
		if _, err := CreateAttachment(db, attachment.NodeID, attachment.Filename, attachment.ContentType, attachment.Data); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("attachment %s: %v", attachment.ID, err))
			continue
		}
		result.Attachments++
	}
	return result, nil
}
