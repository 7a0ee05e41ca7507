package store

import (
	"errors"
	"fmt"
	"time"

	"graph_service/internal/codec"
	"graph_service/internal/dto"
	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAttachment compresses raw and stores it against the given node.
// The recorded size is the uncompressed length, taken before compression.
// The returned record is metadata only.
func CreateAttachment(db *gorm.DB, nodeID uuid.UUID, filename, contentType string, raw []byte) (*models.Attachment, error) {
	compressed, size := codec.Compress(raw)
	attachment := models.Attachment{
		ID:          uuid.New(),
		NodeID:      nodeID,
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		Data:        compressed,
		Created:     time.Now().UTC(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Node{}).Where("id = ?", nodeID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to verify node %s: %w", nodeID, err)
		}
		if count == 0 {
			return ErrNotFound("node", nodeID)
		}
		if err := tx.Create(&attachment).Error; err != nil {
			return fmt.Errorf("failed to create attachment %s: %w", attachment.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	attachment.Data = nil
	return &attachment, nil
}

// GetAttachment fetches one attachment as stored, with Data still
// compressed. Callers decide whether to decompress or pass through.
func GetAttachment(db *gorm.DB, id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	if err := db.First(&attachment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("attachment", id)
		}
		return nil, fmt.Errorf("failed to get attachment %s: %w", id, err)
	}
	return &attachment, nil
}

// UpdateAttachment re-parents the attachment and/or replaces its blob.
// A new parent node must exist; new bytes are recompressed and the size
// refreshed. The returned record is metadata only.
func UpdateAttachment(db *gorm.DB, id uuid.UUID, patch dto.AttachmentPatch) (*models.Attachment, error) {
	var updated *models.Attachment
	err := db.Transaction(func(tx *gorm.DB) error {
		var attachment models.Attachment
		if err := tx.First(&attachment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound("attachment", id)
			}
			return fmt.Errorf("failed to look up attachment %s: %w", id, err)
		}

		if patch.NodeID != nil {
			var count int64
			if err := tx.Model(&models.Node{}).Where("id = ?", *patch.NodeID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to verify node %s: %w", *patch.NodeID, err)
			}
			if count == 0 {
				return ErrNotFound("node", *patch.NodeID)
			}
			attachment.NodeID = *patch.NodeID
		}
		if patch.Data != nil {
			attachment.Data, attachment.Size = codec.Compress(patch.Data)
		}

		if err := tx.Save(&attachment).Error; err != nil {
			return fmt.Errorf("failed to update attachment %s: %w", id, err)
		}
		updated = &attachment
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated.Data = nil
	return updated, nil
}

// DeleteAttachment removes one attachment. Deleting an attachment that is
// already gone is success - the operation is idempotent.
func DeleteAttachment(db *gorm.DB, id uuid.UUID) error {
	if err := db.Where("id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachment %s: %w", id, err)
	}
	return nil
}

// ListAttachmentMetadata returns the attachments of one node without ever
// selecting the blob column.
func ListAttachmentMetadata(db *gorm.DB, nodeID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := db.Select(models.MetadataColumns).
		Where("node_id = ?", nodeID).
		Find(&attachments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments of node %s: %w", nodeID, err)
	}
	return attachments, nil
}

// ListProjectAttachmentMetadata returns blob-free attachment rows for every
// node of one project, joined through the nodes table.
func ListProjectAttachmentMetadata(db *gorm.DB, projectID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := db.Model(&models.Attachment{}).
		Select("attachments.id, attachments.node_id, attachments.filename, attachments.content_type, attachments.size, attachments.created").
		Joins("INNER JOIN nodes ON nodes.id = attachments.node_id").
		Where("nodes.project_id = ?", projectID).
		Find(&attachments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments of project %s: %w", projectID, err)
	}
	return attachments, nil
}
