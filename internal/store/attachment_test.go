package store

import (
	"bytes"
	"testing"

	"graph_service/internal/codec"
	"graph_service/internal/dto"
	"graph_service/internal/models"

	"github.com/google/uuid"
)

func TestCreateAttachmentRecordsUncompressedSize(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "files")
	node := makeNode(t, db, project.ID, models.NodeTypeDocument, "Report", "report")

	raw := bytes.Repeat([]byte("evidence "), 512)
	attachment, err := CreateAttachment(db, node.ID, "report.txt", "text/plain", raw)
	if err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	if attachment.Size != int64(len(raw)) {
		t.Errorf("Size = %d, want uncompressed length %d", attachment.Size, len(raw))
	}
	if attachment.Data != nil {
		t.Error("create must return metadata only, no blob")
	}

	stored, err := GetAttachment(db, attachment.ID)
	if err != nil {
		t.Fatalf("GetAttachment failed: %v", err)
	}
	decompressed, err := codec.Decompress(stored.Data)
	if err != nil {
		t.Fatalf("stored blob should decompress: %v", err)
	}
	if !bytes.Equal(decompressed, raw) {
		t.Error("round trip through storage lost data")
	}
}

func TestCreateAttachmentRequiresExistingNode(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateAttachment(db, uuid.New(), "ghost.bin", "application/octet-stream", []byte{1})
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestListAttachmentMetadataExcludesBlob(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "files")
	node := makeNode(t, db, project.ID, models.NodeTypeImage, "Photo", "photo")

	if _, err := CreateAttachment(db, node.ID, "photo.jpg", "image/jpeg", []byte{0xff, 0xd8, 0xff}); err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	listed, err := ListAttachmentMetadata(db, node.ID)
	if err != nil {
		t.Fatalf("ListAttachmentMetadata failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("attachment count = %d, want 1", len(listed))
	}
	if listed[0].Data != nil {
		t.Error("metadata listing must not carry the blob")
	}
	if listed[0].Size != 3 {
		t.Errorf("Size = %d, want 3", listed[0].Size)
	}

	byProject, err := ListProjectAttachmentMetadata(db, project.ID)
	if err != nil {
		t.Fatalf("ListProjectAttachmentMetadata failed: %v", err)
	}
	if len(byProject) != 1 {
		t.Fatalf("project attachment count = %d, want 1", len(byProject))
	}
	if byProject[0].Data != nil {
		t.Error("project metadata listing must not carry the blob")
	}
}

func TestUpdateAttachmentReparentAndReplaceBlob(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "files")
	first := makeNode(t, db, project.ID, models.NodeTypePerson, "First", "f")
	second := makeNode(t, db, project.ID, models.NodeTypePerson, "Second", "s")

	attachment, err := CreateAttachment(db, first.ID, "notes.txt", "text/plain", []byte("v1"))
	if err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	newData := []byte("version two, considerably longer")
	updated, err := UpdateAttachment(db, attachment.ID, dto.AttachmentPatch{
		NodeID: &second.ID,
		Data:   newData,
	})
	if err != nil {
		t.Fatalf("UpdateAttachment failed: %v", err)
	}
	if updated.NodeID != second.ID {
		t.Error("attachment should move to the new node")
	}
	if updated.Size != int64(len(newData)) {
		t.Errorf("Size = %d, want %d", updated.Size, len(newData))
	}

	stored, err := GetAttachment(db, attachment.ID)
	if err != nil {
		t.Fatalf("GetAttachment failed: %v", err)
	}
	decompressed, err := codec.Decompress(stored.Data)
	if err != nil {
		t.Fatalf("stored blob should decompress: %v", err)
	}
	if !bytes.Equal(decompressed, newData) {
		t.Error("blob replacement did not persist")
	}
}

func TestUpdateAttachmentRejectsUnknownNode(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "files")
	node := makeNode(t, db, project.ID, models.NodeTypePerson, "Holder", "h")

	attachment, err := CreateAttachment(db, node.ID, "notes.txt", "text/plain", []byte("v1"))
	if err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	ghost := uuid.New()
	_, err = UpdateAttachment(db, attachment.ID, dto.AttachmentPatch{NodeID: &ghost})
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeleteAttachmentIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "files")
	node := makeNode(t, db, project.ID, models.NodeTypePerson, "Holder", "h")

	attachment, err := CreateAttachment(db, node.ID, "notes.txt", "text/plain", []byte("bye"))
	if err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	if err := DeleteAttachment(db, attachment.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := DeleteAttachment(db, attachment.ID); err != nil {
		t.Errorf("second delete should still succeed, got %v", err)
	}
	if err := DeleteAttachment(db, uuid.New()); err != nil {
		t.Errorf("deleting an unknown id should succeed, got %v", err)
	}
}
