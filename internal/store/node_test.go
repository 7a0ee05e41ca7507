package store

import (
	"testing"

	"graph_service/internal/dto"
	"graph_service/internal/models"

	"github.com/google/uuid"
)

func TestCreateNodeRequiresExistingProject(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateNode(db, &models.Node{
		ProjectID: uuid.New(),
		Type:      models.NodeTypePerson,
		Display:   "orphan",
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Node{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("node count = %d, want 0 after rejected create", count)
	}
}

func TestCreateNodeRejectsUnknownType(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "typed")

	_, err := CreateNode(db, &models.Node{
		ProjectID: project.ID,
		Type:      "satellite",
		Display:   "nope",
	})
	if !IsInvalid(err) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

func TestCreateNodeNormalizesURLValue(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "urls")

	node := makeNode(t, db, project.ID, models.NodeTypeURL, "Landing page", "  https://example.com/a\u200Bb  ")
	if node.Value != "https://example.com/ab" {
		t.Errorf("Value = %q, want normalized URL", node.Value)
	}

	// Non-URL values pass through untouched.
	person := makeNode(t, db, project.ID, models.NodeTypePerson, "Spacey", "  padded  ")
	if person.Value != "  padded  " {
		t.Errorf("person Value = %q, want unmodified", person.Value)
	}
}

func TestUpdateNodeReNormalizesURL(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "urls")
	node := makeNode(t, db, project.ID, models.NodeTypeURL, "Landing page", "https://example.com")

	value := " https://example.com/changed\ufeff"
	updated, err := UpdateNode(db, node.ID, dto.NodePatch{Value: &value})
	if err != nil {
		t.Fatalf("UpdateNode failed: %v", err)
	}
	if updated.Value != "https://example.com/changed" {
		t.Errorf("Value = %q, want normalized URL", updated.Value)
	}
	if !updated.Updated.After(node.Updated) && !updated.Updated.Equal(node.Updated) {
		t.Error("updated timestamp must not move backwards")
	}
}

func TestDeleteNodeCascadesToLinksAndAttachments(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "cascade")
	target := makeNode(t, db, project.ID, models.NodeTypePerson, "Target", "t")
	other := makeNode(t, db, project.ID, models.NodeTypePerson, "Other", "o")

	link, err := CreateNodeLink(db, &models.NodeLink{
		Left:      other.ID,
		Right:     target.ID,
		ProjectID: project.ID,
		LinkType:  models.LinkTypeDirectional,
	})
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	attachment, err := CreateAttachment(db, target.ID, "photo.jpg", "image/jpeg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("failed to create attachment: %v", err)
	}

	if err := DeleteNode(db, target.ID); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	if _, err := GetNodeLink(db, link.ID); !IsNotFound(err) {
		t.Error("links touching the node should be gone")
	}
	if _, err := GetAttachment(db, attachment.ID); !IsNotFound(err) {
		t.Error("attachments of the node should be gone")
	}
	if _, err := GetNode(db, other.ID); err != nil {
		t.Errorf("unrelated node should survive: %v", err)
	}
}

func TestDeleteNodeUnknownIDIsNotFound(t *testing.T) {
	db := openTestDB(t)

	if err := DeleteNode(db, uuid.New()); !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
