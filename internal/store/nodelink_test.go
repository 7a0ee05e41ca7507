package store

import (
	"testing"

	"graph_service/internal/models"

	"github.com/google/uuid"
)

func TestCreateNodeLinkExistingIDIsConflict(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "linked")
	left := makeNode(t, db, project.ID, models.NodeTypePerson, "A", "a")
	right := makeNode(t, db, project.ID, models.NodeTypePerson, "B", "b")

	link, err := CreateNodeLink(db, &models.NodeLink{
		Left:      left.ID,
		Right:     right.ID,
		ProjectID: project.ID,
		LinkType:  models.LinkTypeOmni,
	})
	if err != nil {
		t.Fatalf("CreateNodeLink failed: %v", err)
	}

	_, err = CreateNodeLink(db, &models.NodeLink{
		ID:        link.ID,
		Left:      right.ID,
		Right:     left.ID,
		ProjectID: project.ID,
		LinkType:  models.LinkTypeDirectional,
	})
	if !IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// The original row must be untouched by the rejected resubmission.
	stored, err := GetNodeLink(db, link.ID)
	if err != nil {
		t.Fatalf("GetNodeLink failed: %v", err)
	}
	if stored.Left != left.ID || stored.Right != right.ID {
		t.Error("conflicting create must not modify the existing link")
	}
	if stored.LinkType != models.LinkTypeOmni {
		t.Errorf("LinkType = %q, want %q", stored.LinkType, models.LinkTypeOmni)
	}
}

func TestCreateNodeLinkRejectsUnknownLinkType(t *testing.T) {
	db := openTestDB(t)

	_, err := CreateNodeLink(db, &models.NodeLink{
		Left:      uuid.New(),
		Right:     uuid.New(),
		ProjectID: uuid.New(),
		LinkType:  "bidirectional",
	})
	if !IsInvalid(err) {
		t.Errorf("expected invalid error, got %v", err)
	}
}

func TestDeleteNodeLink(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "linked")
	left := makeNode(t, db, project.ID, models.NodeTypePerson, "A", "a")
	right := makeNode(t, db, project.ID, models.NodeTypePerson, "B", "b")

	link, err := CreateNodeLink(db, &models.NodeLink{
		Left:      left.ID,
		Right:     right.ID,
		ProjectID: project.ID,
		LinkType:  models.LinkTypeOmni,
	})
	if err != nil {
		t.Fatalf("CreateNodeLink failed: %v", err)
	}

	if err := DeleteNodeLink(db, link.ID); err != nil {
		t.Fatalf("DeleteNodeLink failed: %v", err)
	}
	if err := DeleteNodeLink(db, link.ID); !IsNotFound(err) {
		t.Errorf("second delete should be not-found, got %v", err)
	}
}
