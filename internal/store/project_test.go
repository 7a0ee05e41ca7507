package store

import (
	"testing"

	"graph_service/internal/dto"
	"graph_service/internal/models"

	"github.com/google/uuid"
)

func TestUpsertProjectCreatesThenMerges(t *testing.T) {
	db := openTestDB(t)

	project := makeProject(t, db, "case-alpha")
	if project.LastUpdated != nil {
		t.Error("first insert must not set last_updated")
	}

	desc := "now with a description"
	merged, err := UpsertProject(db, &models.Project{
		ID:          project.ID,
		Name:        "case-alpha-renamed",
		User:        project.User,
		Description: &desc,
		Tags:        []byte(`["fraud"]`),
	})
	if err != nil {
		t.Fatalf("upsert merge failed: %v", err)
	}

	if merged.Name != "case-alpha-renamed" {
		t.Errorf("Name = %q, want %q", merged.Name, "case-alpha-renamed")
	}
	if merged.Description == nil || *merged.Description != desc {
		t.Error("merge should replace the description")
	}
	if merged.LastUpdated == nil {
		t.Error("merge must set last_updated")
	}
	if !merged.CreationDate.Equal(project.CreationDate) {
		t.Error("merge must not touch creationdate")
	}

	projects, err := ListProjects(db)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	// Seeded Inbox plus the one we created.
	if len(projects) != 2 {
		t.Errorf("project count = %d, want 2", len(projects))
	}
}

func TestUpdateProjectUnknownIDIsNotFound(t *testing.T) {
	db := openTestDB(t)

	name := "ghost"
	_, err := UpdateProject(db, uuid.New(), dto.ProjectPatch{Name: &name})
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeleteProjectRefusesInbox(t *testing.T) {
	db := openTestDB(t)

	err := DeleteProject(db, uuid.Nil)
	if !IsInvalid(err) {
		t.Fatalf("expected invalid error for Inbox delete, got %v", err)
	}

	inbox, err := GetProject(db, uuid.Nil)
	if err != nil {
		t.Fatalf("Inbox should survive the delete attempt: %v", err)
	}
	if inbox.Name != models.InboxProjectName {
		t.Errorf("Inbox name = %q, want %q", inbox.Name, models.InboxProjectName)
	}
}

func TestDeleteProjectCascades(t *testing.T) {
	db := openTestDB(t)

	project := makeProject(t, db, "doomed")
	left := makeNode(t, db, project.ID, models.NodeTypePerson, "Left", "left")
	right := makeNode(t, db, project.ID, models.NodeTypeDomain, "Right", "example.com")

	if _, err := CreateNodeLink(db, &models.NodeLink{
		Left:      left.ID,
		Right:     right.ID,
		ProjectID: project.ID,
		LinkType:  models.LinkTypeOmni,
	}); err != nil {
		t.Fatalf("failed to create link: %v", err)
	}
	attachment, err := CreateAttachment(db, left.ID, "notes.txt", "text/plain", []byte("evidence"))
	if err != nil {
		t.Fatalf("failed to create attachment: %v", err)
	}

	if err := DeleteProject(db, project.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}

	if _, err := GetProject(db, project.ID); !IsNotFound(err) {
		t.Error("project should be gone")
	}
	if _, err := GetNode(db, left.ID); !IsNotFound(err) {
		t.Error("nodes should be gone")
	}
	if _, err := GetAttachment(db, attachment.ID); !IsNotFound(err) {
		t.Error("attachments should be gone")
	}
	links, err := ListNodeLinksByProject(db, project.ID)
	if err != nil {
		t.Fatalf("ListNodeLinksByProject failed: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("link count = %d, want 0", len(links))
	}
}
