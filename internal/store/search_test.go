package store

import (
	"strings"
	"testing"

	"graph_service/internal/models"

	"github.com/google/uuid"
)

func TestSearchBlankTermReturnsEmpty(t *testing.T) {
	db := openTestDB(t)

	for _, term := range []string{"", "   ", "\t\n"} {
		results, err := Search(db, term)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", term, err)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", term, len(results))
		}
	}
}

func TestSearchMatchesNodesCaseInsensitively(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "hunt")
	node := makeNode(t, db, project.ID, models.NodeTypePerson, "Mallory Evans", "mallory")
	makeNode(t, db, project.ID, models.NodeTypeDomain, "Unrelated", "example.org")

	results, err := Search(db, "MALLORY")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0].ID != node.ID || results[0].ResultType != ResultTypeNode {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if results[0].NodeType != models.NodeTypePerson {
		t.Errorf("NodeType = %q, want %q", results[0].NodeType, models.NodeTypePerson)
	}
}

func TestSearchMatchesAttachmentFilenames(t *testing.T) {
	db := openTestDB(t)
	project := makeProject(t, db, "hunt")
	node := makeNode(t, db, project.ID, models.NodeTypeDocument, "Dossier", "d")
	if _, err := CreateAttachment(db, node.ID, "bank-statements.pdf", "application/pdf", []byte("pdf")); err != nil {
		t.Fatalf("CreateAttachment failed: %v", err)
	}

	results, err := Search(db, "bank-statements")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0].ResultType != ResultTypeAttachment {
		t.Errorf("ResultType = %q, want %q", results[0].ResultType, ResultTypeAttachment)
	}
	// Attachment matches resolve to the owning node.
	if results[0].ID != node.ID {
		t.Error("attachment match should point at the owning node")
	}
	if !strings.Contains(results[0].Title, "bank-statements.pdf") {
		t.Errorf("Title = %q, should name the file", results[0].Title)
	}
}

func TestSearchProjectMatchNeedsRepresentativeNode(t *testing.T) {
	db := openTestDB(t)

	empty := makeProject(t, db, "operation-ghost")
	_ = empty

	populated := makeProject(t, db, "operation-daylight")
	node := makeNode(t, db, populated.ID, models.NodeTypePerson, "Someone", "s")

	results, err := Search(db, "operation")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// Only the populated project can surface; the empty one has no node
	// to focus.
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0].ResultType != ResultTypeProject {
		t.Errorf("ResultType = %q, want %q", results[0].ResultType, ResultTypeProject)
	}
	if results[0].ID != node.ID {
		t.Error("project match should point at a node of the project")
	}
	if results[0].ProjectID != populated.ID {
		t.Error("project match should carry the matched project id")
	}
}

func TestSearchMatchesProjectTags(t *testing.T) {
	db := openTestDB(t)

	project, err := UpsertProject(db, &models.Project{
		ID:   uuid.New(),
		Name: "plain-name",
		Tags: []byte(`["ransomware","phishing"]`),
	})
	if err != nil {
		t.Fatalf("UpsertProject failed: %v", err)
	}
	makeNode(t, db, project.ID, models.NodeTypeDomain, "Lure", "lure.example")

	results, err := Search(db, "ransomware")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}
	if results[0].ResultType != ResultTypeProject {
		t.Errorf("ResultType = %q, want %q", results[0].ResultType, ResultTypeProject)
	}
}
