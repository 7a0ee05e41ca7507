package dto

import (
	"testing"

	"graph_service/internal/models"

	"github.com/google/uuid"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestProjectPatchApply(t *testing.T) {
	desc := strptr("old description")
	project := models.Project{
		ID:          uuid.New(),
		Name:        "old name",
		Description: desc,
	}

	ProjectPatch{Name: strptr("new name")}.Apply(&project)

	if project.Name != "new name" {
		t.Errorf("Name = %q, want %q", project.Name, "new name")
	}
	if project.Description != desc {
		t.Error("nil Description field should leave the existing value untouched")
	}
}

func TestNodePatchApply(t *testing.T) {
	node := models.Node{
		ID:      uuid.New(),
		Type:    models.NodeTypePerson,
		Display: "Some Person",
		Value:   "someone",
		Notes:   strptr("keep me"),
		PosX:    intptr(10),
	}

	newType := models.NodeTypeEmail
	NodePatch{
		Type:  &newType,
		Value: strptr("someone@example.com"),
		PosY:  intptr(-5),
	}.Apply(&node)

	if node.Type != models.NodeTypeEmail {
		t.Errorf("Type = %q, want %q", node.Type, models.NodeTypeEmail)
	}
	if node.Value != "someone@example.com" {
		t.Errorf("Value = %q", node.Value)
	}
	if node.Display != "Some Person" {
		t.Error("unset Display should stay")
	}
	if node.Notes == nil || *node.Notes != "keep me" {
		t.Error("unset Notes should stay")
	}
	if node.PosX == nil || *node.PosX != 10 {
		t.Error("unset PosX should stay")
	}
	if node.PosY == nil || *node.PosY != -5 {
		t.Error("PosY should be set")
	}
}

func TestNodePatchApplyEmptyIsNoop(t *testing.T) {
	node := models.Node{Type: models.NodeTypeDomain, Display: "example.com", Value: "example.com"}

	NodePatch{}.Apply(&node)

	if node.Type != models.NodeTypeDomain || node.Display != "example.com" || node.Value != "example.com" {
		t.Error("empty patch must not change the node")
	}
	if node.Notes != nil || node.PosX != nil || node.PosY != nil {
		t.Error("empty patch must not set optional fields")
	}
}
