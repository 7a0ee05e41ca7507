package store

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"graph_service/internal/database"
	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// openTestDB gives each test its own in-memory SQLite database with the
// full schema and the seeded Inbox project.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func makeProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()

	project, err := UpsertProject(db, &models.Project{
		ID:           uuid.New(),
		Name:         name,
		User:         uuid.New(),
		CreationDate: time.Now().UTC(),
		Tags:         []byte(`[]`),
	})
	if err != nil {
		t.Fatalf("failed to create project %q: %v", name, err)
	}
	return project
}

func makeNode(t *testing.T, db *gorm.DB, projectID uuid.UUID, nodeType models.NodeType, display, value string) *models.Node {
	t.Helper()

	node, err := CreateNode(db, &models.Node{
		ProjectID: projectID,
		Type:      nodeType,
		Display:   display,
		Value:     value,
	})
	if err != nil {
		t.Fatalf("failed to create node %q: %v", display, err)
	}
	return node
}
