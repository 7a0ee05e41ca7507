package database

import (
	"errors"
	"fmt"
	"os"
	"time"

	"graph_service/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres using DATABASE_URL and brings the schema up
// to date, including the seeded Inbox project.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=graph password=graph dbname=graph port=5432 sslmode=disable TimeZone=UTC"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

// Migrate applies the schema additively and seeds the protected Inbox
// project. Tests call it directly against their own store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Project{},
		&models.Node{},
		&models.NodeLink{},
		&models.Attachment{},
	)
	if err != nil {
		return err
	}
	return seedInbox(db)
}

// seedInbox inserts the all-zero-UUID Inbox project if it is absent. The
// row is protected from deletion by the store.
func seedInbox(db *gorm.DB) error {
	var existing models.Project
	err := db.First(&existing, "id = ?", uuid.Nil).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	inbox := models.Project{
		ID:           uuid.Nil,
		Name:         models.InboxProjectName,
		User:         uuid.Nil,
		CreationDate: time.Now().UTC(),
		Tags:         []byte("[]"),
	}
	return db.Create(&inbox).Error
}
