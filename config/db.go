package config

import (
	"os"
	"path/filepath"

	"symptom-checker/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the sqlite database and migrates the schema. The directory
// holding the database file is created if it does not exist yet.
func InitDB(dbPath string) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate all models
	err = db.AutoMigrate(
		&models.User{},
		&models.SymptomCheckResult{},
		&models.Feedback{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
