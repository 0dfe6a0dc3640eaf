// Package migration provides a registry-based database migration runner.
//
// Define migrations in database/migrations and register them from init():
//
//	func init() {
//	    migration.Register("20260301000000_create_products_table", &CreateProductsTable{})
//	}
//
// Run from the CLI:
//
//	shopapi migrate             // run all pending
//	shopapi migrate:rollback    // rollback last batch
//	shopapi migrate:status      // show which ran
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"shopapi/pkg/logger"
)

// Migration is the interface every migration must implement.
type Migration interface {
	// Up applies the migration.
	Up(db *gorm.DB) error
	// Down reverses the migration.
	Down(db *gorm.DB) error
}

// migrationRecord is the GORM model stored in the tracking table.
type migrationRecord struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"uniqueIndex;size:255;not null"`
	Batch int    `gorm:"not null"`
}

func (migrationRecord) TableName() string { return "shop_migrations" }

type registeredMigration struct {
	name string
	m    Migration
}

var registry []registeredMigration

// Register adds a migration to the global registry. name should be a
// timestamp-prefixed string so registration order matches chronology.
func Register(name string, m Migration) {
	registry = append(registry, registeredMigration{name: name, m: m})
}

// Runner executes and tracks migrations.
type Runner struct {
	db *gorm.DB
}

// New creates a Runner backed by the provided gorm.DB.
func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

func (r *Runner) ensureTable() error {
	return r.db.AutoMigrate(&migrationRecord{})
}

func (r *Runner) ranSet() (map[string]bool, int, error) {
	var ran []migrationRecord
	if err := r.db.Find(&ran).Error; err != nil {
		return nil, 0, err
	}

	set := make(map[string]bool, len(ran))
	lastBatch := 0
	for _, rec := range ran {
		set[rec.Name] = true
		if rec.Batch > lastBatch {
			lastBatch = rec.Batch
		}
	}
	return set, lastBatch, nil
}

// Run applies every registered migration that has not run yet, as one batch.
func (r *Runner) Run() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	ran, lastBatch, err := r.ranSet()
	if err != nil {
		return err
	}

	batch := lastBatch + 1
	applied := 0
	for _, reg := range registry {
		if ran[reg.name] {
			continue
		}

		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration %q: %w", reg.name, err)
		}
		if err := r.db.Create(&migrationRecord{Name: reg.name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration %q: record: %w", reg.name, err)
		}
		logger.Info("migrated", "name", reg.name, "batch", batch)
		applied++
	}

	if applied == 0 {
		logger.Info("nothing to migrate")
	}
	return nil
}

// Rollback reverses the migrations of the most recent batch, newest first.
func (r *Runner) Rollback() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	_, lastBatch, err := r.ranSet()
	if err != nil {
		return err
	}
	if lastBatch == 0 {
		logger.Info("nothing to roll back")
		return nil
	}

	var batch []migrationRecord
	if err := r.db.Where("batch = ?", lastBatch).Order("id desc").Find(&batch).Error; err != nil {
		return err
	}

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}

	for _, rec := range batch {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration %q is recorded but not registered", rec.Name)
		}
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("rollback %q: %w", rec.Name, err)
		}
		if err := r.db.Delete(&migrationRecord{}, rec.ID).Error; err != nil {
			return fmt.Errorf("rollback %q: record: %w", rec.Name, err)
		}
		logger.Info("rolled back", "name", rec.Name)
	}
	return nil
}

// Status prints one line per registered migration.
func (r *Runner) Status() error {
	if err := r.ensureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	ran, _, err := r.ranSet()
	if err != nil {
		return err
	}

	for _, reg := range registry {
		state := "pending"
		if ran[reg.name] {
			state = "ran"
		}
		fmt.Printf("%-10s %s\n", state, reg.name)
	}
	return nil
}
