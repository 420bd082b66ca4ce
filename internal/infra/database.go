package infra

import (
	"fmt"

	"github.com/allansomensi/printer-supplies-api/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches for the
// constraints AutoMigrate cannot fully express on existing databases.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. Shared with integration tests so they
// provision throwaway databases exactly like production startup does.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Brand{},
		&model.SupplyItem{},
		&model.Printer{},
		&model.Movement{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that backstops the model tags on
// databases created before the tags existed. Each statement uses an
// existence guard so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Movements may never be re-pointed to a different quantity; the DB
		// enforces the nonzero rule even for writers that bypass the ledger.
		{"movements quantity_delta nonzero check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_movements_quantity_delta') THEN
    ALTER TABLE movements ADD CONSTRAINT chk_movements_quantity_delta CHECK (quantity_delta <> 0);
  END IF;
END $$`},
		// Stock floor: the ledger checks before writing, the DB is the last line.
		{"supply_items stock floor check", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_supply_items_stock') THEN
    ALTER TABLE supply_items ADD CONSTRAINT chk_supply_items_stock CHECK (stock >= 0);
  END IF;
END $$`},
		// Listing order is (created_at, id); keep the composite index in step.
		{"movements (created_at, id) index", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movements_created_id') THEN
    CREATE INDEX idx_movements_created_id ON movements (created_at, id);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
