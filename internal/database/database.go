package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"shootsuite/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, the conflict constraints
// that back the hardened booking path. The freelancer overlap rule becomes a
// gist exclusion constraint over (account, date, minute range), scoped to
// freelancer rows so company tenants can run parallel shoots; the company
// rule is a partial unique index on (account, date, assignee). SQLite cannot
// express the exclusion constraint, so there the job repository re-checks
// overlap inside the insert transaction instead.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Client{},
		&domain.Job{},
		&domain.TeamMember{},
		&domain.TeamAssignment{},
		&domain.Invoice{},
		&domain.Payment{},
		&domain.Deliverable{},
		&domain.Expense{},
		&domain.Task{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
		`ALTER TABLE jobs DROP CONSTRAINT IF EXISTS excl_job_time_overlap`,
		`ALTER TABLE jobs ADD CONSTRAINT excl_job_time_overlap
			EXCLUDE USING gist (
				account_id WITH =,
				date WITH =,
				(int4range(start_minute, end_minute)) WITH &&
			)
			WHERE (start_minute IS NOT NULL AND end_minute IS NOT NULL
				AND account_type = 'freelancer' AND status <> 'Cancelled')`,
		`DROP INDEX IF EXISTS idx_job_day_assignee`,
		`CREATE UNIQUE INDEX idx_job_day_assignee
			ON jobs (account_id, date, assignee_id)
			WHERE (assignee_id IS NOT NULL AND status <> 'Cancelled')`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
