package database

import (
	"embed"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// RunMigrations menjalankan migrasi SQL yang di-embed sampai versi terbaru.
// Constraint anti-bentrok ruangan/pengajar hidup di sini, bukan di AutoMigrate.
func RunMigrations() {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		log.Fatalf("❌ Gagal baca migrasi: %v", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn())
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi migrate: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi DB up-to-date.")
}
