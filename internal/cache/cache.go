// Package cache persists derived analysis results — DSSP classification
// runs and bond-guess provenance — so a repeated analysis over the same
// topology/trajectory can be served without recomputation. It never
// persists the topology/trajectory model itself, which stays in-memory
// per the core library's own non-goals.
package cache

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/molpp-go/molpp/internal/monitoring"
	"github.com/molpp-go/molpp/internal/timeutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Cache wraps a sqlite-backed *sql.DB holding derived analysis results.
type Cache struct {
	db    *sql.DB
	clock timeutil.Clock
}

// Open opens (creating if necessary) the sqlite database at path and
// migrates it to the latest schema version.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %q: %w", path, err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: apply %q: %w", p, err)
		}
	}

	c := &Cache{db: db, clock: timeutil.RealClock{}}
	if err := c.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// DB exposes the underlying *sql.DB, e.g. for mounting a debug SQL browser.
func (c *Cache) DB() *sql.DB { return c.db }

// SetClock overrides the clock used to stamp inserted rows, e.g. with a
// timeutil.MockClock in tests that assert on CreatedAt ordering.
func (c *Cache) SetClock(clock timeutil.Clock) { c.clock = clock }

// Close closes the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) migrateUp() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("cache: iofs source: %w", err)
	}
	driver, err := sqlite.WithInstance(c.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("cache: sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("cache: migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("cache: migrate up: %w", err)
		}
		monitoring.Logf("[cache] schema already at latest version")
	} else {
		monitoring.Logf("[cache] applied pending migrations")
	}
	return nil
}
