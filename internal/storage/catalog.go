package storage

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Catalog indexes saved runs in a SQLite database so listing and filtering
// never have to scan trajectory files.
type Catalog struct {
	conn *sqlx.DB
}

// OpenCatalog opens or creates the run index at the given path.
func OpenCatalog(path string) (*Catalog, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	c := &Catalog{conn: conn}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	return c, nil
}

func (c *Catalog) Close() error {
	return c.conn.Close()
}

func (c *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		attractor TEXT NOT NULL,
		integrator TEXT NOT NULL,
		dt REAL NOT NULL,
		steps INTEGER NOT NULL,
		diverged_at INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_attractor ON runs(attractor);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := c.conn.Exec(schema)
	return err
}

// RunRow is one catalog entry. DivergedAt is the first non-finite step
// index, or -1 for a fully finite trajectory.
type RunRow struct {
	ID         string    `db:"id"`
	Attractor  string    `db:"attractor"`
	Integrator string    `db:"integrator"`
	Dt         float64   `db:"dt"`
	Steps      int       `db:"steps"`
	DivergedAt int       `db:"diverged_at"`
	CreatedAt  time.Time `db:"created_at"`
}

func (c *Catalog) Insert(row RunRow) error {
	_, err := c.conn.NamedExec(`
		INSERT INTO runs (id, attractor, integrator, dt, steps, diverged_at, created_at)
		VALUES (:id, :attractor, :integrator, :dt, :steps, :diverged_at, :created_at)`,
		row)
	return err
}

// List returns all runs, newest first.
func (c *Catalog) List() ([]RunRow, error) {
	rows := []RunRow{}
	err := c.conn.Select(&rows, `SELECT * FROM runs ORDER BY created_at DESC, id`)
	return rows, err
}

// Delete removes a run from the index.
func (c *Catalog) Delete(id string) error {
	_, err := c.conn.Exec(`DELETE FROM runs WHERE id = ?`, id)
	return err
}
