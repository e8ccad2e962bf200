package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite is a durable cache backed by a single SQLite database file. It
// survives restarts like Disk but keeps everything in one file, which is
// easier to ship around or put on shared storage.
//
// The database uses a write-ahead log (WAL) with periodic passive
// checkpoints to balance write performance with durability.
type SQLite struct {
	db        *sql.DB
	dbPath    string
	done      chan struct{}
	closeOnce sync.Once

	// preparedStatements contains pre-compiled SQL statements for performance
	getStmt   *sql.Stmt
	setStmt   *sql.Stmt
	clearStmt *sql.Stmt
}

// checkpointInterval is how often the WAL is checkpointed.
const checkpointInterval = 5 * time.Minute

// DefaultSQLitePath returns the default database location under the system
// temp directory.
func DefaultSQLitePath() string {
	return filepath.Join(os.TempDir(), "abacus-cache.db")
}

// NewSQLite opens or creates the cache database at dbPath. An empty dbPath
// selects DefaultSQLitePath.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dbPath == "" {
		dbPath = DefaultSQLitePath()
	}

	// Open database with WAL mode and busy timeout
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		dbPath, int((5 * time.Second).Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	c := &SQLite{
		db:     db,
		dbPath: dbPath,
		done:   make(chan struct{}),
	}

	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := c.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}

	go c.checkpointLoop()

	return c, nil
}

// initSchema creates the database schema if it doesn't exist.
func (c *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cache_entries (
		key TEXT PRIMARY KEY,
		value BLOB,
		created_at INTEGER NOT NULL
	);
	`

	_, err := c.db.Exec(schema)
	return err
}

// prepareStatements prepares SQL statements for reuse.
func (c *SQLite) prepareStatements() error {
	var err error

	c.getStmt, err = c.db.Prepare(`
		SELECT value FROM cache_entries WHERE key = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare get statement: %w", err)
	}

	c.setStmt, err = c.db.Prepare(`
		INSERT INTO cache_entries (key, value, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			created_at = excluded.created_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare set statement: %w", err)
	}

	c.clearStmt, err = c.db.Prepare(`
		DELETE FROM cache_entries
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare clear statement: %w", err)
	}

	return nil
}

// Get returns the value for key. Query failures report a miss.
func (c *SQLite) Get(key string) ([]byte, bool) {
	var value []byte
	err := c.getStmt.QueryRow(key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return value, true
}

// Set stores value under key. Write failures are silently dropped.
func (c *SQLite) Set(key string, value []byte) {
	_, _ = c.setStmt.Exec(key, value, time.Now().Unix())
}

// Clear removes all entries. Failures are best effort.
func (c *SQLite) Clear() {
	_, _ = c.clearStmt.Exec()
}

// Path returns the database file path.
func (c *SQLite) Path() string {
	return c.dbPath
}

// Close stops the checkpoint goroutine and closes the database. Safe to call
// more than once.
func (c *SQLite) Close() error {
	var closeErr error

	c.closeOnce.Do(func() {
		// Signal checkpoint goroutine to stop
		close(c.done)

		// Close prepared statements
		if c.getStmt != nil {
			c.getStmt.Close()
		}
		if c.setStmt != nil {
			c.setStmt.Close()
		}
		if c.clearStmt != nil {
			c.clearStmt.Close()
		}

		// Close database
		if c.db != nil {
			// Run final checkpoint
			_, _ = c.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")
			closeErr = c.db.Close()
		}
	})

	return closeErr
}

// checkpointLoop runs periodic WAL checkpoints.
func (c *SQLite) checkpointLoop() {
	ticker := time.NewTicker(checkpointInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Run checkpoint
			_, _ = c.db.Exec("PRAGMA wal_checkpoint(PASSIVE)")
		case <-c.done:
			return
		}
	}
}
