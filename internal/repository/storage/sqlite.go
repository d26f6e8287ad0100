package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"

	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage/migrations"
)

const migrationTable = "schema_migrations"

type Storage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn}, nil
}

// Init applies every embedded migration that has not been applied yet.
func (that *Storage) Init(ctx context.Context) error {
	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`, migrationTable)

	if _, err := that.Connection.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("can't create migration table: %w", err)
	}

	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("can't list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		if err = that.applyMigration(ctx, file); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}
	}

	return nil
}

func (that *Storage) applyMigration(ctx context.Context, file string) error {
	var applied int
	query := fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE name = ?`, migrationTable)
	if err := that.Connection.QueryRowContext(ctx, query, file).Scan(&applied); err != nil {
		return fmt.Errorf("can't check migration: %w", err)
	}

	if applied > 0 {
		return nil
	}

	content, err := fs.ReadFile(migrations.FS, file)
	if err != nil {
		return fmt.Errorf("can't read migration: %w", err)
	}

	tx, err := that.Connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("can't apply migration: %w", err)
	}

	insert := fmt.Sprintf(`INSERT INTO %s (name, applied_at) VALUES (?, ?)`, migrationTable)
	if _, err = tx.ExecContext(ctx, insert, file, time.Now().UTC().UnixMilli()); err != nil {
		return fmt.Errorf("can't record migration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit migration: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	if that == nil || that.Connection == nil {
		return nil
	}

	return that.Connection.Close()
}
