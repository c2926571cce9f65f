package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/vytor/studybananas/internal/logger"
)

//go:embed migrations
var migrationsFS embed.FS

// Schema names the migration set for one data file.
type Schema string

const (
	SchemaContacts   Schema = "contacts"
	SchemaSchedule   Schema = "schedule"
	SchemaFlashcards Schema = "flashcards"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

// goose keeps its configuration in package state.
var gooseMu sync.Mutex

type DB struct {
	*sql.DB
	log *logger.Logger
}

// Open opens the SQLite file at path, creating it and its directory when
// missing, and migrates it to the latest version of schema.
func Open(filePath string, schema Schema) (*DB, error) {
	log := logger.Default().WithPrefix("db").WithField("schema", string(schema))

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("failed to create data directory: %v", err)
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL", filePath)
	log.Info("opening database: %s", filePath)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1) // SQLite best practice for single writer

	db := &DB{DB: sqlDB, log: log}

	log.Debug("applying migrations")
	if err := Migrate(context.Background(), sqlDB, schema, log); err != nil {
		log.Error("failed to apply migrations: %v", err)
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// Migrate applies every pending migration of schema to sqlDB.
func Migrate(ctx context.Context, sqlDB *sql.DB, schema Schema, log *logger.Logger) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&gooseLogger{log: log})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	dir := path.Join("migrations", string(schema))
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", schema, err)
	}
	return nil
}

// gooseLogger routes goose output through our logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Debug(format, v...)
}

// Fatalf logs at error level. It does not exit; goose returns the error too.
func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(format, v...)
}
