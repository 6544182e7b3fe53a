package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursely/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// AttemptRepo returns the quiz attempt repository backed by this store.
func (s *Store) AttemptRepo() *AttemptRepo {
	return &AttemptRepo{client: s.client, seq: s.seq}
}

// ProgressRepo returns the lesson progress repository backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{client: s.client}
}

// EnrollmentRepo returns the enrollment repository backed by this store.
func (s *Store) EnrollmentRepo() *EnrollmentRepo {
	return &EnrollmentRepo{client: s.client}
}

// CertificateRepo returns the certificate repository backed by this store.
func (s *Store) CertificateRepo() *CertificateRepo {
	return &CertificateRepo{client: s.client}
}

// Reset wipes all learner data: attempts, answers, progress, enrollments
// and certificates. Course content is static and unaffected.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset answer events: %w", err)
	}
	if _, err := s.client.Attempt.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	if _, err := s.client.LessonProgress.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset lesson progress: %w", err)
	}
	if _, err := s.client.Certificate.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset certificates: %w", err)
	}
	if _, err := s.client.Enrollment.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset enrollments: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. COURSELY_DB environment variable
// 2. $XDG_DATA_HOME/coursely/coursely.db
// 3. ~/.local/share/coursely/coursely.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COURSELY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "coursely", "coursely.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
