// Package seeder injects fixtures directly into the SUT's SQLite database
// before a probe run, for rows the HTTP API cannot create (a verified
// user, its workspace and membership, and the subscription plan catalog).
// The harness itself never touches the database; it observes the seeded
// rows only through the SUT's API.
package seeder

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

//go:embed schema.sql
var schemaSQL string

// Seeder writes fixtures into one SQLite database.
type Seeder struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path.
//
// The connection is configured the same way the SUT's runtime uses it:
// WAL mode, NORMAL synchronous, a busy timeout for lock contention, and
// foreign key enforcement. A single connection avoids SQLITE_BUSY against
// SQLite's one-writer limit.
func Open(path string) (*Seeder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Seeder{db: db}, nil
}

// Close closes the database connection.
func (s *Seeder) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Fixtures describes the rows to inject.
type Fixtures struct {
	Name          string
	Email         string
	Password      string
	WorkspaceName string
}

// Seeded reports the identifiers of the injected rows.
type Seeded struct {
	UserID      int64
	WorkspaceID int64
}

// Seed inserts a verified user, a workspace owned by it, the owner
// membership, and the default plan catalog, all in one transaction.
// Existing rows with the same unique keys cause an error rather than a
// silent overwrite; a seeded database is expected to be fresh.
func (s *Seeder) Seed(ctx context.Context, f Fixtures) (*Seeded, error) {
	if f.Email == "" || f.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if f.Name == "" {
		f.Name = "Emma Wilson"
	}
	if f.WorkspaceName == "" {
		f.WorkspaceName = "Creative Studio Workspace"
	}

	hash, err := hashPassword(f.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format("2006-01-02 15:04:05")

	res, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email, password, email_verified_at, remember_token, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		f.Name, f.Email, hash, now, uuid.NewString(), now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read user id: %w", err)
	}

	slug := fmt.Sprintf("%s-%s",
		strings.ReplaceAll(strings.ToLower(f.WorkspaceName), " ", "-"),
		uuid.NewString()[:8])
	res, err = tx.ExecContext(ctx,
		`INSERT INTO workspaces (name, slug, description, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.WorkspaceName, slug, "Seeded by apiprobe", userID, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert workspace: %w", err)
	}
	workspaceID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO workspace_members (workspace_id, user_id, role, created_at, updated_at)
		 VALUES (?, ?, 'owner', ?, ?)`,
		workspaceID, userID, now, now); err != nil {
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	if err := seedPlans(ctx, tx, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fixtures: %w", err)
	}

	return &Seeded{UserID: userID, WorkspaceID: workspaceID}, nil
}

// defaultPlans is the catalog the checkout suites expect to exist.
var defaultPlans = []struct {
	name       string
	priceCents int64
	stripeID   string
}{
	{"free", 0, ""},
	{"pro", 2900, "price_pro_monthly"},
	{"enterprise", 9900, "price_enterprise_monthly"},
}

func seedPlans(ctx context.Context, tx *sql.Tx, now string) error {
	for _, plan := range defaultPlans {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subscription_plans (name, stripe_price_id, price_cents, billing_interval, created_at, updated_at)
			 VALUES (?, ?, ?, 'monthly', ?, ?)
			 ON CONFLICT(name) DO NOTHING`,
			plan.name, plan.stripeID, plan.priceCents, now, now); err != nil {
			return fmt.Errorf("failed to insert plan %s: %w", plan.name, err)
		}
	}
	return nil
}

// hashPassword produces a bcrypt hash in the $2y$ form the SUT's
// password verifier stores. Go emits the $2a$ prefix; the algorithms are
// identical, so the prefix is rewritten.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return "$2y$" + strings.TrimPrefix(string(hash), "$2a$"), nil
}
