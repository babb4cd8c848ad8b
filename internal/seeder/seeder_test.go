package seeder

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func openTestSeeder(t *testing.T) *Seeder {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mewayz.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeed(t *testing.T) {
	s := openTestSeeder(t)

	seeded, err := s.Seed(context.Background(), Fixtures{
		Email:    "emma.wilson.1@mewayz.com",
		Password: "SecurePassword123!",
	})
	require.NoError(t, err)
	assert.Positive(t, seeded.UserID)
	assert.Positive(t, seeded.WorkspaceID)

	var name, email, hash string
	var verifiedAt *string
	err = s.db.QueryRow(
		`SELECT name, email, password, email_verified_at FROM users WHERE id = ?`,
		seeded.UserID,
	).Scan(&name, &email, &hash, &verifiedAt)
	require.NoError(t, err)

	assert.Equal(t, "Emma Wilson", name)
	assert.Equal(t, "emma.wilson.1@mewayz.com", email)
	require.NotNil(t, verifiedAt, "seeded user must be verified")

	// The stored hash carries the $2y$ prefix but is an ordinary bcrypt hash.
	require.True(t, strings.HasPrefix(hash, "$2y$"))
	rewritten := "$2a$" + strings.TrimPrefix(hash, "$2y$")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(rewritten), []byte("SecurePassword123!")))

	var role string
	err = s.db.QueryRow(
		`SELECT role FROM workspace_members WHERE workspace_id = ? AND user_id = ?`,
		seeded.WorkspaceID, seeded.UserID,
	).Scan(&role)
	require.NoError(t, err)
	assert.Equal(t, "owner", role)

	var plans int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM subscription_plans`).Scan(&plans))
	assert.Equal(t, 3, plans)
}

func TestSeed_WorkspaceSlugIsUniquePerSeed(t *testing.T) {
	s := openTestSeeder(t)

	first, err := s.Seed(context.Background(), Fixtures{
		Email: "a@mewayz.com", Password: "pw-one-long-enough",
	})
	require.NoError(t, err)
	second, err := s.Seed(context.Background(), Fixtures{
		Email: "b@mewayz.com", Password: "pw-two-long-enough",
	})
	require.NoError(t, err)

	var slugA, slugB string
	require.NoError(t, s.db.QueryRow(`SELECT slug FROM workspaces WHERE id = ?`, first.WorkspaceID).Scan(&slugA))
	require.NoError(t, s.db.QueryRow(`SELECT slug FROM workspaces WHERE id = ?`, second.WorkspaceID).Scan(&slugB))
	assert.True(t, strings.HasPrefix(slugA, "creative-studio-workspace-"))
	assert.NotEqual(t, slugA, slugB)

	// The plan catalog is idempotent across seeds.
	var plans int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM subscription_plans`).Scan(&plans))
	assert.Equal(t, 3, plans)
}

func TestSeed_DuplicateEmailRejected(t *testing.T) {
	s := openTestSeeder(t)
	fixtures := Fixtures{Email: "dup@mewayz.com", Password: "pw-long-enough"}

	_, err := s.Seed(context.Background(), fixtures)
	require.NoError(t, err)

	_, err = s.Seed(context.Background(), fixtures)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert user")
}

func TestSeed_RequiresCredentials(t *testing.T) {
	s := openTestSeeder(t)

	_, err := s.Seed(context.Background(), Fixtures{Password: "pw"})
	require.Error(t, err)

	_, err = s.Seed(context.Background(), Fixtures{Email: "x@mewayz.com"})
	require.Error(t, err)
}
