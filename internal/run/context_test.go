package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContextWithSeed(t *testing.T) {
	ctx := NewContextWithSeed("http://localhost:9999/api", 1700000000)

	assert.Equal(t, "http://localhost:9999/api", ctx.BaseURL)
	assert.Equal(t, "emma.wilson.1700000000@mewayz.com", ctx.Email)
	assert.Equal(t, "SecurePassword123!", ctx.Password)
	assert.Equal(t, int64(1700000000), ctx.Seed())
	assert.Empty(t, ctx.Token())
}

func TestNewContext_DefaultBaseURL(t *testing.T) {
	ctx := NewContext("")
	assert.Equal(t, DefaultBaseURL, ctx.BaseURL)
}

func TestUniqueEmailAndSlug(t *testing.T) {
	ctx := NewContextWithSeed("", 42)

	assert.Equal(t, "duplicate.42@example.com", ctx.UniqueEmail("duplicate", "example.com"))
	assert.Equal(t, "my-bio-page-42", ctx.UniqueSlug("my-bio-page"))

	// Same seed, same values: a rerun of a step sees the same identifiers.
	assert.Equal(t, ctx.UniqueSlug("my-bio-page"), ctx.UniqueSlug("my-bio-page"))
}

func TestWithoutToken(t *testing.T) {
	ctx := NewContextWithSeed("", 1)
	ctx.SetToken("secret")

	var inside string
	ctx.WithoutToken(func() {
		inside = ctx.Token()
	})

	assert.Empty(t, inside)
	assert.Equal(t, "secret", ctx.Token())
}

func TestWithoutToken_RestoresOnPanic(t *testing.T) {
	ctx := NewContextWithSeed("", 1)
	ctx.SetToken("secret")

	require.Panics(t, func() {
		ctx.WithoutToken(func() { panic("boom") })
	})
	assert.Equal(t, "secret", ctx.Token())
}

func TestEntityTracking(t *testing.T) {
	ctx := NewContextWithSeed("", 1)

	_, ok := ctx.Entity(KindCourse)
	assert.False(t, ok)

	ctx.SetEntity(KindCourse, "17")
	id, ok := ctx.Entity(KindCourse)
	require.True(t, ok)
	assert.Equal(t, "17", id)

	// Last write wins.
	ctx.SetEntity(KindCourse, "18")
	id, _ = ctx.Entity(KindCourse)
	assert.Equal(t, "18", id)
}
