package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"provider-match/internal/config"
	"provider-match/internal/database/sqlite"
	"provider-match/internal/domain/provider"
	"provider-match/internal/domain/user"
)

func newTestDB(t *testing.T) *sqlite.SQLiteDB {
	t.Helper()

	db, err := sqlite.Connect(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "app.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplyMigrations())
	return db
}

func seekerAccount(email string) user.User {
	return user.User{
		Email:              email,
		PasswordHash:       "hash",
		Role:               user.RoleSeeker,
		Location:           "NYC",
		IndustryPreference: "Tech & Design",
	}
}

func TestAccountRepository_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("seeker account persists without a provider row", func(t *testing.T) {
		db := newTestDB(t)
		accounts := NewAccountRepository(db)
		users := NewUserRepository(db)

		created, p, err := accounts.Register(ctx, seekerAccount("seeker@example.com"), nil)
		require.NoError(t, err)
		require.Nil(t, p)
		require.Positive(t, created.ID)

		got, err := users.GetByEmail(ctx, "seeker@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, user.RoleSeeker, got.Role)
		require.Equal(t, "Tech & Design", got.IndustryPreference)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("provider account writes user and profile together", func(t *testing.T) {
		db := newTestDB(t)
		accounts := NewAccountRepository(db)
		providers := NewProviderRepository(db)

		u := user.User{Email: "pro@example.com", PasswordHash: "hash", Role: user.RoleProvider, Location: "NYC"}
		p := &provider.Provider{
			Name:         "Acme",
			Skills:       []string{"Go", "a,b", "Tech & Design"},
			Location:     "NYC",
			ServiceFocus: "Tech",
		}

		created, createdProfile, err := accounts.Register(ctx, u, p)
		require.NoError(t, err)
		require.NotNil(t, createdProfile)
		require.Equal(t, created.ID, createdProfile.UserID)

		got, err := providers.GetByID(ctx, createdProfile.ID)
		require.NoError(t, err)
		// Round-trip must be exact even for skills containing delimiters.
		require.Equal(t, []string{"Go", "a,b", "Tech & Design"}, got.Skills)
	})

	t.Run("second registration with the same email fails", func(t *testing.T) {
		db := newTestDB(t)
		accounts := NewAccountRepository(db)

		_, _, err := accounts.Register(ctx, seekerAccount("dup@example.com"), nil)
		require.NoError(t, err)

		_, _, err = accounts.Register(ctx, seekerAccount("dup@example.com"), nil)
		require.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("duplicate email leaves no partial provider row", func(t *testing.T) {
		db := newTestDB(t)
		accounts := NewAccountRepository(db)
		providers := NewProviderRepository(db)

		u := user.User{Email: "dup@example.com", PasswordHash: "hash", Role: user.RoleProvider}
		_, _, err := accounts.Register(ctx, u, &provider.Provider{Name: "First"})
		require.NoError(t, err)

		_, _, err = accounts.Register(ctx, u, &provider.Provider{Name: "Second"})
		require.ErrorIs(t, err, user.ErrEmailTaken)

		all, err := providers.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, "First", all[0].Name)
	})
}

func TestUserRepository_GetMissing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	users := NewUserRepository(db)

	_, err := users.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, user.ErrNotFound)

	_, err = users.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, user.ErrNotFound)
}

func TestProviderRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	registerOwner := func(t *testing.T, db *sqlite.SQLiteDB, email, role string) int64 {
		t.Helper()
		u, _, err := NewAccountRepository(db).Register(ctx, user.User{
			Email: email, PasswordHash: "hash", Role: role,
		}, nil)
		require.NoError(t, err)
		return u.ID
	}

	t.Run("create and update round-trip", func(t *testing.T) {
		db := newTestDB(t)
		providers := NewProviderRepository(db)
		ownerID := registerOwner(t, db, "pro@example.com", user.RoleProvider)

		created, err := providers.Create(ctx, provider.Provider{
			UserID:       ownerID,
			Name:         "Acme",
			Skills:       []string{"Go"},
			Rating:       4.5,
			Location:     "NYC",
			ServiceFocus: "Tech",
		})
		require.NoError(t, err)
		require.Positive(t, created.ID)

		created.Name = "Acme Studio"
		created.Skills = []string{"Go", "SQL"}
		updated, err := providers.Update(ctx, created)
		require.NoError(t, err)
		require.Equal(t, "Acme Studio", updated.Name)
		require.Equal(t, []string{"Go", "SQL"}, updated.Skills)
		require.Equal(t, 4.5, updated.Rating)
	})

	t.Run("update of a missing provider reports not found", func(t *testing.T) {
		db := newTestDB(t)
		providers := NewProviderRepository(db)

		_, err := providers.Update(ctx, provider.Provider{ID: 404, Name: "ghost"})
		require.ErrorIs(t, err, provider.ErrNotFound)
	})

	t.Run("ListByOwnerRole only returns provider-owned profiles", func(t *testing.T) {
		db := newTestDB(t)
		providers := NewProviderRepository(db)

		proID := registerOwner(t, db, "pro@example.com", user.RoleProvider)
		seekerID := registerOwner(t, db, "seeker@example.com", user.RoleSeeker)

		_, err := providers.Create(ctx, provider.Provider{UserID: proID, Name: "Owned by provider"})
		require.NoError(t, err)
		_, err = providers.Create(ctx, provider.Provider{UserID: seekerID, Name: "Owned by seeker"})
		require.NoError(t, err)

		all, err := providers.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		matchable, err := providers.ListByOwnerRole(ctx, user.RoleProvider)
		require.NoError(t, err)
		require.Len(t, matchable, 1)
		require.Equal(t, "Owned by provider", matchable[0].Name)
	})
}
