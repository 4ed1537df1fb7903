package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobmatch/backend/models"
)

// exerciseStore runs the shared UserStore contract against s
func exerciseStore(t *testing.T, s UserStore, email string) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Username: "jdoe", Email: email, Password: "hash", IsActive: true}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	dup := &models.User{Username: "other", Email: email, Password: "hash2"}
	assert.ErrorIs(t, s.CreateUser(ctx, dup), ErrUserExists)

	byEmail, err := s.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "jdoe", byEmail.Username)
	assert.Equal(t, "hash", byEmail.Password)
	assert.True(t, byEmail.IsActive)
	assert.False(t, byEmail.IsAdmin)
	assert.WithinDuration(t, user.CreatedAt, byEmail.CreatedAt, time.Millisecond)

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)

	_, err = s.GetUserByEmail(ctx, "nobody-"+email)
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, s.DeleteUser(ctx, user.ID))
	_, err = s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, s.DeleteUser(ctx, user.ID), ErrUserNotFound)

	// The email is free again after deletion
	again := &models.User{Username: "jdoe", Email: email, Password: "hash"}
	require.NoError(t, s.CreateUser(ctx, again))
	assert.NotEqual(t, user.ID, again.ID)
	require.NoError(t, s.DeleteUser(ctx, again.ID))
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s, "user@example.com")
}

func TestSQLiteStoreMalformedID(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.GetUserByID(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, s.DeleteUser(context.Background(), "abc"), ErrUserNotFound)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	user := &models.User{Username: "jdoe", Email: "jdoe@example.com", Password: "hash", IsActive: true}
	require.NoError(t, s.CreateUser(ctx, user))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetUserByEmail(ctx, "jdoe@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestFirestoreStore(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	s, err := NewFirestoreStore(context.Background(), "jobmatch-test")
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s, fmt.Sprintf("user-%d@example.com", time.Now().UnixNano()))
}
