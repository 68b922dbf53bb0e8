package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	uid, err := storage.CreateUser(context.Background(), "Ann", "ann@x.com", "hashedpassword")
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	got, err := storage.GetUserByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "hashedpassword", got.PasswordHash)
	// Новые пользователи не администраторы
	assert.False(t, got.IsAdmin)
}

func TestStorage_CreateUser_DuplicateEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.CreateUser(context.Background(), "Ann", "ann@x.com", "hash1")
	require.NoError(t, err)

	_, err = storage.CreateUser(context.Background(), "Other Ann", "ann@x.com", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestStorage_GetUserByEmail_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUserByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_GetUserByUID(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := uuid.New().String()
	factory.CreateUser(t, uid, "Bob", "bob@x.com", "hashedpassword", true)

	got, err := storage.GetUserByUID(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", got.Email)
	assert.True(t, got.IsAdmin)

	_, err = storage.GetUserByUID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_SetAdmin(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := uuid.New().String()
	factory.CreateUser(t, uid, "Bob", "bob@x.com", "hashedpassword", false)

	tests := []struct {
		name    string
		uid     string
		value   bool
		wantErr error
	}{
		{
			name:  "promote existing user",
			uid:   uid,
			value: true,
		},
		{
			name:  "promote is idempotent",
			uid:   uid,
			value: true,
		},
		{
			name:  "demote existing user",
			uid:   uid,
			value: false,
		},
		{
			name:    "missing user",
			uid:     uuid.New().String(),
			value:   true,
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.SetAdmin(context.Background(), tt.uid, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := storage.GetUserByUID(context.Background(), tt.uid)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got.IsAdmin)
		})
	}
}

func TestStorage_ListUsers(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	got, err := storage.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, uuid.New().String(), "Ann", "ann@x.com", "hash", false)
	factory.CreateUser(t, uuid.New().String(), "Bob", "bob@x.com", "hash", true)

	got, err = storage.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ann@x.com", got[0].Email)
	assert.Equal(t, "bob@x.com", got[1].Email)
}
