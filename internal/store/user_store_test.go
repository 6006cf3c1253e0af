package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-tracker/tests/testutil"
)

func TestRegister_DuplicateUsername(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	ok, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)

	// Same username with a different password still reports false.
	ok, err = s.Register(ctx, "alice", "pw2")
	require.NoError(t, err)
	assert.False(t, ok)

	// The first credential is the one that stuck.
	ok, err = s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Login(ctx, "alice", "pw2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegister_UsernamesAreCaseSensitive(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	ok, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Register(ctx, "Alice", "pw2")
	require.NoError(t, err)
	assert.True(t, ok, "differently-cased username is a distinct account")
}

func TestRegister_EmptyInputsAreCallerResponsibility(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	// The store does not enforce non-emptiness; the collaborator does.
	ok, err := s.Register(ctx, "", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Login(ctx, "", "")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogin_CredentialRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	ok, err := s.Register(ctx, "bob", "s3cret")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Login(ctx, "bob", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Login(ctx, "bob", "S3cret")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Login(ctx, "nobody", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticate_OnlyMatchesCleartextRows(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUserUnsafe(ctx, "admin", "letmein"))

	u, err := s.Authenticate(ctx, "admin", "letmein")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "letmein", u.Password)
	assert.Positive(t, u.ID)

	u, err = s.Authenticate(ctx, "admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)

	// A hashed account never matches the equality path, even with the right
	// password: the stored column holds the hash, not the password.
	ok, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.True(t, ok)

	u, err = s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLogin_RejectsUnsafeCleartextRows(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUserUnsafe(ctx, "admin", "letmein"))

	// The stored column is not a bcrypt hash, so verification fails.
	ok, err := s.Login(ctx, "admin", "letmein")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateUserUnsafe_DuplicatePropagates(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUserUnsafe(ctx, "admin", "pw"))

	err := s.CreateUserUnsafe(ctx, "admin", "other")
	assert.Error(t, err, "duplicate username on the unsafe path must propagate")
}

func TestRegister_AssignsIncreasingIdentifiers(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUserUnsafe(ctx, "first", "pw"))
	require.NoError(t, s.CreateUserUnsafe(ctx, "second", "pw"))

	a, err := s.Authenticate(ctx, "first", "pw")
	require.NoError(t, err)
	require.NotNil(t, a)
	b, err := s.Authenticate(ctx, "second", "pw")
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Greater(t, b.ID, a.ID)
}
