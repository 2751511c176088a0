package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/testing/suite"
)

const (
	testCode     = "AB3CD"
	testEndpoint = "ws://10.0.0.1:9191/peer/AB3CD"
)

func TestMain(m *testing.M) {
	os.Exit(suite.Run(m))
}

func TestDirectoryRepository_Register(t *testing.T) {
	t.Run("Register_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		// When: a free code is registered
		err := directory.Register(ctx, testCode, testEndpoint)

		// Then: it can be looked up
		require.NoError(t, err)

		endpoint, err := directory.Lookup(ctx, testCode)
		require.NoError(t, err)
		assert.Equal(t, testEndpoint, endpoint)
	})

	t.Run("Register_Collision", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		// Given: the code is already taken
		require.NoError(t, directory.Register(ctx, testCode, testEndpoint))

		// When: another peer registers the same code
		err := directory.Register(ctx, testCode, "ws://10.0.0.2:9191/peer/AB3CD")

		// Then: a collision is reported and the first owner keeps the code
		require.ErrorIs(t, err, apperror.ErrIdentityCollision)

		endpoint, err := directory.Lookup(ctx, testCode)
		require.NoError(t, err)
		assert.Equal(t, testEndpoint, endpoint)
	})

	t.Run("Register_SetsTTL", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		require.NoError(t, directory.Register(ctx, testCode, testEndpoint))

		ttl, err := st.Storage.TTL(ctx, directoryKeyPrefix+testCode).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}

func TestDirectoryRepository_Lookup(t *testing.T) {
	t.Run("Lookup_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		// When: an unregistered code is looked up
		_, err := directory.Lookup(ctx, "ABCDE")

		// Then: the peer is unavailable
		require.ErrorIs(t, err, apperror.ErrIdentityUnavailable)
	})
}

func TestDirectoryRepository_Refresh(t *testing.T) {
	t.Run("Refresh_RecreatesExpiredCode", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		// Given: our registration vanished, e.g. it expired during an outage
		require.NoError(t, directory.Register(ctx, testCode, testEndpoint))
		require.NoError(t, st.Storage.Del(ctx, directoryKeyPrefix+testCode).Err())

		// When: the registration is refreshed
		err := directory.Refresh(ctx, testCode, testEndpoint)

		// Then: the code points at us again
		require.NoError(t, err)
		endpoint, err := directory.Lookup(ctx, testCode)
		require.NoError(t, err)
		assert.Equal(t, testEndpoint, endpoint)
	})

	t.Run("Refresh_TakenByAnotherPeer", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)

		// Given: another peer owns the code
		require.NoError(t, directory.Register(ctx, testCode, "ws://other/peer/AB3CD"))

		// When: we try to refresh it
		err := directory.Refresh(ctx, testCode, testEndpoint)

		// Then: a collision is reported
		require.ErrorIs(t, err, apperror.ErrIdentityCollision)
	})
}

func TestDirectoryRepository_Deregister(t *testing.T) {
	t.Run("Deregister_Owner", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)
		require.NoError(t, directory.Register(ctx, testCode, testEndpoint))

		// When: the owner deregisters twice
		require.NoError(t, directory.Deregister(ctx, testCode, testEndpoint))
		require.NoError(t, directory.Deregister(ctx, testCode, testEndpoint))

		// Then: the code is free
		_, err := directory.Lookup(ctx, testCode)
		require.ErrorIs(t, err, apperror.ErrIdentityUnavailable)
	})

	t.Run("Deregister_KeepsForeignRegistration", func(t *testing.T) {
		ctx, st := suite.New(t)
		directory := NewDirectoryRepository(st.Storage, time.Minute)
		require.NoError(t, directory.Register(ctx, testCode, "ws://other/peer/AB3CD"))

		// When: we deregister a code we do not own
		require.NoError(t, directory.Deregister(ctx, testCode, testEndpoint))

		// Then: the other peer is still reachable
		endpoint, err := directory.Lookup(ctx, testCode)
		require.NoError(t, err)
		assert.Equal(t, "ws://other/peer/AB3CD", endpoint)
	})
}

func TestDirectoryRepository_Ping(t *testing.T) {
	ctx, st := suite.New(t)
	directory := NewDirectoryRepository(st.Storage, time.Minute)

	require.NoError(t, directory.Ping(ctx))
}
