package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	mockedIdentity "github.com/rocketscienceinc/tictactoe-peer/mocks/identity"
)

var errRedisDown = errors.New("redis down")

func testConfig() config.Identity {
	return config.Identity{
		Length:          5,
		MaxAttempts:     5,
		RetryDelay:      time.Millisecond,
		TTL:             time.Minute,
		RefreshInterval: time.Hour,
		RestoreDelay:    time.Millisecond,
		RestoreAttempts: 2,
	}
}

func testEndpoint(code string) string {
	return "ws://peer.test/peer/" + code
}

// sequence yields CODE1, CODE2, ... so every attempt is distinguishable.
func sequence() Generator {
	var n atomic.Int32

	return func(int) (string, error) {
		return fmt.Sprintf("CODE%d", n.Add(1)), nil
	}
}

func newRendezvous(t *testing.T, dir *mockedIdentity.Mockdirectory, conf config.Identity) *Rendezvous {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return New(logger, dir, conf, testEndpoint, WithGenerator(sequence()))
}

func TestRendezvous_Acquire(t *testing.T) {
	ctx := context.Background()

	t.Run("Registers a free code", func(t *testing.T) {
		// Given: a directory that accepts the first code
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		dir.EXPECT().Register(mock.Anything, "CODE1", testEndpoint("CODE1")).Return(nil).Once()
		dir.EXPECT().Deregister(mock.Anything, "CODE1", testEndpoint("CODE1")).Return(nil).Once()

		// When: acquiring an identity
		code, err := rendezvous.Acquire(ctx)

		// Then: the code is held until released
		require.NoError(t, err)
		assert.Equal(t, "CODE1", code)
		assert.Equal(t, "CODE1", rendezvous.Code())

		require.NoError(t, rendezvous.Release(ctx))
		assert.Empty(t, rendezvous.Code())
	})

	t.Run("Regenerates the code on collision", func(t *testing.T) {
		// Given: a directory where the first code is taken
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		dir.EXPECT().Register(mock.Anything, "CODE1", mock.Anything).Return(apperror.ErrIdentityCollision).Once()
		dir.EXPECT().Register(mock.Anything, "CODE2", mock.Anything).Return(nil).Once()
		dir.EXPECT().Deregister(mock.Anything, "CODE2", mock.Anything).Return(nil).Once()

		// When: acquiring an identity
		code, err := rendezvous.Acquire(ctx)

		// Then: a freshly generated code is registered
		require.NoError(t, err)
		assert.Equal(t, "CODE2", code)
		require.NoError(t, rendezvous.Release(ctx))
	})

	t.Run("Gives up after five collisions", func(t *testing.T) {
		// Given: a directory where every code collides
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		dir.EXPECT().
			Register(mock.Anything, mock.Anything, mock.Anything).
			Return(apperror.ErrIdentityCollision).
			Times(5)

		// When: acquiring an identity
		code, err := rendezvous.Acquire(ctx)

		// Then: the identity is exhausted and no sixth attempt is made
		require.ErrorIs(t, err, apperror.ErrIdentityExhausted)
		assert.Empty(t, code)
		dir.AssertNumberOfCalls(t, "Register", 5)
	})

	t.Run("Does not retry other failures", func(t *testing.T) {
		// Given: an unreachable directory
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		dir.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).Return(errRedisDown).Once()

		// When: acquiring an identity
		_, err := rendezvous.Acquire(ctx)

		// Then: the failure is reported as is
		require.ErrorIs(t, err, errRedisDown)
		assert.NotErrorIs(t, err, apperror.ErrIdentityExhausted)
	})

	t.Run("Is idempotent once acquired", func(t *testing.T) {
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		dir.EXPECT().Register(mock.Anything, "CODE1", mock.Anything).Return(nil).Once()
		dir.EXPECT().Deregister(mock.Anything, "CODE1", mock.Anything).Return(nil).Once()

		first, err := rendezvous.Acquire(ctx)
		require.NoError(t, err)
		second, err := rendezvous.Acquire(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		require.NoError(t, rendezvous.Release(ctx))
	})
}

func TestRendezvous_Release(t *testing.T) {
	t.Run("Without a code is a no-op", func(t *testing.T) {
		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, testConfig())

		require.NoError(t, rendezvous.Release(context.Background()))
		require.NoError(t, rendezvous.Release(context.Background()))
	})
}

func TestRendezvous_Signaling(t *testing.T) {
	ctx := context.Background()

	t.Run("Restores a lost channel silently", func(t *testing.T) {
		// Given: a registration whose first refresh fails
		conf := testConfig()
		conf.RefreshInterval = 5 * time.Millisecond

		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, conf)

		var lost atomic.Bool
		rendezvous.OnLost(func(error) { lost.Store(true) })

		var refreshed atomic.Int32
		dir.EXPECT().Register(mock.Anything, "CODE1", mock.Anything).Return(nil).Once()
		dir.EXPECT().Refresh(mock.Anything, "CODE1", mock.Anything).Return(errRedisDown).Once()
		dir.EXPECT().Ping(mock.Anything).Return(nil).Maybe()
		dir.EXPECT().Refresh(mock.Anything, "CODE1", mock.Anything).
			Run(func(context.Context, string, string) { refreshed.Add(1) }).
			Return(nil).
			Maybe()
		dir.EXPECT().Deregister(mock.Anything, "CODE1", mock.Anything).Return(nil).Once()

		// When: the watch runs for a while
		_, err := rendezvous.Acquire(ctx)
		require.NoError(t, err)

		// Then: the code is kept and nobody is told about the blip
		require.Eventually(t, func() bool { return refreshed.Load() >= 2 }, time.Second, 5*time.Millisecond)
		assert.False(t, lost.Load())
		assert.Equal(t, "CODE1", rendezvous.Code())

		require.NoError(t, rendezvous.Release(ctx))
	})

	t.Run("Reports loss once the restore budget is spent", func(t *testing.T) {
		// Given: a directory that goes away for good
		conf := testConfig()
		conf.RefreshInterval = 5 * time.Millisecond

		dir := mockedIdentity.NewMockdirectory(t)
		rendezvous := newRendezvous(t, dir, conf)

		lostErr := make(chan error, 1)
		rendezvous.OnLost(func(err error) { lostErr <- err })

		dir.EXPECT().Register(mock.Anything, "CODE1", mock.Anything).Return(nil).Once()
		dir.EXPECT().Refresh(mock.Anything, "CODE1", mock.Anything).Return(errRedisDown).Once()
		dir.EXPECT().Ping(mock.Anything).Return(errRedisDown).Times(conf.RestoreAttempts)

		_, err := rendezvous.Acquire(ctx)
		require.NoError(t, err)

		// Then: the loss is reported and the code is dropped
		select {
		case err = <-lostErr:
			require.ErrorIs(t, err, apperror.ErrSignalingLost)
		case <-time.After(time.Second):
			t.Fatal("signaling loss was not reported")
		}

		assert.Empty(t, rendezvous.Code())
		require.NoError(t, rendezvous.Release(ctx))
	})
}

func TestGenerate(t *testing.T) {
	t.Run("Uses the unambiguous alphabet", func(t *testing.T) {
		for range 100 {
			code, err := Generate(5)
			require.NoError(t, err)
			assert.True(t, Valid(code, 5), code)
			assert.NotContains(t, code, "0")
			assert.NotContains(t, code, "O")
			assert.NotContains(t, code, "1")
			assert.NotContains(t, code, "I")
			assert.NotContains(t, code, "L")
		}
	})

	t.Run("Rejects a non-positive length", func(t *testing.T) {
		_, err := Generate(0)
		require.ErrorIs(t, err, ErrInvalidLength)
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ABCDE", Normalize("  abcde\n"))
	assert.Equal(t, "AB3CD", Normalize("Ab3cD"))
}
