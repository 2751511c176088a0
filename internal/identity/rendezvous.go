// Package identity obtains a short game code from the directory and keeps it
// registered for as long as the player is hosting.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/observability"
)

type directory interface {
	Register(ctx context.Context, code, endpoint string) error
	Refresh(ctx context.Context, code, endpoint string) error
	Deregister(ctx context.Context, code, endpoint string) error
	Ping(ctx context.Context) error
}

// EndpointFunc maps a code to the address a guest should dial.
type EndpointFunc func(code string) string

type Option func(*Rendezvous)

func WithGenerator(generate Generator) Option {
	return func(r *Rendezvous) {
		r.generate = generate
	}
}

// Rendezvous owns at most one registered code at a time.
type Rendezvous struct {
	logger    *slog.Logger
	directory directory
	conf      config.Identity
	endpoint  EndpointFunc
	generate  Generator

	acquireMu sync.Mutex

	mu        sync.Mutex
	code      string
	stopWatch context.CancelFunc
	watchDone chan struct{}
	onLost    func(error)
}

func New(logger *slog.Logger, directory directory, conf config.Identity, endpoint EndpointFunc, opts ...Option) *Rendezvous {
	r := &Rendezvous{
		logger:    logger.With("component", "identity"),
		directory: directory,
		conf:      conf,
		endpoint:  endpoint,
		generate:  Generate,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// OnLost registers fn to be called when the signaling channel could not be
// restored. The registration is gone by then.
func (that *Rendezvous) OnLost(fn func(error)) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.onLost = fn
}

// Code returns the registered code or "" when none is held.
func (that *Rendezvous) Code() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.code
}

// Acquire registers a fresh code, regenerating it on collision. A code that is
// already held is returned as is.
func (that *Rendezvous) Acquire(ctx context.Context) (string, error) {
	log := that.logger.With("method", "Acquire")

	that.acquireMu.Lock()
	defer that.acquireMu.Unlock()

	if code := that.Code(); code != "" {
		return code, nil
	}

	var (
		code     string
		attempts int
	)

	operation := func() error {
		attempts++

		candidate, err := that.generate(that.conf.Length)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to generate code: %w", err))
		}

		err = that.directory.Register(ctx, candidate, that.endpoint(candidate))
		if errors.Is(err, apperror.ErrIdentityCollision) {
			observability.RecordIdentityAttempt("collision")
			log.Debug("code already taken", "code", candidate, "attempt", attempts)

			return err
		}

		if err != nil {
			observability.RecordIdentityAttempt("error")
			return backoff.Permanent(fmt.Errorf("failed to register code: %w", err))
		}

		observability.RecordIdentityAttempt("ok")
		code = candidate

		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(that.conf.RetryDelay), uint64(max(that.conf.MaxAttempts-1, 0))),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, apperror.ErrIdentityCollision) {
			log.Warn("no free code found", "attempts", attempts)
			return "", fmt.Errorf("%w after %d attempts", apperror.ErrIdentityExhausted, attempts)
		}

		return "", err
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	that.mu.Lock()
	that.code = code
	that.stopWatch = cancel
	that.watchDone = done
	that.mu.Unlock()

	go that.watch(watchCtx, code, done)

	log.Info("code registered", "code", code, "attempts", attempts)

	return code, nil
}

// Release stops keeping the code alive and removes it from the directory.
// Calling it without a held code is a no-op.
func (that *Rendezvous) Release(ctx context.Context) error {
	that.mu.Lock()
	code, cancel, done := that.code, that.stopWatch, that.watchDone
	that.code, that.stopWatch, that.watchDone = "", nil, nil
	that.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	if code == "" {
		return nil
	}

	if err := that.directory.Deregister(ctx, code, that.endpoint(code)); err != nil {
		return fmt.Errorf("failed to release code: %w", err)
	}

	that.logger.Info("code released", "code", code)

	return nil
}

// watch refreshes the registration until ctx is cancelled. When the
// directory stops answering it tries to restore the channel before giving up.
func (that *Rendezvous) watch(ctx context.Context, code string, done chan struct{}) {
	log := that.logger.With("method", "watch", "code", code)
	defer close(done)

	ticker := time.NewTicker(that.conf.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		err := that.directory.Refresh(ctx, code, that.endpoint(code))
		if err == nil {
			continue
		}

		if ctx.Err() != nil {
			return
		}

		log.Warn("signaling channel lost, restoring", "error", err)

		if err = that.restore(ctx, code); err != nil {
			if ctx.Err() != nil {
				return
			}

			log.Error("could not restore signaling channel", "error", err)
			that.lost(code, err)

			return
		}

		log.Info("signaling channel restored")
	}
}

func (that *Rendezvous) restore(ctx context.Context, code string) error {
	operation := func() error {
		if err := that.directory.Ping(ctx); err != nil {
			return fmt.Errorf("directory unreachable: %w", err)
		}

		err := that.directory.Refresh(ctx, code, that.endpoint(code))
		if errors.Is(err, apperror.ErrIdentityCollision) {
			return backoff.Permanent(err)
		}

		return err
	}

	timer := time.NewTimer(that.conf.RestoreDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(that.conf.RestoreDelay), uint64(max(that.conf.RestoreAttempts-1, 0))),
		ctx,
	)

	return backoff.Retry(operation, policy)
}

func (that *Rendezvous) lost(code string, cause error) {
	that.mu.Lock()
	if that.code != code {
		that.mu.Unlock()
		return
	}

	cancel := that.stopWatch
	that.code, that.stopWatch, that.watchDone = "", nil, nil
	onLost := that.onLost
	that.mu.Unlock()

	cancel()

	if onLost != nil {
		onLost(fmt.Errorf("%w: %w", apperror.ErrSignalingLost, cause))
	}
}
