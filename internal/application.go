package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
	"github.com/rocketscienceinc/tictactoe-peer/internal/eventloop"
	"github.com/rocketscienceinc/tictactoe-peer/internal/identity"
	"github.com/rocketscienceinc/tictactoe-peer/internal/observability"
	"github.com/rocketscienceinc/tictactoe-peer/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-peer/internal/repository"
	"github.com/rocketscienceinc/tictactoe-peer/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-peer/internal/session"
	"github.com/rocketscienceinc/tictactoe-peer/internal/transport/websocket"
	"github.com/rocketscienceinc/tictactoe-peer/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-peer/transport/rest"
)

const (
	acceptTimeout   = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

var (
	ErrAddrNotFound      = errors.New("redis address string is empty")
	ErrUnknownOracleKind = errors.New("unknown oracle kind")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	observability.RegisterMetrics()

	moveOracle, err := newOracle(logger, conf.Oracle)
	if err != nil {
		return err
	}

	directory := repository.NewDirectoryRepository(redisStorage.Connection, conf.Identity.TTL)
	rendezvous := identity.New(logger, directory, conf.Identity, func(code string) string {
		return websocket.Endpoint(conf.Peer.PublicURL, code)
	})
	dialer := peerDialer(websocket.NewDialer(logger, conf.Peer))

	// the loop outlives ctx so the session can be shut down cleanly
	loop := eventloop.New()
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer func() {
		stopLoop()
		<-loop.Done()
	}()

	go func() {
		_ = loop.Run(loopCtx)
	}()

	newPeer := func(handlers session.Handlers) usecase.PeerSession {
		return session.NewPeer(logger, loop, rendezvous, directory, dialer, *conf, handlers)
	}

	gameManager, err := usecase.NewGameManager(logger, loop, moveOracle, newPeer, conf.Oracle)
	if err != nil {
		return fmt.Errorf("could not create game manager: %w", err)
	}

	defer func() {
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		if err = gameManager.Shutdown(shutdownCtx); err != nil {
			log.Error("could not shut down game session", "error", err)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		restServer := rest.NewServer(logger, rest.NewPingHandler(), rest.NewGameHandler(gameManager))
		if httpErr := restServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run peer server
	peerErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting peer server", "addr", conf.Peer.ListenAddr)
		peerServer := websocket.NewServer(logger, conf.Peer, &peerAcceptor{manager: gameManager})
		if peerErr := peerServer.Start(ctx); peerErr != nil {
			log.Error("Peer server error", "error", peerErr)
			peerErrCh <- peerErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-peerErrCh:
		return fmt.Errorf("peer server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newOracle(logger *slog.Logger, conf config.Oracle) (oracle.MoveOracle, error) {
	switch conf.Kind {
	case "", "local":
		return oracle.NewLocalOracle(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))), nil
	case "http":
		if conf.URL == "" {
			return nil, fmt.Errorf("%w: http oracle needs a url", ErrUnknownOracleKind)
		}

		return oracle.NewHTTPOracle(logger, conf.URL, conf.Timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOracleKind, conf.Kind)
	}
}

// peerDialer adapts the websocket dialer to the session, keeping a failed
// dial from turning into a non-nil interface holding a nil *Conn.
func peerDialer(dialer *websocket.Dialer) session.DialerFunc {
	return func(ctx context.Context, endpoint string) (session.Conn, error) {
		conn, err := dialer.Dial(ctx, endpoint)
		if err != nil {
			return nil, err
		}

		return conn, nil
	}
}

type peerAcceptor struct {
	manager *usecase.GameManager
}

func (that *peerAcceptor) Admit(code string) error {
	ctx, cancel := context.WithTimeout(context.Background(), acceptTimeout)
	defer cancel()

	return that.manager.AdmitInbound(ctx, code)
}

func (that *peerAcceptor) Accept(code string, conn *websocket.Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), acceptTimeout)
	defer cancel()

	that.manager.AcceptInbound(ctx, code, conn)
}
