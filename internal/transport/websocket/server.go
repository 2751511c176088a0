package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-peer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-peer/internal/config"
)

const peerPath = "/peer/"

// Acceptor decides who may connect to us. Admit runs before the upgrade so a
// refused guest gets a plain HTTP status; Accept receives the live connection.
type Acceptor interface {
	Admit(code string) error
	Accept(code string, conn *Conn)
}

type Server struct {
	logger   *slog.Logger
	conf     config.Peer
	acceptor Acceptor
	upgrader websocket.Upgrader
}

func NewServer(logger *slog.Logger, conf config.Peer, acceptor Acceptor) *Server {
	return &Server{
		logger:   logger.With("component", "peer-server"),
		conf:     conf,
		acceptor: acceptor,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: conf.ConnectTimeout,
			CheckOrigin:      func(*http.Request) bool { return true },
		},
	}
}

// Endpoint is the address a guest dials to reach the host registered as code.
func Endpoint(publicURL, code string) string {
	return strings.TrimRight(publicURL, "/") + peerPath + code
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+peerPath+"{code}", that.handlePeer)

	return mux
}

// Start serves inbound peer connections until ctx is cancelled.
func (that *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              that.conf.ListenAddr,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down peer server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handlePeer(writer http.ResponseWriter, req *http.Request) {
	code := req.PathValue("code")
	log := that.logger.With("method", "handlePeer", "code", code, "remote", req.RemoteAddr)

	if err := that.acceptor.Admit(code); err != nil {
		log.Info("peer refused", "error", err)
		http.Error(writer, apperror.Message(err), refusalStatus(err))

		return
	}

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	conn := newConn(that.logger, ws, that.conf)
	log.Info("peer connected", "connection", conn.ID())

	that.acceptor.Accept(code, conn)
}

func refusalStatus(err error) int {
	switch {
	case errors.Is(err, apperror.ErrIdentityUnavailable):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrSessionBusy):
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
