package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/Brownie44l1/arenahttpd/internal/arena"
	"github.com/Brownie44l1/arenahttpd/internal/headers"
	"github.com/Brownie44l1/arenahttpd/internal/mapped"
	"github.com/Brownie44l1/arenahttpd/internal/response"
)

var ErrNotListening = errors.New("server is not listening")

// Server serves static files one connection at a time. All request memory
// comes from an arena reserved in New; every connection gets a scratch
// arena derived from the same offset, so steady-state handling allocates
// nothing that outlives the connection.
type Server struct {
	Logger Logger

	cfg       Config
	metrics   *Metrics
	temp      *arena.Arena
	root      *mapped.Root
	assembler *response.Assembler
	listener  net.Listener
	active    atomic.Pointer[net.Conn] // connection being handled, if any
	closed    atomic.Bool
	serving   atomic.Bool
}

// New validates cfg, reserves the arena and opens the served directory.
// A nil logger logs to stdout at cfg.LogLevel.
func New(cfg Config, logger Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLogger(stdout, cfg.LogLevel)
	}

	root, err := mapped.OpenRoot(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("open root: %w", err)
	}

	var preamble *headers.Headers
	if cfg.IsolationHeaders {
		preamble = headers.Isolation()
	}

	return &Server{
		Logger:    logger,
		cfg:       cfg,
		metrics:   NewMetrics(),
		temp:      arena.New(cfg.ArenaSize),
		root:      root,
		assembler: response.NewAssembler(preamble),
	}, nil
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	ln, err := listen(s.cfg.Addr, s.cfg.Backlog)
	if err != nil {
		return err
	}
	s.listener = ln
	s.Logger.Info("Starting server",
		Field{"addr", ln.Addr().String()},
		Field{"root", s.root.Name()},
		Field{"arena_bytes", s.temp.Capacity()},
	)
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts and handles connections sequentially until ctx is cancelled
// or Close is called, which return nil. Any other accept failure stops the
// loop and is returned. The served directory is released when Serve returns.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return ErrNotListening
	}
	s.serving.Store(true)
	defer s.root.Close()

	stop := context.AfterFunc(ctx, func() { s.Close() })
	defer stop()

	for {
		scratch := s.temp.Scratch()

		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				s.Logger.Info("Closing server")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		s.track(conn)
		s.serveConn(conn, scratch)
		s.active.Store(nil)
	}
}

// track arms the read deadline of conn and publishes it so Close can
// interrupt a read that would otherwise block shutdown forever.
func (s *Server) track(conn net.Conn) {
	if s.cfg.ReadTimeout > 0 {
		s.setReadDeadline(conn, time.Now().Add(s.cfg.ReadTimeout))
	}
	s.active.Store(&conn)
	// Close may have run between Accept and Store.
	if s.closed.Load() {
		s.setReadDeadline(conn, time.Now())
	}
}

func (s *Server) setReadDeadline(conn net.Conn, t time.Time) {
	if err := conn.SetReadDeadline(t); err != nil {
		s.Logger.Debug("set read deadline", Field{"error", err})
	}
}

// ListenAndServe is Listen followed by Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Close stops the accept loop. A connection still waiting for its request
// is closed without a response; one already past its read is finished first.
func (s *Server) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	var errs []error
	if s.listener != nil {
		errs = append(errs, s.listener.Close())
	}
	if c := s.active.Load(); c != nil {
		s.setReadDeadline(*c, time.Now())
	}
	if !s.serving.Load() {
		errs = append(errs, s.root.Close())
	}
	return errors.Join(errs...)
}

// Stats returns a snapshot of the server metrics.
func (s *Server) Stats() MetricsSnapshot {
	return s.metrics.Snapshot()
}
