package server

import (
	"errors"
	"io"
	"runtime/debug"
	"time"

	"github.com/Brownie44l1/arenahttpd/internal/arena"
	"github.com/Brownie44l1/arenahttpd/internal/content"
	"github.com/Brownie44l1/arenahttpd/internal/request"
	"github.com/Brownie44l1/arenahttpd/internal/response"
	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

// serveConn handles exactly one request: a single read, then either the
// mapped file or the fixed 404. Everything it allocates comes from scratch.
func (s *Server) serveConn(conn io.ReadWriteCloser, scratch *arena.Arena) {
	defer conn.Close()
	defer s.recoverConn()
	defer func() { s.metrics.RecordScratch(scratch.Offset()) }()

	s.metrics.Connections.Add(1)
	start := time.Now()

	// One spare byte past what is read, as the receive buffer always had.
	buf := scratch.Push(s.cfg.RecvBufferSize + 1)
	n, err := conn.Read(buf[:s.cfg.RecvBufferSize])
	if n <= 0 {
		if s.closed.Load() {
			s.Logger.Info("Dropping idle connection on shutdown")
			return
		}
		s.metrics.Invalid.Add(1)
		s.Logger.Warn("Invalid HTTP request", Field{"error", err})
		return
	}

	w := response.NewWriter(conn)

	req, err := request.Parse(strview.Of(buf[:n]))
	if err != nil {
		s.metrics.Invalid.Add(1)
		s.Logger.Warn("Invalid HTTP request", Field{"error", err})
		s.notFound(w, start)
		return
	}

	target := req.Target()
	file, err := s.root.Open(scratch, target)
	if err != nil {
		s.Logger.Info("not found", Field{"path", target.String()}, Field{"error", err})
		s.notFound(w, start)
		return
	}
	defer file.Close()

	ct := content.Classify(target)
	header := s.assembler.Header(scratch, ct, uint32(file.Len()))

	if err := w.WriteHeader(response.StatusOK, header); err != nil {
		s.writeFailed(w, err)
		return
	}
	if err := w.WriteBody(file.Data()); err != nil {
		s.writeFailed(w, err)
		return
	}

	s.metrics.RecordResponse(response.StatusOK, w.BytesWritten(), time.Since(start))
	s.Logger.Debug("served",
		Field{"path", target.String()},
		Field{"content_type", ct.String()},
		Field{"bytes", file.Len()},
	)
}

func (s *Server) notFound(w *response.Writer, start time.Time) {
	if err := w.WriteNotFound(); err != nil {
		s.writeFailed(w, err)
		return
	}
	s.metrics.RecordResponse(response.StatusNotFound, w.BytesWritten(), time.Since(start))
}

func (s *Server) writeFailed(w *response.Writer, err error) {
	s.metrics.WriteErrors.Add(1)
	s.Logger.Warn("write failed",
		Field{"status", int(w.StatusCode())},
		Field{"bytes_written", w.BytesWritten()},
		Field{"error", err},
	)
}

// recoverConn logs a panic from one connection and keeps the loop alive.
// Arena exhaustion means the configured capacity is wrong, so it is
// re-raised and takes the process down.
func (s *Server) recoverConn() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && errors.Is(err, arena.ErrExhausted) {
		s.Logger.Error("arena exhausted", Field{"error", err})
		panic(r)
	}
	s.Logger.Error("panic recovered",
		Field{"error", r},
		Field{"stack", string(debug.Stack())},
	)
}
