package server

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrInvalidConfig = errors.New("invalid server config")

// Config holds the server settings. Start from DefaultConfig.
type Config struct {
	Addr             string        // listen address, all interfaces when the host is empty
	Root             string        // directory files are served from
	Backlog          int           // listen backlog
	ArenaSize        int           // bytes reserved at startup for all request memory
	RecvBufferSize   int           // bytes read from a connection, once
	ReadTimeout      time.Duration // zero waits forever
	IsolationHeaders bool          // send COOP/COEP on every 200
	LogLevel         slog.Level
}

// DefaultConfig returns the stock settings: port 8000,
// backlog 1, a 32 MiB arena and a 2047 byte receive.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8000",
		Root:             ".",
		Backlog:          1,
		ArenaSize:        32 << 20,
		RecvBufferSize:   2047,
		IsolationHeaders: true,
		LogLevel:         slog.LevelInfo,
	}
}

// Validate checks that the config can serve at least one request.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty address", ErrInvalidConfig)
	case c.Root == "":
		return fmt.Errorf("%w: empty root directory", ErrInvalidConfig)
	case c.Backlog < 1:
		return fmt.Errorf("%w: backlog %d", ErrInvalidConfig, c.Backlog)
	case c.RecvBufferSize < 1:
		return fmt.Errorf("%w: receive buffer %d", ErrInvalidConfig, c.RecvBufferSize)
	case c.RecvBufferSize+1 > c.ArenaSize:
		return fmt.Errorf("%w: receive buffer %d does not fit arena %d",
			ErrInvalidConfig, c.RecvBufferSize, c.ArenaSize)
	case c.ReadTimeout < 0:
		return fmt.Errorf("%w: negative read timeout", ErrInvalidConfig)
	}
	return nil
}
