//go:build !(linux || darwin || freebsd)

package server

import "net"

// listen falls back to the net package; the backlog is chosen by the OS.
func listen(addr string, backlog int) (net.Listener, error) {
	return net.Listen("tcp4", addr)
}
