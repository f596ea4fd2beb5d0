package request

import "github.com/Brownie44l1/arenahttpd/internal/strview"

// Request is the parsed request line. Path borrows the receive buffer and is
// only valid for the connection that produced it.
type Request struct {
	Path strview.View
}

// IndexPath is served for requests to "/".
const IndexPath = "/index.html"

// Target returns the path to serve, rewriting "/" to IndexPath.
func (r Request) Target() strview.View {
	if r.Path.EqualString("/") {
		return strview.Static(IndexPath)
	}
	return r.Path
}
