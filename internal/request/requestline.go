package request

import (
	"errors"

	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

var (
	ErrInvalidMethod        = errors.New("invalid HTTP method")
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrEmptyTarget          = errors.New("empty request target")
	ErrUnsupportedVersion   = errors.New("unsupported HTTP version")
)

const (
	methodGET = "GET "
	version   = " HTTP/1.1\r\n"
)

// Parse reads a request line of the exact form "GET <path> HTTP/1.1\r\n"
// from the bytes of a single receive. Anything after the request line
// (headers, body) is ignored. Lines split across reads are not reassembled.
func Parse(raw strview.View) (Request, error) {
	if !raw.ExpectLiteral(methodGET) {
		return Request{}, ErrInvalidMethod
	}

	path, ok := raw.CollectUntil(' ', false)
	if !ok {
		return Request{}, ErrMalformedRequestLine
	}
	if path.IsEmpty() {
		return Request{}, ErrEmptyTarget
	}

	if !raw.ExpectLiteral(version) {
		return Request{}, ErrUnsupportedVersion
	}

	return Request{Path: path}, nil
}
