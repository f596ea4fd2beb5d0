package response

import (
	"errors"
	"io"

	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

var (
	ErrHeaderWritten    = errors.New("header already written")
	ErrHeaderNotWritten = errors.New("must write header before body")
)

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateHeaderWritten
	stateBodyWritten
)

// Writer sends one response: a header block and a body as two separate
// writes. Short writes are reported, never retried.
type Writer struct {
	w          io.Writer
	state      writerState
	statusCode StatusCode
	written    int64
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader sends a complete header block produced by an Assembler.
func (w *Writer) WriteHeader(code StatusCode, block strview.View) error {
	if w.state != stateStart {
		return ErrHeaderWritten
	}
	w.statusCode = code
	w.state = stateHeaderWritten
	return w.write(block.Bytes())
}

// WriteBody sends the body bytes in a single write.
func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeaderWritten {
		return ErrHeaderNotWritten
	}
	w.state = stateBodyWritten
	if len(data) == 0 {
		return nil
	}
	return w.write(data)
}

// WriteNotFound sends the fixed 404 response in a single write.
func (w *Writer) WriteNotFound() error {
	if w.state != stateStart {
		return ErrHeaderWritten
	}
	w.statusCode = StatusNotFound
	w.state = stateBodyWritten
	return w.write(strview.Static(NotFound).Bytes())
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.written += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return err
}

func (w *Writer) StatusCode() StatusCode {
	return w.statusCode
}

// BytesWritten returns the bytes accepted by the underlying writer.
func (w *Writer) BytesWritten() int64 {
	return w.written
}
