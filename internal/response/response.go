package response

import (
	"github.com/Brownie44l1/arenahttpd/internal/arena"
	"github.com/Brownie44l1/arenahttpd/internal/content"
	"github.com/Brownie44l1/arenahttpd/internal/headers"
	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

// StatusCode represents the HTTP status codes this server sends
type StatusCode int

const (
	StatusOK       StatusCode = 200
	StatusNotFound StatusCode = 404
)

const statusLineOK = "HTTP/1.1 200 OK\r\n"

// NotFoundBody is the fixed HTML sent with every 404.
const NotFoundBody = "<!DOCTYPE html><html><h1>404 Not Found</h1></html>"

// NotFound is the complete 404 response. Its Content-Length is a literal
// that must match len(NotFoundBody).
const NotFound = "HTTP/1.1 404 NotFound\r\n" +
	"Content-Type: text/html; charset=UTF-8\r\n" +
	"Content-Length: 50\r\n" +
	"\r\n" +
	NotFoundBody

// Assembler composes 200 header blocks. It reuses one builder and one header
// list, so it must not be shared between goroutines.
type Assembler struct {
	builder *strview.Builder
	fields  *headers.Headers
}

// NewAssembler creates an assembler whose header blocks start with preamble
// (for example headers.Isolation()). preamble may be nil.
func NewAssembler(preamble *headers.Headers) *Assembler {
	fields := headers.NewHeaders()
	if preamble != nil {
		for _, f := range preamble.Fields() {
			fields.Add(f.Name, f.Value)
		}
	}
	// Reserve the slots so later Sets update them in place.
	fields.Set("Content-Type", strview.View{})
	fields.Set("Content-Length", strview.View{})

	return &Assembler{
		builder: strview.NewBuilder(strview.View{}),
		fields:  fields,
	}
}

// Header builds the status line, preamble headers, Content-Type and
// Content-Length followed by the blank line, as one view carved from a.
func (as *Assembler) Header(a *arena.Arena, ct content.Type, length uint32) strview.View {
	as.fields.Set("Content-Type", strview.Static(ct.MIME()))
	as.fields.Set("Content-Length", strview.FromUint32(a, length))

	as.builder.Reset(strview.Static(statusLineOK))
	as.fields.AppendTo(as.builder)
	as.builder.AppendString("\r\n")

	return as.builder.Finalize(a)
}
