package headers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

var (
	ErrInvalidName  = errors.New("invalid character in header name")
	ErrInvalidValue = errors.New("header value contains CR or LF")
)

// Field is one response header. Value borrows its bytes.
type Field struct {
	Name  string
	Value strview.View
}

// Headers is an ordered list of response headers. Order is kept as added so
// the rendered block is byte-for-byte predictable.
type Headers struct {
	fields []Field
}

func NewHeaders() *Headers {
	return &Headers{fields: make([]Field, 0, 4)}
}

// Isolation returns the cross-origin isolation headers that enable
// SharedArrayBuffer and high-resolution timers in browsers.
func Isolation() *Headers {
	h := NewHeaders()
	h.fields = append(h.fields,
		Field{"Cross-Origin-Opener-Policy", strview.Static("same-origin")},
		Field{"Cross-Origin-Embedder-Policy", strview.Static("require-corp")},
	)
	return h
}

// Add appends a header, keeping any existing ones with the same name
func (h *Headers) Add(name string, value strview.View) error {
	if err := validate(name, value); err != nil {
		return err
	}
	h.fields = append(h.fields, Field{Name: name, Value: value})
	return nil
}

// Set replaces the first header with the same name in place, or appends it
func (h *Headers) Set(name string, value strview.View) error {
	if err := validate(name, value); err != nil {
		return err
	}
	for i := range h.fields {
		if strings.EqualFold(h.fields[i].Name, name) {
			h.fields[i].Value = value
			return nil
		}
	}
	h.fields = append(h.fields, Field{Name: name, Value: value})
	return nil
}

// Fields returns the headers in order. The slice must not be modified.
func (h *Headers) Fields() []Field {
	return h.fields
}

// AppendTo renders every header as "Name: Value\r\n" into b without copying.
func (h *Headers) AppendTo(b *strview.Builder) {
	for _, f := range h.fields {
		b.AppendString(f.Name)
		b.AppendString(": ")
		b.Append(f.Value)
		b.AppendString("\r\n")
	}
}

func validate(name string, value strview.View) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for i := 0; i < len(name); i++ {
		if !isValidHeaderChar(name[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidName, name[i])
		}
	}
	for _, c := range value.Bytes() {
		if c == '\r' || c == '\n' {
			return ErrInvalidValue
		}
	}
	return nil
}

func isValidHeaderChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9') ||
		b == '!' || b == '#' || b == '$' || b == '%' || b == '&' ||
		b == '\'' || b == '*' || b == '+' || b == '-' || b == '.' ||
		b == '^' || b == '_' || b == '`' || b == '|' || b == '~'
}
