// Package mapped maps requested files read-only into memory.
//
// Files are opened through an os.Root, so a request path can never reach
// outside the served directory.
package mapped

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/Brownie44l1/arenahttpd/internal/arena"
	"github.com/Brownie44l1/arenahttpd/internal/strview"
)

var (
	ErrNotFound = errors.New("mapped: file not found")
	ErrTooLarge = errors.New("mapped: file too large")
)

// MaxSize is the largest file that can be served.
const MaxSize = 1<<32 - 1

// Root serves files from one directory.
type Root struct {
	root *os.Root
}

// OpenRoot opens dir as the served directory.
func OpenRoot(dir string) (*Root, error) {
	r, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Root{root: r}, nil
}

// Name returns the served directory.
func (r *Root) Name() string {
	return r.root.Name()
}

func (r *Root) Close() error {
	return r.root.Close()
}

// Open maps the file at "." + path. The name is assembled in a. Every
// failure, whatever its cause, wraps ErrNotFound so callers can answer 404.
// The returned File must be closed.
func (r *Root) Open(a *arena.Arena, path strview.View) (*File, error) {
	b := strview.NewBuilder(strview.Static("."))
	b.Append(path)
	// os.Root keeps the name in its errors, so it must not point into
	// arena memory that the next connection overwrites.
	name := b.Finalize(a).String()

	f, err := r.root.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	m, err := mapFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	return m, nil
}

func mapFile(f *os.File) (*File, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, errors.New("is a directory")
	}
	if info.Size() > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}

	// Zero-length mappings are rejected by the OS; an empty file is still
	// a file.
	if info.Size() == 0 {
		return &File{f: f}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	return &File{f: f, m: m}, nil
}

// File is a read-only mapping of one file.
type File struct {
	f *os.File
	m mmap.MMap
}

// Data returns the mapped bytes. They are valid until Close.
func (f *File) Data() []byte {
	return f.m
}

func (f *File) Len() int {
	return len(f.m)
}

// Close releases the mapping and the file handle. It is safe to call more
// than once.
func (f *File) Close() error {
	var errs []error
	if f.m != nil {
		errs = append(errs, f.m.Unmap())
		f.m = nil
	}
	if f.f != nil {
		errs = append(errs, f.f.Close())
		f.f = nil
	}
	return errors.Join(errs...)
}
