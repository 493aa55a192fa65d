// Package pixel provides the numeric buffer type shared by all image and
// mask targets, plus the interpolation and fill-value vocabulary consumed
// by transform kernels.
//
// The transform engine treats buffer contents as opaque: it only ever reads
// Rows and Cols to establish spatial context for a firing transform. The
// actual pixel kernels (resize, rotate, crop, ...) are supplied by concrete
// transforms and operate on the raw Pix slice however they see fit.
package pixel

import (
	"slices"

	"github.com/augmentlab/augment/pkg/errors"
)

// Interp selects the resampling mode a kernel should use.
type Interp int

// Interpolation modes. InterpNearest is forced for mask targets: masks are
// label data and any smoothing corrupts labels.
const (
	InterpNearest Interp = iota
	InterpLinear
	InterpCubic
	InterpArea
	InterpLanczos
)

// String returns the mode name for logs and definitions.
func (i Interp) String() string {
	switch i {
	case InterpNearest:
		return "nearest"
	case InterpLinear:
		return "linear"
	case InterpCubic:
		return "cubic"
	case InterpArea:
		return "area"
	case InterpLanczos:
		return "lanczos"
	}
	return "unknown"
}

// Fill is a per-channel fill value for out-of-bounds pixels. A single
// element applies to every channel.
type Fill []float64

// Buffer is a dense row-major numeric raster with interleaved channels.
// Pix has length Rows*Cols*Channels. The zero value is not usable - use
// New to create a valid buffer.
type Buffer struct {
	Rows     int
	Cols     int
	Channels int
	Pix      []float64
}

// New creates a zero-filled buffer. Rows and Cols must be positive;
// Channels must be at least 1.
func New(rows, cols, channels int) (*Buffer, error) {
	if rows <= 0 || cols <= 0 || channels < 1 {
		return nil, errors.New(errors.ErrCodeInvalidShape,
			"buffer dimensions must be positive, got %dx%dx%d", rows, cols, channels)
	}
	return &Buffer{
		Rows:     rows,
		Cols:     cols,
		Channels: channels,
		Pix:      make([]float64, rows*cols*channels),
	}, nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Rows:     b.Rows,
		Cols:     b.Cols,
		Channels: b.Channels,
		Pix:      slices.Clone(b.Pix),
	}
}

// At returns the value at (row, col, channel). Out-of-bounds access panics,
// matching slice semantics.
func (b *Buffer) At(row, col, ch int) float64 {
	return b.Pix[(row*b.Cols+col)*b.Channels+ch]
}

// Set writes the value at (row, col, channel).
func (b *Buffer) Set(row, col, ch int, v float64) {
	b.Pix[(row*b.Cols+col)*b.Channels+ch] = v
}

// Equal reports whether two buffers have identical shape and contents.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil {
		return false
	}
	return b.Rows == other.Rows && b.Cols == other.Cols &&
		b.Channels == other.Channels && slices.Equal(b.Pix, other.Pix)
}
