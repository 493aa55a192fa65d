// Package batch provides the structural container for batched geometric
// annotations: bounding boxes and keypoints paired with aligned opaque
// per-record metadata.
//
// A [Batch] holds N fixed-width numeric records (one box or keypoint per
// row) and N metadata rows of arbitrary width. The two arrays move together
// through every operation: indexing, slicing, and writes all preserve the
// record/metadata alignment, and each mutation re-validates the shape
// invariants eagerly so no partially-invalid batch is ever observable.
//
// Batches are created fresh per transform call and are never shared across
// concurrent calls.
package batch

import (
	"reflect"
	"slices"

	"github.com/augmentlab/augment/pkg/errors"
)

// Kind distinguishes the two record layouts a batch can hold.
type Kind int

const (
	// Boxes holds bounding boxes: records are exactly 4 values wide.
	Boxes Kind = iota
	// Keypoints holds keypoints: records are 2 to 4 values wide
	// (x, y and optionally angle, scale).
	Keypoints
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Boxes:
		return "boxes"
	case Keypoints:
		return "keypoints"
	}
	return "unknown"
}

// widthRange returns the allowed record width for the kind.
func (k Kind) widthRange() (minW, maxW int) {
	if k == Keypoints {
		return 2, 4
	}
	return 4, 4
}

// Batch is a typed container of numeric records plus aligned metadata.
// The zero value is not usable - use NewBoxes or NewKeypoints.
type Batch struct {
	kind    Kind
	records [][]float64
	meta    [][]any
}

// NewBoxes creates a box batch from the given records and metadata.
// Records are copied into a canonical float matrix. A nil metadata slice
// synthesizes one empty metadata row per record. Validation runs before
// the batch is returned.
func NewBoxes(records [][]float64, meta [][]any) (*Batch, error) {
	return newBatch(Boxes, records, meta)
}

// NewKeypoints creates a keypoint batch. See NewBoxes for coercion and
// validation behavior.
func NewKeypoints(records [][]float64, meta [][]any) (*Batch, error) {
	return newBatch(Keypoints, records, meta)
}

func newBatch(kind Kind, records [][]float64, meta [][]any) (*Batch, error) {
	b := &Batch{
		kind:    kind,
		records: make([][]float64, len(records)),
		meta:    make([][]any, 0, len(records)),
	}
	for i, rec := range records {
		b.records[i] = slices.Clone(rec)
	}
	if meta == nil {
		for range records {
			b.meta = append(b.meta, []any{})
		}
	} else {
		for _, row := range meta {
			b.meta = append(b.meta, slices.Clone(row))
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Kind returns the record layout of the batch.
func (b *Batch) Kind() Kind { return b.kind }

// Len returns the number of records.
func (b *Batch) Len() int { return len(b.records) }

// Width returns the record width, or 0 for an empty batch.
func (b *Batch) Width() int {
	if len(b.records) == 0 {
		return 0
	}
	return len(b.records[0])
}

// Validate checks the structural invariants:
//   - all records share one width, inside the kind's allowed range
//   - record count matches metadata row count
//
// Violations fail with INVALID_SHAPE or INCONSISTENT_LENGTH.
func (b *Batch) Validate() error {
	if len(b.records) != len(b.meta) {
		return errors.New(errors.ErrCodeInconsistentLength,
			"record and metadata counts must match: got %d %s and %d metadata rows",
			len(b.records), b.kind, len(b.meta))
	}
	if len(b.records) == 0 {
		return nil
	}
	minW, maxW := b.kind.widthRange()
	width := len(b.records[0])
	for i, rec := range b.records {
		if len(rec) != width {
			return errors.New(errors.ErrCodeInvalidShape,
				"%s records must be rectangular: row %d has width %d, row 0 has width %d",
				b.kind, i, len(rec), width)
		}
	}
	if width < minW || width > maxW {
		if minW == maxW {
			return errors.New(errors.ErrCodeInvalidShape,
				"%s records must have width %d, got %d", b.kind, minW, width)
		}
		return errors.New(errors.ErrCodeInvalidShape,
			"%s records must have width %d to %d, got %d", b.kind, minW, maxW, width)
	}
	return nil
}

// Row returns the i-th record. The returned slice aliases the batch: writes
// through it mutate the record in place. Use SetRow for validated writes.
func (b *Batch) Row(i int) []float64 { return b.records[i] }

// Meta returns the i-th metadata row.
func (b *Batch) Meta(i int) []any { return b.meta[i] }

// SetRow overwrites the i-th record after validating its width against the
// current batch width. Geometric transforms use this to write back each
// transformed record; metadata is never touched.
func (b *Batch) SetRow(i int, rec []float64) error {
	if i < 0 || i >= len(b.records) {
		return errors.New(errors.ErrCodeInvalidArgument,
			"record index %d out of range [0, %d)", i, len(b.records))
	}
	if len(rec) != len(b.records[i]) {
		return errors.New(errors.ErrCodeInvalidShape,
			"record width %d does not match batch width %d", len(rec), len(b.records[i]))
	}
	copy(b.records[i], rec)
	return nil
}

// Get returns a new one-row batch holding copies of the i-th record and its
// metadata row. Single-index access always promotes to a batch of length 1
// so downstream row-wise apply functions operate uniformly.
func (b *Batch) Get(i int) (*Batch, error) {
	if i < 0 || i >= len(b.records) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"record index %d out of range [0, %d)", i, len(b.records))
	}
	return newBatch(b.kind, b.records[i:i+1], b.meta[i:i+1])
}

// Slice returns a new batch holding copies of records [lo, hi) and their
// metadata rows.
func (b *Batch) Slice(lo, hi int) (*Batch, error) {
	if lo < 0 || hi > len(b.records) || lo > hi {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"slice [%d, %d) out of range [0, %d)", lo, hi, len(b.records))
	}
	return newBatch(b.kind, b.records[lo:hi], b.meta[lo:hi])
}

// Set writes other's records and metadata into the addressed rows starting
// at i, in place. The write is validated before any mutation: kinds must
// match (TYPE_MISMATCH), rows must fit without resizing, and record widths
// must agree.
func (b *Batch) Set(i int, other *Batch) error {
	if other == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "cannot set from a nil batch")
	}
	if other.kind != b.kind {
		return errors.New(errors.ErrCodeTypeMismatch,
			"cannot set %s records into a %s batch", other.kind, b.kind)
	}
	if i < 0 || i+other.Len() > len(b.records) {
		return errors.New(errors.ErrCodeInvalidArgument,
			"write of %d rows at %d exceeds batch of length %d", other.Len(), i, len(b.records))
	}
	for j := range other.records {
		if len(other.records[j]) != len(b.records[i+j]) {
			return errors.New(errors.ErrCodeInvalidShape,
				"record width %d does not match batch width %d",
				len(other.records[j]), len(b.records[i+j]))
		}
	}
	for j := range other.records {
		copy(b.records[i+j], other.records[j])
		b.meta[i+j] = slices.Clone(other.meta[j])
	}
	return nil
}

// Equal reports structural equality of records and metadata. Two empty
// batches of the same kind are always equal regardless of stored shape
// details. Comparing batches of different kinds fails with TYPE_MISMATCH.
func (b *Batch) Equal(other *Batch) (bool, error) {
	if other == nil {
		return false, errors.New(errors.ErrCodeInvalidArgument, "cannot compare with a nil batch")
	}
	if other.kind != b.kind {
		return false, errors.New(errors.ErrCodeTypeMismatch,
			"%s batch is only comparable with another %s batch, got %s",
			b.kind, b.kind, other.kind)
	}
	if b.Len() == 0 && other.Len() == 0 {
		return true, nil
	}
	if b.Len() != other.Len() {
		return false, nil
	}
	for i := range b.records {
		if !slices.Equal(b.records[i], other.records[i]) {
			return false, nil
		}
		if !reflect.DeepEqual(b.meta[i], other.meta[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Clone returns a deep copy of the batch.
func (b *Batch) Clone() *Batch {
	// Construction already deep-copies; an existing batch is always valid.
	c, _ := newBatch(b.kind, b.records, b.meta)
	return c
}
