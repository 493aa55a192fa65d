package batch

import (
	"testing"

	"github.com/augmentlab/augment/pkg/errors"
)

func TestNewBoxes(t *testing.T) {
	b, err := NewBoxes([][]float64{{1, 1, 5, 5}, {2, 2, 6, 6}}, nil)
	if err != nil {
		t.Fatalf("NewBoxes error: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if b.Width() != 4 {
		t.Errorf("Width() = %d, want 4", b.Width())
	}
	// nil metadata synthesizes one empty row per record
	if got := b.Meta(0); len(got) != 0 {
		t.Errorf("Meta(0) = %v, want empty", got)
	}
}

func TestNewBoxesWidthValidation(t *testing.T) {
	tests := []struct {
		name    string
		records [][]float64
		code    errors.Code
	}{
		{"width 3", [][]float64{{1, 2, 3}}, errors.ErrCodeInvalidShape},
		{"width 5", [][]float64{{1, 2, 3, 4, 5}}, errors.ErrCodeInvalidShape},
		{"ragged", [][]float64{{1, 2, 3, 4}, {1, 2}}, errors.ErrCodeInvalidShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoxes(tt.records, nil)
			if !errors.Is(err, tt.code) {
				t.Errorf("NewBoxes error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestNewKeypointsWidthValidation(t *testing.T) {
	// Keypoints allow widths 2 through 4.
	for _, w := range []int{2, 3, 4} {
		rec := make([]float64, w)
		if _, err := NewKeypoints([][]float64{rec}, nil); err != nil {
			t.Errorf("NewKeypoints width %d error: %v", w, err)
		}
	}

	if _, err := NewKeypoints([][]float64{{1}}, nil); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("width 1 error = %v, want INVALID_SHAPE", err)
	}
	if _, err := NewKeypoints([][]float64{{1, 2, 3, 4, 5}}, nil); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("width 5 error = %v, want INVALID_SHAPE", err)
	}
}

func TestNewInconsistentLength(t *testing.T) {
	_, err := NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"a"}, {"b"}})
	if !errors.Is(err, errors.ErrCodeInconsistentLength) {
		t.Errorf("error = %v, want INCONSISTENT_LENGTH", err)
	}
}

func TestEmptyBatchesEqual(t *testing.T) {
	// Empty batches of the same kind compare equal regardless of how they
	// were constructed.
	a, _ := NewBoxes(nil, nil)
	b, _ := NewBoxes([][]float64{}, [][]any{})

	eq, err := a.Equal(b)
	if err != nil {
		t.Fatalf("Equal error: %v", err)
	}
	if !eq {
		t.Error("empty batches of the same kind should be equal")
	}
}

func TestEqualKindMismatch(t *testing.T) {
	boxes, _ := NewBoxes(nil, nil)
	kps, _ := NewKeypoints(nil, nil)

	if _, err := boxes.Equal(kps); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("error = %v, want TYPE_MISMATCH", err)
	}
}

func TestEqual(t *testing.T) {
	a, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"cat"}})
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"cat"}})
	c, _ := NewBoxes([][]float64{{1, 1, 5, 6}}, [][]any{{"cat"}})
	d, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"dog"}})

	if eq, _ := a.Equal(b); !eq {
		t.Error("identical batches should be equal")
	}
	if eq, _ := a.Equal(c); eq {
		t.Error("different records should not be equal")
	}
	if eq, _ := a.Equal(d); eq {
		t.Error("different metadata should not be equal")
	}
}

func TestGetPromotesSingleRow(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}, {2, 2, 6, 6}}, [][]any{{"cat"}, {"dog"}})

	row, err := b.Get(1)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if row.Len() != 1 {
		t.Fatalf("Get(1).Len() = %d, want 1", row.Len())
	}
	want, _ := NewBoxes([][]float64{{2, 2, 6, 6}}, [][]any{{"dog"}})
	if eq, _ := row.Equal(want); !eq {
		t.Error("promoted row contents should match the original row")
	}

	if _, err := b.Get(2); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Get(2) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestSlice(t *testing.T) {
	b, _ := NewKeypoints([][]float64{{1, 2}, {3, 4}, {5, 6}}, nil)

	s, err := b.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice error: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Slice(1,3).Len() = %d, want 2", s.Len())
	}
	if got := s.Row(0); got[0] != 3 || got[1] != 4 {
		t.Errorf("Slice(1,3).Row(0) = %v, want [3 4]", got)
	}

	if _, err := b.Slice(2, 1); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Slice(2,1) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestSet(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}, {2, 2, 6, 6}}, [][]any{{"cat"}, {"dog"}})
	repl, _ := NewBoxes([][]float64{{9, 9, 9, 9}}, [][]any{{"bird"}})

	if err := b.Set(1, repl); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if got := b.Row(1); got[0] != 9 {
		t.Errorf("Row(1) = %v, want [9 9 9 9]", got)
	}
	if got := b.Meta(1); got[0] != "bird" {
		t.Errorf("Meta(1) = %v, want [bird]", got)
	}
	// Row 0 untouched.
	if got := b.Row(0); got[0] != 1 {
		t.Errorf("Row(0) = %v, want [1 1 5 5]", got)
	}
}

func TestSetKindMismatch(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, nil)
	kp, _ := NewKeypoints([][]float64{{1, 2}}, nil)

	if err := b.Set(0, kp); !errors.Is(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("error = %v, want TYPE_MISMATCH", err)
	}
}

func TestSetNoResize(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, nil)
	repl, _ := NewBoxes([][]float64{{1, 1, 2, 2}, {3, 3, 4, 4}}, nil)

	if err := b.Set(0, repl); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("oversized write error = %v, want INVALID_ARGUMENT", err)
	}
	// No partial mutation.
	if got := b.Row(0); got[2] != 5 {
		t.Errorf("Row(0) = %v, want unchanged [1 1 5 5]", got)
	}
}

func TestSetRow(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, nil)

	if err := b.SetRow(0, []float64{2, 2, 6, 6}); err != nil {
		t.Fatalf("SetRow error: %v", err)
	}
	if got := b.Row(0); got[0] != 2 {
		t.Errorf("Row(0) = %v, want [2 2 6 6]", got)
	}

	if err := b.SetRow(0, []float64{1, 2}); !errors.Is(err, errors.ErrCodeInvalidShape) {
		t.Errorf("narrow write error = %v, want INVALID_SHAPE", err)
	}
	if err := b.SetRow(3, []float64{1, 2, 3, 4}); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("out-of-range write error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestConstructionCopies(t *testing.T) {
	records := [][]float64{{1, 1, 5, 5}}
	b, _ := NewBoxes(records, nil)

	records[0][0] = 99
	if b.Row(0)[0] != 1 {
		t.Error("batch should not alias caller-supplied records")
	}
}

func TestClone(t *testing.T) {
	b, _ := NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"cat"}})
	c := b.Clone()

	if eq, _ := b.Equal(c); !eq {
		t.Fatal("clone should equal original")
	}
	c.Row(0)[0] = 42
	if b.Row(0)[0] != 1 {
		t.Error("mutating clone changed original")
	}
}
