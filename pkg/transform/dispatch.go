package transform

import (
	"slices"

	"github.com/augmentlab/augment/pkg/batch"
	"github.com/augmentlab/augment/pkg/errors"
	"github.com/augmentlab/augment/pkg/pixel"
)

// TargetKind is the semantic category of a named target, governing which
// apply function handles it.
type TargetKind int

const (
	// KindUnknown marks keys outside the canonical table or the
	// operation's profile; their values pass through unmodified.
	KindUnknown TargetKind = iota
	KindImage
	KindMask
	KindMaskList
	KindBoxes
	KindKeypoints
	KindGlobalLabel
)

// String returns the kind name.
func (k TargetKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindMask:
		return "mask"
	case KindMaskList:
		return "masks"
	case KindBoxes:
		return "bboxes"
	case KindKeypoints:
		return "keypoints"
	case KindGlobalLabel:
		return "global_label"
	}
	return "unknown"
}

// canonicalKinds maps canonical data keys to their target kinds.
var canonicalKinds = map[string]TargetKind{
	KeyImage:       KindImage,
	KeyMask:        KindMask,
	KeyMasks:       KindMaskList,
	KeyBoxes:       KindBoxes,
	KeyKeypoints:   KindKeypoints,
	KeyGlobalLabel: KindGlobalLabel,
}

// resolveKind maps a data key through the alias table and the canonical
// kind table, then filters by the operation's profile. Keys that resolve
// to nothing dispatchable return KindUnknown: unrecognized data is
// tolerated and passed through, never an error. This is deliberately
// asymmetric with targets-as-params resolution, which is strict.
func (t *Transform) resolveKind(key string) TargetKind {
	if alias, ok := t.additionalTargets[key]; ok {
		key = alias
	}
	kind, ok := canonicalKinds[key]
	if !ok || !t.op.Profile().contains(kind) {
		return KindUnknown
	}
	return kind
}

// applyTarget invokes the apply function for one resolved target.
func (t *Transform) applyTarget(kind TargetKind, key string, value any, p Params) (any, error) {
	switch kind {
	case KindImage:
		img, err := asBuffer(key, value)
		if err != nil {
			return nil, err
		}
		op, ok := t.op.(ImageOp)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotImplemented,
				"image apply is not implemented by %s", t.op.Name())
		}
		return op.ApplyImage(img, p)

	case KindMask:
		mask, err := asBuffer(key, value)
		if err != nil {
			return nil, err
		}
		return t.applyMask(mask, p)

	case KindMaskList:
		masks, ok := value.([]*pixel.Buffer)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidArgument,
				"target %q must be []*pixel.Buffer, got %T", key, value)
		}
		if op, ok := t.op.(MaskListOp); ok {
			return op.ApplyMasks(masks, p)
		}
		out := make([]*pixel.Buffer, len(masks))
		for i, m := range masks {
			res, err := t.applyMask(m, p)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil

	case KindBoxes:
		b, err := asBatch(key, value, batch.Boxes)
		if err != nil {
			return nil, err
		}
		if op, ok := t.op.(BoxesOp); ok {
			return op.ApplyBoxes(b, p)
		}
		op, ok := t.op.(BoxOp)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotImplemented,
				"box apply is not implemented by %s", t.op.Name())
		}
		if err := applyRows(b, p, op.ApplyBox); err != nil {
			return nil, err
		}
		return b, nil

	case KindKeypoints:
		b, err := asBatch(key, value, batch.Keypoints)
		if err != nil {
			return nil, err
		}
		if op, ok := t.op.(KeypointsOp); ok {
			return op.ApplyKeypoints(b, p)
		}
		op, ok := t.op.(KeypointOp)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotImplemented,
				"keypoint apply is not implemented by %s", t.op.Name())
		}
		if err := applyRows(b, p, op.ApplyKeypoint); err != nil {
			return nil, err
		}
		return b, nil

	case KindGlobalLabel:
		op, ok := t.op.(GlobalLabelOp)
		if !ok {
			return nil, errors.New(errors.ErrCodeNotImplemented,
				"global label apply is not implemented by %s", t.op.Name())
		}
		return op.ApplyGlobalLabel(value, p)
	}

	// Unrecognized keys are tolerated: identity pass-through.
	return value, nil
}

// applyMask runs the mask kernel: a dedicated MaskOp when the operation
// provides one, otherwise the image kernel with interpolation forced to
// nearest-neighbor. Masks are label data; any smoothing corrupts labels.
func (t *Transform) applyMask(mask *pixel.Buffer, p Params) (*pixel.Buffer, error) {
	if op, ok := t.op.(MaskOp); ok {
		return op.ApplyMask(mask, p)
	}
	op, ok := t.op.(ImageOp)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotImplemented,
			"mask apply is not implemented by %s", t.op.Name())
	}
	mp := p.Clone()
	mp[ParamInterpolation] = pixel.InterpNearest
	return op.ApplyImage(mask, mp)
}

// applyRows transforms every record of a batch independently and writes
// the results back row by row. Only the numeric coordinates change;
// metadata rows are untouched.
func applyRows(b *batch.Batch, p Params, fn func([]float64, Params) ([]float64, error)) error {
	for i := range b.Len() {
		rec, err := fn(slices.Clone(b.Row(i)), p)
		if err != nil {
			return err
		}
		if err := b.SetRow(i, rec); err != nil {
			return err
		}
	}
	return nil
}

func asBuffer(key string, value any) (*pixel.Buffer, error) {
	img, ok := value.(*pixel.Buffer)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"target %q must be *pixel.Buffer, got %T", key, value)
	}
	return img, nil
}

func asBatch(key string, value any, kind batch.Kind) (*batch.Batch, error) {
	b, ok := value.(*batch.Batch)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"target %q must be *batch.Batch, got %T", key, value)
	}
	if b.Kind() != kind {
		return nil, errors.New(errors.ErrCodeTypeMismatch,
			"target %q must hold %s records, got %s", key, kind, b.Kind())
	}
	return b, nil
}
