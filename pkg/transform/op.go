package transform

import (
	"math/rand/v2"

	"github.com/augmentlab/augment/pkg/batch"
	"github.com/augmentlab/augment/pkg/pixel"
)

// Profile is the closed enumeration of target tables an operation can
// declare. It determines which target kinds are dispatched; everything
// outside the profile passes through unmodified.
type Profile int

const (
	// ProfileImageOnly dispatches the image target only.
	ProfileImageOnly Profile = iota
	// ProfileDual dispatches image, mask, masks, bboxes, and keypoints.
	ProfileDual
	// ProfileReference dispatches image, mask, bboxes, keypoints, and the
	// whole-sample global_label target.
	ProfileReference
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileImageOnly:
		return "image-only"
	case ProfileDual:
		return "dual"
	case ProfileReference:
		return "reference"
	}
	return "unknown"
}

// contains reports whether the profile dispatches the given kind.
func (p Profile) contains(k TargetKind) bool {
	switch p {
	case ProfileImageOnly:
		return k == KindImage
	case ProfileDual:
		return k == KindImage || k == KindMask || k == KindMaskList ||
			k == KindBoxes || k == KindKeypoints
	case ProfileReference:
		return k == KindImage || k == KindMask || k == KindBoxes ||
			k == KindKeypoints || k == KindGlobalLabel
	}
	return false
}

// Op is the minimal contract every concrete operation implements. The
// per-kind apply functions, parameter generators, and serialization surface
// are optional capability interfaces below; a profile kind whose capability
// is missing fails at dispatch with NOT_IMPLEMENTED carrying the
// operation's name.
type Op interface {
	// Name is the canonical operation identifier, used in definitions,
	// logs, and error diagnostics.
	Name() string

	// Profile declares which target kinds the operation dispatches.
	Profile() Profile
}

// ImageOnly is an embeddable marker declaring the image-only profile.
type ImageOnly struct{}

// Profile returns ProfileImageOnly.
func (ImageOnly) Profile() Profile { return ProfileImageOnly }

// Dual is an embeddable marker declaring the dual profile.
type Dual struct{}

// Profile returns ProfileDual.
func (Dual) Profile() Profile { return ProfileDual }

// Reference is an embeddable marker declaring the reference profile.
type Reference struct{}

// Profile returns ProfileReference.
func (Reference) Profile() Profile { return ProfileReference }

// ImageOp applies the operation's pixel kernel to an image buffer. It also
// serves as the default mask kernel with interpolation forced to
// nearest-neighbor.
type ImageOp interface {
	ApplyImage(img *pixel.Buffer, p Params) (*pixel.Buffer, error)
}

// MaskOp overrides the default mask behavior (ApplyImage with
// nearest-neighbor interpolation).
type MaskOp interface {
	ApplyMask(mask *pixel.Buffer, p Params) (*pixel.Buffer, error)
}

// MaskListOp overrides the default masks behavior (elementwise mask apply).
type MaskListOp interface {
	ApplyMasks(masks []*pixel.Buffer, p Params) ([]*pixel.Buffer, error)
}

// BoxOp transforms a single bounding-box record. The default bboxes
// dispatch iterates every record of the batch, applies BoxOp, and writes
// the result back row by row; metadata is never touched.
type BoxOp interface {
	ApplyBox(box []float64, p Params) ([]float64, error)
}

// BoxesOp overrides the default row-wise bboxes dispatch.
type BoxesOp interface {
	ApplyBoxes(boxes *batch.Batch, p Params) (*batch.Batch, error)
}

// KeypointOp transforms a single keypoint record. See BoxOp for the
// default dispatch behavior.
type KeypointOp interface {
	ApplyKeypoint(kp []float64, p Params) ([]float64, error)
}

// KeypointsOp overrides the default row-wise keypoints dispatch.
type KeypointsOp interface {
	ApplyKeypoints(kps *batch.Batch, p Params) (*batch.Batch, error)
}

// GlobalLabelOp transforms the auxiliary whole-sample label carried by
// reference-profile operations.
type GlobalLabelOp interface {
	ApplyGlobalLabel(label any, p Params) (any, error)
}

// ParamsOp generates the operation's target-independent parameters. When
// not implemented, the parameter mapping starts empty.
type ParamsOp interface {
	Params(rng *rand.Rand) (Params, error)
}

// TargetDependentOp generates parameters that must inspect target data
// before drawing - image dimensions, mask content, and so on. Every key
// listed by TargetsAsParams must be present among the call data; dispatch
// fails with MISSING_TARGET otherwise. Dependent parameters win over
// target-independent ones on key collision.
type TargetDependentOp interface {
	TargetsAsParams() []string
	ParamsDependentOnTargets(rng *rand.Rand, targets Data) (Params, error)
}

// TargetDependenceOp declares per-key extra arguments: for each listed data
// key, the values of the named sibling keys are merged into the parameter
// mapping passed to that key's apply function only.
type TargetDependenceOp interface {
	TargetDependence() map[string][]string
}

// Interpolated declares the operation's resampling mode, injected into the
// parameter mapping as ParamInterpolation.
type Interpolated interface {
	Interpolation() pixel.Interp
}

// FillValued declares the out-of-bounds fill value for image targets.
type FillValued interface {
	FillValue() pixel.Fill
}

// MaskFillValued declares the out-of-bounds fill value for mask targets.
type MaskFillValued interface {
	MaskFillValue() pixel.Fill
}

// Serializable is implemented by operations whose construction can be
// exported: InitArgNames lists the constructor-argument names that fully
// determine behavior, and InitArg returns the current value of one of
// them. Operations lacking this interface fail Definition with
// NOT_SERIALIZABLE.
type Serializable interface {
	InitArgNames() []string
	InitArg(name string) any
}
