package transform

import "maps"

// Data is the named target set passed to and returned from a transform
// call. Values are either nil (passed through as nil) or a concrete value
// the transform's target profile understands: *pixel.Buffer for image and
// mask, []*pixel.Buffer for masks, *batch.Batch for bboxes and keypoints,
// and any for global_label. All data must be supplied under non-empty
// names.
type Data map[string]any

// Params is the parameter mapping shared by every target of one firing
// transform. Values are plain value types so a cloned mapping is a fully
// owned snapshot.
type Params map[string]any

// Clone returns a copy of the parameter mapping.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// Canonical target keys. Aliases registered via [Transform.AddTargets] map
// custom keys onto these.
const (
	KeyImage       = "image"
	KeyMask        = "mask"
	KeyMasks       = "masks"
	KeyBoxes       = "bboxes"
	KeyKeypoints   = "keypoints"
	KeyGlobalLabel = "global_label"
)

// Well-known parameter keys the engine injects for every firing transform.
const (
	// ParamRows and ParamCols carry the image's spatial context.
	ParamRows = "rows"
	ParamCols = "cols"

	// ParamInterpolation carries the resampling mode declared by the
	// operation. Mask dispatch overrides it with nearest-neighbor.
	ParamInterpolation = "interpolation"

	// ParamFillValue and ParamMaskFillValue carry out-of-bounds fill
	// values for images and masks respectively.
	ParamFillValue     = "fill_value"
	ParamMaskFillValue = "mask_fill_value"
)

// Replay save-key constants.
const (
	// DefaultSaveKey is the call-data key under which a deterministic
	// transform expects the caller-owned replay store.
	DefaultSaveKey = "replay"

	// ReservedParamsKey can never be used as a save key: it is reserved
	// for the parameter-generation step itself.
	ReservedParamsKey = "params"
)
