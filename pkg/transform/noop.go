package transform

import (
	"github.com/augmentlab/augment/pkg/batch"
	"github.com/augmentlab/augment/pkg/pixel"
)

// NoOp is a dual-profile operation that returns every target unchanged.
// Useful as a pipeline placeholder and as the reference implementation of
// the operation contract.
type NoOp struct {
	Dual
}

// Name returns the canonical identifier.
func (NoOp) Name() string { return "NoOp" }

// ApplyImage returns the image unchanged.
func (NoOp) ApplyImage(img *pixel.Buffer, _ Params) (*pixel.Buffer, error) {
	return img, nil
}

// ApplyMask returns the mask unchanged.
func (NoOp) ApplyMask(mask *pixel.Buffer, _ Params) (*pixel.Buffer, error) {
	return mask, nil
}

// ApplyBoxes returns the box batch unchanged.
func (NoOp) ApplyBoxes(boxes *batch.Batch, _ Params) (*batch.Batch, error) {
	return boxes, nil
}

// ApplyKeypoints returns the keypoint batch unchanged.
func (NoOp) ApplyKeypoints(kps *batch.Batch, _ Params) (*batch.Batch, error) {
	return kps, nil
}

// InitArgNames returns the empty argument list: NoOp has no configuration.
func (NoOp) InitArgNames() []string { return nil }

// InitArg always returns nil.
func (NoOp) InitArg(string) any { return nil }
