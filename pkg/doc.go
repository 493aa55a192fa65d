// Package pkg provides the core libraries of augment, a transform-dispatch
// and parameter-generation framework for randomized, reproducible data
// augmentation.
//
// # Overview
//
// Augment applies geometric and visual operations across heterogeneous
// co-registered data - images, masks, bounding boxes, keypoints, scalar
// labels - so that a single random draw is applied consistently to every
// associated target. The pkg directory is organized by concern:
//
//  1. [transform] - The operation contract: fire decision, parameter
//     generation, per-kind dispatch, replay
//  2. [batch] - Batched geometric annotations with aligned metadata
//  3. [pixel] - Numeric image/mask buffers, interpolation, fill values
//  4. [span] - Scalar-or-pair parameter range normalization
//  5. [replay] - Recorded parameter stores for deterministic playback
//  6. [errors] - Structured error codes
//  7. [observability] - Optional instrumentation hooks
//
// # Quick Start
//
// Wrap an operation and apply it to a sample:
//
//	t, _ := transform.New(op, transform.WithProbability(0.8))
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	out, err := t.Apply(rng, false, transform.Data{
//	    "image":  img,
//	    "mask":   mask,
//	    "bboxes": boxes,
//	})
//
// Record a pass and replay it later:
//
//	store := replay.NewStore()
//	t.SetDeterministic(true, "")
//	out, _ = t.Apply(rng, false, transform.Data{"image": img, "replay": store})
//
//	t.SetReplayMode(true)
//	same, _ := t.Apply(nil, false, transform.Data{"image": img, "replay": store})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/transform    # Specific package
//	go test -run Example       # Examples only
//
// [transform]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/transform
// [batch]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/batch
// [pixel]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/pixel
// [span]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/span
// [replay]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/replay
// [errors]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/errors
// [observability]: https://pkg.go.dev/github.com/augmentlab/augment/pkg/observability
package pkg
