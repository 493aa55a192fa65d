// Package transform implements the randomized transform dispatch core:
// the single-transform contract that decides whether an operation fires,
// generates its parameters once, and routes every named data item to the
// correct per-kind apply function so one random draw is applied
// consistently across an entire co-registered sample.
//
// # Overview
//
// A sample is a set of named targets - an image plus any combination of
// masks, bounding boxes, keypoints, and scalar labels. A concrete operation
// (an [Op]) supplies the numeric kernels; the [Transform] engine wraps it
// and owns everything else:
//
//  1. Fire decision: a probability draw against an explicit random source,
//     overridable with always-apply or a per-call force flag
//  2. Parameter generation: target-independent params, optionally merged
//     with params derived from the call data itself (e.g. a crop region
//     clamped to the actual image size)
//  3. Dispatch: each named target is routed to the apply function for its
//     kind; unrecognized keys pass through untouched
//  4. Replay: in deterministic mode generated parameters are recorded into
//     a caller-owned [replay.Store]; in replay mode the recorded draw is
//     reapplied exactly, or data passes through if the transform was
//     skipped originally
//
// # Basic Usage
//
// Wrap an Op with [New], then invoke it with named data:
//
//	t, _ := transform.New(op, transform.WithProbability(1.0))
//	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
//	out, err := t.Apply(rng, false, transform.Data{
//	    "image":  img,
//	    "bboxes": boxes,
//	})
//
// The same generated parameters reach every target: the image kernel and
// each bounding-box record see one shared draw, never independent ones.
//
// # Profiles
//
// An Op declares one of three closed target profiles:
//
//   - [ProfileImageOnly]: dispatches only the image target
//   - [ProfileDual]: image, mask, masks, bboxes, and keypoints
//   - [ProfileReference]: dual plus a whole-sample global_label target
//
// Targets outside the profile pass through unmodified, which lets an
// image-only transform run on a sample that also carries boxes. Aliases
// registered with [Transform.AddTargets] let one call carry several
// same-kind targets ("image2" -> "image").
//
// # Concurrency
//
// Execution is single-threaded and call-scoped. A Transform's mutable state
// (last parameters, replay flags) assumes one logical caller per instance;
// share instances across goroutines only with external synchronization.
package transform
