package transform_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/augmentlab/augment/pkg/batch"
	"github.com/augmentlab/augment/pkg/pixel"
	"github.com/augmentlab/augment/pkg/transform"
)

func ExampleTransform_Apply() {
	// NoOp carries the full dual profile: every target is dispatched, and
	// every target comes back unchanged.
	t, _ := transform.New(transform.NoOp{}, transform.WithProbability(1.0))

	img, _ := pixel.New(10, 10, 3)
	boxes, _ := batch.NewBoxes([][]float64{{1, 1, 5, 5}}, [][]any{{"cat"}})

	rng := rand.New(rand.NewPCG(42, 42^0xdeadbeef))
	out, _ := t.Apply(rng, false, transform.Data{
		"image":  img,
		"bboxes": boxes,
	})

	result := out["bboxes"].(*batch.Batch)
	fmt.Println("box:", result.Row(0))
	fmt.Println("label:", result.Meta(0)[0])
	// Output:
	// box: [1 1 5 5]
	// label: cat
}

func ExampleTransform_AddTargets() {
	// Aliases let one call carry several same-kind targets.
	t, _ := transform.New(transform.NoOp{}, transform.WithProbability(1.0))
	_ = t.AddTargets(map[string]string{"image2": "image"})

	img, _ := pixel.New(4, 4, 1)
	img2, _ := pixel.New(4, 4, 1)

	rng := rand.New(rand.NewPCG(7, 7^0xdeadbeef))
	out, _ := t.Apply(rng, false, transform.Data{
		"image":  img,
		"image2": img2,
	})
	fmt.Println("targets:", len(out))
	// Output:
	// targets: 2
}
