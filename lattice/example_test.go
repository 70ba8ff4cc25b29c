package lattice_test

import (
	"fmt"

	"github.com/pitchgrid-io/scalatrix/lattice"
)

// ExampleNewPath traces the diatonic step counts (5 large, 2 small) down
// to the trivial pair and unfolds the generator vector.
func ExampleNewPath() {
	p := lattice.NewPath(5, 2)
	fmt.Println("depth:", len(p))
	fmt.Println("generator vector:", p.Apply(lattice.Vec2i{X: 1}))
	// Output:
	// depth: 3
	// generator vector: {3 1}
}

// ExampleLinearFromTwoDots derives the exact change of basis sending the
// step basis onto the diatonic generator and period vectors.
func ExampleLinearFromTwoDots() {
	tr, err := lattice.LinearFromTwoDots(
		lattice.Vec2i{X: 1}, lattice.Vec2i{X: 1, Y: 1},
		lattice.Vec2i{X: 3, Y: 1}, lattice.Vec2i{X: 5, Y: 2},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tr.Apply(lattice.Vec2i{X: 1}))
	fmt.Println(tr.Apply(lattice.Vec2i{X: 1, Y: 1}))
	// Output:
	// {3 1}
	// {5 2}
}
