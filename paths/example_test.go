package paths_test

import (
	"fmt"

	"github.com/ekohilas/train-conductor-world-tools/paths"
	"github.com/ekohilas/train-conductor-world-tools/trackgraph"
	"github.com/ekohilas/train-conductor-world-tools/world"
)

func ExamplePaths_ConnectionPath() {
	ref := reference(harborToMesa)
	w, _ := world.FromMatrices(
		[][]int{{P, 0, 0, C}},
		[][]int{{0, H, H, 0}},
		ref,
	)
	g, _ := trackgraph.New(w.TrackMap)
	p := paths.New(w.TileMap, ref, g)

	d, _ := p.DistanceBetween("Harbor", "Mesa")
	r, _ := p.Resolve("Harbor", "Mesa")
	fmt.Println("Distance:", d)
	fmt.Println("Path:", paths.FormatPath(r.Path))
	// Output:
	// Distance: 2
	// Path: [(1, 0) HORIZONTAL, (2, 0) HORIZONTAL]
}
