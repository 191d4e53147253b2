package builder_test

import (
	"fmt"

	"github.com/jakhac/graph-algorithms/builder"
)

func ExampleCircle() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.Circle(builder.Small))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.NodeCount(), g.EdgeCount(), g.Start().Label, g.Finish().Label)
	// Output: 14 18 A N
}
