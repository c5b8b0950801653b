package probe_test

import (
	"fmt"

	"github.com/emkit-org/emkit/probe"
)

func ExampleTrace_ValueAt() {
	tr := probe.Trace{
		Time:   []float64{0, 1, 2},
		Values: []float64{0, 10, 40},
	}

	v, _ := tr.ValueAt(1.5, false)
	fmt.Printf("%.1f\n", v)

	// Output:
	// 25.0
}
