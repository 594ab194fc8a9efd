package stats_test

import (
	"fmt"

	"github.com/kapteenimuttipolpa/embedded-utils/stats"
)

func ExampleMean() {
	m, err := stats.Mean([]float64{2, 4, 6})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.1f\n", m)

	// Output:
	// 4.0
}

func ExampleRunning() {
	r := stats.NewRunning[float64]()
	r.Update([]float64{2, 4})
	r.Update([]float64{6})

	m, err := r.Mean()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("n=%d mean=%.1f\n", r.Count(), m)

	// Output:
	// n=3 mean=4.0
}
