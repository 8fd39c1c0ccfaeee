package diagnostics

import "time"

// Metric is the timing summary of one measured operation
type Metric struct {
	Name       string        `json:"name" yaml:"name"`
	Iterations int           `json:"iterations" yaml:"iterations"`
	Total      time.Duration `json:"total" yaml:"total"`
	Mean       time.Duration `json:"mean" yaml:"mean"`
	Min        time.Duration `json:"min" yaml:"min"`
	Max        time.Duration `json:"max" yaml:"max"`
}

// Measure calls fn iterations times and summarises the elapsed time of each
// call. fn receives the iteration index so setup can be prepared outside the
// timed region.
func Measure(name string, iterations int, fn func(i int)) Metric {
	if iterations < 1 {
		iterations = 1
	}
	m := Metric{Name: name, Iterations: iterations}
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn(i)
		elapsed := time.Since(start)

		m.Total += elapsed
		if i == 0 || elapsed < m.Min {
			m.Min = elapsed
		}
		if elapsed > m.Max {
			m.Max = elapsed
		}
	}
	m.Mean = m.Total / time.Duration(iterations)
	return m
}
