package evaluator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// sampleGrid 生成[0, length)内步长为resolution的等距采样网格
func sampleGrid(length, resolution float64) []float64 {
	n := int(math.Ceil(length / resolution))
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, float64(n-1)*resolution)
}
