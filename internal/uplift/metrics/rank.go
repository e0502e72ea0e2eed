package metrics

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// cumulative holds group statistics at every distinct-score threshold of a
// descending ranking. All slices have one entry per threshold.
type cumulative struct {
	numAll   []float64
	numTrmnt []float64
	yTrmnt   []float64
	numCtrl  []float64
	yCtrl    []float64
}

// descendingOrder returns indices that sort score from highest to lowest.
// Tied scores keep their original relative order.
func descendingOrder(score []float64) []int {
	order := make([]int, len(score))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return score[order[a]] > score[order[b]]
	})
	return order
}

func permute(v []float64, order []int) []float64 {
	out := make([]float64, len(order))
	for i, idx := range order {
		out[i] = v[idx]
	}
	return out
}

// thresholdIndices returns the last position of each run of equal scores.
func thresholdIndices(sorted []float64) []int {
	if len(sorted) == 0 {
		return nil
	}
	var idx []int
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i] != sorted[i+1] {
			idx = append(idx, i)
		}
	}
	return append(idx, len(sorted)-1)
}

func rank(yTrue, uplift, treatment []float64) cumulative {
	order := descendingOrder(uplift)
	y := permute(yTrue, order)
	score := permute(uplift, order)
	trmnt := permute(treatment, order)

	n := len(y)
	yTrueTrmnt := make([]float64, n)
	yTrueCtrl := make([]float64, n)
	for i := range y {
		if trmnt[i] == 1 {
			yTrueTrmnt[i] = y[i]
		} else {
			yTrueCtrl[i] = y[i]
		}
	}

	cumTrmnt := floats.CumSum(make([]float64, n), trmnt)
	cumYTrmnt := floats.CumSum(make([]float64, n), yTrueTrmnt)
	cumYCtrl := floats.CumSum(make([]float64, n), yTrueCtrl)

	thresholds := thresholdIndices(score)
	c := cumulative{
		numAll:   make([]float64, len(thresholds)),
		numTrmnt: make([]float64, len(thresholds)),
		yTrmnt:   make([]float64, len(thresholds)),
		numCtrl:  make([]float64, len(thresholds)),
		yCtrl:    make([]float64, len(thresholds)),
	}
	for j, i := range thresholds {
		c.numAll[j] = float64(i + 1)
		c.numTrmnt[j] = cumTrmnt[i]
		c.yTrmnt[j] = cumYTrmnt[i]
		c.numCtrl[j] = c.numAll[j] - c.numTrmnt[j]
		c.yCtrl[j] = cumYCtrl[i]
	}
	return c
}

// withOrigin prepends (0, 0) unless the curve already starts there.
func withOrigin(x, y []float64) Curve {
	if len(x) == 0 || x[0] != 0 || y[0] != 0 {
		x = append([]float64{0}, x...)
		y = append([]float64{0}, y...)
	}
	return Curve{X: x, Y: y}
}
