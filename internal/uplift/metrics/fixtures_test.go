package metrics

import "math/rand"

// tiedSample mirrors a model that gives every individual the same score.
func tiedSample() Sample {
	return Sample{
		YTrue:     []float64{0, 1, 0},
		Uplift:    []float64{0.5, 0.5, 0.5},
		Treatment: []float64{0, 1, 1},
	}
}

// rankedSample has two treated responders, one treated non-responder, two
// control non-responders and one control responder. Uplift orders them the
// way an ideal model would.
func rankedSample() Sample {
	return Sample{
		YTrue:     []float64{1, 1, 0, 0, 0, 1},
		Uplift:    []float64{0.9, 0.8, 0.3, 0.6, 0.5, 0.1},
		Treatment: []float64{1, 1, 1, 0, 0, 0},
	}
}

func reversedSample() Sample {
	s := rankedSample()
	s.Uplift = []float64{0.1, 0.2, 0.7, 0.4, 0.5, 0.9}
	return s
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}
