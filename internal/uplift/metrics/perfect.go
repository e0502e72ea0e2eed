package metrics

import "fmt"

// PerfectUpliftCurve builds the uplift curve of an ideal ranking of the
// observed outcomes.
func PerfectUpliftCurve(yTrue, treatment []float64) (Curve, error) {
	if err := validatePerfectInputs(yTrue, treatment); err != nil {
		return Curve{}, err
	}
	return perfectUpliftCurve(yTrue, treatment), nil
}

func perfectUpliftCurve(yTrue, treatment []float64) Curve {
	var controlResponders, treatedNonResponders int
	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && treatment[i] == 0:
			controlResponders++
		case yTrue[i] == 0 && treatment[i] == 1:
			treatedNonResponders++
		}
	}

	summand := treatment
	if controlResponders > treatedNonResponders {
		summand = yTrue
	}

	score := make([]float64, len(yTrue))
	for i := range score {
		if yTrue[i] == treatment[i] {
			score[i] = 2
		}
		score[i] += summand[i]
	}
	return upliftCurve(yTrue, score, treatment)
}

// PerfectQiniCurve builds the Qini curve of an ideal ranking. With
// negativeEffect the curve may decline at the tail where treatment hurts
// control responders; without it the curve is a plateau at the total
// incremental effect.
func PerfectQiniCurve(yTrue, treatment []float64, negativeEffect bool) (Curve, error) {
	if err := validatePerfectInputs(yTrue, treatment); err != nil {
		return Curve{}, err
	}
	return perfectQiniCurve(yTrue, treatment, negativeEffect), nil
}

func perfectQiniCurve(yTrue, treatment []float64, negativeEffect bool) Curve {
	if negativeEffect {
		score := make([]float64, len(yTrue))
		for i := range score {
			score[i] = yTrue[i]*treatment[i] - yTrue[i]*(1-treatment[i])
		}
		return qiniCurve(yTrue, score, treatment)
	}

	var yTrmnt, yCtrl, nTrmnt, nCtrl float64
	for i := range yTrue {
		if treatment[i] == 1 {
			yTrmnt += yTrue[i]
			nTrmnt++
		} else {
			yCtrl += yTrue[i]
			nCtrl++
		}
	}
	ratioRandom := yTrmnt - nTrmnt*safeDiv(yCtrl, nCtrl)
	n := float64(len(yTrue))

	return Curve{
		X: []float64{0, ratioRandom, n},
		Y: []float64{0, ratioRandom, ratioRandom},
	}
}

func validatePerfectInputs(yTrue, treatment []float64) error {
	if err := CheckConsistentLength(yTrue, treatment); err != nil {
		return err
	}
	if err := CheckBinary(treatment); err != nil {
		return fmt.Errorf("treatment: %w", err)
	}
	if err := CheckBinary(yTrue); err != nil {
		return fmt.Errorf("y_true: %w", err)
	}
	return nil
}
