package metrics

// UpliftCurve computes the uplift curve: at each distinct score threshold the
// difference between treatment and control response rates, scaled by the
// number of individuals examined so far.
func UpliftCurve(yTrue, uplift, treatment []float64) (Curve, error) {
	if err := validateBinaryInputs(yTrue, uplift, treatment); err != nil {
		return Curve{}, err
	}
	return upliftCurve(yTrue, uplift, treatment), nil
}

func upliftCurve(yTrue, uplift, treatment []float64) Curve {
	c := rank(yTrue, uplift, treatment)

	values := make([]float64, len(c.numAll))
	for i := range values {
		values[i] = (safeDiv(c.yTrmnt[i], c.numTrmnt[i]) - safeDiv(c.yCtrl[i], c.numCtrl[i])) * c.numAll[i]
	}
	return withOrigin(c.numAll, values)
}

// QiniCurve computes the Qini curve: treatment responders minus control
// responders rescaled to the treatment group size, at each distinct score
// threshold.
func QiniCurve(yTrue, uplift, treatment []float64) (Curve, error) {
	if err := validateBinaryInputs(yTrue, uplift, treatment); err != nil {
		return Curve{}, err
	}
	return qiniCurve(yTrue, uplift, treatment), nil
}

func qiniCurve(yTrue, uplift, treatment []float64) Curve {
	c := rank(yTrue, uplift, treatment)

	values := make([]float64, len(c.numAll))
	for i := range values {
		values[i] = c.yTrmnt[i] - c.yCtrl[i]*safeDiv(c.numTrmnt[i], c.numCtrl[i])
	}
	return withOrigin(c.numAll, values)
}
