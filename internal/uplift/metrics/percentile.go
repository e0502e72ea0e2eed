package metrics

import (
	"log/slog"
	"math"
	"strconv"
)

// TotalLabel marks the aggregate row of a percentile table.
const TotalLabel = "total"

type ResponseRates struct {
	Rate     []float64 `json:"response_rate"`
	Variance []float64 `json:"variance"`
	Size     []int     `json:"group_size"`
}

type PercentileStd struct {
	Treatment float64 `json:"std_treatment"`
	Control   float64 `json:"std_control"`
	Uplift    float64 `json:"std_uplift"`
}

type PercentileRow struct {
	Percentile            string         `json:"percentile"`
	NTreatment            int            `json:"n_treatment"`
	NControl              int            `json:"n_control"`
	ResponseRateTreatment float64        `json:"response_rate_treatment"`
	ResponseRateControl   float64        `json:"response_rate_control"`
	Uplift                float64        `json:"uplift"`
	Std                   *PercentileStd `json:"std,omitempty"`
}

// PercentileTable holds one row per bin, followed by the total row when
// requested.
type PercentileTable struct {
	Rows     []PercentileRow `json:"rows"`
	HasStd   bool            `json:"has_std"`
	HasTotal bool            `json:"has_total"`
}

// Bins returns the per-bin rows without the total row.
func (t *PercentileTable) Bins() []PercentileRow {
	if t.HasTotal && len(t.Rows) > 0 {
		return t.Rows[:len(t.Rows)-1]
	}
	return t.Rows
}

func (t *PercentileTable) Total() (PercentileRow, bool) {
	if !t.HasTotal || len(t.Rows) == 0 {
		return PercentileRow{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}

type PercentileOption func(*percentileOptions)

type percentileOptions struct {
	std               bool
	total             bool
	stringPercentiles bool
}

// WithStd adds standard deviation columns.
func WithStd() PercentileOption {
	return func(o *percentileOptions) { o.std = true }
}

// WithTotal appends a row computed over the whole population.
func WithTotal() PercentileOption {
	return func(o *percentileOptions) { o.total = true }
}

// WithNumericPercentiles labels bins by their upper bound ("10") instead of
// their range ("0-10").
func WithNumericPercentiles() PercentileOption {
	return func(o *percentileOptions) { o.stringPercentiles = false }
}

// ResponseRateByPercentile splits the ranking into bins and reports the
// response rate, its Bernoulli variance p(1-p)/n and the size of the given
// group in every bin.
func ResponseRateByPercentile(yTrue, uplift, treatment []float64, group Group, strategy Strategy, bins int) (*ResponseRates, error) {
	if err := validatePercentile(yTrue, uplift, treatment, strategy, bins); err != nil {
		return nil, err
	}
	if err := group.Validate(); err != nil {
		return nil, err
	}
	warnSingleBin(bins)
	return responseRates(yTrue, uplift, treatment, group, strategy, bins), nil
}

// UpliftByPercentile builds the per-bin uplift table.
func UpliftByPercentile(yTrue, uplift, treatment []float64, strategy Strategy, bins int, opts ...PercentileOption) (*PercentileTable, error) {
	if err := validatePercentile(yTrue, uplift, treatment, strategy, bins); err != nil {
		return nil, err
	}
	warnSingleBin(bins)

	o := percentileOptions{stringPercentiles: true}
	for _, opt := range opts {
		opt(&o)
	}
	return upliftByPercentile(yTrue, uplift, treatment, strategy, bins, o), nil
}

// WeightedAverageUplift averages per-bin uplift weighted by the treatment
// group size of each bin.
func WeightedAverageUplift(yTrue, uplift, treatment []float64, strategy Strategy, bins int) (float64, error) {
	if err := validatePercentile(yTrue, uplift, treatment, strategy, bins); err != nil {
		return 0, err
	}
	warnSingleBin(bins)

	trmnt := responseRates(yTrue, uplift, treatment, GroupTreatment, strategy, bins)
	ctrl := responseRates(yTrue, uplift, treatment, GroupControl, strategy, bins)

	var weighted, total float64
	for i := range trmnt.Rate {
		n := float64(trmnt.Size[i])
		weighted += n * (trmnt.Rate[i] - ctrl.Rate[i])
		total += n
	}
	return safeDiv(weighted, total), nil
}

func upliftByPercentile(yTrue, uplift, treatment []float64, strategy Strategy, bins int, o percentileOptions) *PercentileTable {
	trmnt := responseRates(yTrue, uplift, treatment, GroupTreatment, strategy, bins)
	ctrl := responseRates(yTrue, uplift, treatment, GroupControl, strategy, bins)

	table := &PercentileTable{
		Rows:     make([]PercentileRow, 0, bins+1),
		HasStd:   o.std,
		HasTotal: o.total,
	}
	for i, label := range percentileLabels(bins, o.stringPercentiles) {
		table.Rows = append(table.Rows, newPercentileRow(label, trmnt, ctrl, i, o.std))
	}

	if o.total {
		trmntTotal := responseRates(yTrue, uplift, treatment, GroupTreatment, strategy, 1)
		ctrlTotal := responseRates(yTrue, uplift, treatment, GroupControl, strategy, 1)
		table.Rows = append(table.Rows, newPercentileRow(TotalLabel, trmntTotal, ctrlTotal, 0, o.std))
	}
	return table
}

func newPercentileRow(label string, trmnt, ctrl *ResponseRates, i int, withStd bool) PercentileRow {
	row := PercentileRow{
		Percentile:            label,
		NTreatment:            trmnt.Size[i],
		NControl:              ctrl.Size[i],
		ResponseRateTreatment: trmnt.Rate[i],
		ResponseRateControl:   ctrl.Rate[i],
		Uplift:                trmnt.Rate[i] - ctrl.Rate[i],
	}
	if withStd {
		row.Std = &PercentileStd{
			Treatment: math.Sqrt(trmnt.Variance[i]),
			Control:   math.Sqrt(ctrl.Variance[i]),
			Uplift:    math.Sqrt(trmnt.Variance[i] + ctrl.Variance[i]),
		}
	}
	return row
}

func responseRates(yTrue, uplift, treatment []float64, group Group, strategy Strategy, bins int) *ResponseRates {
	order := descendingOrder(uplift)
	y := permute(yTrue, order)
	trmnt := permute(treatment, order)
	flag := group.flag()

	rr := &ResponseRates{
		Rate:     make([]float64, bins),
		Variance: make([]float64, bins),
		Size:     make([]int, bins),
	}

	if strategy == StrategyOverall {
		for i, s := range splitSpans(len(y), bins) {
			rr.set(i, selectGroup(y[s.start:s.end], trmnt[s.start:s.end], flag))
		}
		return rr
	}

	selected := selectGroup(y, trmnt, flag)
	for i, s := range splitSpans(len(selected), bins) {
		rr.set(i, selected[s.start:s.end])
	}
	return rr
}

func (rr *ResponseRates) set(i int, y []float64) {
	p := mean(y)
	rr.Size[i] = len(y)
	rr.Rate[i] = p
	rr.Variance[i] = p * safeDiv(1-p, float64(len(y)))
}

type span struct {
	start, end int
}

// splitSpans divides n elements into bins contiguous spans whose sizes differ
// by at most one; the first n%bins spans hold the extra element.
func splitSpans(n, bins int) []span {
	base, extra := n/bins, n%bins
	spans := make([]span, bins)
	start := 0
	for i := range spans {
		size := base
		if i < extra {
			size++
		}
		spans[i] = span{start: start, end: start + size}
		start += size
	}
	return spans
}

func percentileLabels(bins int, asRanges bool) []string {
	bounds := make([]string, bins)
	for p := 1; p <= bins; p++ {
		bounds[p-1] = strconv.Itoa(int(math.RoundToEven(float64(p) * 100 / float64(bins))))
	}
	if !asRanges {
		return bounds
	}

	labels := make([]string, bins)
	labels[0] = "0-" + bounds[0]
	for i := 1; i < bins; i++ {
		labels[i] = bounds[i-1] + "-" + bounds[i]
	}
	return labels
}

func validatePercentile(yTrue, uplift, treatment []float64, strategy Strategy, bins int) error {
	if err := validateInputs(yTrue, uplift, treatment); err != nil {
		return err
	}
	if err := strategy.Validate(); err != nil {
		return err
	}
	return validateBins(bins, len(yTrue))
}

func warnSingleBin(bins int) {
	if bins == 1 {
		slog.Warn("Single bin covers the whole population, consider uplift at k instead", "bins", bins)
	}
}
