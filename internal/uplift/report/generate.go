package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/runner"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/utils"
)

// Generate turns an evaluation result into a report. The report ID is left
// unset; storers assign it on save.
func Generate(er *runner.EvaluationResult) *Report {
	r := &Report{
		Meta: EvalMeta{
			Name:        er.Name,
			Version:     Version,
			Timestamp:   time.Now().UTC(),
			Samples:     er.Samples,
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			Params:        er.Config.Params,
			BalanceWindow: er.Config.BalanceWindow,
		},
	}

	for _, mr := range er.Models {
		entry := ModelReport{
			Model:      mr.Model,
			DurationMs: utils.RoundDecimal(float64(mr.Duration.Microseconds())/1000, 3),
		}
		if mr.Error != nil {
			entry.Error = mr.Error.Error()
			r.Models = append(r.Models, entry)
			continue
		}
		entry.Scores = mr.Scores
		entry.Percentiles = mr.Percentiles
		entry.UpliftCurve = curveOrNil(mr.UpliftCurve)
		entry.QiniCurve = curveOrNil(mr.QiniCurve)
		entry.Balance = curveOrNil(mr.Balance)
		r.Models = append(r.Models, entry)
	}

	r.Ranking = rank(r.Models)
	return r
}

// rank orders the successful models by Qini AUC, then uplift AUC, best first.
// Ties keep evaluation order.
func rank(models []ModelReport) []RankedModel {
	ranked := make([]RankedModel, 0, len(models))
	for _, m := range models {
		if m.Error != "" {
			continue
		}
		ranked = append(ranked, RankedModel{
			Model:     m.Model,
			QiniAUC:   m.Scores[metrics.MetricQiniAUC],
			UpliftAUC: m.Scores[metrics.MetricUpliftAUC],
		})
	}

	slices.SortStableFunc(ranked, func(a, b RankedModel) int {
		if c := cmp.Compare(b.QiniAUC, a.QiniAUC); c != 0 {
			return c
		}
		return cmp.Compare(b.UpliftAUC, a.UpliftAUC)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

func curveOrNil(c metrics.Curve) *metrics.Curve {
	if c.Len() == 0 {
		return nil
	}
	return &c
}
