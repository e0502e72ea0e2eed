package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/runner"
)

var scoreColumns = []struct {
	name   string
	header string
}{
	{metrics.MetricQiniAUC, "Qini AUC"},
	{metrics.MetricUpliftAUC, "Uplift AUC"},
	{metrics.MetricUpliftAtK, "Uplift@k"},
	{metrics.MetricWeightedAverageUplift, "WAU"},
	{runner.ScoreAverageSquaredDeviation, "ASD"},
}

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Uplift Evaluation: %s ===\n", r.Meta.Name)
	fmt.Fprintf(tw, "samples=%d strategy=%s k=%s bins=%d\n\n",
		r.Meta.Samples, r.Config.Params.Strategy, r.Config.Params.K, r.Config.Params.Bins)

	writeScoreTable(tw, r)
	for _, m := range r.Models {
		if m.Percentiles != nil {
			writePercentileTable(tw, m.Model, m.Percentiles)
		}
	}

	tw.Flush()
}

func writeScoreTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Model Ranking\n\n")

	header := []string{"Rank", "Model"}
	for _, c := range scoreColumns {
		header = append(header, c.header)
	}
	header = append(header, "Status")
	writeHeader(tw, header)

	rankOf := make(map[string]int, len(r.Ranking))
	for _, rm := range r.Ranking {
		rankOf[rm.Model] = rm.Rank
	}

	for _, m := range orderedModels(r) {
		rank := "-"
		if n, ok := rankOf[m.Model]; ok {
			rank = fmt.Sprintf("%d", n)
		}
		row := []string{rank, m.Model}
		for _, c := range scoreColumns {
			row = append(row, fmtScore(m.Scores, c.name))
		}
		status := "OK"
		if m.Error != "" {
			status = "ERR: " + m.Error
		}
		row = append(row, status)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writePercentileTable(tw *tabwriter.Writer, model string, t *metrics.PercentileTable) {
	fmt.Fprintf(tw, "Uplift by Percentile: %s\n\n", model)

	header := []string{"Percentile", "n_treatment", "n_control", "rr_treatment", "rr_control", "uplift"}
	if t.HasStd {
		header = append(header, "std_treatment", "std_control", "std_uplift")
	}
	writeHeader(tw, header)

	for _, row := range t.Rows {
		cells := []string{
			row.Percentile,
			fmt.Sprintf("%d", row.NTreatment),
			fmt.Sprintf("%d", row.NControl),
			fmt.Sprintf("%.4f", row.ResponseRateTreatment),
			fmt.Sprintf("%.4f", row.ResponseRateControl),
			fmt.Sprintf("%.4f", row.Uplift),
		}
		if t.HasStd && row.Std != nil {
			cells = append(cells,
				fmt.Sprintf("%.4f", row.Std.Treatment),
				fmt.Sprintf("%.4f", row.Std.Control),
				fmt.Sprintf("%.4f", row.Std.Uplift),
			)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	fmt.Fprintln(tw)
}

// orderedModels lists ranked models first, then failed ones.
func orderedModels(r *Report) []ModelReport {
	byName := make(map[string]ModelReport, len(r.Models))
	for _, m := range r.Models {
		byName[m.Model] = m
	}
	out := make([]ModelReport, 0, len(r.Models))
	for _, rm := range r.Ranking {
		out = append(out, byName[rm.Model])
	}
	for _, m := range r.Models {
		if m.Error != "" {
			out = append(out, m)
		}
	}
	return out
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtScore(scores map[string]float64, name string) string {
	v, ok := scores[name]
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", v)
}
