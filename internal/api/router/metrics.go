package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/dto"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/labstack/echo/v4"
)

const defaultBins = 10

type MetricsRouter struct {
	e *echo.Echo
}

func NewMetricsRouter(e *echo.Echo) *MetricsRouter {
	return &MetricsRouter{e: e}
}

func (r *MetricsRouter) Bind() {
	g := r.e.Group("/v1")
	g.POST("/curves/uplift", r.upliftCurveHandler)
	g.POST("/curves/qini", r.qiniCurveHandler)
	g.POST("/curves/perfect/uplift", r.perfectUpliftCurveHandler)
	g.POST("/curves/perfect/qini", r.perfectQiniCurveHandler)
	g.POST("/curves/balance", r.balanceCurveHandler)
	g.GET("/metrics", r.metricNamesHandler)
	g.POST("/scores", r.scoresHandler)
	g.POST("/uplift-at-k", r.upliftAtKHandler)
	g.POST("/percentiles", r.percentilesHandler)
	g.POST("/response-rates", r.responseRatesHandler)
}

// upliftCurveHandler godoc
// @Summary Uplift curve
// @Description Cumulative uplift curve of the ranked sample with its normalized AUC
// @Tags curves
// @Accept json
// @Produce json
// @Param request body dto.CurveRequest true "Sample"
// @Success 200 {object} dto.CurveResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/curves/uplift [post]
func (r *MetricsRouter) upliftCurveHandler(c echo.Context) error {
	var req dto.CurveRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	curve, err := metrics.UpliftCurve(req.YTrue, req.Uplift, req.Treatment)
	if err != nil {
		return err
	}
	auc, err := metrics.UpliftAUCScore(req.YTrue, req.Uplift, req.Treatment)
	if err != nil {
		return err
	}

	resp := dto.NewCurveResponse(curve)
	resp.AUC = &auc
	return c.JSON(http.StatusOK, resp)
}

// qiniCurveHandler godoc
// @Summary Qini curve
// @Description Cumulative Qini curve of the ranked sample with its normalized AUC
// @Tags curves
// @Accept json
// @Produce json
// @Param request body dto.CurveRequest true "Sample"
// @Success 200 {object} dto.CurveResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/curves/qini [post]
func (r *MetricsRouter) qiniCurveHandler(c echo.Context) error {
	var req dto.CurveRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	curve, err := metrics.QiniCurve(req.YTrue, req.Uplift, req.Treatment)
	if err != nil {
		return err
	}
	auc, err := metrics.QiniAUCScore(req.YTrue, req.Uplift, req.Treatment, boolOr(req.NegativeEffect, true))
	if err != nil {
		return err
	}

	resp := dto.NewCurveResponse(curve)
	resp.AUC = &auc
	return c.JSON(http.StatusOK, resp)
}

// perfectUpliftCurveHandler godoc
// @Summary Perfect uplift curve
// @Tags curves
// @Accept json
// @Produce json
// @Param request body dto.PerfectCurveRequest true "Outcomes and treatment flags"
// @Success 200 {object} dto.CurveResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/curves/perfect/uplift [post]
func (r *MetricsRouter) perfectUpliftCurveHandler(c echo.Context) error {
	var req dto.PerfectCurveRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	curve, err := metrics.PerfectUpliftCurve(req.YTrue, req.Treatment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCurveResponse(curve))
}

// perfectQiniCurveHandler godoc
// @Summary Perfect Qini curve
// @Tags curves
// @Accept json
// @Produce json
// @Param request body dto.PerfectCurveRequest true "Outcomes and treatment flags"
// @Success 200 {object} dto.CurveResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/curves/perfect/qini [post]
func (r *MetricsRouter) perfectQiniCurveHandler(c echo.Context) error {
	var req dto.PerfectCurveRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	curve, err := metrics.PerfectQiniCurve(req.YTrue, req.Treatment, boolOr(req.NegativeEffect, true))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCurveResponse(curve))
}

// balanceCurveHandler godoc
// @Summary Treatment balance curve
// @Description Sliding-window share of treated units along the uplift ranking
// @Tags curves
// @Accept json
// @Produce json
// @Param request body dto.BalanceRequest true "Scores and treatment flags"
// @Success 200 {object} dto.CurveResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/curves/balance [post]
func (r *MetricsRouter) balanceCurveHandler(c echo.Context) error {
	var req dto.BalanceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	curve, err := metrics.TreatmentBalanceCurve(req.Uplift, req.Treatment, req.Winsize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewCurveResponse(curve))
}

// metricNamesHandler godoc
// @Summary List score names
// @Tags scores
// @Produce json
// @Success 200 {array} string
// @Router /v1/metrics [get]
func (r *MetricsRouter) metricNamesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, metrics.MetricNames())
}

// scoresHandler godoc
// @Summary Compute named scores
// @Description Computes the requested registry metrics, all of them when none are named
// @Tags scores
// @Accept json
// @Produce json
// @Param request body dto.ScoresRequest true "Sample, metric names and parameters"
// @Success 200 {object} dto.ScoresResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/scores [post]
func (r *MetricsRouter) scoresHandler(c echo.Context) error {
	var req dto.ScoresRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	names := req.Metrics
	if len(names) == 0 {
		names = metrics.MetricNames()
	}

	params := req.Params.ToParams()
	scores := make(map[string]float64, len(names))
	for _, name := range names {
		v, err := metrics.Score(name, req.YTrue, req.Uplift, req.Treatment, params)
		if err != nil {
			return err
		}
		scores[name] = v
	}
	return c.JSON(http.StatusOK, dto.ScoresResponse{Scores: scores})
}

// upliftAtKHandler godoc
// @Summary Uplift at top k
// @Tags scores
// @Accept json
// @Produce json
// @Param request body dto.UpliftAtKRequest true "Sample, strategy and k"
// @Success 200 {object} dto.ValueResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/uplift-at-k [post]
func (r *MetricsRouter) upliftAtKHandler(c echo.Context) error {
	var req dto.UpliftAtKRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	k := metrics.DefaultK
	if req.K != nil {
		k = *req.K
	}

	v, err := metrics.UpliftAtK(req.YTrue, req.Uplift, req.Treatment, strategyOr(req.Strategy), k)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ValueResponse{Value: v})
}

// percentilesHandler godoc
// @Summary Uplift by percentile
// @Description Per-bin response rates and uplift, with the weighted average uplift
// @Tags percentiles
// @Accept json
// @Produce json
// @Param request body dto.PercentileRequest true "Sample and table options"
// @Success 200 {object} dto.PercentileResponse
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/percentiles [post]
func (r *MetricsRouter) percentilesHandler(c echo.Context) error {
	var req dto.PercentileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	strategy, bins := strategyOr(req.Strategy), binsOr(req.Bins)
	table, err := metrics.UpliftByPercentile(req.YTrue, req.Uplift, req.Treatment, strategy, bins, req.Options()...)
	if err != nil {
		return err
	}
	wau, err := metrics.WeightedAverageUplift(req.YTrue, req.Uplift, req.Treatment, strategy, bins)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.PercentileResponse{Table: table, WeightedAverageUplift: wau})
}

// responseRatesHandler godoc
// @Summary Response rate by percentile
// @Tags percentiles
// @Accept json
// @Produce json
// @Param request body dto.ResponseRateRequest true "Sample, group, strategy and bins"
// @Success 200 {object} metrics.ResponseRates
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/response-rates [post]
func (r *MetricsRouter) responseRatesHandler(c echo.Context) error {
	var req dto.ResponseRateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	rates, err := metrics.ResponseRateByPercentile(req.YTrue, req.Uplift, req.Treatment,
		metrics.Group(req.Group), strategyOr(req.Strategy), binsOr(req.Bins))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rates)
}

type validatable interface {
	Validate() error
}

// bind decodes the body and runs Validate when the request defines it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if v, ok := req.(validatable); ok {
		return v.Validate()
	}
	return nil
}

func strategyOr(s string) metrics.Strategy {
	if s == "" {
		return metrics.StrategyOverall
	}
	return metrics.Strategy(s)
}

func binsOr(bins int) int {
	if bins == 0 {
		return defaultBins
	}
	return bins
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
