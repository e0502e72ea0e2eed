package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/dto"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankedBody = `"y_true":[1,1,0,0,0,1],"uplift":[0.9,0.8,0.3,0.6,0.5,0.1],"treatment":[1,1,1,0,0,0]`

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	return e
}

func post(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestMetricsRouter_Curves(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	tests := []struct {
		name    string
		path    string
		body    string
		wantLen int
		wantAUC *float64
	}{
		{name: "uplift", path: "/v1/curves/uplift", body: "{" + rankedBody + "}", wantLen: 7, wantAUC: ptr(1.0)},
		{name: "qini", path: "/v1/curves/qini", body: "{" + rankedBody + "}", wantLen: 7, wantAUC: ptr(1.0)},
		{name: "qini plateau reference", path: "/v1/curves/qini", body: "{" + rankedBody + `,"negative_effect":false}`, wantLen: 7, wantAUC: ptr(2.6)},
		{name: "perfect uplift", path: "/v1/curves/perfect/uplift", body: `{"y_true":[1,0,1,0],"treatment":[1,1,0,0]}`, wantLen: 5},
		{name: "perfect qini", path: "/v1/curves/perfect/qini", body: `{"y_true":[1,0,1,0],"treatment":[1,1,0,0]}`, wantLen: 4},
		{name: "balance", path: "/v1/curves/balance", body: `{"uplift":[0.9,0.8,0.3,0.6,0.5,0.1],"treatment":[1,1,1,0,0,0],"winsize":2}`, wantLen: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, e, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			resp := decode[dto.CurveResponse](t, rec)
			assert.Len(t, resp.X, tt.wantLen)
			assert.Len(t, resp.Y, tt.wantLen)
			if tt.wantAUC == nil {
				assert.Nil(t, resp.AUC)
				return
			}
			require.NotNil(t, resp.AUC)
			assert.InDelta(t, *tt.wantAUC, *resp.AUC, 1e-9)
		})
	}
}

func TestMetricsRouter_Scores(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	rec := post(t, e, "/v1/scores", "{"+rankedBody+`,"params":{"k":2}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[dto.ScoresResponse](t, rec)
	assert.Len(t, resp.Scores, len(metrics.MetricNames()))
	assert.InDelta(t, 1, resp.Scores[metrics.MetricUpliftAUC], 1e-9)
	assert.InDelta(t, 1, resp.Scores[metrics.MetricQiniAUC], 1e-9)
	assert.InDelta(t, 1, resp.Scores[metrics.MetricUpliftAtK], 1e-9)

	rec = post(t, e, "/v1/scores", "{"+rankedBody+`,"metrics":["uplift_auc_score"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.ScoresResponse](t, rec).Scores, 1)
}

func TestMetricsRouter_UpliftAtK(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	rec := post(t, e, "/v1/uplift-at-k", "{"+rankedBody+`,"k":0.5,"strategy":"by_group"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 1, decode[dto.ValueResponse](t, rec).Value, 1e-9)
}

func TestMetricsRouter_Percentiles(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	rec := post(t, e, "/v1/percentiles", "{"+rankedBody+`,"bins":3,"total":true,"std":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[dto.PercentileResponse](t, rec)
	require.NotNil(t, resp.Table)
	assert.Len(t, resp.Table.Rows, 4)
	assert.True(t, resp.Table.HasTotal)
	assert.Equal(t, "0-33", resp.Table.Rows[0].Percentile)
	assert.InDelta(t, 1.0/3.0, resp.WeightedAverageUplift, 1e-9)
}

func TestMetricsRouter_ResponseRates(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	rec := post(t, e, "/v1/response-rates", "{"+rankedBody+`,"group":"treatment","bins":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rates := decode[metrics.ResponseRates](t, rec)
	require.Len(t, rates.Rate, 1)
	assert.InDelta(t, 2.0/3.0, rates.Rate[0], 1e-9)
	assert.Equal(t, []int{3}, rates.Size)
}

func TestMetricsRouter_MetricNames(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, metrics.MetricNames(), decode[[]string](t, rec))
}

func TestMetricsRouter_BadRequests(t *testing.T) {
	e := newTestEcho()
	NewMetricsRouter(e).Bind()

	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed json", "/v1/curves/uplift", `{"y_true":`},
		{"empty sample", "/v1/curves/uplift", `{}`},
		{"length mismatch", "/v1/curves/qini", `{"y_true":[0,1],"uplift":[0.1],"treatment":[0,1]}`},
		{"non binary treatment", "/v1/curves/uplift", `{"y_true":[0,1],"uplift":[0.1,0.2],"treatment":[0,2]}`},
		{"unknown metric", "/v1/scores", "{" + rankedBody + `,"metrics":["gini"]}`},
		{"bad strategy", "/v1/uplift-at-k", "{" + rankedBody + `,"strategy":"all"}`},
		{"k too large", "/v1/uplift-at-k", "{" + rankedBody + `,"k":100}`},
		{"too many bins", "/v1/percentiles", "{" + rankedBody + `,"bins":50}`},
		{"bad group", "/v1/response-rates", "{" + rankedBody + `,"group":"ctrl"}`},
		{"window too wide", "/v1/curves/balance", `{"uplift":[0.1,0.2],"treatment":[0,1],"winsize":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, e, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func ptr[T any](v T) *T { return &v }
