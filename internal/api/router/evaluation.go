package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/dto"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/storage"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/report"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/runner"
	"github.com/DjordjeVuckovic/uplift-hunter/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EvaluationRouter struct {
	e      *echo.Echo
	storer storage.Storer
}

func NewEvaluationRouter(e *echo.Echo, storer storage.Storer) *EvaluationRouter {
	return &EvaluationRouter{
		e:      e,
		storer: storer,
	}
}

func (r *EvaluationRouter) Bind() {
	g := r.e.Group("/v1/evaluations")
	g.POST("", r.createHandler)
	g.GET("", r.listHandler)
	g.GET("/:id", r.getHandler)
}

// createHandler godoc
// @Summary Evaluate models
// @Description Runs every model prediction against the shared target and treatment, stores the report
// @Tags evaluations
// @Accept json
// @Produce json
// @Param request body dto.EvaluationRequest true "Target, treatment and per-model predictions"
// @Success 201 {object} dto.EvaluationCreated
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/evaluations [post]
func (r *EvaluationRouter) createHandler(c echo.Context) error {
	var req dto.EvaluationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	frame, err := req.Frame()
	if err != nil {
		return err
	}

	cfg := runner.DefaultConfig()
	cfg.Params = req.Params.ToParams()
	if req.BalanceWindow > 0 {
		cfg.BalanceWindow = req.BalanceWindow
	}

	result, err := runner.New(cfg).Run(c.Request().Context(), req.Name, frame)
	if err != nil {
		return err
	}

	id, err := r.storer.Save(c.Request().Context(), report.Generate(result))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.EvaluationCreated{ID: id})
}

// getHandler godoc
// @Summary Get evaluation report
// @Tags evaluations
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} report.Report
// @Failure 400 {object} apperr.ErrorResponse
// @Failure 404 {object} apperr.ErrorResponse
// @Router /v1/evaluations/{id} [get]
func (r *EvaluationRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid report id", err)
	}

	rep, err := r.storer.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rep)
}

// listHandler godoc
// @Summary List evaluation reports
// @Description Report summaries, newest first
// @Tags evaluations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[report.Summary]
// @Failure 400 {object} apperr.ErrorResponse
// @Router /v1/evaluations [get]
func (r *EvaluationRouter) listHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	items, total, err := r.storer.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(items, total, req.Page, req.Size))
}
