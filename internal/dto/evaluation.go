package dto

import (
	"github.com/DjordjeVuckovic/uplift-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/dataset"
	"github.com/DjordjeVuckovic/uplift-hunter/internal/uplift/metrics"
	"github.com/google/uuid"
)

type EvaluationRequest struct {
	Name          string               `json:"name"`
	Target        []float64            `json:"target"`
	Treatment     []float64            `json:"treatment"`
	Predictions   map[string][]float64 `json:"predictions"`
	Params        MetricParams         `json:"params"`
	BalanceWindow int                  `json:"balance_window,omitempty"`
}

func (r *EvaluationRequest) Validate() error {
	if r.Name == "" {
		return apperr.NewFieldValidation("name", "is required")
	}
	if len(r.Target) == 0 {
		return apperr.NewFieldValidation("target", "must not be empty")
	}
	if len(r.Predictions) == 0 {
		return apperr.NewFieldValidation("predictions", "must contain at least one model")
	}
	for name := range r.Predictions {
		if name == "" {
			return apperr.NewFieldValidation("predictions", "model name must not be empty")
		}
	}
	if err := metrics.CheckBinary(r.Target); err != nil {
		return fieldError("target", err)
	}
	if err := metrics.CheckBinary(r.Treatment); err != nil {
		return fieldError("treatment", err)
	}
	if err := r.Params.ToParams().Validate(); err != nil {
		return fieldError("params", err)
	}
	if r.BalanceWindow < 0 {
		return apperr.NewFieldValidation("balance_window", "must not be negative")
	}
	return nil
}

func fieldError(field string, err error) *apperr.ValidationError {
	return &apperr.ValidationError{Field: field, Message: "invalid value", Err: err}
}

func (r *EvaluationRequest) Frame() (*dataset.Frame, error) {
	frame, err := dataset.NewFrame(r.Target, r.Treatment, r.Predictions)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid evaluation data", err)
	}
	return frame, nil
}

type EvaluationCreated struct {
	ID uuid.UUID `json:"id"`
}
