package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"loan-offer/domain"
	"loan-offer/service"
)

type tenureRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	CreditScore *int    `json:"credit_score,omitempty"`
	ApplicantID string  `json:"applicant_id,omitempty" validate:"omitempty,max=64"`
	MaxEMI      float64 `json:"max_emi,omitempty" validate:"gte=0"`
	Preference  string  `json:"preference,omitempty" validate:"omitempty,oneof=minimize_interest minimize_payment balanced"`
}

type TenureHandler struct {
	service  *service.TenureService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewTenureHandler(service *service.TenureService, logger *zap.Logger) *TenureHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenureHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (h *TenureHandler) RecommendTenure(w http.ResponseWriter, r *http.Request) {
	var req tenureRequest
	if status, err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	result, err := h.service.Compare(r.Context(), req.ApplicantID, domain.TenureComparisonInput{
		Amount:      req.Amount,
		CreditScore: req.CreditScore,
		MaxEMI:      req.MaxEMI,
		Preference:  domain.TenurePreference(req.Preference),
	})
	if err != nil {
		fail(w, h.logger, "http.RecommendTenure", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("failed to write response", zap.String("op", "http.RecommendTenure"), zap.Error(err))
	}
}
