package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"loan-offer/domain"
	"loan-offer/service"
)

type sanctionRequest struct {
	ApplicantID    string  `json:"applicant_id,omitempty" validate:"omitempty,max=64"`
	CibilScore     int     `json:"cibil_score" validate:"required,gte=300,lte=900"`
	MaxLoanAllowed float64 `json:"max_loan_allowed" validate:"gte=0"`
	Shared         bool    `json:"shared,omitempty" validate:"excluded_with=ApplicantID"`
}

type SanctionHandler struct {
	service  *service.SanctionService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewSanctionHandler(service *service.SanctionService, logger *zap.Logger) *SanctionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SanctionHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (h *SanctionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req sanctionRequest
	if status, err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	in := domain.Sanction{
		ApplicantID:    req.ApplicantID,
		CibilScore:     req.CibilScore,
		MaxLoanAllowed: req.MaxLoanAllowed,
	}
	record := h.service.Record
	if req.Shared {
		record = h.service.RecordShared
	}

	sanction, err := record(r.Context(), in)
	if err != nil {
		fail(w, h.logger, "http.Record", err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, sanction); err != nil {
		h.logger.Error("failed to write response", zap.String("op", "http.Record"), zap.Error(err))
	}
}

// Preview serves the sanction result screen. Without an applicant in the
// path the shared keys are read.
func (h *SanctionHandler) Preview(w http.ResponseWriter, r *http.Request) {
	applicantID := chi.URLParam(r, "applicantID")

	preview, err := h.service.Preview(r.Context(), applicantID)
	if err != nil {
		fail(w, h.logger, "http.Preview", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, preview); err != nil {
		h.logger.Error("failed to write response", zap.String("op", "http.Preview"), zap.Error(err))
	}
}
