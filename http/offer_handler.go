package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"loan-offer/domain"
	"loan-offer/service"
)

const dateLayout = "2006-01-02"

type offerRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	TenureYears int     `json:"tenure_years" validate:"required,oneof=1 2 3"`
	CreditScore *int    `json:"credit_score,omitempty"`
	ApplicantID string  `json:"applicant_id,omitempty" validate:"omitempty,max=64"`
	StartDate   string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r offerRequest) quoteInput() (service.QuoteInput, error) {
	tenure, err := domain.ParseTenure(r.TenureYears)
	if err != nil {
		return service.QuoteInput{}, err
	}
	return service.QuoteInput{
		ApplicantID: r.ApplicantID,
		Request: domain.LoanRequest{
			Amount:      r.Amount,
			Tenure:      tenure,
			CreditScore: r.CreditScore,
		},
	}, nil
}

type OfferHandler struct {
	service  *service.OfferService
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewOfferHandler(service *service.OfferService, logger *zap.Logger) *OfferHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
		now:      time.Now,
	}
}

func (h *OfferHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if status, err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	in, err := req.quoteInput()
	if err != nil {
		fail(w, h.logger, "http.Quote", err)
		return
	}

	offer, err := h.service.Quote(r.Context(), in)
	if err != nil {
		fail(w, h.logger, "http.Quote", err)
		return
	}
	if !service.Finite(offer) {
		fail(w, h.logger, "http.Quote", domain.ErrNonFiniteOffer)
		return
	}

	if err := writeJSON(w, http.StatusOK, offer); err != nil {
		h.logger.Error("failed to write response", zap.String("op", "http.Quote"), zap.Error(err))
	}
}

func (h *OfferHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if status, err := decodeJSON(w, r, h.validate, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	in, err := req.quoteInput()
	if err != nil {
		fail(w, h.logger, "http.Schedule", err)
		return
	}

	start := h.now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		// already checked by the datetime tag
		start, _ = time.Parse(dateLayout, req.StartDate)
	}

	schedule, err := h.service.Schedule(r.Context(), in, start)
	if err != nil {
		fail(w, h.logger, "http.Schedule", err)
		return
	}

	if err := writeJSON(w, http.StatusOK, schedule); err != nil {
		h.logger.Error("failed to write response", zap.String("op", "http.Schedule"), zap.Error(err))
	}
}
