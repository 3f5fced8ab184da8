package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"loan-offer/domain"
	"loan-offer/metrics"
)

// SanctionStore is the read/write side of the sanction facts.
type SanctionStore interface {
	Find(ctx context.Context, applicantID string) (domain.Sanction, bool, error)
	Save(ctx context.Context, s domain.Sanction) error
}

type QuoteInput struct {
	ApplicantID string
	Request     domain.LoanRequest
}

type OfferService struct {
	sanctions SanctionStore
	logger    *zap.Logger
}

// NewOfferService creates a new OfferService backed by the given sanction store.
func NewOfferService(sanctions SanctionStore, logger *zap.Logger) *OfferService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferService{sanctions: sanctions, logger: logger}
}

// Quote prices a loan request using the applicant's sanction as fallback.
// A store failure is logged and priced as if nothing were sanctioned.
func (s *OfferService) Quote(ctx context.Context, in QuoteInput) (domain.LoanOffer, error) {
	if in.Request.Amount <= 0 {
		return domain.LoanOffer{}, &domain.ValidationError{Field: "amount", Err: domain.ErrInvalidAmount}
	}
	if !in.Request.Tenure.Valid() {
		return domain.LoanOffer{}, &domain.ValidationError{Field: "tenure_years", Err: domain.ErrInvalidTenure}
	}

	elig := s.Eligibility(ctx, in.ApplicantID)
	if in.Request.CreditScore == nil {
		metrics.ScoreFallbacks.Inc()
	}

	offer, err := ComputeOffer(in.Request, elig)
	if err != nil {
		return domain.LoanOffer{}, err
	}

	metrics.OffersComputed.WithLabelValues(strconv.Itoa(in.Request.Tenure.Years())).Inc()
	if !Finite(offer) {
		metrics.NonFiniteOffers.Inc()
		s.logger.Warn("offer has a non-finite installment",
			zap.String("op", "service.Quote"),
			zap.Float64("rate", offer.Rate),
		)
	}

	s.logger.Debug("offer computed",
		zap.String("op", "service.Quote"),
		zap.String("applicant_id", in.ApplicantID),
		zap.Float64("amount", in.Request.Amount),
		zap.Int("tenure_years", in.Request.Tenure.Years()),
		zap.Float64("rate", offer.Rate),
		zap.Float64("emi", offer.EMI),
	)
	return offer, nil
}

// Eligibility resolves the fallback facts for an applicant, substituting zero
// for anything missing.
func (s *OfferService) Eligibility(ctx context.Context, applicantID string) domain.Eligibility {
	if s.sanctions == nil {
		return domain.Eligibility{}
	}
	sanction, found, err := s.sanctions.Find(ctx, applicantID)
	if err != nil {
		metrics.SanctionLookupFailures.Inc()
		s.logger.Warn("failed to load sanction, pricing without it",
			zap.String("op", "service.Eligibility"),
			zap.String("applicant_id", applicantID),
			zap.Error(err),
		)
		return domain.Eligibility{}
	}
	if !found {
		return domain.Eligibility{}
	}
	return sanction.Eligibility()
}
