package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"loan-offer/domain"
	"loan-offer/metrics"
)

type SanctionService struct {
	store  SanctionStore
	logger *zap.Logger
}

func NewSanctionService(store SanctionStore, logger *zap.Logger) *SanctionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SanctionService{store: store, logger: logger}
}

// Record stores the outcome of a sanctioning step. An applicant without an ID
// is assigned a fresh one.
func (s *SanctionService) Record(ctx context.Context, in domain.Sanction) (domain.Sanction, error) {
	if err := validateSanction(in); err != nil {
		return domain.Sanction{}, err
	}
	if in.ApplicantID == "" {
		in.ApplicantID = uuid.NewString()
	}
	return s.save(ctx, in)
}

// RecordShared writes the sanction under the shared keys read by quotes and
// previews that carry no applicant ID.
func (s *SanctionService) RecordShared(ctx context.Context, in domain.Sanction) (domain.Sanction, error) {
	if err := validateSanction(in); err != nil {
		return domain.Sanction{}, err
	}
	in.ApplicantID = ""
	return s.save(ctx, in)
}

func validateSanction(in domain.Sanction) error {
	if in.CibilScore < MinCreditScore || in.CibilScore > MaxCreditScore {
		return &domain.ValidationError{Field: "cibil_score", Err: domain.ErrInvalidScore}
	}
	if in.MaxLoanAllowed < 0 || math.IsNaN(in.MaxLoanAllowed) || math.IsInf(in.MaxLoanAllowed, 0) {
		return &domain.ValidationError{Field: "max_loan_allowed", Err: domain.ErrInvalidMaxLoan}
	}
	return nil
}

func (s *SanctionService) save(ctx context.Context, in domain.Sanction) (domain.Sanction, error) {
	if err := s.store.Save(ctx, in); err != nil {
		return domain.Sanction{}, fmt.Errorf("record sanction for %q: %w", in.ApplicantID, err)
	}
	metrics.SanctionsRecorded.Inc()

	s.logger.Info("sanction recorded",
		zap.String("op", "service.Record"),
		zap.String("applicant_id", in.ApplicantID),
		zap.Bool("shared", in.ApplicantID == ""),
		zap.Int("cibil_score", in.CibilScore),
		zap.Float64("max_loan_allowed", in.MaxLoanAllowed),
	)
	return in, nil
}

// Preview loads a sanction and builds the per-tenure EMI preview shown on the
// sanction result screen. An unknown applicant is ErrSanctionNotFound; the
// shared keys always render, as zeros when nothing was recorded.
func (s *SanctionService) Preview(ctx context.Context, applicantID string) (domain.SanctionPreview, error) {
	sanction, found, err := s.store.Find(ctx, applicantID)
	if err != nil {
		return domain.SanctionPreview{}, fmt.Errorf("load sanction for %q: %w", applicantID, err)
	}
	if !found && applicantID != "" {
		return domain.SanctionPreview{}, domain.ErrSanctionNotFound
	}
	return SanctionPreview(sanction), nil
}

// SanctionPreview spreads the max loan evenly over each tenure, without
// interest, rounded to whole currency units.
func SanctionPreview(s domain.Sanction) domain.SanctionPreview {
	previews := make([]domain.TenurePreview, 0, len(domain.Tenures))
	for _, t := range domain.Tenures {
		previews = append(previews, domain.TenurePreview{
			TenureYears: t.Years(),
			EMIPreview:  int64(math.Round(s.MaxLoanAllowed / float64(t.Months()))),
		})
	}
	return domain.SanctionPreview{
		ApplicantID:    s.ApplicantID,
		CibilScore:     s.CibilScore,
		MaxLoanAllowed: s.MaxLoanAllowed,
		Previews:       previews,
	}
}
