package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"loan-offer/domain"
)

type TenureService struct {
	offers *OfferService
	logger *zap.Logger
}

func NewTenureService(offers *OfferService, logger *zap.Logger) *TenureService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenureService{offers: offers, logger: logger}
}

// Compare prices every tenure for the same amount and ranks them by the
// borrower's preference. Options whose EMI exceeds MaxEMI are dropped.
func (s *TenureService) Compare(
	ctx context.Context,
	applicantID string,
	input domain.TenureComparisonInput,
) (domain.TenureComparisonResult, error) {
	if input.Amount <= 0 {
		return domain.TenureComparisonResult{}, &domain.ValidationError{Field: "amount", Err: domain.ErrInvalidAmount}
	}
	if input.Preference == "" {
		input.Preference = domain.PreferBalanced
	}
	if !input.Preference.Valid() {
		return domain.TenureComparisonResult{}, &domain.ValidationError{Field: "preference", Err: domain.ErrInvalidPreference}
	}

	all := make([]domain.TenureOption, 0, len(domain.Tenures))
	for _, t := range domain.Tenures {
		offer, err := s.offers.Quote(ctx, QuoteInput{
			ApplicantID: applicantID,
			Request: domain.LoanRequest{
				Amount:      input.Amount,
				Tenure:      t,
				CreditScore: input.CreditScore,
			},
		})
		if err != nil {
			return domain.TenureComparisonResult{}, err
		}
		if !Finite(offer) {
			return domain.TenureComparisonResult{}, domain.ErrNonFiniteOffer
		}

		total := offer.EMI * float64(t.Months())
		all = append(all, domain.TenureOption{
			TenureYears:   t.Years(),
			Offer:         offer,
			TotalPayable:  total,
			TotalInterest: total - input.Amount,
		})
	}

	bounds := boundsOf(all)
	options := make([]domain.TenureOption, 0, len(all))
	for _, opt := range all {
		if input.MaxEMI > 0 && opt.Offer.EMI > input.MaxEMI {
			s.logger.Debug("tenure dropped, EMI above ceiling",
				zap.String("op", "service.Compare"),
				zap.Int("tenure_years", opt.TenureYears),
				zap.Float64("emi", opt.Offer.EMI),
				zap.Float64("max_emi", input.MaxEMI),
			)
			continue
		}
		opt.Score = score(opt, bounds, input.Preference)
		opt.Reason = reason(input.Preference)
		options = append(options, opt)
	}

	if len(options) == 0 {
		return domain.TenureComparisonResult{}, domain.ErrNoTenureFits
	}

	// Ties keep the shorter tenure first.
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TenureComparisonResult{
		RecommendedTenure: options[0].TenureYears,
		Options:           options,
	}, nil
}

type optionBounds struct {
	minInterest, maxInterest float64
	minEMI, maxEMI           float64
}

func boundsOf(options []domain.TenureOption) optionBounds {
	b := optionBounds{
		minInterest: options[0].TotalInterest,
		maxInterest: options[0].TotalInterest,
		minEMI:      options[0].Offer.EMI,
		maxEMI:      options[0].Offer.EMI,
	}
	for _, o := range options[1:] {
		b.minInterest = min(b.minInterest, o.TotalInterest)
		b.maxInterest = max(b.maxInterest, o.TotalInterest)
		b.minEMI = min(b.minEMI, o.Offer.EMI)
		b.maxEMI = max(b.maxEMI, o.Offer.EMI)
	}
	return b
}

// score rates an option from 0 to 10; shorter tenures get a small bonus.
func score(opt domain.TenureOption, b optionBounds, pref domain.TenurePreference) float64 {
	interestScore := 0.0
	if r := b.maxInterest - b.minInterest; r > 0 {
		interestScore = 10.0 * (1.0 - (opt.TotalInterest-b.minInterest)/r)
	}
	paymentScore := 0.0
	if r := b.maxEMI - b.minEMI; r > 0 {
		paymentScore = 10.0 * (1.0 - (opt.Offer.EMI-b.minEMI)/r)
	}
	span := float64(domain.TenureThreeYears - domain.TenureOneYear)
	termScore := 10.0 * (1.0 - float64(opt.TenureYears-domain.TenureOneYear.Years())/span)

	var s float64
	switch pref {
	case domain.PreferMinimizeInterest:
		s = 0.8*interestScore + 0.1*paymentScore + 0.1*termScore
	case domain.PreferMinimizePayment:
		s = 0.1*interestScore + 0.8*paymentScore + 0.1*termScore
	case domain.PreferBalanced:
		s = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}
	return roundTo2Decimals(s)
}

func reason(pref domain.TenurePreference) string {
	switch pref {
	case domain.PreferMinimizeInterest:
		return "Tenure chosen to keep total interest lowest"
	case domain.PreferMinimizePayment:
		return "Tenure chosen to keep the monthly installment lowest"
	case domain.PreferBalanced:
		return "Balance between monthly installment and total cost"
	}
	return "Recommendation based on the supplied parameters"
}
