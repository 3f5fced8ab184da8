package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"loan-offer/domain"
)

// RepaymentSchedule breaks an offer down into monthly installments. The EMI
// is rounded to paise and the last installment absorbs the rounding so the
// balance ends at exactly zero. The first installment falls due one month
// after start.
func RepaymentSchedule(
	amount float64,
	tenure domain.Tenure,
	offer domain.LoanOffer,
	start time.Time,
) (domain.RepaymentSchedule, error) {
	if !tenure.Valid() {
		return domain.RepaymentSchedule{}, &domain.ValidationError{Field: "tenure_years", Err: domain.ErrInvalidTenure}
	}
	if !Finite(offer) {
		return domain.RepaymentSchedule{}, domain.ErrNonFiniteOffer
	}

	months := tenure.Months()
	remaining := decimal.NewFromFloat(amount)
	payment := decimal.NewFromFloat(offer.EMI).Round(2)
	monthlyRate := decimal.NewFromFloat(offer.MonthlyRate())

	installments := make([]domain.Installment, 0, months)
	totalPayable := decimal.Zero

	for period := 1; period <= months; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)
		due := payment

		if period == months {
			principal = remaining
			due = principal.Add(interest)
		}

		remaining = remaining.Sub(principal)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		installments = append(installments, domain.Installment{
			Period:           period,
			DueDate:          dueDate(start, period),
			Payment:          due,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
		})
		totalPayable = totalPayable.Add(due)
	}

	return domain.RepaymentSchedule{
		Offer:         offer,
		Installments:  installments,
		TotalPayable:  totalPayable,
		TotalInterest: totalPayable.Sub(decimal.NewFromFloat(amount)),
	}, nil
}

// dueDate moves start forward by months, keeping its day of month but
// clamping it to the last day of shorter months (Jan 31 -> Feb 28).
func dueDate(start time.Time, months int) time.Time {
	first := time.Date(start.Year(), start.Month()+time.Month(months), 1,
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(start.Day(), lastDay)-1)
}

// Schedule quotes a request and expands it into a repayment schedule.
func (s *OfferService) Schedule(ctx context.Context, in QuoteInput, start time.Time) (domain.RepaymentSchedule, error) {
	offer, err := s.Quote(ctx, in)
	if err != nil {
		return domain.RepaymentSchedule{}, err
	}
	return RepaymentSchedule(in.Request.Amount, in.Request.Tenure, offer, start)
}
