package service

import (
	"math"

	"loan-offer/domain"
)

// roundTo2Decimals rounds half away from zero at the second decimal.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AnnualRate maps a credit score onto the offered annual rate in percent.
func AnnualRate(score int) float64 {
	rate := MaxAnnualRate - ((float64(score)-MinCreditScore)/scoreSpan)*rateSpan
	rate = math.Min(MaxAnnualRate, math.Max(MinAnnualRate, rate))
	return roundTo2Decimals(rate)
}

// MonthlyInstallment is the standard amortized installment. A zero monthly
// rate yields a non-finite result; callers decide how to surface it.
func MonthlyInstallment(amount, monthlyRate float64, months int) float64 {
	return amount * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
}

// ComputeOffer derives the full offer for a request. It reads nothing but its
// arguments, so it is safe to call from any goroutine.
func ComputeOffer(req domain.LoanRequest, elig domain.Eligibility) (domain.LoanOffer, error) {
	if !req.Tenure.Valid() {
		return domain.LoanOffer{}, &domain.ValidationError{Field: "tenure_years", Err: domain.ErrInvalidTenure}
	}

	score := elig.FallbackScore
	if req.CreditScore != nil {
		score = *req.CreditScore
	}

	rate := AnnualRate(score)
	processingFee := math.Max(req.Amount*ProcessingFeeRatio, MinProcessingFee)

	cashback := 0.0
	if req.Amount >= CashbackThreshold*elig.MaxEligibleAmount {
		cashback = req.Amount * CashbackRatio
	}

	monthlyRate := rate / MonthsPerYear / PercentageMultiplier
	emi := MonthlyInstallment(req.Amount, monthlyRate, req.Tenure.Months())

	return domain.LoanOffer{
		Rate:          rate,
		ProcessingFee: processingFee,
		LegalFee:      LegalFee,
		Cashback:      cashback,
		EMI:           emi,
		NetDisbursed:  req.Amount - processingFee - LegalFee + cashback,
	}, nil
}

// Finite reports whether every figure of the offer can be shown to a borrower.
func Finite(o domain.LoanOffer) bool {
	for _, v := range []float64{o.Rate, o.ProcessingFee, o.Cashback, o.EMI, o.NetDisbursed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
