package domain

import (
	"fmt"
	"strconv"
)

// Tenure is the repayment period offered to a borrower. Only one, two and
// three years exist; the zero value is not a valid tenure.
type Tenure uint8

const (
	TenureOneYear Tenure = iota + 1
	TenureTwoYears
	TenureThreeYears
)

// Tenures lists every offered tenure in ascending order.
var Tenures = []Tenure{TenureOneYear, TenureTwoYears, TenureThreeYears}

// ParseTenure maps a year count onto a Tenure.
func ParseTenure(years int) (Tenure, error) {
	if years < int(TenureOneYear) || years > int(TenureThreeYears) {
		return 0, &ValidationError{
			Field: "tenure_years",
			Err:   fmt.Errorf("%w: %d", ErrInvalidTenure, years),
		}
	}
	return Tenure(years), nil
}

func (t Tenure) Valid() bool {
	return t >= TenureOneYear && t <= TenureThreeYears
}

func (t Tenure) Years() int {
	return int(t)
}

func (t Tenure) Months() int {
	return int(t) * 12
}

func (t Tenure) String() string {
	switch t {
	case TenureOneYear:
		return "1 Year"
	case TenureTwoYears, TenureThreeYears:
		return strconv.Itoa(int(t)) + " Years"
	}
	return "Tenure(" + strconv.Itoa(int(t)) + ")"
}

// LoanRequest is what the borrower asks for. CreditScore is optional; when
// nil the score from the borrower's sanction is used instead.
type LoanRequest struct {
	Amount      float64
	Tenure      Tenure
	CreditScore *int
}

// Eligibility carries the facts produced by the sanctioning step.
type Eligibility struct {
	FallbackScore     int
	MaxEligibleAmount float64
}

type LoanOffer struct {
	Rate          float64 `json:"rate"`
	ProcessingFee float64 `json:"processingFee"`
	LegalFee      float64 `json:"legalFee"`
	Cashback      float64 `json:"cashback"`
	EMI           float64 `json:"emi"`
	NetDisbursed  float64 `json:"netDisbursed"`
}

// MonthlyRate returns the periodic rate the EMI was derived from.
func (o LoanOffer) MonthlyRate() float64 {
	return o.Rate / 12 / 100
}
