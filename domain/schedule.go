package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is one row of a repayment schedule.
type Installment struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type RepaymentSchedule struct {
	Offer         LoanOffer       `json:"offer"`
	Installments  []Installment   `json:"installments"`
	TotalPayable  decimal.Decimal `json:"total_payable"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}
