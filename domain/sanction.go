package domain

// Sanction is the outcome of the risk-scoring step that precedes an offer.
type Sanction struct {
	ApplicantID    string  `json:"applicant_id,omitempty"`
	CibilScore     int     `json:"cibil_score"`
	MaxLoanAllowed float64 `json:"max_loan_allowed"`
}

// Eligibility turns the stored sanction into the fallbacks used by the
// offer calculation.
func (s Sanction) Eligibility() Eligibility {
	return Eligibility{
		FallbackScore:     s.CibilScore,
		MaxEligibleAmount: s.MaxLoanAllowed,
	}
}

type TenurePreview struct {
	TenureYears int   `json:"tenure_years"`
	EMIPreview  int64 `json:"emi_preview"`
}

type SanctionPreview struct {
	ApplicantID    string          `json:"applicant_id,omitempty"`
	CibilScore     int             `json:"cibil_score"`
	MaxLoanAllowed float64         `json:"max_loan_allowed"`
	Previews       []TenurePreview `json:"previews"`
}
