package domain

type TenurePreference string

const (
	PreferMinimizeInterest TenurePreference = "minimize_interest"
	PreferMinimizePayment  TenurePreference = "minimize_payment"
	PreferBalanced         TenurePreference = "balanced"
)

func (p TenurePreference) Valid() bool {
	switch p {
	case PreferMinimizeInterest, PreferMinimizePayment, PreferBalanced:
		return true
	}
	return false
}

type TenureComparisonInput struct {
	Amount      float64
	CreditScore *int
	MaxEMI      float64 // zero means no ceiling
	Preference  TenurePreference
}

type TenureOption struct {
	TenureYears   int       `json:"tenure_years"`
	Offer         LoanOffer `json:"offer"`
	TotalPayable  float64   `json:"total_payable"`
	TotalInterest float64   `json:"total_interest"`
	Score         float64   `json:"score"`
	Reason        string    `json:"reason"`
}

type TenureComparisonResult struct {
	RecommendedTenure int            `json:"recommended_tenure_years"`
	Options           []TenureOption `json:"options"`
}
