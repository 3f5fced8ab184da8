package service

const (
	MinCreditScore = 300
	MaxCreditScore = 900

	MaxAnnualRate = 18.0 // at MinCreditScore
	MinAnnualRate = 11.0 // at MaxCreditScore

	ProcessingFeeRatio   = 0.015
	MinProcessingFee     = 999.0
	LegalFee             = 2000.0
	CashbackRatio        = 0.0025
	CashbackThreshold    = 0.8 // share of the max eligible amount
	MonthsPerYear        = 12
	PercentageMultiplier = 100.0
)

// scoreSpan and rateSpan drive the linear score-to-rate interpolation.
const (
	scoreSpan = MaxCreditScore - MinCreditScore
	rateSpan  = MaxAnnualRate - MinAnnualRate
)
