package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"loan-offer/domain"
)

// Keys written by the sanctioning step.
const (
	CibilScoreKey     = "cibilScore"
	MaxLoanAllowedKey = "maxLoanAllowed"
)

// SanctionRepository stores sanction facts as plain strings in a cache.
type SanctionRepository struct {
	cache CacheRepository
}

func NewSanctionRepository(cache CacheRepository) *SanctionRepository {
	return &SanctionRepository{cache: cache}
}

// Key namespaces a fact per applicant; an empty applicant uses the bare key.
func Key(applicantID, fact string) string {
	if applicantID == "" {
		return fact
	}
	return "sanction:" + applicantID + ":" + fact
}

func (r *SanctionRepository) Save(ctx context.Context, s domain.Sanction) error {
	if err := r.cache.Set(ctx, Key(s.ApplicantID, CibilScoreKey), strconv.Itoa(s.CibilScore)); err != nil {
		return fmt.Errorf("store %s: %w", CibilScoreKey, err)
	}
	maxLoan := strconv.FormatFloat(s.MaxLoanAllowed, 'f', -1, 64)
	if err := r.cache.Set(ctx, Key(s.ApplicantID, MaxLoanAllowedKey), maxLoan); err != nil {
		return fmt.Errorf("store %s: %w", MaxLoanAllowedKey, err)
	}
	return nil
}

// Find reads the sanction for an applicant. Missing or unreadable facts come
// back as zero; found is true when at least one fact was present.
func (r *SanctionRepository) Find(ctx context.Context, applicantID string) (domain.Sanction, bool, error) {
	s := domain.Sanction{ApplicantID: applicantID}

	rawScore, scoreOK, err := r.cache.Get(ctx, Key(applicantID, CibilScoreKey))
	if err != nil {
		return s, false, fmt.Errorf("load %s: %w", CibilScoreKey, err)
	}
	rawMax, maxOK, err := r.cache.Get(ctx, Key(applicantID, MaxLoanAllowedKey))
	if err != nil {
		return s, false, fmt.Errorf("load %s: %w", MaxLoanAllowedKey, err)
	}

	s.CibilScore = int(parseNumber(rawScore))
	s.MaxLoanAllowed = parseNumber(rawMax)
	return s, scoreOK || maxOK, nil
}

// parseNumber reads a stored figure, treating blanks and garbage as zero.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
