package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-offer/domain"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestKey(t *testing.T) {
	assert.Equal(t, "cibilScore", Key("", CibilScoreKey))
	assert.Equal(t, "sanction:abc:maxLoanAllowed", Key("abc", MaxLoanAllowedKey))
}

func TestSanctionRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	repo := NewSanctionRepository(cache)

	want := domain.Sanction{ApplicantID: "abc", CibilScore: 742, MaxLoanAllowed: 350000.5}
	require.NoError(t, repo.Save(ctx, want))

	raw, ok, err := cache.Get(ctx, "sanction:abc:cibilScore")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "742", raw)

	got, found, err := repo.Find(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	_, found, err = repo.Find(ctx, "")
	require.NoError(t, err)
	assert.False(t, found, "applicant facts must not leak into the shared keys")
}

func TestSanctionRepository_SharedKeys(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, "cibilScore", "810"))
	require.NoError(t, cache.Set(ctx, "maxLoanAllowed", "450000"))

	got, found, err := NewSanctionRepository(cache).Find(ctx, "")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 810, got.CibilScore)
	assert.Equal(t, 450000.0, got.MaxLoanAllowed)
}

func TestSanctionRepository_UnreadableValuesAreZero(t *testing.T) {
	tests := []struct {
		name     string
		score    string
		maxLoan  string
		expScore int
		expMax   float64
	}{
		{"blank", "", "", 0, 0},
		{"garbage", "abc", "lots", 0, 0},
		{"whitespace", " 700 ", "\t1000\n", 700, 1000},
		{"fractional score", "701.9", "1e5", 701, 100000},
		{"not a number", "NaN", "Inf", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cache := NewMemoryCache()
			require.NoError(t, cache.Set(ctx, CibilScoreKey, tt.score))
			require.NoError(t, cache.Set(ctx, MaxLoanAllowedKey, tt.maxLoan))

			got, found, err := NewSanctionRepository(cache).Find(ctx, "")

			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, tt.expScore, got.CibilScore)
			assert.Equal(t, tt.expMax, got.MaxLoanAllowed)
		})
	}
}

func TestSanctionRepository_PartialFacts(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, MaxLoanAllowedKey, "200000"))

	got, found, err := NewSanctionRepository(cache).Find(ctx, "")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Zero(t, got.CibilScore)
	assert.Equal(t, 200000.0, got.MaxLoanAllowed)
}

func TestSanctionRepository_StoreErrors(t *testing.T) {
	repo := NewSanctionRepository(failingCache{})

	err := repo.Save(context.Background(), domain.Sanction{CibilScore: 700})
	assert.ErrorContains(t, err, "store cibilScore")

	_, found, err := repo.Find(context.Background(), "abc")
	assert.ErrorContains(t, err, "load cibilScore")
	assert.False(t, found)
}
