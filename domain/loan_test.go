package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTenure(t *testing.T) {
	for years, want := range map[int]Tenure{1: TenureOneYear, 2: TenureTwoYears, 3: TenureThreeYears} {
		got, err := ParseTenure(years)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, years*12, got.Months())
	}

	for _, years := range []int{-1, 0, 4, 12, 257} {
		_, err := ParseTenure(years)
		assert.ErrorIs(t, err, ErrInvalidTenure, "years %d", years)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "tenure_years", ve.Field)
	}
}

func TestTenure_String(t *testing.T) {
	assert.Equal(t, "1 Year", TenureOneYear.String())
	assert.Equal(t, "3 Years", TenureThreeYears.String())
	assert.Equal(t, "Tenure(9)", Tenure(9).String())
	assert.False(t, Tenure(0).Valid())
}

func TestTenurePreference_Valid(t *testing.T) {
	assert.True(t, PreferBalanced.Valid())
	assert.False(t, TenurePreference("fastest").Valid())
}

func TestSanction_Eligibility(t *testing.T) {
	e := Sanction{CibilScore: 710, MaxLoanAllowed: 90000}.Eligibility()
	assert.Equal(t, Eligibility{FallbackScore: 710, MaxEligibleAmount: 90000}, e)
}
