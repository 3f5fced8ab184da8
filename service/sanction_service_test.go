package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-offer/domain"
)

func TestRecord(t *testing.T) {
	t.Run("Assigns an applicant ID", func(t *testing.T) {
		store := &MockSanctionStore{}
		svc := NewSanctionService(store, nil)

		got, err := svc.Record(context.Background(), domain.Sanction{CibilScore: 720, MaxLoanAllowed: 300000})

		require.NoError(t, err)
		_, parseErr := uuid.Parse(got.ApplicantID)
		assert.NoError(t, parseErr)
		require.Len(t, store.Saved, 1)
		assert.Equal(t, got, store.Saved[0])
	})

	t.Run("Keeps a given applicant ID", func(t *testing.T) {
		store := &MockSanctionStore{}
		svc := NewSanctionService(store, nil)

		got, err := svc.Record(context.Background(), domain.Sanction{ApplicantID: "app-42", CibilScore: 300})

		require.NoError(t, err)
		assert.Equal(t, "app-42", got.ApplicantID)
	})

	t.Run("Rejects out of range scores", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{}, nil)

		for _, score := range []int{0, 299, 901} {
			_, err := svc.Record(context.Background(), domain.Sanction{CibilScore: score})
			assert.ErrorIs(t, err, domain.ErrInvalidScore, "score %d", score)
		}
	})

	t.Run("Rejects negative max loan", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{}, nil)

		_, err := svc.Record(context.Background(), domain.Sanction{CibilScore: 700, MaxLoanAllowed: -1})
		assert.ErrorIs(t, err, domain.ErrInvalidMaxLoan)
	})

	t.Run("Shared", func(t *testing.T) {
		store := &MockSanctionStore{}
		svc := NewSanctionService(store, nil)

		got, err := svc.RecordShared(context.Background(), domain.Sanction{ApplicantID: "ignored", CibilScore: 810, MaxLoanAllowed: 250000})

		require.NoError(t, err)
		assert.Empty(t, got.ApplicantID)
		require.Len(t, store.Saved, 1)
		assert.Empty(t, store.Saved[0].ApplicantID)

		_, err = svc.RecordShared(context.Background(), domain.Sanction{CibilScore: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidScore)
	})

	t.Run("Store failure", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{ForceError: true}, nil)

		_, err := svc.Record(context.Background(), domain.Sanction{CibilScore: 700})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "record sanction")
	})
}

func TestSanctionPreview(t *testing.T) {
	p := SanctionPreview(domain.Sanction{CibilScore: 780, MaxLoanAllowed: 500000})

	require.Len(t, p.Previews, 3)
	assert.Equal(t, 780, p.CibilScore)
	assert.Equal(t, domain.TenurePreview{TenureYears: 1, EMIPreview: 41667}, p.Previews[0])
	assert.Equal(t, domain.TenurePreview{TenureYears: 2, EMIPreview: 20833}, p.Previews[1])
	assert.Equal(t, domain.TenurePreview{TenureYears: 3, EMIPreview: 13889}, p.Previews[2])
}

func TestPreview(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{
			Sanction: domain.Sanction{CibilScore: 650, MaxLoanAllowed: 120000},
			Found:    true,
		}, nil)

		p, err := svc.Preview(context.Background(), "app-1")

		require.NoError(t, err)
		assert.Equal(t, "app-1", p.ApplicantID)
		assert.Equal(t, int64(10000), p.Previews[0].EMIPreview)
	})

	t.Run("Not found", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{}, nil)

		_, err := svc.Preview(context.Background(), "nobody")
		assert.ErrorIs(t, err, domain.ErrSanctionNotFound)
	})

	t.Run("Shared keys empty", func(t *testing.T) {
		svc := NewSanctionService(&MockSanctionStore{}, nil)

		p, err := svc.Preview(context.Background(), "")

		require.NoError(t, err)
		assert.Zero(t, p.CibilScore)
		assert.Zero(t, p.MaxLoanAllowed)
		require.Len(t, p.Previews, 3)
		for _, tp := range p.Previews {
			assert.Zero(t, tp.EMIPreview)
		}
	})
}
