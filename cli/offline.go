package cli

import (
	"context"

	"loan-offer/domain"
	"loan-offer/repository"
	"loan-offer/service"
)

// sanctionFlags carries a sanction given on the command line. Offline
// commands seed it into a private in-memory store under the shared keys,
// mirroring what the sanctioning step leaves behind.
type sanctionFlags struct {
	score   int
	maxLoan float64
}

func (f sanctionFlags) offerService(ctx context.Context) (*service.OfferService, error) {
	sanctions := repository.NewSanctionRepository(repository.NewMemoryCache())
	if f.score != 0 || f.maxLoan != 0 {
		if err := sanctions.Save(ctx, domain.Sanction{CibilScore: f.score, MaxLoanAllowed: f.maxLoan}); err != nil {
			return nil, err
		}
	}
	return service.NewOfferService(sanctions, log), nil
}

// optionalScore returns nil when the flag was not set.
func optionalScore(changed bool, v int) *int {
	if !changed {
		return nil
	}
	return &v
}
