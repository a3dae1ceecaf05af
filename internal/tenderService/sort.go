package tendering

import (
	"math/big"
	"slices"

	"tender-dapp/internal/models"
)

// SortByAmount returns a copy of bids ordered by amount, lowest first. Bids
// with equal amounts keep their relative order.
func SortByAmount(bids []models.Bid) []models.Bid {
	sorted := slices.Clone(bids)
	if sorted == nil {
		sorted = []models.Bid{}
	}
	slices.SortStableFunc(sorted, func(a, b models.Bid) int {
		return amountOf(a).Cmp(amountOf(b))
	})
	return sorted
}

func amountOf(b models.Bid) *big.Int {
	if b.Amount == nil {
		return new(big.Int)
	}
	return b.Amount
}
