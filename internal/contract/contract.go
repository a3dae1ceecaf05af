package contract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/models"
)

//go:generate mockgen -source=contract.go -destination=mock_contract.go -package=contract

// TenderContract is the read/write surface of the deployed Tender contract.
// Access control and tender lifecycle rules are enforced by the contract.
type TenderContract interface {
	TenderCounter(ctx context.Context) (uint64, error)
	GetTenderDetails(ctx context.Context, id uint64) (models.Tender, error)
	GetBids(ctx context.Context, id uint64) ([]models.Bid, error)
	CreateTender(ctx context.Context, from common.Address, description string, minBid *big.Int) error
	SubmitBid(ctx context.Context, from common.Address, id uint64, amount *big.Int) error
	SelectWinner(ctx context.Context, from common.Address, id uint64, bidder common.Address) error
}
