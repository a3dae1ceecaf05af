package tendering

import (
	"github.com/ethereum/go-ethereum/common"

	"tender-dapp/internal/models"
)

//go:generate mockgen -source=deps.go -destination=mock_deps.go -package=tendering

// Wallet is the account provider the service connects through
type Wallet interface {
	RequestAccounts() []common.Address
	Active() common.Address
	SwitchAccount(addr common.Address) error
	OnAccountsChanged(fn func(common.Address)) func()
}

// Publisher receives events after state changes
type Publisher interface {
	Publish(event models.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(models.Event) {}
