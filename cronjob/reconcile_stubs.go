// Stubs for the reconcile cronjob. These handle the direct interactions
// with the database and chain clients. The actual logic is in
// reconcile.go, which is unit-tested.
package cronjob

import (
	"context"
	"time"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/utils/chain"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reconcileDBGorm struct {
	db *gorm.DB
}

func NewReconcileDBGorm(db *gorm.DB) reconcileDB {
	return reconcileDBGorm{db: db}
}

func (m reconcileDBGorm) FetchPendingMints() ([]database.PendingMint, error) {
	return database.FetchPendingMints(m.db)
}

func (m reconcileDBGorm) FinalizeMint(in *database.FinalizeThoughtMintInput) error {
	return database.FinalizeThoughtMint(m.db, in)
}

func (m reconcileDBGorm) DeletePendingMint(txHash string) error {
	return database.DeletePendingMint(m.db, txHash)
}

func (m reconcileDBGorm) ReturnToEphemeral(thoughtID string, expiresAt time.Time) error {
	return database.ReturnThoughtToEphemeral(m.db, thoughtID, expiresAt)
}

type receiptClients struct {
	clients map[int64]*ethclient.Client
}

// Dials every configured chain that has a deployed contract. Receipt
// lookups for other chains report not found transactions as errors.
func NewReceiptClients(ctx context.Context, registry *chain.Registry) (reconcileReceipts, error) {
	clients := make(map[int64]*ethclient.Client)
	for _, chainID := range registry.ChainIDs() {
		settings, _ := registry.Settings(chainID)
		if !settings.Deployed || settings.RPCURL == "" {
			continue
		}
		client, err := chain.DialClient(ctx, settings.RPCURL)
		if err != nil {
			return nil, errors.Wrapf(err, "dialing chain %d", chainID)
		}
		clients[chainID] = client
	}
	return &receiptClients{clients: clients}, nil
}

func (c *receiptClients) Receipt(ctx context.Context, chainID int64, txHash common.Hash) (*types.Receipt, error) {
	client, ok := c.clients[chainID]
	if !ok {
		return nil, errors.Errorf("no client for chain %d", chainID)
	}
	return client.TransactionReceipt(ctx, txHash)
}

func (c *receiptClients) NotFound(err error) bool {
	return errors.Is(err, ethereum.NotFound)
}
