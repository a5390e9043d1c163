package cronjob

import (
	"context"
	"time"

	"github.com/remivalade/MintMyMood/config"
	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/logger"
	"github.com/remivalade/MintMyMood/minter"
	"github.com/remivalade/MintMyMood/utils"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"
)

const (
	defaultReconcileTimeoutSeconds = 30
	defaultReconcileBatchSize      = 50

	// A pending mint whose transaction never appears on chain for this
	// long is considered dropped from the mempool.
	staleSubmissionAge = time.Hour
)

type reconcileDB interface {
	FetchPendingMints() ([]database.PendingMint, error)
	FinalizeMint(in *database.FinalizeThoughtMintInput) error
	DeletePendingMint(txHash string) error
	ReturnToEphemeral(thoughtID string, expiresAt time.Time) error
}

type reconcileReceipts interface {
	Receipt(ctx context.Context, chainID int64, txHash common.Hash) (*types.Receipt, error)
	NotFound(err error) bool
}

// Picks up mints that were submitted but never finalized, usually because
// the process died between confirmation and the database write, or
// because the receipt carried no readable token id at the time. Works
// from the pending rows alone, so it needs nothing from the original
// request.
type reconcileCronjob struct {
	db        reconcileDB
	receipts  reconcileReceipts
	enabled   bool
	timeout   time.Duration
	batchSize int
	retention time.Duration

	// For testing to set "now" to some fixed date
	time utils.ShiftedTime
}

func NewReconcileCronjob(db reconcileDB, receipts reconcileReceipts, cfg config.CronjobConfig) Cronjob {
	timeoutSeconds := cfg.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = defaultReconcileTimeoutSeconds
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultReconcileBatchSize
	}
	retention := time.Duration(cfg.RetentionSeconds) * time.Second
	if retention <= 0 {
		retention = minter.DefaultRetention
	}
	return &reconcileCronjob{
		db:        db,
		receipts:  receipts,
		enabled:   cfg.Enabled,
		timeout:   time.Duration(timeoutSeconds) * time.Second,
		batchSize: batchSize,
		retention: retention,
	}
}

func (c *reconcileCronjob) Name() string {
	return "reconcile"
}

func (c *reconcileCronjob) Enabled() bool {
	return c.enabled
}

func (c *reconcileCronjob) Timeout() time.Duration {
	return c.timeout
}

func (c *reconcileCronjob) OnStart() error {
	return nil
}

func (c *reconcileCronjob) Call() error {
	pending, err := c.db.FetchPendingMints()
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}
	if len(pending) > c.batchSize {
		pending = pending[:c.batchSize]
	}

	// A thought can have several pending rows when a mint was resubmitted;
	// only the first row per thought is considered in one pass
	seen := mapset.NewSet[string]()
	byChain := make(map[int64][]database.PendingMint)
	for _, p := range pending {
		if !seen.Add(p.ThoughtID) {
			continue
		}
		byChain[p.ChainID] = append(byChain[p.ChainID], p)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	for chainID, chainPending := range byChain {
		chainID, chainPending := chainID, chainPending
		eg.Go(func() error {
			for i := range chainPending {
				if err := c.reconcileOne(ctx, chainID, &chainPending[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}

func (c *reconcileCronjob) reconcileOne(ctx context.Context, chainID int64, p *database.PendingMint) error {
	txHash := common.HexToHash(p.TxHash)

	receipt, err := c.receipts.Receipt(ctx, chainID, txHash)
	if c.receipts.NotFound(err) {
		if c.time.Now().Sub(p.SubmittedAt) > staleSubmissionAge {
			logger.Info("pending mint %s never included, abandoning", p.TxHash)
			return c.abandon(p)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		logger.Info("pending mint %s reverted, abandoning", p.TxHash)
		return c.abandon(p)
	}

	contract := common.HexToAddress(p.ContractAddress)
	tokenID, ok := minter.ExtractTokenID(receipt, contract)
	if !ok {
		// Confirmed but unreadable; keep the row so an operator can look
		// at it instead of inventing a token id
		logger.Error("pending mint %s confirmed but has no transfer log", p.TxHash)
		return nil
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}
	err = c.db.FinalizeMint(&database.FinalizeThoughtMintInput{
		ThoughtID:       p.ThoughtID,
		ChainID:         chainID,
		TokenID:         tokenID,
		ContractAddress: p.ContractAddress,
		TxHash:          p.TxHash,
		BlockNumber:     blockNumber,
	})
	if err != nil {
		return err
	}
	if err := c.db.DeletePendingMint(p.TxHash); err != nil {
		return err
	}

	mintsReconciled.Inc()
	logger.Info("reconciled mint %s, thought %s is token %s on chain %d",
		p.TxHash, p.ThoughtID, tokenID, chainID)
	return nil
}

func (c *reconcileCronjob) abandon(p *database.PendingMint) error {
	if err := c.db.ReturnToEphemeral(p.ThoughtID, c.time.Now().Add(c.retention)); err != nil {
		return err
	}
	if err := c.db.DeletePendingMint(p.TxHash); err != nil {
		return err
	}
	mintsAbandoned.Inc()
	return nil
}
