package database

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func FetchThought(db *gorm.DB, id string) (*Thought, error) {
	var thought Thought
	err := db.Where(&Thought{ID: id}).First(&thought).Error
	if err != nil {
		return nil, err
	}
	return &thought, nil
}

func FetchThoughtsForOwner(db *gorm.DB, ownerAddress string) ([]Thought, error) {
	var thoughts []Thought
	err := db.
		Where("owner_address = ?", strings.ToLower(ownerAddress)).
		Order("created_at desc").
		Find(&thoughts).Error
	return thoughts, err
}

func CreateThought(db *gorm.DB, t *Thought) error {
	return db.Create(t).Error
}

func UpdateThought(db *gorm.DB, t *Thought) error {
	return db.Save(t).Error
}

func DeleteThought(db *gorm.DB, id string) error {
	return db.Delete(&Thought{ID: id}).Error
}

// Removes ephemeral thoughts whose expiry has passed. Minted and pending
// rows are never touched regardless of their expiry columns.
func DeleteExpiredThoughts(db *gorm.DB, now time.Time) (int64, error) {
	result := db.
		Where("mint_state = ? AND expires_at IS NOT NULL AND expires_at < ?", MintStateEphemeral, now).
		Delete(&Thought{})
	return result.RowsAffected, result.Error
}

// Puts a pending thought back on the ephemeral clock, used when its mint
// transaction reverted or never made it on chain. A no-op for thoughts in
// any other state.
func ReturnThoughtToEphemeral(db *gorm.DB, id string, expiresAt time.Time) error {
	return db.
		Model(&Thought{ID: id}).
		Where("mint_state = ?", MintStatePending).
		Updates(map[string]interface{}{
			"mint_state": MintStateEphemeral,
			"expires_at": expiresAt,
		}).Error
}

type FinalizeThoughtMintInput struct {
	ThoughtID       string
	ChainID         int64
	TokenID         string
	ContractAddress string
	TxHash          string
	BlockNumber     uint64
}

// The reconciliation write: atomically marks the thought minted and fills
// the chain linkage columns, clearing the expiry. Idempotent: finalizing
// a thought already minted with the same tx hash is a no-op; a different
// tx hash for an already-minted thought is an error.
func FinalizeThoughtMint(db *gorm.DB, in *FinalizeThoughtMintInput) error {
	return DoInTransaction(db, func(tx *gorm.DB) error {
		thought, err := FetchThought(tx, in.ThoughtID)
		if err != nil {
			return errors.Wrap(err, "database.FetchThought")
		}

		if thought.MintState == MintStateMinted {
			if thought.TxHash != nil && *thought.TxHash == in.TxHash {
				return nil
			}
			return errors.Errorf("thought %s already minted in tx %v", thought.ID, thought.TxHash)
		}

		contractAddress := strings.ToLower(in.ContractAddress)
		thought.MintState = MintStateMinted
		thought.OriginChainID = &in.ChainID
		thought.CurrentChainID = &in.ChainID
		thought.TokenID = &in.TokenID
		thought.ContractAddress = &contractAddress
		thought.TxHash = &in.TxHash
		thought.MintedBlock = &in.BlockNumber
		thought.ExpiresAt = nil

		return tx.Save(thought).Error
	})
}

type RecordThoughtBridgeInput struct {
	ThoughtID       string
	NewChainID      int64
	ContractAddress string
	BridgeTxHash    string
}

// Moves the current-chain linkage after a bridge. Origin chain, token id
// and mint state are left untouched.
func RecordThoughtBridge(db *gorm.DB, in *RecordThoughtBridgeInput) error {
	return DoInTransaction(db, func(tx *gorm.DB) error {
		thought, err := FetchThought(tx, in.ThoughtID)
		if err != nil {
			return errors.Wrap(err, "database.FetchThought")
		}

		if thought.MintState != MintStateMinted {
			return errors.Errorf("thought %s is not minted, cannot bridge", thought.ID)
		}

		contractAddress := strings.ToLower(in.ContractAddress)
		thought.CurrentChainID = &in.NewChainID
		thought.ContractAddress = &contractAddress
		thought.LastBridgeTx = &in.BridgeTxHash
		thought.BridgeCount++

		return tx.Save(thought).Error
	})
}

func CreatePendingMint(db *gorm.DB, p *PendingMint) error {
	return db.Create(p).Error
}

func DeletePendingMint(db *gorm.DB, txHash string) error {
	return db.Where("tx_hash = ?", txHash).Delete(&PendingMint{}).Error
}

func FetchPendingMints(db *gorm.DB) ([]PendingMint, error) {
	var pending []PendingMint
	err := db.Order("submitted_at asc").Find(&pending).Error
	return pending, err
}

func FetchUserStats(db *gorm.DB, ownerAddress string) (*UserStats, error) {
	owner := strings.ToLower(ownerAddress)
	stats := UserStats{}

	err := db.Model(&Thought{}).
		Where("owner_address = ?", owner).
		Count(&stats.TotalThoughts).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&Thought{}).
		Where("owner_address = ? AND mint_state = ?", owner, MintStateMinted).
		Count(&stats.MintedThoughts).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&Thought{}).
		Where("owner_address = ? AND mint_state = ?", owner, MintStateEphemeral).
		Count(&stats.EphemeralThoughts).Error
	if err != nil {
		return nil, err
	}

	var totalBridges *int64
	err = db.Model(&Thought{}).
		Select("SUM(bridge_count)").
		Where("owner_address = ?", owner).
		Scan(&totalBridges).Error
	if err != nil {
		return nil, err
	}
	if totalBridges != nil {
		stats.TotalBridges = *totalBridges
	}

	err = db.Model(&Thought{}).
		Where("owner_address = ? AND current_chain_id IS NOT NULL", owner).
		Distinct("current_chain_id").
		Count(&stats.ChainsUsed).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
