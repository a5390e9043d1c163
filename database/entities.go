package database

import (
	"time"
)

// Abstract entity, other entities with synthetic keys are derived from it
type BaseEntity struct {
	ID uint64 `gorm:"primaryKey"`
}

// A user's journal entry. Rows are created as EPHEMERAL drafts with an
// expiry; the chain linkage columns are populated, and the expiry
// cleared, only by the finalize-mint transaction.
type Thought struct {
	ID           string `gorm:"type:varchar(36);primaryKey"`
	OwnerAddress string `gorm:"type:varchar(42);not null;index"`
	Text         string `gorm:"type:varchar(400);not null"`
	Mood         Mood   `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ExpiresAt    *time.Time `gorm:"index"`
	MintState    MintState  `gorm:"type:varchar(12);not null;index"`

	// Chain linkage, set iff MintState is MINTED. CurrentChainID starts
	// equal to OriginChainID and diverges only after a bridge.
	OriginChainID   *int64 `gorm:"uniqueIndex:idx_token_per_contract"`
	CurrentChainID  *int64
	TokenID         *string `gorm:"type:varchar(80);uniqueIndex:idx_token_per_contract"`
	ContractAddress *string `gorm:"type:varchar(42);uniqueIndex:idx_token_per_contract"`
	TxHash          *string `gorm:"type:varchar(66)"`
	MintedBlock     *uint64

	LastBridgeTx *string `gorm:"type:varchar(66)"`
	BridgeCount  uint32  `gorm:"not null;default:0"`
}

func (t *Thought) IsMinted() bool {
	return t.MintState == MintStateMinted
}

func (t *Thought) Expired(now time.Time) bool {
	return t.MintState == MintStateEphemeral && t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// Metadata of a submitted mint transaction, kept until the mint is
// finalized so an interrupted flow can be reconciled from the tx hash.
type PendingMint struct {
	BaseEntity
	ThoughtID       string `gorm:"type:varchar(36);not null;index"`
	ChainID         int64  `gorm:"not null"`
	ContractAddress string `gorm:"type:varchar(42);not null"`
	TxHash          string `gorm:"type:varchar(66);not null;uniqueIndex"`
	SubmittedAt     time.Time
}

// Aggregate returned by FetchUserStats.
type UserStats struct {
	TotalThoughts     int64 `json:"totalThoughts"`
	MintedThoughts    int64 `json:"mintedThoughts"`
	EphemeralThoughts int64 `json:"ephemeralThoughts"`
	TotalBridges      int64 `json:"totalBridges"`
	ChainsUsed        int64 `json:"chainsUsed"`
}
