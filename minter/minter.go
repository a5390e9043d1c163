package minter

import (
	"context"
	"strings"
	"time"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/logger"
	"github.com/remivalade/MintMyMood/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const MaxTextLength = 400

const DefaultRetention = 10 * time.Minute

// Storage operations the state machine needs. Implemented on gorm in
// stubs.go; tests provide stubs.
type minterDB interface {
	FetchThought(id string) (*database.Thought, error)
	ThoughtNotFound(err error) bool
	CreateThought(t *database.Thought) error
	UpdateThought(t *database.Thought) error
	FinalizeMint(in *database.FinalizeThoughtMintInput) error
	RecordBridge(in *database.RecordThoughtBridgeInput) error
	CreatePendingMint(p *database.PendingMint) error
	DeletePendingMint(txHash string) error
}

// Chain operations the state machine needs, one implementation per set
// of configured chains.
type minterChain interface {
	HasSigner() bool
	ContractAddress(chainID int64) (common.Address, bool)
	SubmitMint(ctx context.Context, chainID int64, text string, mood string) (*types.Transaction, error)
	WaitForReceipt(ctx context.Context, chainID int64, tx *types.Transaction) (*types.Receipt, error)
}

// Owns the draft → ephemeral → pending → minted lifecycle. All I/O goes
// through the two interfaces above; the transition rules themselves are
// plain guard checks so they can be tested without any I/O.
type Minter struct {
	db        minterDB
	chain     minterChain
	retention time.Duration

	// For testing to set "now" to some fixed date
	time utils.ShiftedTime
}

func New(db minterDB, chain minterChain, retention time.Duration) *Minter {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Minter{
		db:        db,
		chain:     chain,
		retention: retention,
	}
}

// Client-side draft. ID is empty until the draft is first persisted.
type Draft struct {
	ID    string
	Owner string
	Text  string
	Mood  database.Mood
}

func (d *Draft) validate() error {
	if !common.IsHexAddress(d.Owner) {
		return &ValidationError{Field: "owner", Reason: "not a valid address"}
	}
	if d.Text == "" {
		return &ValidationError{Field: "text", Reason: "empty"}
	}
	if len(d.Text) > MaxTextLength {
		return &ValidationError{Field: "text", Reason: "longer than 400 characters"}
	}
	if !d.Mood.Valid() {
		return &ValidationError{Field: "mood", Reason: "unknown mood"}
	}
	return nil
}

// A submitted, not yet confirmed mint.
type MintHandle struct {
	Thought  *database.Thought
	ChainID  int64
	Contract common.Address
	Tx       *types.Transaction
}

// Persists a draft as an ephemeral thought with a fresh expiry. Keyed by
// id: an empty id inserts under a new identity, a known id updates text
// and mood in place. Minted thoughts are immutable.
func (m *Minter) SaveDraft(ctx context.Context, draft Draft) (*database.Thought, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	now := m.time.Now()
	expiresAt := now.Add(m.retention)
	owner := common.HexToAddress(draft.Owner).Hex()

	if draft.ID == "" {
		thought := &database.Thought{
			ID:           uuid.NewString(),
			OwnerAddress: strings.ToLower(owner),
			Text:         draft.Text,
			Mood:         draft.Mood,
			MintState:    database.MintStateEphemeral,
			ExpiresAt:    &expiresAt,
		}
		if err := m.db.CreateThought(thought); err != nil {
			return nil, &PersistenceError{Op: "CreateThought", Err: err}
		}
		return thought, nil
	}

	thought, err := m.db.FetchThought(draft.ID)
	if m.db.ThoughtNotFound(err) {
		thought = &database.Thought{
			ID:           draft.ID,
			OwnerAddress: strings.ToLower(owner),
			Text:         draft.Text,
			Mood:         draft.Mood,
			MintState:    database.MintStateEphemeral,
			ExpiresAt:    &expiresAt,
		}
		if err := m.db.CreateThought(thought); err != nil {
			return nil, &PersistenceError{Op: "CreateThought", Err: err}
		}
		return thought, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "FetchThought", Err: err}
	}

	if thought.OwnerAddress != strings.ToLower(owner) {
		return nil, &ValidationError{Field: "owner", Reason: "thought belongs to another principal"}
	}
	if thought.IsMinted() {
		return nil, &ValidationError{Field: "id", Reason: "thought is already minted"}
	}

	thought.Text = draft.Text
	thought.Mood = draft.Mood
	thought.ExpiresAt = &expiresAt
	if err := m.db.UpdateThought(thought); err != nil {
		return nil, &PersistenceError{Op: "UpdateThought", Err: err}
	}
	return thought, nil
}

// Phase one of the mint: persist the content (so it is never only
// on-chain), then submit the mint transaction. A submission failure
// leaves the thought exactly where SaveDraft put it, ephemeral.
func (m *Minter) BeginMint(ctx context.Context, draft Draft, chainID int64) (*MintHandle, error) {
	if !m.chain.HasSigner() {
		return nil, ErrNotAuthenticated
	}
	contract, ok := m.chain.ContractAddress(chainID)
	if !ok {
		return nil, &NoContractError{ChainID: chainID}
	}

	thought, err := m.SaveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	tx, err := m.chain.SubmitMint(ctx, chainID, thought.Text, thought.Mood.Glyph())
	if err != nil {
		mintsFailed.Inc()
		return nil, &TransactionError{Err: err}
	}
	mintsSubmitted.Inc()

	// Bookkeeping after a successful submission. Failures here are not
	// fatal: the thought stays recoverable as ephemeral, and the pending
	// row only exists to let the reconcile job pick up abandoned flows.
	pending := &database.PendingMint{
		ThoughtID:       thought.ID,
		ChainID:         chainID,
		ContractAddress: strings.ToLower(contract.Hex()),
		TxHash:          tx.Hash().Hex(),
		SubmittedAt:     m.time.Now(),
	}
	if err := m.db.CreatePendingMint(pending); err != nil {
		logger.Warn("failed to record pending mint %s: %v", tx.Hash().Hex(), err)
	}
	thought.MintState = database.MintStatePending
	if err := m.db.UpdateThought(thought); err != nil {
		logger.Warn("failed to mark thought %s pending: %v", thought.ID, err)
	}

	return &MintHandle{
		Thought:  thought,
		ChainID:  chainID,
		Contract: contract,
		Tx:       tx,
	}, nil
}

// Blocks until the chain reports inclusion. On reversion the thought is
// returned to ephemeral with a fresh expiry; no minted state is ever
// written without a successful receipt.
func (m *Minter) AwaitConfirmation(ctx context.Context, handle *MintHandle) (*types.Receipt, error) {
	receipt, err := m.chain.WaitForReceipt(ctx, handle.ChainID, handle.Tx)
	if err != nil {
		// Transport failure, not reversion: the transaction may still be
		// included later. The pending row stays so reconciliation can
		// find it.
		return nil, &TransactionError{TxHash: handle.Tx.Hash(), Err: err}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		mintsFailed.Inc()
		m.revertToEphemeral(handle)
		return nil, &TransactionError{TxHash: handle.Tx.Hash(), Err: errors.New("transaction reverted")}
	}

	return receipt, nil
}

func (m *Minter) revertToEphemeral(handle *MintHandle) {
	expiresAt := m.time.Now().Add(m.retention)
	handle.Thought.MintState = database.MintStateEphemeral
	handle.Thought.ExpiresAt = &expiresAt
	if err := m.db.UpdateThought(handle.Thought); err != nil {
		logger.Warn("failed to return thought %s to ephemeral: %v", handle.Thought.ID, err)
	}
	if err := m.db.DeletePendingMint(handle.Tx.Hash().Hex()); err != nil {
		logger.Warn("failed to drop pending mint %s: %v", handle.Tx.Hash().Hex(), err)
	}
}

// The reconciliation write, the single code path that can move a thought
// to minted. Must only run after AwaitConfirmation succeeded; idempotent,
// so it may be retried on transient failure with the same receipt data.
func (m *Minter) FinalizeMint(
	ctx context.Context,
	thoughtID string,
	chainID int64,
	tokenID string,
	contract common.Address,
	txHash common.Hash,
	blockNumber uint64,
) error {
	err := m.db.FinalizeMint(&database.FinalizeThoughtMintInput{
		ThoughtID:       thoughtID,
		ChainID:         chainID,
		TokenID:         tokenID,
		ContractAddress: contract.Hex(),
		TxHash:          txHash.Hex(),
		BlockNumber:     blockNumber,
	})
	if err != nil {
		reconciliationFailures.Inc()
		return &ReconciliationError{
			ThoughtID:       thoughtID,
			ChainID:         chainID,
			TokenID:         tokenID,
			ContractAddress: contract,
			TxHash:          txHash,
			Err:             err,
		}
	}
	mintsConfirmed.Inc()

	if err := m.db.DeletePendingMint(txHash.Hex()); err != nil {
		logger.Warn("failed to drop pending mint %s: %v", txHash.Hex(), err)
	}
	return nil
}

// Post-mint cross-chain move: updates current-chain linkage and bumps
// the bridge count. Mint state and origin fields are untouched.
func (m *Minter) RecordBridge(
	ctx context.Context,
	thoughtID string,
	newChainID int64,
	newContract common.Address,
	bridgeTxHash common.Hash,
) error {
	err := m.db.RecordBridge(&database.RecordThoughtBridgeInput{
		ThoughtID:       thoughtID,
		NewChainID:      newChainID,
		ContractAddress: newContract.Hex(),
		BridgeTxHash:    bridgeTxHash.Hex(),
	})
	if err != nil {
		return &PersistenceError{Op: "RecordBridge", Err: err}
	}
	return nil
}

// The full two-phase mint flow. Phase one (BeginMint) is reversible;
// phase two (confirmation plus FinalizeMint) is the only irreversible
// commit point.
func (m *Minter) Mint(ctx context.Context, draft Draft, chainID int64) (*database.Thought, error) {
	handle, err := m.BeginMint(ctx, draft, chainID)
	if err != nil {
		return nil, err
	}

	receipt, err := m.AwaitConfirmation(ctx, handle)
	if err != nil {
		return handle.Thought, err
	}

	tokenID, ok := ExtractTokenID(receipt, handle.Contract)
	if !ok {
		// Confirmed mint with an unreadable token id. Leave the pending
		// row in place so the reconcile job can retry with a fresh
		// receipt instead of recording a forged token id.
		logger.Warn("mint tx %s confirmed but no transfer log found", handle.Tx.Hash().Hex())
		return handle.Thought, &ReconciliationError{
			ThoughtID:       handle.Thought.ID,
			ChainID:         handle.ChainID,
			ContractAddress: handle.Contract,
			TxHash:          handle.Tx.Hash(),
			Err:             errors.New("no mint transfer log in receipt"),
		}
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}
	err = m.FinalizeMint(ctx, handle.Thought.ID, handle.ChainID, tokenID, handle.Contract, handle.Tx.Hash(), blockNumber)
	if err != nil {
		return handle.Thought, err
	}

	thought, err := m.db.FetchThought(handle.Thought.ID)
	if err != nil {
		return handle.Thought, &PersistenceError{Op: "FetchThought", Err: err}
	}
	return thought, nil
}

