package minter

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// No signing principal is configured; surfaced before any chain call.
var ErrNotAuthenticated = errors.New("no signing principal available")

// Rejected input, surfaced before any persistence or chain call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// The selected chain has no deployed journal contract.
type NoContractError struct {
	ChainID int64
}

func (e *NoContractError) Error() string {
	return fmt.Sprintf("no journal contract deployed on chain %d", e.ChainID)
}

// Storage failure on a CRUD call. The thought's last persisted state is
// unchanged; retrying is at the caller's discretion.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// The chain reported a reverted execution, or the submission itself
// failed (user rejection, insufficient funds). The thought remains
// ephemeral.
type TransactionError struct {
	TxHash common.Hash
	Err    error
}

func (e *TransactionError) Error() string {
	if e.TxHash == (common.Hash{}) {
		return fmt.Sprintf("mint transaction failed: %v", e.Err)
	}
	return fmt.Sprintf("mint transaction %s failed: %v", e.TxHash.Hex(), e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// The mint is confirmed on-chain but the database write failed: ledger
// truth and the off-chain record have diverged. Distinct from every
// other failure because it must be retried with the receipt-derived data
// it carries, without submitting a new transaction.
type ReconciliationError struct {
	ThoughtID       string
	ChainID         int64
	TokenID         string
	ContractAddress common.Address
	TxHash          common.Hash
	Err             error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("mint of thought %s confirmed in tx %s on chain %d but the database record is stale: %v",
		e.ThoughtID, e.TxHash.Hex(), e.ChainID, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
