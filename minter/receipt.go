package minter

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var transferEventTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// Recovers the minted token id from the receipt's logs: the ERC-721
// Transfer event with a zero-address "from" topic is the mint. Returns
// ok=false when no matching log exists; an unknown token id must be
// reconciled later, it is not the literal token 0.
func ExtractTokenID(receipt *types.Receipt, contract common.Address) (string, bool) {
	for _, log := range receipt.Logs {
		if log.Address != contract {
			continue
		}
		if len(log.Topics) != 4 {
			continue
		}
		if log.Topics[0] != transferEventTopic {
			continue
		}
		if log.Topics[1] != (common.Hash{}) {
			continue
		}
		return log.Topics[3].Big().String(), true
	}
	return "", false
}
