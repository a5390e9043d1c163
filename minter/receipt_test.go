package minter

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

var (
	testContract = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testMinter   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func TestExtractTokenID(t *testing.T) {
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{
				Address: testContract,
				Topics: []common.Hash{
					transferEventTopic,
					common.Hash{},
					common.BytesToHash(testMinter.Bytes()),
					common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000003"),
				},
			},
		},
	}

	tokenID, ok := ExtractTokenID(receipt, testContract)
	require.True(t, ok)
	require.Equal(t, "3", tokenID)
}

func TestExtractTokenIDZero(t *testing.T) {
	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				Address: testContract,
				Topics: []common.Hash{
					transferEventTopic,
					common.Hash{},
					common.BytesToHash(testMinter.Bytes()),
					common.Hash{},
				},
			},
		},
	}

	tokenID, ok := ExtractTokenID(receipt, testContract)
	require.True(t, ok)
	require.Equal(t, "0", tokenID)
}

func TestExtractTokenIDWrongContract(t *testing.T) {
	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				Address: common.HexToAddress("0x3333333333333333333333333333333333333333"),
				Topics: []common.Hash{
					transferEventTopic,
					common.Hash{},
					common.BytesToHash(testMinter.Bytes()),
					common.HexToHash("0x05"),
				},
			},
		},
	}

	_, ok := ExtractTokenID(receipt, testContract)
	require.False(t, ok)
}

func TestExtractTokenIDNonMintTransfer(t *testing.T) {
	// Transfer from a non-zero address is a regular transfer, not a mint
	receipt := &types.Receipt{
		Logs: []*types.Log{
			{
				Address: testContract,
				Topics: []common.Hash{
					transferEventTopic,
					common.BytesToHash(testMinter.Bytes()),
					common.BytesToHash(testContract.Bytes()),
					common.HexToHash("0x05"),
				},
			},
		},
	}

	_, ok := ExtractTokenID(receipt, testContract)
	require.False(t, ok)
}

func TestExtractTokenIDNoLogs(t *testing.T) {
	_, ok := ExtractTokenID(&types.Receipt{}, testContract)
	require.False(t, ok)
}
