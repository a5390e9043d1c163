package minter

import (
	"context"

	"github.com/remivalade/MintMyMood/config"
	"github.com/remivalade/MintMyMood/contracts/journal"
	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/logger"
	"github.com/remivalade/MintMyMood/utils/chain"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type minterDBGorm struct {
	db *gorm.DB
}

func NewMinterDB(db *gorm.DB) minterDB {
	return minterDBGorm{db: db}
}

func (m minterDBGorm) FetchThought(id string) (*database.Thought, error) {
	return database.FetchThought(m.db, id)
}

func (m minterDBGorm) ThoughtNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (m minterDBGorm) CreateThought(t *database.Thought) error {
	return database.CreateThought(m.db, t)
}

func (m minterDBGorm) UpdateThought(t *database.Thought) error {
	return database.UpdateThought(m.db, t)
}

func (m minterDBGorm) FinalizeMint(in *database.FinalizeThoughtMintInput) error {
	return database.FinalizeThoughtMint(m.db, in)
}

func (m minterDBGorm) RecordBridge(in *database.RecordThoughtBridgeInput) error {
	return database.RecordThoughtBridge(m.db, in)
}

func (m minterDBGorm) CreatePendingMint(p *database.PendingMint) error {
	return database.CreatePendingMint(m.db, p)
}

func (m minterDBGorm) DeletePendingMint(txHash string) error {
	return database.DeletePendingMint(m.db, txHash)
}

type chainConnection struct {
	client   *ethclient.Client
	journal  *journal.Journal
	txOpts   *bind.TransactOpts
	gasLimit uint64
}

type minterChainClients struct {
	registry    *chain.Registry
	connections map[int64]*chainConnection
	hasSigner   bool
}

// Dials every configured chain that has a deployed contract. Chains
// without a signer key stay read-only and SubmitMint fails on them.
func NewChainClients(
	ctx context.Context,
	registry *chain.Registry,
	signer config.SignerConfig,
) (minterChain, error) {
	privateKey, err := signer.GetPrivateKey()
	if err != nil {
		return nil, err
	}

	connections := make(map[int64]*chainConnection)
	for _, chainID := range registry.ChainIDs() {
		settings, _ := registry.Settings(chainID)
		if !settings.Deployed || settings.RPCURL == "" {
			continue
		}

		client, err := chain.DialClient(ctx, settings.RPCURL)
		if err != nil {
			return nil, errors.Wrapf(err, "dialing chain %d", chainID)
		}
		contract, err := journal.NewJournal(settings.Contract, client)
		if err != nil {
			return nil, errors.Wrapf(err, "binding contract on chain %d", chainID)
		}

		conn := &chainConnection{
			client:   client,
			journal:  contract,
			gasLimit: settings.GasLimit,
		}
		if privateKey != "" {
			conn.txOpts, err = chain.TransactOptsFromPrivateKey(privateKey, chainID)
			if err != nil {
				return nil, errors.Wrapf(err, "building transact opts for chain %d", chainID)
			}
		}
		connections[chainID] = conn
		logger.Info("connected to chain %d (%s)", chainID, settings.Name)
	}

	return &minterChainClients{
		registry:    registry,
		connections: connections,
		hasSigner:   privateKey != "",
	}, nil
}

func (c *minterChainClients) HasSigner() bool {
	return c.hasSigner
}

func (c *minterChainClients) ContractAddress(chainID int64) (common.Address, bool) {
	return c.registry.ContractAddress(chainID)
}

func (c *minterChainClients) SubmitMint(
	ctx context.Context,
	chainID int64,
	text string,
	mood string,
) (*types.Transaction, error) {
	conn, ok := c.connections[chainID]
	if !ok {
		return nil, errors.Errorf("no connection for chain %d", chainID)
	}
	if conn.txOpts == nil {
		return nil, errors.Errorf("no signer for chain %d", chainID)
	}

	opts := *conn.txOpts
	opts.Context = ctx
	opts.GasLimit = conn.gasLimit
	return conn.journal.MintEntry(&opts, text, mood)
}

func (c *minterChainClients) WaitForReceipt(
	ctx context.Context,
	chainID int64,
	tx *types.Transaction,
) (*types.Receipt, error) {
	conn, ok := c.connections[chainID]
	if !ok {
		return nil, errors.Errorf("no connection for chain %d", chainID)
	}
	return chain.WaitForReceipt(ctx, conn.client, tx)
}
