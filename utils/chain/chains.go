package chain

import (
	"github.com/remivalade/MintMyMood/config"

	"github.com/ethereum/go-ethereum/common"
)

// Built-in descriptors of the chains the journal is deployed on. Contract
// addresses are deployment-specific and always come from config; the
// static part here is only network identity and default RPC endpoints.
type Descriptor struct {
	ChainID     int64
	Name        string
	ShortName   string
	RPCURL      string
	ExplorerURL string
	Testnet     bool
}

var knownChains = map[int64]Descriptor{
	8453: {
		ChainID:     8453,
		Name:        "Base",
		ShortName:   "Base",
		RPCURL:      "https://mainnet.base.org",
		ExplorerURL: "https://basescan.org",
	},
	84532: {
		ChainID:     84532,
		Name:        "Base Sepolia",
		ShortName:   "Base",
		RPCURL:      "https://sepolia.base.org",
		ExplorerURL: "https://sepolia.basescan.org",
		Testnet:     true,
	},
	60808: {
		ChainID:     60808,
		Name:        "Bob",
		ShortName:   "Bob",
		RPCURL:      "https://rpc.gobob.xyz",
		ExplorerURL: "https://explorer.gobob.xyz",
	},
	808813: {
		ChainID:     808813,
		Name:        "Bob Sepolia",
		ShortName:   "Bob",
		RPCURL:      "https://bob-sepolia.rpc.gobob.xyz",
		ExplorerURL: "https://bob-sepolia.explorer.gobob.xyz",
		Testnet:     true,
	},
	57073: {
		ChainID:     57073,
		Name:        "Ink",
		ShortName:   "Ink",
		RPCURL:      "https://rpc-gel.inkonchain.com",
		ExplorerURL: "https://explorer.inkonchain.com",
	},
	763373: {
		ChainID:     763373,
		Name:        "Ink Sepolia",
		ShortName:   "Ink",
		RPCURL:      "https://rpc-gel-sepolia.inkonchain.com",
		ExplorerURL: "https://explorer-sepolia.inkonchain.com",
		Testnet:     true,
	},
}

func KnownChain(chainID int64) (Descriptor, bool) {
	d, ok := knownChains[chainID]
	return d, ok
}

// Per-chain settings after merging config over the built-in descriptors.
type Settings struct {
	Descriptor
	Contract common.Address
	// Deployed is false for preview-only chains without a contract
	Deployed bool
	// Fixed gas limit for chains with unreliable fee estimation, 0 to
	// use node estimation
	GasLimit uint64
}

type Registry struct {
	chains map[int64]Settings
}

func NewRegistry(cfgs []config.ChainConfig) *Registry {
	chains := make(map[int64]Settings, len(cfgs))
	for _, cfg := range cfgs {
		descriptor, ok := KnownChain(cfg.ChainID)
		if !ok {
			descriptor = Descriptor{ChainID: cfg.ChainID, Name: cfg.Name, ShortName: cfg.Name}
		}
		if cfg.EthRPCURL != "" {
			descriptor.RPCURL = cfg.EthRPCURL
		}
		contract, deployed := cfg.Contract()
		chains[cfg.ChainID] = Settings{
			Descriptor: descriptor,
			Contract:   contract,
			Deployed:   deployed,
			GasLimit:   cfg.GasLimit,
		}
	}
	return &Registry{chains: chains}
}

func (r *Registry) Settings(chainID int64) (Settings, bool) {
	s, ok := r.chains[chainID]
	return s, ok
}

// Contract address lookup, false when the chain is unknown or has no
// deployment.
func (r *Registry) ContractAddress(chainID int64) (common.Address, bool) {
	s, ok := r.chains[chainID]
	if !ok || !s.Deployed {
		return common.Address{}, false
	}
	return s.Contract, true
}

func (r *Registry) ChainIDs() []int64 {
	ids := make([]int64, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	return ids
}
