package routes

import (
	"time"

	"github.com/remivalade/MintMyMood/database"
)

type ThoughtResponse struct {
	ID        string     `json:"id"`
	Owner     string     `json:"owner"`
	Text      string     `json:"text"`
	Mood      string     `json:"mood"`
	MintState string     `json:"mintState"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	OriginChainID   *int64  `json:"originChainId,omitempty"`
	CurrentChainID  *int64  `json:"currentChainId,omitempty"`
	TokenID         *string `json:"tokenId,omitempty"`
	ContractAddress *string `json:"contractAddress,omitempty"`
	TxHash          *string `json:"txHash,omitempty"`
	MintedBlock     *uint64 `json:"mintedBlock,omitempty"`
	BridgeCount     uint32  `json:"bridgeCount"`
}

func newThoughtResponse(t *database.Thought) ThoughtResponse {
	return ThoughtResponse{
		ID:              t.ID,
		Owner:           t.OwnerAddress,
		Text:            t.Text,
		Mood:            string(t.Mood),
		MintState:       string(t.MintState),
		CreatedAt:       t.CreatedAt,
		ExpiresAt:       t.ExpiresAt,
		OriginChainID:   t.OriginChainID,
		CurrentChainID:  t.CurrentChainID,
		TokenID:         t.TokenID,
		ContractAddress: t.ContractAddress,
		TxHash:          t.TxHash,
		MintedBlock:     t.MintedBlock,
		BridgeCount:     t.BridgeCount,
	}
}
