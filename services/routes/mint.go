package routes

import (
	"context"
	"net/http"

	"github.com/remivalade/MintMyMood/database"
	"github.com/remivalade/MintMyMood/minter"
	"github.com/remivalade/MintMyMood/services/api"
	servicesContext "github.com/remivalade/MintMyMood/services/context"
	"github.com/remivalade/MintMyMood/services/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MintThoughtRequest struct {
	ID      string `json:"id" validate:"omitempty,uuid4"`
	Owner   string `json:"owner" validate:"required,eth-addr"`
	Text    string `json:"text" validate:"required,max=400"`
	Mood    string `json:"mood" validate:"required,mood"`
	ChainID int64  `json:"chainId" validate:"required"`
}

type BridgeThoughtRequest struct {
	ID         string `json:"id" validate:"required,uuid4"`
	NewChainID int64  `json:"newChainId" validate:"required"`
	Contract   string `json:"contract" validate:"required,eth-addr"`
	TxHash     string `json:"txHash" validate:"required"`
}

type mintRouteHandlers struct {
	db     *gorm.DB
	minter *minter.Minter
}

func newMintRouteHandlers(ctx servicesContext.ServicesContext, m *minter.Minter) *mintRouteHandlers {
	return &mintRouteHandlers{
		db:     ctx.DB(),
		minter: m,
	}
}

func (rh *mintRouteHandlers) mintThought() utils.RouteHandler {
	handler := func(request MintThoughtRequest) (ThoughtResponse, *utils.ErrorHandler) {
		thought, err := rh.minter.Mint(context.Background(), minter.Draft{
			ID:    request.ID,
			Owner: request.Owner,
			Text:  request.Text,
			Mood:  database.Mood(request.Mood),
		}, request.ChainID)
		if err != nil {
			return ThoughtResponse{}, mintErrorHandler(err)
		}
		return newThoughtResponse(thought), nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, MintThoughtRequest{}, ThoughtResponse{})
}

func mintErrorHandler(err error) *utils.ErrorHandler {
	if errors.Is(err, minter.ErrNotAuthenticated) {
		return utils.ApiResponseErrorHandler(api.ApiResStatusUnauthorized,
			"minting not available", err.Error())
	}

	var validationErr *minter.ValidationError
	if errors.As(err, &validationErr) {
		return utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
			"invalid request", validationErr.Error())
	}

	var noContract *minter.NoContractError
	if errors.As(err, &noContract) {
		return utils.ApiResponseErrorHandler(api.ApiResStatusInvalidRequest,
			"chain has no journal contract", noContract.Error())
	}

	var txErr *minter.TransactionError
	if errors.As(err, &txErr) {
		return utils.ApiResponseErrorHandler(api.ApiResStatusError,
			"mint transaction failed", txErr.Error())
	}

	// Confirmed on chain but not yet written through; the reconcile job
	// will finish the flow
	var reconErr *minter.ReconciliationError
	if errors.As(err, &reconErr) {
		return utils.ApiResponseErrorHandler(api.ApiResStatusPendingRetry,
			"mint confirmed, finalization pending", reconErr.Error())
	}

	return utils.InternalServerErrorHandler(err)
}

func (rh *mintRouteHandlers) bridgeThought() utils.RouteHandler {
	handler := func(request BridgeThoughtRequest) (ThoughtResponse, *utils.ErrorHandler) {
		err := rh.minter.RecordBridge(
			context.Background(),
			request.ID,
			request.NewChainID,
			common.HexToAddress(request.Contract),
			common.HexToHash(request.TxHash),
		)
		if err != nil {
			return ThoughtResponse{}, utils.ApiResponseErrorHandler(api.ApiResStatusError,
				"bridge not recorded", err.Error())
		}
		thought, err := database.FetchThought(rh.db, request.ID)
		if err != nil {
			return ThoughtResponse{}, utils.InternalServerErrorHandler(err)
		}
		return newThoughtResponse(thought), nil
	}
	return utils.NewRouteHandler(handler, http.MethodPost, BridgeThoughtRequest{}, ThoughtResponse{})
}

func AddMintRoutes(router utils.Router, ctx servicesContext.ServicesContext, m *minter.Minter) {
	rh := newMintRouteHandlers(ctx, m)

	subrouter := router.WithPrefix("/mint", "Minting")
	subrouter.AddRoute("/", rh.mintThought(), "Mint a thought on a chain")
	subrouter.AddRoute("/bridge", rh.bridgeThought(), "Record a cross-chain bridge of a minted thought")
}
