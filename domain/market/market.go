package market

import (
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/payment"
)

type BidParams struct {
	ChainId      domain.ChainId   `json:"chainId" validate:"required"`
	ListingId    domain.ListingId `json:"listingId" validate:"required"`
	Amount       *big.Int         `json:"amount" validate:"required"`
	IncreaseOnly bool             `json:"increaseOnly"`
}

type PurchaseParams struct {
	ChainId   domain.ChainId   `json:"chainId" validate:"required"`
	ListingId domain.ListingId `json:"listingId" validate:"required"`
	Quantity  int64            `json:"quantity" validate:"required"`
}

type OfferParams struct {
	ChainId      domain.ChainId   `json:"chainId" validate:"required"`
	ListingId    domain.ListingId `json:"listingId" validate:"required"`
	Amount       *big.Int         `json:"amount" validate:"required"`
	IncreaseOnly bool             `json:"increaseOnly"`
}

type AcceptParams struct {
	ChainId   domain.ChainId   `json:"chainId" validate:"required"`
	ListingId domain.ListingId `json:"listingId" validate:"required"`
	Offerers  []domain.Address `json:"offerers" validate:"required,min=1"`
	Amounts   []*big.Int       `json:"amounts" validate:"required,min=1"`
	MaxAmount *big.Int         `json:"maxAmount" validate:"required"`
}

type CancelParams struct {
	ChainId     domain.ChainId   `json:"chainId" validate:"required"`
	ListingId   domain.ListingId `json:"listingId" validate:"required"`
	HoldbackBPS uint16           `json:"holdbackBPS" validate:"lte=1000"`
}

type FinalizeParams struct {
	ChainId   domain.ChainId   `json:"chainId" validate:"required"`
	ListingId domain.ListingId `json:"listingId" validate:"required"`
}

type ModifyParams struct {
	ChainId       domain.ChainId   `json:"chainId" validate:"required"`
	ListingId     domain.ListingId `json:"listingId" validate:"required"`
	InitialAmount *big.Int         `json:"initialAmount" validate:"required"`
	StartTime     int64            `json:"startTime"`
	EndTime       int64            `json:"endTime"`
}

// Result is what a completed coordinating action returns to the caller: the
// mined receipt plus the state transitions the flow went through, in order.
type Result struct {
	Receipt *domain.Receipt `json:"receipt"`
	States  []payment.State `json:"states"`
}

// UseCase is the per-user-action entry point sequencing validation, pricing,
// currency resolution, the payment orchestration and post-confirmation side
// effects.
type UseCase interface {
	PlaceBid(ctx ctx.Ctx, params *BidParams) (*Result, error)
	Purchase(ctx ctx.Ctx, params *PurchaseParams) (*Result, error)
	MakeOffer(ctx ctx.Ctx, params *OfferParams) (*Result, error)
	AcceptOffer(ctx ctx.Ctx, params *AcceptParams) (*Result, error)
	Cancel(ctx ctx.Ctx, params *CancelParams) (*Result, error)
	Finalize(ctx ctx.Ctx, params *FinalizeParams) (*Result, error)
	Modify(ctx ctx.Ctx, params *ModifyParams) (*Result, error)
}
