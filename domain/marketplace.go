package domain

import (
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
)

// Marketplace is the consumed ledger call surface. Every call submits a
// signed transaction and blocks until it is mined; a mined-but-reverted
// transaction surfaces ErrReverted with the ledger's reason where available,
// a pre-broadcast failure surfaces ErrSubmission.
type Marketplace interface {
	// Bid places a bid. value carries the bid amount for native-currency
	// listings and must be zero for token-denominated ones, where the
	// amount rides on the allowance.
	Bid(ctx ctx.Ctx, chainId ChainId, listingId ListingId, value *big.Int, increaseOnly bool) (*Receipt, error)
	Purchase(ctx ctx.Ctx, chainId ChainId, listingId ListingId, quantity int64, value *big.Int) (*Receipt, error)
	Offer(ctx ctx.Ctx, chainId ChainId, listingId ListingId, value *big.Int, increaseOnly bool) (*Receipt, error)
	Accept(ctx ctx.Ctx, chainId ChainId, listingId ListingId, offerers []Address, amounts []*big.Int, maxAmount *big.Int) (*Receipt, error)
	Cancel(ctx ctx.Ctx, chainId ChainId, listingId ListingId, holdbackBPS uint16) (*Receipt, error)
	Finalize(ctx ctx.Ctx, chainId ChainId, listingId ListingId) (*Receipt, error)
	ModifyListing(ctx ctx.Ctx, chainId ChainId, listingId ListingId, initialAmount *big.Int, startTime, endTime int64) (*Receipt, error)

	// Approve grants the marketplace spender an erc20 allowance of exactly
	// amount.
	Approve(ctx ctx.Ctx, chainId ChainId, token Address, amount *big.Int) (*Receipt, error)

	// Spender returns the marketplace contract address allowances are
	// granted to on the given chain.
	Spender(chainId ChainId) Address

	// Sender returns the signing account's address.
	Sender() Address
}
