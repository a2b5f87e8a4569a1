package currency

import (
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

const (
	// DegradedSymbol is shown when a token contract is unreadable on a
	// display-only path.
	DegradedSymbol = "$TOKEN"
	// DegradedDecimals is assumed on display-only paths when the contract
	// is unreadable. Never used for amounts submitted on-chain.
	DegradedDecimals = int32(18)

	NativeDecimals = int32(18)
)

// Info describes a listing's payment currency.
type Info struct {
	ChainId  domain.ChainId `json:"chainId"`
	Address  domain.Address `json:"address"`
	IsNative bool           `json:"isNative"`
	Symbol   string         `json:"symbol"`
	Decimals int32          `json:"decimals"`
}

// Resolver resolves payment currency descriptors and spender allowances.
type Resolver interface {
	// Resolve returns the currency descriptor for display paths. When the
	// token contract is unreadable it returns a degraded descriptor instead
	// of failing.
	Resolve(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) (*Info, error)

	// ResolvePayment is Resolve for the payment path: resolution failure is
	// fatal (ErrAllowanceResolution), decimals are never guessed.
	ResolvePayment(ctx ctx.Ctx, chainId domain.ChainId, token domain.Address) (*Info, error)

	// Allowance reads the owner's current spender allowance from the ledger.
	// Always a fresh read; the ledger is the sole source of truth here.
	Allowance(ctx ctx.Ctx, chainId domain.ChainId, token, owner, spender domain.Address) (*big.Int, error)
}
