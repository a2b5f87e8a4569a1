package usecase

import (
	"math/big"

	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/pricing"
)

var bpsDenominator = big.NewInt(10000)

type EngineCfg struct {
	// IncrementBPS overrides the default minimum bid increment.
	IncrementBPS int64
}

type impl struct {
	incrementBPS *big.Int
}

func NewEngine(cfg *EngineCfg) pricing.Engine {
	bps := cfg.IncrementBPS
	if bps <= 0 {
		bps = pricing.DefaultIncrementBPS
	}
	return &impl{incrementBPS: big.NewInt(bps)}
}

// MinimumBid is the reserve price when no bid exists, otherwise the current
// highest bid plus the floored increment. Advisory only; the ledger enforces
// the same rule and resolves concurrent bids.
func (e *impl) MinimumBid(l *listing.Listing) (*big.Int, error) {
	if l.HighestBid == nil || l.HighestBid.Amount == nil {
		if l.InitialAmount == nil {
			return nil, domain.ErrMalformedAmount
		}
		return new(big.Int).Set(l.InitialAmount), nil
	}
	current := l.HighestBid.Amount
	increment := new(big.Int).Mul(current, e.incrementBPS)
	increment.Quo(increment, bpsDenominator)
	return new(big.Int).Add(current, increment), nil
}

// MaxPurchasable counts purchase units, not copies.
func (e *impl) MaxPurchasable(l *listing.Listing) int64 {
	if l.TokenType != domain.TokenType1155 {
		return 1
	}
	perSale := l.TotalPerSale
	if perSale <= 0 {
		perSale = 1
	}
	return l.CopiesRemaining() / perSale
}

// TotalCost computes the exact cost of `quantity` purchase units. Quantity is
// never clamped here; out-of-range input is a validation error on the
// payment path.
func (e *impl) TotalCost(l *listing.Listing, quantity int64) (*pricing.Cost, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if quantity > e.MaxPurchasable(l) {
		return nil, domain.ErrInvalidQuantity
	}
	if l.InitialAmount == nil {
		return nil, domain.ErrMalformedAmount
	}

	perSale := l.TotalPerSale
	if perSale <= 0 {
		perSale = 1
	}
	perUnit := new(big.Int).Set(l.InitialAmount)
	total := new(big.Int).Mul(perUnit, big.NewInt(quantity))
	return &pricing.Cost{
		Total:          total,
		PerUnit:        perUnit,
		CopiesReceived: quantity * perSale,
	}, nil
}
