package pricing

import (
	"math/big"

	"github.com/x-xyz/marketclient/domain/listing"
)

// DefaultIncrementBPS is the minimum required bid increase over the current
// highest bid, in basis points.
const DefaultIncrementBPS = int64(500)

// Cost is the result of a quantity-based purchase computation. Quantity
// counts purchase units; each unit conveys TotalPerSale copies.
type Cost struct {
	Total          *big.Int `json:"total"`
	PerUnit        *big.Int `json:"perUnit"`
	CopiesReceived int64    `json:"copiesReceived"`
}

// Engine computes minimum acceptable bids and purchase totals. All
// computation is integer arithmetic in base units.
type Engine interface {
	MinimumBid(l *listing.Listing) (*big.Int, error)
	TotalCost(l *listing.Listing, quantity int64) (*Cost, error)
	MaxPurchasable(l *listing.Listing) int64
}
