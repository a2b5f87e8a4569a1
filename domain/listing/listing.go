package listing

import (
	"fmt"
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type Type string

const (
	TypeIndividualAuction Type = "individualAuction"
	TypeFixedPrice        Type = "fixedPrice"
	TypeOffersOnly        Type = "offersOnly"
	TypeDynamicPrice      Type = "dynamicPrice"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusFinalized Status = "finalized"
)

type Bid struct {
	Bidder    domain.Address `json:"bidder"`
	Amount    *big.Int       `json:"amount"`
	Timestamp int64          `json:"timestamp"`
}

type Offer struct {
	Offerer domain.Address `json:"offerer"`
	Amount  *big.Int       `json:"amount"`
	Active  bool           `json:"active"`
}

// Listing is the read-only projection of a ledger listing. The client never
// mutates Status locally; it only derives an ephemeral phase from the raw
// time fields.
type Listing struct {
	ChainId   domain.ChainId   `json:"chainId"`
	ListingId domain.ListingId `json:"listingId"`
	Status    Status           `json:"status"`
	Type      Type             `json:"listingType"`
	TokenType domain.TokenType `json:"tokenType"`
	Seller    domain.Address   `json:"seller"`
	PayToken  domain.Address   `json:"payToken"`

	// InitialAmount is the reserve price (auctions) or price per purchase
	// unit (fixed/dynamic price), in base units.
	InitialAmount *big.Int `json:"initialAmount"`

	// StartTime == 0 on an auction means the auction begins on first bid;
	// in that encoding EndTime is a duration in seconds until the first bid
	// lands, after which the ledger re-encodes it as an absolute timestamp.
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`

	TotalAvailable int64 `json:"totalAvailable"`
	TotalPerSale   int64 `json:"totalPerSale"`
	TotalSold      int64 `json:"totalSold"`

	BidCount   int  `json:"bidCount"`
	HighestBid *Bid `json:"highestBid,omitempty"`
}

type Id struct {
	ChainId   domain.ChainId   `json:"chainId"`
	ListingId domain.ListingId `json:"listingId"`
}

func (id Id) String() string {
	return fmt.Sprintf("%d:%s", id.ChainId, id.ListingId)
}

func (l *Listing) ToId() Id {
	return Id{ChainId: l.ChainId, ListingId: l.ListingId}
}

// CopiesRemaining is the number of copies still unsold, not purchase units.
func (l *Listing) CopiesRemaining() int64 {
	remaining := l.TotalAvailable - l.TotalSold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Repo is the indexer-backed read projection. Refreshed by the coordinator
// after each confirmed transaction.
type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindBids(ctx ctx.Ctx, id Id) ([]*Bid, error)
	FindOffers(ctx ctx.Ctx, id Id) ([]*Offer, error)
}

// Detail is the display composition of a projection: derived phase, human
// remaining time and display amounts for the presentation layer.
type Detail struct {
	Listing       *Listing `json:"listing"`
	Phase         Phase    `json:"phase"`
	TimeRemaining string   `json:"timeRemaining,omitempty"`
	Symbol        string   `json:"symbol"`
	Decimals      int32    `json:"decimals"`
	DisplayPrice  string   `json:"displayPrice"`
	MinimumBid    string   `json:"minimumBid,omitempty"`
}

type UseCase interface {
	Get(ctx ctx.Ctx, id Id) (*Detail, error)
	Refresh(ctx ctx.Ctx, id Id) (*Listing, error)
	GetBids(ctx ctx.Ctx, id Id) ([]*Bid, error)
	GetOffers(ctx ctx.Ctx, id Id) ([]*Offer, error)
}
