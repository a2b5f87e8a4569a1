package indexer

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

var (
	ErrStatusCodeNotOk = errors.New("status code not ok")
	ErrGraphqlError    = errors.New("graphql query error")
)

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Endpoints maps chain id to subgraph URL.
	Endpoints map[domain.ChainId]string
}

// Client reads listing projections from the marketplace subgraph. The
// projection is eventually consistent with the ledger; callers refresh it
// after each confirmed transaction.
type Client interface {
	GetListing(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error)
	GetBids(ctx bCtx.Ctx, id listing.Id) ([]*listing.Bid, error)
	GetOffers(ctx bCtx.Ctx, id listing.Id) ([]*listing.Offer, error)
}
