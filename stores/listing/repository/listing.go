package repository

import (
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/service/indexer"
)

type impl struct {
	indexer indexer.Client
}

// NewListingRepo adapts the subgraph client into the listing read projection.
func NewListingRepo(client indexer.Client) listing.Repo {
	return &impl{indexer: client}
}

func (im *impl) FindOne(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.indexer.GetListing(ctx, id)
}

func (im *impl) FindBids(ctx bCtx.Ctx, id listing.Id) ([]*listing.Bid, error) {
	return im.indexer.GetBids(ctx, id)
}

func (im *impl) FindOffers(ctx bCtx.Ctx, id listing.Id) ([]*listing.Offer, error) {
	return im.indexer.GetOffers(ctx, id)
}
