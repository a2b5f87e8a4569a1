package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketclient/base/amount"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/currency"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/pricing"
)

type ListingUseCaseCfg struct {
	Repo     listing.Repo
	Currency currency.Resolver
	Pricing  pricing.Engine
}

type impl struct {
	repo     listing.Repo
	currency currency.Resolver
	pricing  pricing.Engine
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		repo:     cfg.Repo,
		currency: cfg.Currency,
		pricing:  cfg.Pricing,
	}
}

func (im *impl) Get(ctx bCtx.Ctx, id listing.Id) (*listing.Detail, error) {
	l, err := im.repo.FindOne(ctx, id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("repo.FindOne failed")
		return nil, err
	}

	status := listing.ResolveTimeStatus(l, time.Now())

	info, err := im.currency.Resolve(ctx, l.ChainId, l.PayToken)
	if err != nil {
		// Resolve degrades instead of failing; treat an error as internal
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("currency.Resolve failed")
		return nil, err
	}

	detail := &listing.Detail{
		Listing:       l,
		Phase:         status.Phase,
		TimeRemaining: listing.FormatRemaining(status.Remaining),
		Symbol:        info.Symbol,
		Decimals:      info.Decimals,
		DisplayPrice:  amount.ToDisplay(l.InitialAmount, info.Decimals),
	}

	if l.Type == listing.TypeIndividualAuction && status.Phase == listing.PhaseActive {
		min, err := im.pricing.MinimumBid(l)
		if err != nil {
			return nil, xerrors.Errorf("minimum bid for %s: %w", id, err)
		}
		detail.MinimumBid = amount.ToDisplay(min, info.Decimals)
	}
	return detail, nil
}

func (im *impl) Refresh(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.repo.FindOne(ctx, id)
}

func (im *impl) GetBids(ctx bCtx.Ctx, id listing.Id) ([]*listing.Bid, error) {
	return im.repo.FindBids(ctx, id)
}

func (im *impl) GetOffers(ctx bCtx.Ctx, id listing.Id) ([]*listing.Offer, error) {
	return im.repo.FindOffers(ctx, id)
}
