package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/currency"
	currencyMocks "github.com/x-xyz/marketclient/domain/currency/mocks"
	"github.com/x-xyz/marketclient/domain/listing"
	listingMocks "github.com/x-xyz/marketclient/domain/listing/mocks"
	pricingUC "github.com/x-xyz/marketclient/stores/pricing/usecase"
)

func newUseCase(repo *listingMocks.Repo, resolver *currencyMocks.Resolver) listing.UseCase {
	return NewListingUseCase(&ListingUseCaseCfg{
		Repo:     repo,
		Currency: resolver,
		Pricing:  pricingUC.NewEngine(&pricingUC.EngineCfg{}),
	})
}

func TestGetAuctionDetail(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := &listingMocks.Repo{}
	resolver := &currencyMocks.Resolver{}
	uc := newUseCase(repo, resolver)

	now := time.Now().Unix()
	l := &listing.Listing{
		ChainId:       1,
		ListingId:     "7",
		Status:        listing.StatusActive,
		Type:          listing.TypeIndividualAuction,
		TokenType:     domain.TokenType721,
		PayToken:      domain.EmptyAddress,
		InitialAmount: big.NewInt(1000000000000000000),
		StartTime:     now - 3600,
		EndTime:       now + 90*60 + 30,
		BidCount:      1,
		HighestBid:    &listing.Bid{Amount: big.NewInt(1000000000000000000), Timestamp: now - 600},
	}
	repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	resolver.On("Resolve", mock.Anything, domain.ChainId(1), domain.EmptyAddress).
		Return(&currency.Info{Symbol: "ETH", Decimals: 18, IsNative: true}, nil)

	detail, err := uc.Get(ctx, l.ToId())
	req.NoError(err)
	req.Equal(listing.PhaseActive, detail.Phase)
	req.Equal("ETH", detail.Symbol)
	req.Equal("1", detail.DisplayPrice)
	// 1.0 highest bid plus 5%
	req.Equal("1.05", detail.MinimumBid)
	req.Equal("1h 30m", detail.TimeRemaining)
}

func TestGetFixedPriceDetailHasNoMinimumBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := &listingMocks.Repo{}
	resolver := &currencyMocks.Resolver{}
	uc := newUseCase(repo, resolver)

	l := &listing.Listing{
		ChainId:        1,
		ListingId:      "9",
		Status:         listing.StatusActive,
		Type:           listing.TypeFixedPrice,
		TokenType:      domain.TokenType1155,
		PayToken:       domain.EmptyAddress,
		InitialAmount:  big.NewInt(500000000000000000),
		TotalAvailable: 10,
		TotalPerSale:   1,
	}
	repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	resolver.On("Resolve", mock.Anything, domain.ChainId(1), domain.EmptyAddress).
		Return(&currency.Info{Symbol: "ETH", Decimals: 18, IsNative: true}, nil)

	detail, err := uc.Get(ctx, l.ToId())
	req.NoError(err)
	req.Equal(listing.PhaseActive, detail.Phase)
	req.Equal("0.5", detail.DisplayPrice)
	req.Empty(detail.MinimumBid)
	// no deadline encoded
	req.Empty(detail.TimeRemaining)
}

func TestGetNotFound(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := &listingMocks.Repo{}
	uc := newUseCase(repo, &currencyMocks.Resolver{})

	id := listing.Id{ChainId: 1, ListingId: "404"}
	repo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := uc.Get(ctx, id)
	req.ErrorIs(err, domain.ErrNotFound)
}

func TestGetOffersPassthrough(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	repo := &listingMocks.Repo{}
	uc := newUseCase(repo, &currencyMocks.Resolver{})

	id := listing.Id{ChainId: 1, ListingId: "7"}
	offers := []*listing.Offer{{Offerer: "0x00000000000000000000000000000000000000cc", Amount: big.NewInt(900), Active: true}}
	repo.On("FindOffers", mock.Anything, id).Return(offers, nil)

	res, err := uc.GetOffers(ctx, id)
	req.NoError(err)
	req.Equal(offers, res)
}
