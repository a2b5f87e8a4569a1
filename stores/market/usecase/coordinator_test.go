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
	"github.com/x-xyz/marketclient/domain/market"
	domainMocks "github.com/x-xyz/marketclient/domain/mocks"
	"github.com/x-xyz/marketclient/domain/notification"
	notificationMocks "github.com/x-xyz/marketclient/domain/notification/mocks"
	"github.com/x-xyz/marketclient/domain/payment"
	paymentMocks "github.com/x-xyz/marketclient/domain/payment/mocks"
	pricingUC "github.com/x-xyz/marketclient/stores/pricing/usecase"
)

const (
	actorAddr  = domain.Address("0x00000000000000000000000000000000000000aa")
	sellerAddr = domain.Address("0x00000000000000000000000000000000000000bb")
	prevBidder = domain.Address("0x00000000000000000000000000000000000000cc")
)

type fixture struct {
	repo         *listingMocks.Repo
	resolver     *currencyMocks.Resolver
	orchestrator *paymentMocks.Orchestrator
	dispatcher   *notificationMocks.Dispatcher
	marketplace  *domainMocks.Marketplace
	coordinator  market.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		repo:         &listingMocks.Repo{},
		resolver:     &currencyMocks.Resolver{},
		orchestrator: &paymentMocks.Orchestrator{},
		dispatcher:   &notificationMocks.Dispatcher{},
		marketplace:  &domainMocks.Marketplace{},
	}
	f.coordinator = NewCoordinator(&CoordinatorCfg{
		Repo:         f.repo,
		Pricing:      pricingUC.NewEngine(&pricingUC.EngineCfg{}),
		Currency:     f.resolver,
		Orchestrator: f.orchestrator,
		Dispatcher:   f.dispatcher,
		Marketplace:  f.marketplace,
	})
	f.marketplace.On("Sender").Return(actorAddr).Maybe()
	f.resolver.On("Resolve", mock.Anything, mock.Anything, mock.Anything).
		Return(&currency.Info{Symbol: "ETH", Decimals: 18, IsNative: true}, nil).Maybe()
	return f
}

// expectExecute wires the orchestrator mock to replay a collapsed state
// sequence and confirm with the given receipt.
func (f *fixture) expectExecute(receipt *domain.Receipt) {
	f.orchestrator.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			observe := args.Get(2).(payment.Observer)
			observe(payment.StateIdle)
			observe(payment.StateActionSubmitted)
			observe(payment.StateActionConfirmed)
		}).
		Return(receipt, nil).Once()
}

func activeAuction() *listing.Listing {
	now := time.Now().Unix()
	return &listing.Listing{
		ChainId:       1,
		ListingId:     "7",
		Status:        listing.StatusActive,
		Type:          listing.TypeIndividualAuction,
		TokenType:     domain.TokenType721,
		Seller:        sellerAddr,
		PayToken:      domain.EmptyAddress,
		InitialAmount: big.NewInt(1000),
		StartTime:     now - 3600,
		EndTime:       now + 3600,
		BidCount:      1,
		HighestBid:    &listing.Bid{Bidder: prevBidder, Amount: big.NewInt(1000), Timestamp: now - 600},
	}
}

func TestPlaceBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	receipt := &domain.Receipt{TxHash: "0xabc", BlockNumber: 10}

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.expectExecute(receipt)
	f.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(conf *notification.Confirmation) bool {
		return conf.TxHash == receipt.TxHash &&
			conf.Kind == payment.KindBid &&
			conf.Seller == sellerAddr &&
			conf.PreviousBidder == prevBidder
	})).Return().Once()

	res, err := f.coordinator.PlaceBid(ctx, &market.BidParams{
		ChainId:   1,
		ListingId: "7",
		Amount:    big.NewInt(1100),
	})
	req.NoError(err)
	req.Equal(receipt, res.Receipt)
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateActionSubmitted,
		payment.StateActionConfirmed,
	}, res.States)
	f.dispatcher.AssertExpectations(t)
	// initial read plus the post-confirmation refresh
	f.repo.AssertNumberOfCalls(t, "FindOne", 2)
}

func TestPlaceBidBelowMinimum(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	// minimum is 1000 + 5% = 1050
	_, err := f.coordinator.PlaceBid(ctx, &market.BidParams{
		ChainId:   1,
		ListingId: "7",
		Amount:    big.NewInt(1049),
	})
	req.ErrorIs(err, domain.ErrBidTooLow)
	f.orchestrator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBidEndedAuction(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.EndTime = time.Now().Unix() - 60

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.PlaceBid(ctx, &market.BidParams{
		ChainId:   1,
		ListingId: "7",
		Amount:    big.NewInt(2000),
	})
	req.ErrorIs(err, domain.ErrListingEnded)
}

func TestPlaceBidStartsOnFirstBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	// begins-on-first-bid encoding: no bids yet, EndTime is a duration
	l.StartTime = 0
	l.EndTime = 86400
	l.BidCount = 0
	l.HighestBid = nil

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.expectExecute(&domain.Receipt{TxHash: "0xfirst"})
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return().Once()

	res, err := f.coordinator.PlaceBid(ctx, &market.BidParams{
		ChainId:   1,
		ListingId: "7",
		Amount:    big.NewInt(1000),
	})
	req.NoError(err)
	req.NotNil(res.Receipt)
}

func TestPlaceBidScheduledNotStarted(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.StartTime = time.Now().Unix() + 3600
	l.BidCount = 0
	l.HighestBid = nil

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.PlaceBid(ctx, &market.BidParams{
		ChainId:   1,
		ListingId: "7",
		Amount:    big.NewInt(2000),
	})
	req.ErrorIs(err, domain.ErrListingNotActive)
}

func TestPurchase(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := &listing.Listing{
		ChainId:        1,
		ListingId:      "9",
		Status:         listing.StatusActive,
		Type:           listing.TypeFixedPrice,
		TokenType:      domain.TokenType1155,
		Seller:         sellerAddr,
		PayToken:       domain.EmptyAddress,
		InitialAmount:  big.NewInt(500),
		TotalAvailable: 100,
		TotalPerSale:   4,
	}
	receipt := &domain.Receipt{TxHash: "0xbuy"}

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.orchestrator.On("Execute", mock.Anything, mock.MatchedBy(func(intent *payment.Intent) bool {
		// 3 purchase units at 500 each
		return intent.Kind == payment.KindPurchase &&
			intent.Amount.String() == "1500" &&
			intent.Quantity == 3
	}), mock.Anything).Return(receipt, nil).Once()
	f.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(conf *notification.Confirmation) bool {
		return conf.Kind == payment.KindPurchase && conf.Quantity == 3
	})).Return().Once()

	res, err := f.coordinator.Purchase(ctx, &market.PurchaseParams{
		ChainId:   1,
		ListingId: "9",
		Quantity:  3,
	})
	req.NoError(err)
	req.Equal(receipt, res.Receipt)
	f.orchestrator.AssertExpectations(t)
}

func TestPurchaseInvalidQuantity(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := &listing.Listing{
		ChainId:        1,
		ListingId:      "9",
		Status:         listing.StatusActive,
		Type:           listing.TypeFixedPrice,
		TokenType:      domain.TokenType1155,
		Seller:         sellerAddr,
		InitialAmount:  big.NewInt(500),
		TotalAvailable: 8,
		TotalPerSale:   4,
	}
	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.Purchase(ctx, &market.PurchaseParams{
		ChainId:   1,
		ListingId: "9",
		Quantity:  3,
	})
	req.ErrorIs(err, domain.ErrInvalidQuantity)
}

func TestPurchaseAuctionRejected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.Purchase(ctx, &market.PurchaseParams{
		ChainId:   1,
		ListingId: "7",
		Quantity:  1,
	})
	req.ErrorIs(err, domain.ErrListingNotActive)
}

func TestAcceptOffer(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.repo.On("FindOffers", mock.Anything, l.ToId()).Return([]*listing.Offer{
		{Offerer: prevBidder, Amount: big.NewInt(900), Active: true},
	}, nil)
	f.expectExecute(&domain.Receipt{TxHash: "0xaccept"})
	f.dispatcher.On("Dispatch", mock.Anything, mock.MatchedBy(func(conf *notification.Confirmation) bool {
		return conf.Kind == payment.KindAccept && conf.Offerer == prevBidder
	})).Return().Once()

	_, err := f.coordinator.AcceptOffer(ctx, &market.AcceptParams{
		ChainId:   1,
		ListingId: "7",
		Offerers:  []domain.Address{prevBidder},
		Amounts:   []*big.Int{big.NewInt(900)},
		MaxAmount: big.NewInt(900),
	})
	req.NoError(err)
	f.dispatcher.AssertExpectations(t)
}

func TestAcceptOfferNotSeller(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.AcceptOffer(ctx, &market.AcceptParams{
		ChainId:   1,
		ListingId: "7",
		Offerers:  []domain.Address{prevBidder},
		Amounts:   []*big.Int{big.NewInt(900)},
		MaxAmount: big.NewInt(900),
	})
	req.ErrorIs(err, domain.ErrNotSeller)
}

func TestAcceptOfferNoOfferers(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	// empty and nil slices are both rejected before any offer lookup
	for _, offerers := range [][]domain.Address{nil, {}} {
		_, err := f.coordinator.AcceptOffer(ctx, &market.AcceptParams{
			ChainId:   1,
			ListingId: "7",
			Offerers:  offerers,
			Amounts:   []*big.Int{},
			MaxAmount: big.NewInt(900),
		})
		req.ErrorIs(err, domain.ErrBadParamInput)
	}
	f.orchestrator.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptOfferNoActiveOffer(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.repo.On("FindOffers", mock.Anything, l.ToId()).Return([]*listing.Offer{
		{Offerer: prevBidder, Amount: big.NewInt(900), Active: false},
	}, nil)

	_, err := f.coordinator.AcceptOffer(ctx, &market.AcceptParams{
		ChainId:   1,
		ListingId: "7",
		Offerers:  []domain.Address{prevBidder},
		Amounts:   []*big.Int{big.NewInt(900)},
		MaxAmount: big.NewInt(900),
	})
	req.ErrorIs(err, domain.ErrOfferNotFound)
}

func TestCancel(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.orchestrator.On("Execute", mock.Anything, mock.MatchedBy(func(intent *payment.Intent) bool {
		return intent.Kind == payment.KindCancel && intent.HoldbackBPS == 250 && intent.Amount == nil
	}), mock.Anything).Return(&domain.Receipt{TxHash: "0xcancel"}, nil).Once()
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return().Once()

	_, err := f.coordinator.Cancel(ctx, &market.CancelParams{
		ChainId:     1,
		ListingId:   "7",
		HoldbackBPS: 250,
	})
	req.NoError(err)
	f.orchestrator.AssertExpectations(t)
}

func TestFinalizeLiveAuctionRejected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.Finalize(ctx, &market.FinalizeParams{ChainId: 1, ListingId: "7"})
	req.ErrorIs(err, domain.ErrListingNotActive)
}

func TestFinalizeEndedAuction(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.EndTime = time.Now().Unix() - 60

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.expectExecute(&domain.Receipt{TxHash: "0xfinal"})
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return().Once()

	_, err := f.coordinator.Finalize(ctx, &market.FinalizeParams{ChainId: 1, ListingId: "7"})
	req.NoError(err)
}

func TestModifyFrozenAfterFirstBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)

	_, err := f.coordinator.Modify(ctx, &market.ModifyParams{
		ChainId:       1,
		ListingId:     "7",
		InitialAmount: big.NewInt(2000),
	})
	req.ErrorIs(err, domain.ErrListingNotActive)
}

func TestModify(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	f := newFixture()
	l := activeAuction()
	l.Seller = actorAddr
	l.BidCount = 0
	l.HighestBid = nil

	f.repo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil)
	f.orchestrator.On("Execute", mock.Anything, mock.MatchedBy(func(intent *payment.Intent) bool {
		return intent.Kind == payment.KindModify && intent.InitialAmount.String() == "2000"
	}), mock.Anything).Return(&domain.Receipt{TxHash: "0xmod"}, nil).Once()
	f.dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return().Once()

	_, err := f.coordinator.Modify(ctx, &market.ModifyParams{
		ChainId:       1,
		ListingId:     "7",
		InitialAmount: big.NewInt(2000),
	})
	req.NoError(err)
	f.orchestrator.AssertExpectations(t)
}
