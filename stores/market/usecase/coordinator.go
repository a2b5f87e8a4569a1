package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketclient/base/amount"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/currency"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/market"
	"github.com/x-xyz/marketclient/domain/notification"
	"github.com/x-xyz/marketclient/domain/payment"
	"github.com/x-xyz/marketclient/domain/pricing"
)

type CoordinatorCfg struct {
	Repo         listing.Repo
	Pricing      pricing.Engine
	Currency     currency.Resolver
	Orchestrator payment.Orchestrator
	Dispatcher   notification.Dispatcher
	Marketplace  domain.Marketplace
	Metrics      metrics.Service
}

type impl struct {
	repo         listing.Repo
	pricing      pricing.Engine
	currency     currency.Resolver
	orchestrator payment.Orchestrator
	dispatcher   notification.Dispatcher
	marketplace  domain.Marketplace
	metrics      metrics.Service
}

func NewCoordinator(cfg *CoordinatorCfg) market.UseCase {
	m := cfg.Metrics
	if m == nil {
		m = metrics.New("market")
	}
	return &impl{
		repo:         cfg.Repo,
		pricing:      cfg.Pricing,
		currency:     cfg.Currency,
		orchestrator: cfg.Orchestrator,
		dispatcher:   cfg.Dispatcher,
		marketplace:  cfg.Marketplace,
		metrics:      m,
	}
}

func (im *impl) PlaceBid(ctx bCtx.Ctx, params *market.BidParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Type != listing.TypeIndividualAuction {
		return nil, domain.ErrListingNotActive
	}

	status := listing.ResolveTimeStatus(l, time.Now())
	switch status.Phase {
	case listing.PhaseEnded:
		return nil, domain.ErrListingEnded
	case listing.PhaseNotStarted:
		// a begins-on-first-bid auction is never "not started": this bid is
		// what starts it
		if l.StartTime != 0 {
			return nil, domain.ErrListingNotActive
		}
	}

	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, domain.ErrMalformedAmount
	}
	min, err := im.pricing.MinimumBid(l)
	if err != nil {
		return nil, err
	}
	if params.Amount.Cmp(min) < 0 {
		ctx.WithFields(log.Fields{
			"id":      id,
			"amount":  params.Amount.String(),
			"minimum": min.String(),
		}).Warn("bid below minimum")
		return nil, xerrors.Errorf("bid %s below minimum %s: %w", params.Amount, min, domain.ErrBidTooLow)
	}

	var prevBidder domain.Address
	if l.HighestBid != nil {
		prevBidder = l.HighestBid.Bidder
	}

	intent := &payment.Intent{
		Id:           uuid.NewString(),
		Kind:         payment.KindBid,
		ChainId:      params.ChainId,
		ListingId:    params.ListingId,
		Actor:        im.marketplace.Sender(),
		PayToken:     l.PayToken,
		Amount:       params.Amount,
		IncreaseOnly: params.IncreaseOnly,
	}
	return im.run(ctx, l, intent, func(conf *notification.Confirmation) {
		conf.PreviousBidder = prevBidder
	})
}

func (im *impl) Purchase(ctx bCtx.Ctx, params *market.PurchaseParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Type != listing.TypeFixedPrice && l.Type != listing.TypeDynamicPrice {
		return nil, domain.ErrListingNotActive
	}

	status := listing.ResolveTimeStatus(l, time.Now())
	if status.Phase == listing.PhaseEnded {
		return nil, domain.ErrListingEnded
	}
	if status.Phase == listing.PhaseNotStarted {
		return nil, domain.ErrListingNotActive
	}

	cost, err := im.pricing.TotalCost(l, params.Quantity)
	if err != nil {
		return nil, err
	}

	intent := &payment.Intent{
		Id:        uuid.NewString(),
		Kind:      payment.KindPurchase,
		ChainId:   params.ChainId,
		ListingId: params.ListingId,
		Actor:     im.marketplace.Sender(),
		PayToken:  l.PayToken,
		Amount:    cost.Total,
		Quantity:  params.Quantity,
	}
	return im.run(ctx, l, intent, func(conf *notification.Confirmation) {
		conf.Quantity = params.Quantity
	})
}

func (im *impl) MakeOffer(ctx bCtx.Ctx, params *market.OfferParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	status := listing.ResolveTimeStatus(l, time.Now())
	if status.Phase == listing.PhaseEnded {
		return nil, domain.ErrListingEnded
	}
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, domain.ErrMalformedAmount
	}

	intent := &payment.Intent{
		Id:           uuid.NewString(),
		Kind:         payment.KindOffer,
		ChainId:      params.ChainId,
		ListingId:    params.ListingId,
		Actor:        im.marketplace.Sender(),
		PayToken:     l.PayToken,
		Amount:       params.Amount,
		IncreaseOnly: params.IncreaseOnly,
	}
	return im.run(ctx, l, intent, nil)
}

func (im *impl) AcceptOffer(ctx bCtx.Ctx, params *market.AcceptParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := im.requireSeller(ctx, l); err != nil {
		return nil, err
	}
	if len(params.Offerers) == 0 || len(params.Offerers) != len(params.Amounts) {
		return nil, domain.ErrBadParamInput
	}

	// every accepted offerer must hold a live offer on the projection
	offers, err := im.repo.FindOffers(ctx, id)
	if err != nil {
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("repo.FindOffers failed")
		return nil, err
	}
	active := make(map[domain.Address]*listing.Offer)
	for _, o := range offers {
		if o.Active {
			active[o.Offerer.ToLower()] = o
		}
	}
	var total *big.Int
	for i, offerer := range params.Offerers {
		o, ok := active[offerer.ToLower()]
		if !ok {
			return nil, xerrors.Errorf("no active offer from %s: %w", offerer, domain.ErrOfferNotFound)
		}
		if params.Amounts[i] == nil || o.Amount.Cmp(params.Amounts[i]) < 0 {
			return nil, xerrors.Errorf("offer from %s below accepted amount: %w", offerer, domain.ErrOfferNotFound)
		}
		if total == nil {
			total = new(big.Int)
		}
		total.Add(total, params.Amounts[i])
	}

	intent := &payment.Intent{
		Id:        uuid.NewString(),
		Kind:      payment.KindAccept,
		ChainId:   params.ChainId,
		ListingId: params.ListingId,
		Actor:     im.marketplace.Sender(),
		PayToken:  l.PayToken,
		Offerers:  params.Offerers,
		Amounts:   params.Amounts,
		MaxAmount: params.MaxAmount,
	}
	first := params.Offerers[0]
	return im.run(ctx, l, intent, func(conf *notification.Confirmation) {
		conf.Offerer = first
		conf.Amount = total
	})
}

func (im *impl) Cancel(ctx bCtx.Ctx, params *market.CancelParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := im.requireSeller(ctx, l); err != nil {
		return nil, err
	}
	if l.Status != listing.StatusActive {
		return nil, domain.ErrListingNotActive
	}

	intent := &payment.Intent{
		Id:          uuid.NewString(),
		Kind:        payment.KindCancel,
		ChainId:     params.ChainId,
		ListingId:   params.ListingId,
		Actor:       im.marketplace.Sender(),
		HoldbackBPS: params.HoldbackBPS,
	}
	return im.run(ctx, l, intent, nil)
}

func (im *impl) Finalize(ctx bCtx.Ctx, params *market.FinalizeParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Type != listing.TypeIndividualAuction {
		return nil, domain.ErrBadParamInput
	}
	if l.Status != listing.StatusActive {
		return nil, domain.ErrListingNotActive
	}
	// finalization settles a concluded auction, never a live one
	status := listing.ResolveTimeStatus(l, time.Now())
	if status.Phase != listing.PhaseEnded {
		return nil, domain.ErrListingNotActive
	}

	intent := &payment.Intent{
		Id:        uuid.NewString(),
		Kind:      payment.KindFinalize,
		ChainId:   params.ChainId,
		ListingId: params.ListingId,
		Actor:     im.marketplace.Sender(),
	}
	return im.run(ctx, l, intent, nil)
}

func (im *impl) Modify(ctx bCtx.Ctx, params *market.ModifyParams) (*market.Result, error) {
	id := listing.Id{ChainId: params.ChainId, ListingId: params.ListingId}
	l, err := im.findListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := im.requireSeller(ctx, l); err != nil {
		return nil, err
	}
	if l.Status != listing.StatusActive {
		return nil, domain.ErrListingNotActive
	}
	if l.Type == listing.TypeIndividualAuction && l.BidCount > 0 {
		// terms are frozen once bidding begins
		return nil, domain.ErrListingNotActive
	}
	if params.InitialAmount == nil || params.InitialAmount.Sign() <= 0 {
		return nil, domain.ErrMalformedAmount
	}

	intent := &payment.Intent{
		Id:            uuid.NewString(),
		Kind:          payment.KindModify,
		ChainId:       params.ChainId,
		ListingId:     params.ListingId,
		Actor:         im.marketplace.Sender(),
		InitialAmount: params.InitialAmount,
		StartTime:     params.StartTime,
		EndTime:       params.EndTime,
	}
	return im.run(ctx, l, intent, nil)
}

func (im *impl) findListing(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.repo.FindOne(ctx, id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	return l, nil
}

func (im *impl) requireSeller(ctx bCtx.Ctx, l *listing.Listing) error {
	sender := im.marketplace.Sender()
	if !sender.Equals(l.Seller) {
		ctx.WithFields(log.Fields{
			"id":     l.ToId(),
			"sender": sender,
			"seller": l.Seller,
		}).Warn("sender is not the seller")
		return domain.ErrNotSeller
	}
	return nil
}

// run drives one intent through the orchestrator and, on confirmation, fires
// the side effects: notification fan-out, a metrics bump and a projection
// refresh. Side-effect failures never fail the confirmed action.
func (im *impl) run(ctx bCtx.Ctx, l *listing.Listing, intent *payment.Intent, decorate func(*notification.Confirmation)) (*market.Result, error) {
	defer im.metrics.BumpTime("action.time", "kind", string(intent.Kind)).End()

	var states []payment.State
	receipt, err := im.orchestrator.Execute(ctx, intent, func(s payment.State) {
		states = append(states, s)
	})
	if err != nil {
		im.metrics.BumpSum("action.err", 1, "kind", string(intent.Kind))
		return nil, err
	}
	im.metrics.BumpSum("action.confirmed", 1, "kind", string(intent.Kind))

	conf := &notification.Confirmation{
		TxHash:    receipt.TxHash,
		Kind:      intent.Kind,
		ChainId:   intent.ChainId,
		ListingId: intent.ListingId,
		Actor:     intent.Actor,
		Seller:    l.Seller,
		Amount:    intent.Amount,
	}
	if decorate != nil {
		decorate(conf)
	}
	if conf.Amount != nil {
		if info, err := im.currency.Resolve(ctx, l.ChainId, l.PayToken); err == nil {
			conf.AmountDisplay = amount.ToDisplay(conf.Amount, info.Decimals)
			conf.Symbol = info.Symbol
		}
	}
	im.dispatcher.Dispatch(ctx, conf)

	// the projection lags the ledger; refresh so the next read reflects the
	// confirmed transaction. Failure only delays freshness.
	if _, err := im.repo.FindOne(ctx, l.ToId()); err != nil {
		ctx.WithFields(log.Fields{
			"id":  l.ToId(),
			"err": err,
		}).Warn("post-confirmation refresh failed")
	}

	return &market.Result{Receipt: receipt, States: states}, nil
}
