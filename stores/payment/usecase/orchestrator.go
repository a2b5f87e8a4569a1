package usecase

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/goroutine"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/currency"
	"github.com/x-xyz/marketclient/domain/payment"
)

// DefaultSettleDelay is the wait between a confirmed approval and the
// allowance re-read, covering read-path lag on the ledger gateway.
const DefaultSettleDelay = 2 * time.Second

type OrchestratorCfg struct {
	Marketplace domain.Marketplace
	Currency    currency.Resolver
	// SettleDelay overrides DefaultSettleDelay.
	SettleDelay time.Duration
	// ConfirmTimeout is how long a pending transaction may wait before the
	// observer sees StateStalled. Zero disables stall reporting.
	ConfirmTimeout time.Duration
}

type impl struct {
	marketplace    domain.Marketplace
	currency       currency.Resolver
	settleDelay    time.Duration
	confirmTimeout time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewOrchestrator(cfg *OrchestratorCfg) payment.Orchestrator {
	settleDelay := cfg.SettleDelay
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &impl{
		marketplace:    cfg.Marketplace,
		currency:       cfg.Currency,
		settleDelay:    settleDelay,
		confirmTimeout: cfg.ConfirmTimeout,
		inflight:       make(map[string]struct{}),
	}
}

// Execute runs the approve-then-act protocol for one intent. At most one
// intent per listing+kind is in flight; a second concurrent call fails with
// ErrIntentInFlight instead of queueing. The parked intent is held in memory
// only and discarded on any failure.
func (im *impl) Execute(ctx bCtx.Ctx, intent *payment.Intent, observe payment.Observer) (*domain.Receipt, error) {
	emit := func(s payment.State) {
		if observe != nil {
			observe(s)
		}
	}

	if err := im.acquire(intent.Key()); err != nil {
		ctx.WithField("key", intent.Key()).Warn("intent already in flight")
		return nil, err
	}
	defer im.release(intent.Key())

	emit(payment.StateIdle)

	if intent.RequiresPayment() && !intent.PayToken.IsNative() {
		if err := im.ensureAllowance(ctx, intent, emit); err != nil {
			return nil, err
		}
	}

	emit(payment.StateActionSubmitted)
	receipt, err := im.await(ctx, emit, func(c bCtx.Ctx) (*domain.Receipt, error) {
		return im.submit(c, intent)
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"key":  intent.Key(),
			"kind": intent.Kind,
			"err":  err,
		}).Error("action failed")
		return nil, err
	}
	emit(payment.StateActionConfirmed)
	return receipt, nil
}

func (im *impl) acquire(key string) error {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, ok := im.inflight[key]; ok {
		return domain.ErrIntentInFlight
	}
	im.inflight[key] = struct{}{}
	return nil
}

func (im *impl) release(key string) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.inflight, key)
}

// ensureAllowance walks the approval phase when the current allowance does
// not cover the intent's amount. The approval is for exactly the required
// amount, never unlimited.
func (im *impl) ensureAllowance(ctx bCtx.Ctx, intent *payment.Intent, emit payment.Observer) error {
	if _, err := im.currency.ResolvePayment(ctx, intent.ChainId, intent.PayToken); err != nil {
		return err
	}

	spender := im.marketplace.Spender(intent.ChainId)
	allowance, err := im.currency.Allowance(ctx, intent.ChainId, intent.PayToken, intent.Actor, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(intent.Amount) >= 0 {
		return nil
	}

	emit(payment.StateNeedsApproval)
	emit(payment.StateApprovalSubmitted)
	if _, err := im.await(ctx, emit, func(c bCtx.Ctx) (*domain.Receipt, error) {
		return im.marketplace.Approve(c, intent.ChainId, intent.PayToken, intent.Amount)
	}); err != nil {
		ctx.WithFields(log.Fields{
			"key": intent.Key(),
			"err": err,
		}).Error("approve failed")
		return err
	}
	emit(payment.StateApprovalConfirmed)

	select {
	case <-time.After(im.settleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	// the ledger, not the approval receipt, decides whether the allowance
	// is in place
	allowance, err = im.currency.Allowance(ctx, intent.ChainId, intent.PayToken, intent.Actor, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(intent.Amount) < 0 {
		ctx.WithFields(log.Fields{
			"key":       intent.Key(),
			"allowance": allowance.String(),
			"required":  intent.Amount.String(),
		}).Error("allowance still short after approval")
		return xerrors.Errorf("allowance %s short of %s after approval: %w",
			allowance, intent.Amount, domain.ErrSubmission)
	}
	return nil
}

// await runs the blocking ledger call and reports StateStalled once if it
// outlives the confirm timeout. A stalled transaction is still waited on; it
// may yet land.
func (im *impl) await(ctx bCtx.Ctx, emit payment.Observer, fn func(bCtx.Ctx) (*domain.Receipt, error)) (*domain.Receipt, error) {
	type result struct {
		receipt *domain.Receipt
		err     error
	}
	done := make(chan result, 1)
	panicked := goroutine.RecoverableGo(func() {
		receipt, err := fn(ctx)
		done <- result{receipt, err}
	})

	var stall <-chan time.Time
	if im.confirmTimeout > 0 {
		timer := time.NewTimer(im.confirmTimeout)
		defer timer.Stop()
		stall = timer.C
	}

	for {
		select {
		case res := <-done:
			return res.receipt, res.err
		case p := <-panicked:
			if p == nil {
				// closed without event; the result follows on done
				panicked = nil
				continue
			}
			return nil, xerrors.Errorf("panic: %v: %w", p.Panic, domain.ErrInternalServerError)
		case <-stall:
			stall = nil
			ctx.Warn("confirmation exceeded timeout, still waiting")
			emit(payment.StateStalled)
		}
	}
}

func (im *impl) submit(ctx bCtx.Ctx, intent *payment.Intent) (*domain.Receipt, error) {
	// native payments ride on the transaction value; token payments ride on
	// the allowance and send no value
	value := intent.Amount
	if !intent.PayToken.IsNative() {
		value = nil
	}

	switch intent.Kind {
	case payment.KindBid:
		return im.marketplace.Bid(ctx, intent.ChainId, intent.ListingId, value, intent.IncreaseOnly)
	case payment.KindPurchase:
		return im.marketplace.Purchase(ctx, intent.ChainId, intent.ListingId, intent.Quantity, value)
	case payment.KindOffer:
		return im.marketplace.Offer(ctx, intent.ChainId, intent.ListingId, value, intent.IncreaseOnly)
	case payment.KindAccept:
		return im.marketplace.Accept(ctx, intent.ChainId, intent.ListingId, intent.Offerers, intent.Amounts, intent.MaxAmount)
	case payment.KindCancel:
		return im.marketplace.Cancel(ctx, intent.ChainId, intent.ListingId, intent.HoldbackBPS)
	case payment.KindFinalize:
		return im.marketplace.Finalize(ctx, intent.ChainId, intent.ListingId)
	case payment.KindModify:
		return im.marketplace.ModifyListing(ctx, intent.ChainId, intent.ListingId, intent.InitialAmount, intent.StartTime, intent.EndTime)
	default:
		return nil, fmt.Errorf("unknown intent kind %q: %w", intent.Kind, domain.ErrBadParamInput)
	}
}
