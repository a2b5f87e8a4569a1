package usecase

import (
	"fmt"
	"sync"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/notification"
	"github.com/x-xyz/marketclient/domain/payment"
)

type DispatcherCfg struct {
	Sink notification.Sink
}

// seenLimit caps the suppression set. Suppression is per-process best effort;
// when the cap is hit the set resets rather than growing for the life of a
// long-running client.
const seenLimit = 4096

type impl struct {
	sink notification.Sink

	mu sync.Mutex
	// seen keys duplicate suppression by tx hash. One confirmed transaction
	// notifies each party at most once regardless of how many status polls
	// or retries observe it.
	seen map[domain.TxHash]struct{}
}

func NewDispatcher(cfg *DispatcherCfg) notification.Dispatcher {
	return &impl{
		sink: cfg.Sink,
		seen: make(map[domain.TxHash]struct{}),
	}
}

func (im *impl) Dispatch(ctx bCtx.Ctx, conf *notification.Confirmation) {
	if conf == nil || conf.TxHash == "" {
		return
	}
	im.mu.Lock()
	if _, ok := im.seen[conf.TxHash.ToLower()]; ok {
		im.mu.Unlock()
		return
	}
	if len(im.seen) >= seenLimit {
		im.seen = make(map[domain.TxHash]struct{})
	}
	im.seen[conf.TxHash.ToLower()] = struct{}{}
	im.mu.Unlock()

	events := buildEvents(conf)
	if len(events) == 0 {
		return
	}

	b := goroutines.NewBatch(4, goroutines.WithBatchSize(len(events)))
	defer b.Close()
	for i := 0; i < len(events); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			return nil, im.sink.Send(ctx, events[idx])
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			// emission is best effort, never surfaced to the action's caller
			ctx.WithFields(log.Fields{
				"txHash": conf.TxHash,
				"err":    ret.Error(),
			}).Warn("notification send failed")
		}
	}
}

func displayAmount(conf *notification.Confirmation) string {
	if conf.AmountDisplay == "" {
		return "0"
	}
	return conf.AmountDisplay + " " + conf.Symbol
}

// buildEvents expands one confirmation into the per-party records the fan-out
// delivers. Recipients with no known address are skipped.
func buildEvents(conf *notification.Confirmation) []*notification.Event {
	var events []*notification.Event
	add := func(to domain.Address, typ notification.EventType, title, message string) {
		if to.IsEmpty() {
			return
		}
		events = append(events, &notification.Event{
			UserAddress: to.ToLower(),
			Type:        typ,
			Title:       title,
			Message:     message,
			ListingId:   conf.ListingId,
			Metadata: map[string]interface{}{
				"txHash":  string(conf.TxHash),
				"chainId": conf.ChainId,
			},
		})
	}

	amount := displayAmount(conf)
	switch conf.Kind {
	case payment.KindBid:
		add(conf.Actor, notification.EventBidPlaced,
			"Bid placed", fmt.Sprintf("Your bid of %s on listing %s is confirmed", amount, conf.ListingId))
		add(conf.Seller, notification.EventSale,
			"New bid", fmt.Sprintf("Listing %s received a bid of %s", conf.ListingId, amount))
		if !conf.PreviousBidder.IsEmpty() && !conf.PreviousBidder.Equals(conf.Actor) {
			add(conf.PreviousBidder, notification.EventOutbid,
				"Outbid", fmt.Sprintf("Your bid on listing %s was outbid by %s", conf.ListingId, amount))
		}
	case payment.KindPurchase:
		add(conf.Actor, notification.EventPurchase,
			"Purchase complete", fmt.Sprintf("You bought %d unit(s) of listing %s for %s", conf.Quantity, conf.ListingId, amount))
		add(conf.Seller, notification.EventSale,
			"Item sold", fmt.Sprintf("Listing %s sold %d unit(s) for %s", conf.ListingId, conf.Quantity, amount))
	case payment.KindOffer:
		add(conf.Actor, notification.EventOfferMade,
			"Offer made", fmt.Sprintf("Your offer of %s on listing %s is confirmed", amount, conf.ListingId))
		add(conf.Seller, notification.EventOfferReceived,
			"Offer received", fmt.Sprintf("Listing %s received an offer of %s", conf.ListingId, amount))
	case payment.KindAccept:
		add(conf.Seller, notification.EventOfferAccepted,
			"Offer accepted", fmt.Sprintf("You accepted an offer of %s on listing %s", amount, conf.ListingId))
		add(conf.Offerer, notification.EventOfferAccepted,
			"Offer accepted", fmt.Sprintf("Your offer of %s on listing %s was accepted", amount, conf.ListingId))
	case payment.KindCancel:
		add(conf.Seller, notification.EventListingCancelled,
			"Listing cancelled", fmt.Sprintf("Listing %s is cancelled", conf.ListingId))
	case payment.KindFinalize:
		add(conf.Seller, notification.EventListingFinalized,
			"Listing finalized", fmt.Sprintf("Listing %s is finalized", conf.ListingId))
	case payment.KindModify:
		add(conf.Seller, notification.EventListingModified,
			"Listing updated", fmt.Sprintf("Listing %s was updated", conf.ListingId))
	}
	return events
}
