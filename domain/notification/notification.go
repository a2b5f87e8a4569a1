package notification

import (
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/payment"
)

type EventType string

const (
	EventBidPlaced        EventType = "bidPlaced"
	EventOutbid           EventType = "outbid"
	EventSale             EventType = "sale"
	EventPurchase         EventType = "purchase"
	EventOfferMade        EventType = "offerMade"
	EventOfferReceived    EventType = "offerReceived"
	EventOfferAccepted    EventType = "offerAccepted"
	EventListingCancelled EventType = "listingCancelled"
	EventListingFinalized EventType = "listingFinalized"
	EventListingModified  EventType = "listingModified"
)

// Event is one emission record, delivered best-effort to the external
// notification collaborator.
type Event struct {
	UserAddress domain.Address         `json:"userAddress"`
	Type        EventType              `json:"type"`
	Title       string                 `json:"title"`
	Message     string                 `json:"message"`
	ListingId   domain.ListingId       `json:"listingId"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// Confirmation describes one confirmed transaction, the unit of dispatch.
// TxHash keys duplicate suppression: dispatching the same confirmation twice
// emits nothing the second time.
type Confirmation struct {
	TxHash    domain.TxHash
	Kind      payment.IntentKind
	ChainId   domain.ChainId
	ListingId domain.ListingId

	Actor  domain.Address
	Seller domain.Address
	// PreviousBidder is the outbid highest bidder, when any.
	PreviousBidder domain.Address
	// Offerer is the counterparty of an accepted offer.
	Offerer domain.Address

	Amount        *big.Int
	AmountDisplay string
	Symbol        string
	Quantity      int64
}

// Sink delivers a single event record. Fire and forget; no response contract
// beyond best-effort delivery.
type Sink interface {
	Send(ctx ctx.Ctx, event *Event) error
}

// Dispatcher fans a confirmation out to every interested party. Emission
// failures are logged and never block each other or the confirmed
// transaction's success path.
type Dispatcher interface {
	Dispatch(ctx ctx.Ctx, conf *Confirmation)
}
