package payment

import (
	"fmt"
	"math/big"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

// State is the orchestration phase of a coordinating action. The approval
// states are skipped when the currency is native or the existing allowance
// already covers the required amount.
type State string

const (
	StateIdle              State = "idle"
	StateNeedsApproval     State = "needsApproval"
	StateApprovalSubmitted State = "approvalSubmitted"
	StateApprovalConfirmed State = "approvalConfirmed"
	StateActionSubmitted   State = "actionSubmitted"
	StateActionConfirmed   State = "actionConfirmed"
	// StateStalled is reported when confirmation exceeds the configured
	// timeout. The transaction may still land; nothing is assumed failed.
	StateStalled State = "stalled"
)

type IntentKind string

const (
	KindBid      IntentKind = "bid"
	KindPurchase IntentKind = "purchase"
	KindOffer    IntentKind = "offer"
	KindAccept   IntentKind = "accept"
	KindCancel   IntentKind = "cancel"
	KindFinalize IntentKind = "finalize"
	KindModify   IntentKind = "modify"
)

// Intent captures what the user asked to do before any ledger interaction.
// It is a plain value object so it can be parked across the approval
// boundary and resumed without capturing closures. Parking is in-memory only
// for the life of the coordinating action; an intent never survives a
// process restart.
type Intent struct {
	Id        string           `json:"id"`
	Kind      IntentKind       `json:"kind"`
	ChainId   domain.ChainId   `json:"chainId"`
	ListingId domain.ListingId `json:"listingId"`
	Actor     domain.Address   `json:"actor"`
	PayToken  domain.Address   `json:"payToken"`

	// Amount is the payment the action requires, in base units. Nil for
	// actions that move no funds from the actor (cancel, finalize, modify,
	// accept).
	Amount       *big.Int `json:"amount,omitempty"`
	Quantity     int64    `json:"quantity,omitempty"`
	IncreaseOnly bool     `json:"increaseOnly,omitempty"`

	// accept
	Offerers  []domain.Address `json:"offerers,omitempty"`
	Amounts   []*big.Int       `json:"amounts,omitempty"`
	MaxAmount *big.Int         `json:"maxAmount,omitempty"`

	// cancel
	HoldbackBPS uint16 `json:"holdbackBPS,omitempty"`

	// modify
	InitialAmount *big.Int `json:"initialAmount,omitempty"`
	StartTime     int64    `json:"startTime,omitempty"`
	EndTime       int64    `json:"endTime,omitempty"`
}

// Key identifies the single-in-flight slot: one pending intent per
// listing+kind pair.
func (i *Intent) Key() string {
	return fmt.Sprintf("%d:%s:%s", i.ChainId, i.ListingId, i.Kind)
}

// RequiresPayment reports whether the intent moves funds from the actor and
// may therefore need an allowance.
func (i *Intent) RequiresPayment() bool {
	return i.Amount != nil && i.Amount.Sign() > 0
}

// Observer receives state transitions. The presentation layer only observes;
// it never drives transitions.
type Observer func(State)

// Orchestrator runs the two-phase allowance-then-action protocol for one
// intent. Execute blocks until the final action confirms or fails; the
// parked intent is discarded on any failure and the caller must re-initiate.
type Orchestrator interface {
	Execute(ctx ctx.Ctx, intent *Intent, observe Observer) (*domain.Receipt, error)
}
