package usecase

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/currency"
	currencyMocks "github.com/x-xyz/marketclient/domain/currency/mocks"
	"github.com/x-xyz/marketclient/domain/mocks"
	"github.com/x-xyz/marketclient/domain/payment"
)

const (
	actor    = domain.Address("0x00000000000000000000000000000000000000aa")
	payToken = domain.Address("0x00000000000000000000000000000000000000bb")
	spender  = domain.Address("0x00000000000000000000000000000000000000cc")
)

var receipt = &domain.Receipt{TxHash: "0xabc", BlockNumber: 42}

type recorder struct {
	mu     sync.Mutex
	states []payment.State
}

func (r *recorder) observe(s payment.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *recorder) snapshot() []payment.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]payment.State(nil), r.states...)
}

func bidIntent(token domain.Address, amount int64) *payment.Intent {
	return &payment.Intent{
		Id:        "intent-1",
		Kind:      payment.KindBid,
		ChainId:   1,
		ListingId: "7",
		Actor:     actor,
		PayToken:  token,
		Amount:    big.NewInt(amount),
	}
}

func newOrchestrator(marketplace *mocks.Marketplace, resolver *currencyMocks.Resolver, confirmTimeout time.Duration) payment.Orchestrator {
	return NewOrchestrator(&OrchestratorCfg{
		Marketplace:    marketplace,
		Currency:       resolver,
		SettleDelay:    time.Millisecond,
		ConfirmTimeout: confirmTimeout,
	})
}

func TestExecuteNativeSkipsApproval(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	intent := bidIntent(domain.EmptyAddress, 1000)
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Return(receipt, nil).Once()

	rec := &recorder{}
	res, err := orchestrator.Execute(ctx, intent, rec.observe)
	req.NoError(err)
	req.Equal(receipt, res)
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateActionSubmitted,
		payment.StateActionConfirmed,
	}, rec.snapshot())
	marketplace.AssertExpectations(t)
	resolver.AssertNotCalled(t, "Allowance", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteSufficientAllowanceSkipsApproval(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	intent := bidIntent(payToken, 1000)
	resolver.On("ResolvePayment", mock.Anything, domain.ChainId(1), payToken).
		Return(&currency.Info{Symbol: "WETH", Decimals: 18}, nil).Once()
	resolver.On("Allowance", mock.Anything, domain.ChainId(1), payToken, actor, spender).
		Return(big.NewInt(1000), nil).Once()
	marketplace.On("Spender", domain.ChainId(1)).Return(spender)
	// token payments carry no transaction value
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), (*big.Int)(nil), false).
		Return(receipt, nil).Once()

	rec := &recorder{}
	_, err := orchestrator.Execute(ctx, intent, rec.observe)
	req.NoError(err)
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateActionSubmitted,
		payment.StateActionConfirmed,
	}, rec.snapshot())
	marketplace.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteApprovalFlow(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	intent := bidIntent(payToken, 1000)
	resolver.On("ResolvePayment", mock.Anything, domain.ChainId(1), payToken).
		Return(&currency.Info{Symbol: "WETH", Decimals: 18}, nil).Once()
	marketplace.On("Spender", domain.ChainId(1)).Return(spender)
	// short before approval, covered after
	resolver.On("Allowance", mock.Anything, domain.ChainId(1), payToken, actor, spender).
		Return(big.NewInt(0), nil).Once()
	resolver.On("Allowance", mock.Anything, domain.ChainId(1), payToken, actor, spender).
		Return(big.NewInt(1000), nil).Once()
	// approval is for exactly the required amount
	marketplace.On("Approve", mock.Anything, domain.ChainId(1), payToken, big.NewInt(1000)).
		Return(&domain.Receipt{TxHash: "0xapproval"}, nil).Once()
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), (*big.Int)(nil), false).
		Return(receipt, nil).Once()

	rec := &recorder{}
	res, err := orchestrator.Execute(ctx, intent, rec.observe)
	req.NoError(err)
	req.Equal(receipt, res)
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateNeedsApproval,
		payment.StateApprovalSubmitted,
		payment.StateApprovalConfirmed,
		payment.StateActionSubmitted,
		payment.StateActionConfirmed,
	}, rec.snapshot())
	// the parked intent's amount never changes across the approval boundary
	req.Equal("1000", intent.Amount.String())
	marketplace.AssertExpectations(t)
	resolver.AssertExpectations(t)
}

func TestExecuteAllowanceStillShortAfterApproval(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	intent := bidIntent(payToken, 1000)
	resolver.On("ResolvePayment", mock.Anything, domain.ChainId(1), payToken).
		Return(&currency.Info{Symbol: "WETH", Decimals: 18}, nil).Once()
	marketplace.On("Spender", domain.ChainId(1)).Return(spender)
	resolver.On("Allowance", mock.Anything, domain.ChainId(1), payToken, actor, spender).
		Return(big.NewInt(0), nil)
	marketplace.On("Approve", mock.Anything, domain.ChainId(1), payToken, big.NewInt(1000)).
		Return(&domain.Receipt{TxHash: "0xapproval"}, nil).Once()

	rec := &recorder{}
	_, err := orchestrator.Execute(ctx, intent, rec.observe)
	req.ErrorIs(err, domain.ErrSubmission)
	marketplace.AssertNotCalled(t, "Bid", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteSingleInFlightPerKey(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	block := make(chan struct{})
	started := make(chan struct{})
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Run(func(mock.Arguments) {
			close(started)
			<-block
		}).
		Return(receipt, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), nil)
		req.NoError(err)
	}()

	<-started
	_, err := orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), nil)
	req.ErrorIs(err, domain.ErrIntentInFlight)

	close(block)
	wg.Wait()

	// the slot frees once the first flow finishes
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Return(receipt, nil).Once()
	_, err = orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), nil)
	req.NoError(err)
}

func TestExecuteDistinctKeysRunConcurrently(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	block := make(chan struct{})
	started := make(chan struct{})
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Run(func(mock.Arguments) {
			close(started)
			<-block
		}).
		Return(receipt, nil).Once()
	marketplace.On("Cancel", mock.Anything, domain.ChainId(1), domain.ListingId("7"), uint16(0)).
		Return(receipt, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), nil)
		req.NoError(err)
	}()

	<-started
	// same listing, different kind: its own slot
	cancelIntent := &payment.Intent{
		Id: "intent-2", Kind: payment.KindCancel, ChainId: 1, ListingId: "7", Actor: actor,
	}
	_, err := orchestrator.Execute(ctx, cancelIntent, nil)
	req.NoError(err)

	close(block)
	wg.Wait()
}

func TestExecuteStalledReportedOnce(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 10*time.Millisecond)

	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Run(func(mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
		Return(receipt, nil).Once()

	rec := &recorder{}
	res, err := orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), rec.observe)
	req.NoError(err)
	req.Equal(receipt, res)
	// stalled is edge triggered and the flow still completes
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateActionSubmitted,
		payment.StateStalled,
		payment.StateActionConfirmed,
	}, rec.snapshot())
}

func TestExecuteActionFailureDiscardsIntent(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	marketplace := &mocks.Marketplace{}
	resolver := &currencyMocks.Resolver{}
	orchestrator := newOrchestrator(marketplace, resolver, 0)

	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Return(nil, domain.ErrReverted).Once()

	_, err := orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), nil)
	req.ErrorIs(err, domain.ErrReverted)

	// a failed flow leaves no parked state; re-initiating starts clean
	marketplace.On("Bid", mock.Anything, domain.ChainId(1), domain.ListingId("7"), big.NewInt(1000), false).
		Return(receipt, nil).Once()
	rec := &recorder{}
	_, err = orchestrator.Execute(ctx, bidIntent(domain.EmptyAddress, 1000), rec.observe)
	req.NoError(err)
	req.Equal([]payment.State{
		payment.StateIdle,
		payment.StateActionSubmitted,
		payment.StateActionConfirmed,
	}, rec.snapshot())
}
