package listing

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/marketclient/domain"
)

var testNow = time.Unix(1700000000, 0)

func auction(mutate func(*Listing)) *Listing {
	l := &Listing{
		ChainId:       1,
		ListingId:     "42",
		Status:        StatusActive,
		Type:          TypeIndividualAuction,
		TokenType:     domain.TokenType721,
		Seller:        domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369"),
		InitialAmount: big.NewInt(1000000),
	}
	if mutate != nil {
		mutate(l)
	}
	return l
}

func TestAuctionStartsOnFirstBid(t *testing.T) {
	req := require.New(t)

	// startTime == 0, no bids, endTime is a 7-day duration
	l := auction(func(l *Listing) {
		l.StartTime = 0
		l.EndTime = 604800
	})
	ts := ResolveTimeStatus(l, testNow)
	req.Equal(PhaseNotStarted, ts.Phase)
	req.Zero(ts.ActualEnd)

	// a bid lands at T, endTime still the duration: actualEnd = T + endTime
	bidAt := testNow.Unix() - 3600
	l.BidCount = 1
	l.HighestBid = &Bid{
		Bidder:    domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"),
		Amount:    big.NewInt(2000000),
		Timestamp: bidAt,
	}
	ts = ResolveTimeStatus(l, testNow)
	req.Equal(PhaseActive, ts.Phase)
	req.Equal(bidAt+604800, ts.ActualEnd)

	// past actualEnd the auction is over
	ts = ResolveTimeStatus(l, time.Unix(bidAt+604800, 0))
	req.Equal(PhaseEnded, ts.Phase)
}

func TestAuctionReencodedAbsoluteEnd(t *testing.T) {
	req := require.New(t)

	// ledger re-encoded endTime as an absolute timestamp in the future
	end := testNow.Unix() + 7200
	l := auction(func(l *Listing) {
		l.StartTime = 0
		l.EndTime = end
		l.BidCount = 2
		l.HighestBid = &Bid{Timestamp: testNow.Unix() - 60, Amount: big.NewInt(1)}
	})
	ts := ResolveTimeStatus(l, testNow)
	req.Equal(PhaseActive, ts.Phase)
	req.Equal(end, ts.ActualEnd)
	req.Equal(2*time.Hour, ts.Remaining)
}

func TestAuctionUnknownEndNeverEnded(t *testing.T) {
	req := require.New(t)

	// started, stale duration endTime, no highest-bid timestamp to anchor on
	l := auction(func(l *Listing) {
		l.StartTime = 0
		l.EndTime = 60
		l.BidCount = 1
	})
	ts := ResolveTimeStatus(l, testNow)
	req.Equal(PhaseActive, ts.Phase)
	req.Zero(ts.ActualEnd)
}

func TestAuctionAbsoluteTimes(t *testing.T) {
	req := require.New(t)

	l := auction(func(l *Listing) {
		l.StartTime = testNow.Unix() + 100
		l.EndTime = testNow.Unix() + 200
	})
	req.Equal(PhaseNotStarted, ResolveTimeStatus(l, testNow).Phase)
	req.Equal(PhaseActive, ResolveTimeStatus(l, testNow.Add(150*time.Second)).Phase)
	req.Equal(PhaseEnded, ResolveTimeStatus(l, testNow.Add(300*time.Second)).Phase)
}

func TestFixedPriceImmediatelyActive(t *testing.T) {
	req := require.New(t)

	l := auction(func(l *Listing) {
		l.Type = TypeFixedPrice
		l.StartTime = 0
		l.EndTime = 604800 // below the sanity floor, not a deadline
	})
	ts := ResolveTimeStatus(l, testNow)
	req.Equal(PhaseActive, ts.Phase)
	req.Zero(ts.ActualEnd)

	// endTime above the sanity floor is trusted as absolute
	l.EndTime = testNow.Unix() - 10
	req.Equal(PhaseEnded, ResolveTimeStatus(l, testNow).Phase)
}

func TestLedgerStatusOverridesPhase(t *testing.T) {
	req := require.New(t)

	l := auction(func(l *Listing) {
		l.StartTime = testNow.Unix() - 100
		l.EndTime = testNow.Unix() + 100
		l.Status = StatusCancelled
	})
	req.Equal(PhaseEnded, ResolveTimeStatus(l, testNow).Phase)

	l.Status = StatusFinalized
	req.Equal(PhaseEnded, ResolveTimeStatus(l, testNow).Phase)
}

func TestFormatRemaining(t *testing.T) {
	req := require.New(t)

	req.Equal("2d 3h 4m", FormatRemaining(51*time.Hour+4*time.Minute))
	req.Equal("3h 0m", FormatRemaining(3*time.Hour))
	req.Equal("5m", FormatRemaining(5*time.Minute+30*time.Second))
	req.Equal("42s", FormatRemaining(42*time.Second))
	req.Equal("", FormatRemaining(0))
}
