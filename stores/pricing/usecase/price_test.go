package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

func mustBig(t *testing.T, s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func TestMinimumBid(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(&EngineCfg{})

	l := &listing.Listing{
		Type:          listing.TypeIndividualAuction,
		TokenType:     domain.TokenType721,
		InitialAmount: mustBig(t, "1000000000000000000"),
	}

	// no bids: reserve price
	min, err := engine.MinimumBid(l)
	req.NoError(err)
	req.Equal("1000000000000000000", min.String())

	// highest bid of 1.0: plus 5% increment
	l.HighestBid = &listing.Bid{Amount: mustBig(t, "1000000000000000000")}
	min, err = engine.MinimumBid(l)
	req.NoError(err)
	req.Equal("1050000000000000000", min.String())

	// increment floors, never rounds up
	l.HighestBid = &listing.Bid{Amount: big.NewInt(101)}
	min, err = engine.MinimumBid(l)
	req.NoError(err)
	req.Equal("106", min.String()) // 101 + floor(101*500/10000) = 101 + 5
}

func TestMinimumBidCustomIncrement(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(&EngineCfg{IncrementBPS: 1000})

	l := &listing.Listing{
		InitialAmount: big.NewInt(1000),
		HighestBid:    &listing.Bid{Amount: big.NewInt(1000)},
	}
	min, err := engine.MinimumBid(l)
	req.NoError(err)
	req.Equal("1100", min.String())
}

func TestTotalCost(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(&EngineCfg{})

	l := &listing.Listing{
		Type:           listing.TypeFixedPrice,
		TokenType:      domain.TokenType1155,
		InitialAmount:  mustBig(t, "500000000000000000"),
		TotalAvailable: 100,
		TotalPerSale:   4,
		TotalSold:      0,
	}

	cost, err := engine.TotalCost(l, 3)
	req.NoError(err)
	req.Equal("1500000000000000000", cost.Total.String())
	req.Equal("500000000000000000", cost.PerUnit.String())
	req.EqualValues(12, cost.CopiesReceived)
}

func TestMaxPurchasable(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(&EngineCfg{})

	l := &listing.Listing{
		TokenType:      domain.TokenType1155,
		InitialAmount:  big.NewInt(1),
		TotalAvailable: 10,
		TotalPerSale:   4,
		TotalSold:      3,
	}
	// 7 copies remaining, 4 per sale: one whole purchase unit
	req.EqualValues(1, engine.MaxPurchasable(l))

	l.TotalSold = 10
	req.EqualValues(0, engine.MaxPurchasable(l))

	// unique tokens are always a single unit
	unique := &listing.Listing{TokenType: domain.TokenType721, InitialAmount: big.NewInt(1)}
	req.EqualValues(1, engine.MaxPurchasable(unique))
}

func TestTotalCostValidation(t *testing.T) {
	req := require.New(t)
	engine := NewEngine(&EngineCfg{})

	l := &listing.Listing{
		TokenType:      domain.TokenType1155,
		InitialAmount:  big.NewInt(100),
		TotalAvailable: 8,
		TotalPerSale:   4,
	}

	for _, quantity := range []int64{0, -1, 3} {
		_, err := engine.TotalCost(l, quantity)
		req.ErrorIs(err, domain.ErrInvalidQuantity, "quantity=%d", quantity)
	}

	// exactly at the max is fine
	cost, err := engine.TotalCost(l, 2)
	req.NoError(err)
	req.Equal("200", cost.Total.String())
	req.EqualValues(8, cost.CopiesReceived)
}
