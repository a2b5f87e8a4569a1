package marketplace

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	mAbi "github.com/x-xyz/marketclient/base/abi"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/chain"
)

type Cfg struct {
	Chain chain.Client
	// Contracts maps chain id to the deployed marketplace contract, which
	// is also the erc20 spender for token-denominated payments.
	Contracts map[domain.ChainId]domain.Address
}

type impl struct {
	chain     chain.Client
	contracts map[domain.ChainId]domain.Address
}

func New(cfg *Cfg) domain.Marketplace {
	return &impl{
		chain:     cfg.Chain,
		contracts: cfg.Contracts,
	}
}

func (m *impl) Spender(chainId domain.ChainId) domain.Address {
	return m.contracts[chainId]
}

func (m *impl) Sender() domain.Address {
	return domain.Address(m.chain.Sender().Hex()).ToLower()
}

func (m *impl) contract(chainId domain.ChainId) (common.Address, error) {
	addr, ok := m.contracts[chainId]
	if !ok {
		return common.Address{}, domain.ErrUnsupportedChain
	}
	return common.HexToAddress(string(addr)), nil
}

func (m *impl) transact(ctx bCtx.Ctx, chainId domain.ChainId, value *big.Int, method string, params ...interface{}) (*domain.Receipt, error) {
	addr, err := m.contract(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := m.chain.Transact(ctx, int32(chainId), addr, value, mAbi.MarketplaceABI, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"method":  method,
			"err":     err,
		}).Warn("marketplace transact failed")
		return nil, err
	}
	return toReceipt(receipt), nil
}

func toReceipt(r *types.Receipt) *domain.Receipt {
	return &domain.Receipt{
		TxHash:      domain.TxHash(r.TxHash.Hex()).ToLower(),
		BlockNumber: domain.BlockNumber(r.BlockNumber.Uint64()),
		GasUsed:     r.GasUsed,
	}
}

func parseListingId(id domain.ListingId) (*big.Int, error) {
	v, ok := new(big.Int).SetString(id.String(), 10)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	return v, nil
}

func (m *impl) Bid(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, value *big.Int, increaseOnly bool) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, value, "bid", id, increaseOnly)
}

func (m *impl) Purchase(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, quantity int64, value *big.Int) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, value, "purchase", id, big.NewInt(quantity))
}

func (m *impl) Offer(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, value *big.Int, increaseOnly bool) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, value, "offer", id, increaseOnly)
}

func (m *impl) Accept(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, offerers []domain.Address, amounts []*big.Int, maxAmount *big.Int) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	addrs := make([]common.Address, len(offerers))
	for i, o := range offerers {
		addrs[i] = common.HexToAddress(string(o))
	}
	return m.transact(ctx, chainId, nil, "accept", id, addrs, amounts, maxAmount)
}

func (m *impl) Cancel(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, holdbackBPS uint16) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, nil, "cancel", id, holdbackBPS)
}

func (m *impl) Finalize(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, nil, "finalize", id)
}

func (m *impl) ModifyListing(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, initialAmount *big.Int, startTime, endTime int64) (*domain.Receipt, error) {
	id, err := parseListingId(listingId)
	if err != nil {
		return nil, err
	}
	return m.transact(ctx, chainId, nil, "modifyListing", id, initialAmount, big.NewInt(startTime), big.NewInt(endTime))
}

func (m *impl) Approve(ctx bCtx.Ctx, chainId domain.ChainId, token domain.Address, amount *big.Int) (*domain.Receipt, error) {
	spender, err := m.contract(chainId)
	if err != nil {
		return nil, err
	}
	receipt, err := m.chain.Transact(ctx, int32(chainId), common.HexToAddress(string(token)), nil, mAbi.ERC20TokenABI, "approve", spender, amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"token":   token,
			"err":     err,
		}).Warn("erc20 approve failed")
		return nil, err
	}
	return toReceipt(receipt), nil
}
