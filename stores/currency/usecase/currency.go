package usecase

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	mAbi "github.com/x-xyz/marketclient/base/abi"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/currency"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
	"github.com/x-xyz/marketclient/service/chain"
)

var nativeSymbols = map[domain.ChainId]string{
	1:     "ETH",
	5:     "ETH",
	10:    "ETH",
	137:   "MATIC",
	42161: "ETH",
}

type ResolverCfg struct {
	Chain chain.Client
}

type impl struct {
	chain chain.Client
	// descriptorCache holds symbol/decimals only. Allowances are never
	// cached; the ledger is the sole source of truth for them.
	descriptorCache cache.Service
}

func NewResolver(cfg *ResolverCfg) currency.Resolver {
	return &impl{
		chain: cfg.Chain,
		descriptorCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   "currency_descriptor",
			Cache: primitive.NewPrimitive("currency_descriptor", 8),
		}),
	}
}

func nativeInfo(chainId domain.ChainId) *currency.Info {
	symbol, ok := nativeSymbols[chainId]
	if !ok {
		symbol = "ETH"
	}
	return &currency.Info{
		ChainId:  chainId,
		Address:  domain.EmptyAddress,
		IsNative: true,
		Symbol:   symbol,
		Decimals: currency.NativeDecimals,
	}
}

func (r *impl) Resolve(ctx bCtx.Ctx, chainId domain.ChainId, token domain.Address) (*currency.Info, error) {
	if token.IsNative() {
		return nativeInfo(chainId), nil
	}
	info, err := r.resolveToken(ctx, chainId, token)
	if err != nil {
		// display paths favor availability over precision
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"token":   token,
			"err":     err,
		}).Warn("token unreadable, using degraded descriptor")
		return &currency.Info{
			ChainId:  chainId,
			Address:  token.ToLower(),
			Symbol:   currency.DegradedSymbol,
			Decimals: currency.DegradedDecimals,
		}, nil
	}
	return info, nil
}

func (r *impl) ResolvePayment(ctx bCtx.Ctx, chainId domain.ChainId, token domain.Address) (*currency.Info, error) {
	if token.IsNative() {
		return nativeInfo(chainId), nil
	}
	info, err := r.resolveToken(ctx, chainId, token)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"token":   token,
			"err":     err,
		}).Error("payment currency unresolvable")
		return nil, xerrors.Errorf("resolve %s: %v: %w", token, err, domain.ErrAllowanceResolution)
	}
	return info, nil
}

func (r *impl) resolveToken(ctx bCtx.Ctx, chainId domain.ChainId, token domain.Address) (*currency.Info, error) {
	var info currency.Info
	key := fmt.Sprintf("%d:%s", chainId, token.ToLowerStr())
	if err := r.descriptorCache.GetByFunc(ctx, key, &info, func() (interface{}, error) {
		return r.readToken(ctx, chainId, token)
	}); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *impl) readToken(ctx bCtx.Ctx, chainId domain.ChainId, token domain.Address) (*currency.Info, error) {
	addr := common.HexToAddress(string(token))

	res, err := r.chain.Call(ctx, int32(chainId), addr, nil, mAbi.ERC20TokenABI, "symbol")
	if err != nil {
		return nil, err
	}
	symbol, ok := res[0].(string)
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	res, err = r.chain.Call(ctx, int32(chainId), addr, nil, mAbi.ERC20TokenABI, "decimals")
	if err != nil {
		return nil, err
	}
	decimals, ok := res[0].(uint8)
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	return &currency.Info{
		ChainId:  chainId,
		Address:  token.ToLower(),
		Symbol:   symbol,
		Decimals: int32(decimals),
	}, nil
}

func (r *impl) Allowance(ctx bCtx.Ctx, chainId domain.ChainId, token, owner, spender domain.Address) (*big.Int, error) {
	if token.IsNative() {
		return nil, domain.ErrBadParamInput
	}
	res, err := r.chain.Call(ctx, int32(chainId), common.HexToAddress(string(token)), nil, mAbi.ERC20TokenABI, "allowance",
		common.HexToAddress(string(owner)), common.HexToAddress(string(spender)))
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"token":   token,
			"owner":   owner,
			"err":     err,
		}).Error("allowance read failed")
		return nil, xerrors.Errorf("allowance %s: %v: %w", token, err, domain.ErrAllowanceResolution)
	}
	allowance, ok := res[0].(*big.Int)
	if !ok {
		return nil, domain.ErrAllowanceResolution
	}
	return allowance, nil
}
