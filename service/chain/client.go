package chain

import (
	"crypto/ecdsa"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
)

type ClientCfg struct {
	RpcUrls map[int32]string
	// PrivateKey signs every outbound transaction.
	PrivateKey *ecdsa.PrivateKey
}

type Client interface {
	// Call performs a read-only contract call.
	Call(bCtx.Ctx, int32, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact submits a signed transaction and blocks until it is mined.
	// A mined-but-reverted transaction returns the receipt together with an
	// error wrapping domain.ErrReverted; pre-broadcast failures wrap
	// domain.ErrSubmission.
	Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error)
	// Sender is the address of the signing account.
	Sender() common.Address
}

type clientImpl struct {
	clients    map[int32]*ethclient.Client
	privateKey *ecdsa.PrivateKey
	sender     common.Address

	// nonceMutex serializes nonce reservation across concurrent flows
	nonceMutex sync.Mutex
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[int32]*ethclient.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the client start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients:    clients,
		privateKey: cfg.PrivateKey,
		sender:     crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
	}, anyerr
}

func (c *clientImpl) Sender() common.Address {
	return c.sender
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId int32, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, chainId int32, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*types.Receipt, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}
	if value == nil {
		value = new(big.Int)
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, xerrors.Errorf("pack %s: %v: %w", method, err, domain.ErrSubmission)
	}

	signed, err := c.signTx(ctx, client, chainId, addr, value, data)
	if err != nil {
		return nil, err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, xerrors.Errorf("send %s: %v: %w", method, err, domain.ErrSubmission)
	}

	receipt, err := bind.WaitMined(ctx, client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"txHash": signed.Hash().Hex(),
			"err":    err,
		}).Error("bind.WaitMined failed")
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		reason := c.revertReason(ctx, client, signed, receipt)
		ctx.WithFields(log.Fields{
			"txHash": signed.Hash().Hex(),
			"method": method,
			"reason": reason,
		}).Warn("transaction reverted")
		if reason == "" {
			return receipt, xerrors.Errorf("%s: %w", method, domain.ErrReverted)
		}
		return receipt, xerrors.Errorf("%s: %s: %w", method, reason, domain.ErrReverted)
	}
	return receipt, nil
}

func (c *clientImpl) signTx(ctx bCtx.Ctx, client *ethclient.Client, chainId int32, addr common.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	c.nonceMutex.Lock()
	defer c.nonceMutex.Unlock()

	nonce, err := client.PendingNonceAt(ctx, c.sender)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, xerrors.Errorf("nonce: %v: %w", err, domain.ErrSubmission)
	}
	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, xerrors.Errorf("gas price: %v: %w", err, domain.ErrSubmission)
	}
	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From:     c.sender,
		To:       &addr,
		Value:    value,
		Data:     data,
		GasPrice: gasPrice,
	})
	if err != nil {
		// estimation runs the call; a failure here is the ledger rejecting
		// the action before broadcast
		ctx.WithField("err", err).Warn("client.EstimateGas failed")
		return nil, xerrors.Errorf("estimate gas: %v: %w", err, domain.ErrSubmission)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &addr,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(big.NewInt(int64(chainId))), c.privateKey)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, xerrors.Errorf("sign: %v: %w", err, domain.ErrSubmission)
	}
	return signed, nil
}

// revertReason replays the reverted transaction as a call at its block to
// recover the ledger's reason string. Best effort only.
func (c *clientImpl) revertReason(ctx bCtx.Ctx, client *ethclient.Client, tx *types.Transaction, receipt *types.Receipt) string {
	msg := ethereum.CallMsg{
		From:     c.sender,
		To:       tx.To(),
		Value:    tx.Value(),
		Data:     tx.Data(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
	}
	if _, err := client.CallContract(ctx, msg, receipt.BlockNumber); err != nil {
		return err.Error()
	}
	return ""
}
