// internal/common/wallet/eth.go
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"acadgrant/internal/common/logger"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
)

// Backend is the part of an Ethereum client a payment needs.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type EthConfig struct {
	RPCURL       string
	PrivateKey   string // hex, with or without 0x
	ChainID      int64  // 0 asks the node
	PollInterval time.Duration
}

// EthProvider signs value transfers with a configured key and submits them
// over JSON-RPC.
type EthProvider struct {
	backend      Backend
	key          *ecdsa.PrivateKey
	chainID      *big.Int
	pollInterval time.Duration
	logger       logger.Logger
}

func NewEthProvider(cfg EthConfig, log logger.Logger) (*EthProvider, error) {
	var backend Backend
	if cfg.RPCURL != "" {
		client, err := ethclient.Dial(cfg.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", cfg.RPCURL, err)
		}
		backend = client
	}
	return NewEthProviderWithBackend(backend, cfg, log)
}

func NewEthProviderWithBackend(backend Backend, cfg EthConfig, log logger.Logger) (*EthProvider, error) {
	p := &EthProvider{
		backend:      backend,
		pollInterval: cfg.PollInterval,
		logger:       log.WithFields(map[string]interface{}{"component": "wallet"}),
	}
	if p.pollInterval <= 0 {
		p.pollInterval = time.Second
	}
	if cfg.ChainID > 0 {
		p.chainID = big.NewInt(cfg.ChainID)
	}
	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse wallet key: %w", err)
		}
		p.key = key
	}
	return p, nil
}

func (p *EthProvider) Accounts(_ context.Context) ([]string, error) {
	if p.key == nil {
		return nil, nil
	}
	return []string{crypto.PubkeyToAddress(p.key.PublicKey).Hex()}, nil
}

func (p *EthProvider) RequestAccountAndSigner(ctx context.Context) (Signer, error) {
	if p.backend == nil {
		return nil, fmt.Errorf("%w: no rpc endpoint configured", ErrWalletUnavailable)
	}
	if p.key == nil {
		return nil, fmt.Errorf("%w: no account configured", ErrWalletUnavailable)
	}

	chainID := p.chainID
	if chainID == nil {
		id, err := p.backend.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: chain id: %v", ErrWalletUnavailable, err)
		}
		chainID = id
	}

	return &ethSigner{
		key:     p.key,
		address: crypto.PubkeyToAddress(p.key.PublicKey),
		chainID: chainID,
	}, nil
}

func (p *EthProvider) SendPayment(ctx context.Context, signer Signer, to string, amountWei *big.Int) (PendingPayment, error) {
	s, ok := signer.(*ethSigner)
	if !ok {
		return nil, fmt.Errorf("%w: signer %T was not issued by this provider", ErrWalletUnavailable, signer)
	}
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("%w: invalid recipient address %q", ErrTransactionFailed, to)
	}
	if amountWei == nil || amountWei.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid amount", ErrTransactionFailed)
	}

	nonce, err := p.backend.PendingNonceAt(ctx, s.address)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce: %v", ErrTransactionFailed, err)
	}
	gasPrice, err := p.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: gas price: %v", ErrTransactionFailed, err)
	}

	recipient := common.HexToAddress(to)
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &recipient,
		Value:    amountWei,
		Gas:      params.TxGas,
		GasPrice: gasPrice,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %v", ErrTransactionFailed, err)
	}
	if err := p.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("%w: send: %v", ErrTransactionFailed, err)
	}

	p.logger.Info("payment submitted", map[string]interface{}{
		"txHash": signed.Hash().Hex(),
		"from":   s.address.Hex(),
		"to":     recipient.Hex(),
		"amount": FormatEther(amountWei),
		"nonce":  nonce,
	})

	return &ethPayment{backend: p.backend, tx: signed, poll: p.pollInterval, logger: p.logger}, nil
}

type ethSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

func (s *ethSigner) Address() string {
	return s.address.Hex()
}

type ethPayment struct {
	backend Backend
	tx      *types.Transaction
	poll    time.Duration
	logger  logger.Logger
}

func (e *ethPayment) Hash() string {
	return e.tx.Hash().Hex()
}

func (e *ethPayment) Wait(ctx context.Context) (*Receipt, error) {
	ticker := time.NewTicker(e.poll)
	defer ticker.Stop()

	for {
		receipt, err := e.backend.TransactionReceipt(ctx, e.tx.Hash())
		switch {
		case err == nil && receipt != nil:
			if receipt.Status == types.ReceiptStatusFailed {
				return nil, fmt.Errorf("%w: %s reverted", ErrTransactionFailed, e.Hash())
			}
			out := &Receipt{TransactionHash: e.Hash()}
			if receipt.BlockNumber != nil {
				out.BlockNumber = receipt.BlockNumber.Uint64()
			}
			return out, nil
		case err != nil && !errors.Is(err, ethereum.NotFound):
			e.logger.Debug("receipt lookup failed", map[string]interface{}{
				"txHash": e.Hash(),
				"error":  err,
			})
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", e.Hash(), ctx.Err())
		case <-ticker.C:
		}
	}
}
