// cmd/grant-manager/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"acadgrant/internal/common/auth"
	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/config"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/common/observability"
	"acadgrant/internal/common/wallet"
	"acadgrant/internal/records"
	"acadgrant/internal/store"
)

func main() {
	configPath := flag.String("config", "", "config file (default: configs/config.yaml under the project root)")
	reset := flag.Bool("reset", false, "clear every stored record before starting")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service": cfg.App.Name,
		"env":     cfg.App.Environment,
	})

	log.Info("starting grant manager", map[string]interface{}{
		"version": cfg.App.Version,
		"store":   cfg.Store.Backend,
		"wallet":  cfg.Wallet.Provider,
	})

	obs := observability.New("grant-manager")
	defer obs.Shutdown()
	camunda.UseObservability(obs)

	ctx := context.Background()

	// --- Store ---
	kv, err := store.Open(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("store open failed", zap.Error(err))
	}
	defer kv.Close()

	if *reset {
		if err := kv.Clear(ctx); err != nil {
			zapLog.Fatal("store reset failed", zap.Error(err))
		}
		log.Warn("store cleared", map[string]interface{}{"backend": cfg.Store.Backend})
	}

	// --- Records ---
	authProvider, err := auth.NewProvider(cfg.Auth.Provider, cfg.Auth.BcryptCost)
	if err != nil {
		zapLog.Fatal("auth provider", zap.Error(err))
	}
	recs := records.New(kv, log, records.WithAuthProvider(authProvider))

	payer, err := newWallet(cfg.Wallet, log)
	if err != nil {
		zapLog.Fatal("wallet init failed", zap.Error(err))
	}
	decisions := records.NewDecisionService(recs, payer, records.DecisionOptions{
		ConfirmTimeout: config.GetDuration(cfg.Wallet.ConfirmTimeout),
		Observability:  obs,
	})

	// --- Zeebe ---
	zeebe, err := camunda.NewClientWithConfig(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.RequestTimeout),
	}, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	log.Info("zeebe client connected", map[string]interface{}{
		"gateway": cfg.Camunda.BrokerAddress,
	})

	reg := &registry{cfg: cfg, client: zeebe.GetClient(), log: log}
	if err := registerWorkers(ctx, reg, cfg, recs, decisions); err != nil {
		zapLog.Fatal("worker registration failed", zap.Error(err))
	}
	log.Info("workers registered", map[string]interface{}{
		"started": len(reg.workers),
	})

	srv := newServer(cfg.Server.Address, zeebe, kv, log)
	go srv.run()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping workers", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	srv.shutdown(shutdownCtx)
	reg.closeAll()
	if err := zeebe.Close(); err != nil {
		log.Error("error closing zeebe client", map[string]interface{}{"error": err})
	}

	log.Info("grant manager stopped", nil)
}

func newWallet(wcfg config.WalletConfig, log logger.Logger) (wallet.Provider, error) {
	switch wcfg.Provider {
	case config.WalletFake:
		log.Warn("using fake wallet, approvals do not move funds", nil)
		return wallet.NewFakeProvider(), nil
	default:
		p, err := wallet.NewEthProvider(wallet.EthConfig{
			RPCURL:       wcfg.RPCURL,
			PrivateKey:   wcfg.PrivateKey,
			ChainID:      wcfg.ChainID,
			PollInterval: config.GetDuration(wcfg.PollInterval),
		}, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}
