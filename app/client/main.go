package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	bValidator "github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	mmiddleware "github.com/x-xyz/marketclient/middleware"
	"github.com/x-xyz/marketclient/service/chain"
	"github.com/x-xyz/marketclient/service/indexer"
	"github.com/x-xyz/marketclient/service/marketplace"
	"github.com/x-xyz/marketclient/service/notifier"
	currency_usecase "github.com/x-xyz/marketclient/stores/currency/usecase"
	listing_repository "github.com/x-xyz/marketclient/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketclient/stores/listing/usecase"
	market_delivery "github.com/x-xyz/marketclient/stores/market/delivery/http"
	market_usecase "github.com/x-xyz/marketclient/stores/market/usecase"
	notification_usecase "github.com/x-xyz/marketclient/stores/notification/usecase"
	payment_usecase "github.com/x-xyz/marketclient/stores/payment/usecase"
	pricing_usecase "github.com/x-xyz/marketclient/stores/pricing/usecase"
)

func init() {
	configFile := pflag.StringP("config", "c", "infra/configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	contracts := make(map[domain.ChainId]domain.Address)
	subgraphs := make(map[domain.ChainId]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		contracts[domain.ChainId(chainId)] = domain.Address(networks.GetString(fmt.Sprintf("%s.marketplace", k))).ToLower()
		subgraphs[domain.ChainId(chainId)] = networks.GetString(fmt.Sprintf("%s.subgraphUrl", k))
	}

	privateKey, err := crypto.HexToECDSA(viper.GetString("wallet.privateKey"))
	if err != nil {
		context.WithField("err", err).Panic("invalid wallet private key")
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:    rpcs,
		PrivateKey: privateKey,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	httpTimeout := viper.GetDuration("http.timeout")
	indexerClient := indexer.NewClient(&indexer.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Endpoints:  subgraphs,
	})
	notifierClient := notifier.NewClient(&notifier.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    httpTimeout,
		Endpoint:   viper.GetString("notifier.endpoint"),
		Apikey:     viper.GetString("notifier.apikey"),
	})

	marketplaceService := marketplace.New(&marketplace.Cfg{
		Chain:     chainService,
		Contracts: contracts,
	})

	// construct repository, usecase and delivery
	listingRepo := listing_repository.NewListingRepo(indexerClient)
	currencyResolver := currency_usecase.NewResolver(&currency_usecase.ResolverCfg{
		Chain: chainService,
	})
	pricingEngine := pricing_usecase.NewEngine(&pricing_usecase.EngineCfg{
		IncrementBPS: viper.GetInt64("market.incrementBPS"),
	})
	listingUC := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Repo:     listingRepo,
		Currency: currencyResolver,
		Pricing:  pricingEngine,
	})
	orchestrator := payment_usecase.NewOrchestrator(&payment_usecase.OrchestratorCfg{
		Marketplace:    marketplaceService,
		Currency:       currencyResolver,
		SettleDelay:    viper.GetDuration("market.settleDelay"),
		ConfirmTimeout: viper.GetDuration("market.confirmTimeout"),
	})
	dispatcher := notification_usecase.NewDispatcher(&notification_usecase.DispatcherCfg{
		Sink: notifierClient,
	})
	marketUC := market_usecase.NewCoordinator(&market_usecase.CoordinatorCfg{
		Repo:         listingRepo,
		Pricing:      pricingEngine,
		Currency:     currencyResolver,
		Orchestrator: orchestrator,
		Dispatcher:   dispatcher,
		Marketplace:  marketplaceService,
	})

	market_delivery.New(e, marketUC, listingUC)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": marketplaceService.Sender(),
		})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
