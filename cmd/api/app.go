package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"learnhub_checkout/internal/adapter/http/handlers"
	"learnhub_checkout/internal/adapter/http/routes"
	"learnhub_checkout/internal/adapter/notification"
	"learnhub_checkout/internal/adapter/persistence/inmemory"
	"learnhub_checkout/internal/adapter/persistence/postgres"
	"learnhub_checkout/internal/adapter/persistence/repository"
	"learnhub_checkout/internal/config"
	"learnhub_checkout/internal/domain/currency"
	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/domain/signature"
	"learnhub_checkout/internal/infrastructure/database"
	"learnhub_checkout/internal/infrastructure/fulfillment"
	"learnhub_checkout/internal/infrastructure/messaging"
	"learnhub_checkout/internal/infrastructure/payments"
	"learnhub_checkout/internal/usecase"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type stores struct {
	intents  interfaces.IPaymentIntentRepository
	grants   interfaces.IAccessGrantRepository
	courses  interfaces.ICourseRepository
	failures interfaces.ISideEffectFailureRepository
	close    func()
}

type app struct {
	router  *gin.Engine
	closers []func()
}

// close drains in-flight side effects before releasing the stores they write to.
func (a *app) close() {
	for _, c := range a.closers {
		c()
	}
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	s, err := newStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.MercadoPagoConfig{
		AccessToken:     cfg.Gateways.Checkout.AccessToken,
		NotificationURL: cfg.Gateways.Checkout.NotificationURL,
		Mock:            cfg.Gateways.Checkout.Mock,
	}, logger)
	if err != nil {
		logger.Warn("[checkout][app] checkout gateway not configured", "err", err)
	} else {
		checkoutGateway = mpGateway
	}

	var events interfaces.IEventPublisher
	var closers []func()
	if writer := messaging.NewWriter(cfg.Kafka); writer != nil {
		publisher := messaging.NewAccessGrantedPublisher(writer, logger)
		events = publisher
		closers = append(closers, func() {
			if err := publisher.Close(); err != nil {
				logger.Error("[checkout][app] kafka writer close failed", "err", err)
			}
		})
	} else {
		logger.Info("[checkout][app] no kafka brokers configured, access_granted events disabled")
	}

	runner := usecase.NewSideEffectRunner(
		fulfillment.NewInvoiceGenerator(),
		fulfillment.NewLogEmailSender(logger),
		events,
		s.failures,
		logger,
	)
	dispatcher := usecase.NewAsyncDispatcher(runner, cfg.SideEffects.Parallelism, time.Duration(cfg.SideEffects.TimeoutMs)*time.Millisecond)
	granter := usecase.NewAccessGranter(s.grants, dispatcher, logger)

	verifier := signature.NewVerifier(signature.Config{
		RedirectMerchantID:     cfg.Gateways.Redirect.MerchantID,
		RedirectMerchantSecret: cfg.Gateways.Redirect.MerchantSecret,
		CheckoutWebhookSecret:  cfg.Gateways.Checkout.WebhookSecret,
	})

	fulfillmentUseCase := usecase.NewFulfillmentUseCase(usecase.FulfillmentDeps{
		Intents:    s.intents,
		Grants:     s.grants,
		Courses:    s.courses,
		Checkout:   checkoutGateway,
		Verifier:   verifier,
		Normalizer: currency.NewNormalizer(cfg.Currency.Rates),
		Granter:    granter,
		Logger:     logger,
	}, fulfillmentConfig(cfg))
	courseUseCase := usecase.NewCourseUseCase(s.courses)
	sideEffectUseCase := usecase.NewSideEffectUseCase(runner, s.failures, s.grants)

	router := routes.NewRouter(routes.Handlers{
		Checkout:     handlers.NewCheckoutHandler(fulfillmentUseCase),
		Notification: handlers.NewNotificationHandler(fulfillmentUseCase, notification.NewCheckoutResolver(verifier, checkoutGateway, logger)),
		Admin:        handlers.NewAdminHandler(fulfillmentUseCase, sideEffectUseCase),
		Course:       handlers.NewCourseHandler(courseUseCase),
	}, cfg.Admin.Token, logger)

	closers = append([]func(){dispatcher.Wait}, closers...)
	closers = append(closers, s.close)
	return &app{router: router, closers: closers}, nil
}

func fulfillmentConfig(cfg config.Config) usecase.FulfillmentConfig {
	return usecase.FulfillmentConfig{
		SettlementCurrencies: map[entities.Gateway]string{
			entities.GatewayRedirect: cfg.Gateways.Redirect.SettlementCurrency,
			entities.GatewayCheckout: cfg.Gateways.Checkout.SettlementCurrency,
			entities.GatewayBank:     cfg.Gateways.Bank.SettlementCurrency,
		},
		StrictCurrency: cfg.Currency.Strict,
		Redirect: usecase.RedirectLaunchConfig{
			MerchantID:  cfg.Gateways.Redirect.MerchantID,
			CheckoutURL: cfg.Gateways.Redirect.CheckoutURL,
			ReturnURL:   cfg.Gateways.Redirect.ReturnURL,
			CancelURL:   cfg.Gateways.Redirect.CancelURL,
			NotifyURL:   cfg.Gateways.Redirect.NotifyURL,
		},
		Bank: usecase.BankAccountConfig{
			BankName:      cfg.Gateways.Bank.BankName,
			AccountName:   cfg.Gateways.Bank.AccountName,
			AccountNumber: cfg.Gateways.Bank.AccountNumber,
		},
	}
}

func newStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return stores{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		t := cfg.DynamoDB.Tables
		return stores{
			intents:  repository.NewPaymentIntentDynamoRepository(ddb, t.Intents),
			grants:   repository.NewAccessGrantDynamoRepository(ddb, t.Grants),
			courses:  repository.NewCourseDynamoRepository(ddb, t.Courses),
			failures: repository.NewSideEffectFailureDynamoRepository(ddb, t.SideEffectFailures),
			close:    func() {},
		}, nil

	case config.StoragePostgres:
		if err := database.RunMigrations(cfg.Postgres.URL); err != nil {
			return stores{}, fmt.Errorf("run migrations: %w", err)
		}
		pool, err := database.GetPool(ctx, cfg.Postgres.URL)
		if err != nil {
			return stores{}, fmt.Errorf("connect postgres: %w", err)
		}
		return stores{
			intents:  postgres.NewPaymentIntentRepository(pool),
			grants:   postgres.NewAccessGrantRepository(pool),
			courses:  postgres.NewCourseRepository(pool),
			failures: postgres.NewSideEffectFailureRepository(pool),
			close:    pool.Close,
		}, nil

	default:
		logger.Warn("[checkout][app] using in-memory storage, data is lost on restart")
		return stores{
			intents:  inmemory.NewPaymentIntentRepository(),
			grants:   inmemory.NewAccessGrantRepository(),
			courses:  inmemory.NewCourseRepository(),
			failures: inmemory.NewSideEffectFailureRepository(),
			close:    func() {},
		}, nil
	}
}
