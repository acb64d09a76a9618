package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/perfume-shop/docs"
	"github.com/SergeyBogomolovv/perfume-shop/internal/app"
	"github.com/SergeyBogomolovv/perfume-shop/internal/config"
	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/internal/handler"
	"github.com/SergeyBogomolovv/perfume-shop/internal/notify"
	"github.com/SergeyBogomolovv/perfume-shop/internal/payment"
	"github.com/SergeyBogomolovv/perfume-shop/internal/postgres"
	"github.com/SergeyBogomolovv/perfume-shop/internal/repo"
	"github.com/SergeyBogomolovv/perfume-shop/internal/service"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/cache"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Perfume Shop API
// @version         1.0
// @description     Оформление заказов и прием платежей через мобильные кошельки
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	service.RegisterMetrics()
	handler.RegisterMetrics()

	txManager := trm.NewManager(db)
	productRepo := repo.NewProductRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	notifier := newNotifier(logger, conf)
	gateway, simulator := newPaymentGateway(logger, conf.Payment)

	checkoutService := service.NewCheckoutService(
		logger,
		txManager,
		productRepo,
		orderRepo,
		gateway,
		notifier,
		service.NewIDGenerator(conf.Payment.ReferenceNamespace),
		service.NewPhoneNormalizer(conf.Payment.CountryCode, conf.Payment.CarrierPrefixes),
		service.CheckoutConfig{
			PaymentTimeout: conf.Payment.Timeout,
			NotifyTimeout:  conf.Notify.Timeout,
		},
	)
	paymentService := service.NewPaymentService(logger, txManager, productRepo, orderRepo, cache, notifier, conf.Payment.SuccessCode, conf.Notify.Timeout)
	orderService := service.NewOrderService(logger, txManager, orderRepo, cache, notifier, conf.Notify.Timeout)

	closers := []io.Closer{notifier}
	if simulator != nil {
		simulator.OnSettle(func(ctx context.Context, cb entities.PaymentCallback) error {
			_, err := paymentService.HandleCallback(ctx, cb)
			return err
		})
		closers = append(closers, simulator)
	}

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, paymentService, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(cache)
	app.SetClosers(closers...)

	if conf.Notify.RelayEnabled {
		gatewayClient := notify.NewGatewayClient(conf.Notify.GatewayURL, conf.Notify.GatewayToken, conf.Notify.Timeout)
		app.SetConsumers(handler.NewNotificationRelay(logger, conf.Kafka, gatewayClient))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type notifier interface {
	service.Notifier
	io.Closer
}

func newNotifier(logger *slog.Logger, conf config.Config) notifier {
	switch conf.Notify.Driver {
	case "rabbitmq":
		return notify.NewRabbitSender(logger, conf.RabbitMQ)
	case "log":
		return notify.NewLogSender(logger)
	default:
		return notify.NewKafkaSender(logger, conf.Kafka)
	}
}

// newPaymentGateway returns the simulator as well when it is selected, so its callbacks can be wired.
func newPaymentGateway(logger *slog.Logger, conf config.Payment) (service.PaymentGateway, *payment.Simulator) {
	if conf.Driver == "http" {
		return payment.NewClient(logger, conf), nil
	}
	sim := payment.NewSimulator(logger, conf.SimulatorDelay, conf.SuccessCode)
	return sim, sim
}
