package cmd

import (
	"errors"
	"fmt"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/carrierfile"
	"storefront/internal/adapters/out/notifier/httpmail"
	"storefront/internal/adapters/out/notifier/kafkanotifier"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/redislock"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/carrier"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	carriers carrier.Catalog
	notifier ports.TrackingNotifier
	lock     ports.NotificationLock

	closers []func() error
}

// NewCompositionRoot builds the outbound adapters selected by config.
// Call Close to release them.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	var err error
	if c.carriers, err = carrierfile.Load(config.CarriersFile); err != nil {
		return nil, err
	}

	if c.notifier, err = c.newNotifier(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	c.lock = c.newLock()

	return c, nil
}

func (c *CompositionRoot) newNotifier() (ports.TrackingNotifier, error) {
	switch c.config.NotifierTransport {
	case NotifierTransportKafka:
		notifier := kafkanotifier.NewNotifier(
			kafkanotifier.NewWriter(c.config.KafkaHost, c.config.KafkaTrackingTopic),
			c.logger,
		)
		c.closers = append(c.closers, notifier.Close)
		return notifier, nil
	case NotifierTransportHTTP:
		return httpmail.NewClient(c.config.MailGatewayURL, c.config.MailGatewayTimeout, c.logger)
	default:
		return nil, fmt.Errorf("unknown notifier transport %q", c.config.NotifierTransport)
	}
}

func (c *CompositionRoot) newLock() ports.NotificationLock {
	if c.config.RedisAddr == "" {
		c.logger.Warn("REDIS_ADDR is not set, concurrent notification resends are not guarded")
		return redislock.NoopLock{}
	}

	rdb := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
	c.closers = append(c.closers, rdb.Close)
	return redislock.New(rdb, c.config.ResendLockTTL)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() *commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoWFactory(),
		services.NewTrackingNotificationComposer(c.carriers),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateResendTrackingNotificationCommandHandler() *commands.ResendTrackingNotificationCommandHandler {
	return commands.NewResendTrackingNotificationCommandHandler(
		c.orderUoWFactory(),
		services.NewTrackingNotificationComposer(c.carriers),
		c.notifier,
		c.lock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnnotifiedShipmentsQueryHandler() queries.GetUnnotifiedShipmentsQueryHandler {
	return queries.NewGetUnnotifiedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:         c.CreatePlaceOrderCommandHandler(),
		TransitionStatus:   c.CreateTransitionOrderStatusCommandHandler(),
		ResendNotification: c.CreateResendTrackingNotificationCommandHandler(),
		GetOrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		ValidateTransition: queries.NewValidateTransitionQueryHandler(),
	}, c.carriers, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetUnnotifiedShipmentsQueryHandler(), c.config.UnnotifiedReportSchedule, c.logger)
}

// Close releases adapters in reverse creation order.
func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
