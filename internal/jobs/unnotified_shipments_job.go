package jobs

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	// DefaultUnnotifiedReportSchedule runs at second 0 of every fifth minute.
	DefaultUnnotifiedReportSchedule = "0 */5 * * * *"

	// shipments younger than this may still have a dispatch in flight
	unnotifiedGracePeriod = time.Minute
	unnotifiedReportLimit = 100
	unnotifiedRunTimeout  = 30 * time.Second
)

type UnnotifiedShipmentsReader interface {
	Handle(ctx context.Context, query queries.GetUnnotifiedShipmentsQuery) ([]queries.UnnotifiedShipment, error)
}

// UnnotifiedShipmentsJob warns about Shipped orders whose customer was never
// told, so an operator can resend the notification. It never sends anything itself.
type UnnotifiedShipmentsJob struct {
	reader   UnnotifiedShipmentsReader
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
	now      func() time.Time
}

func NewUnnotifiedShipmentsJob(reader UnnotifiedShipmentsReader, schedule string, logger *zap.Logger) *UnnotifiedShipmentsJob {
	if schedule == "" {
		schedule = DefaultUnnotifiedReportSchedule
	}
	return &UnnotifiedShipmentsJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "unnotified_shipments_job")),
		now:      time.Now,
	}
}

// Start registers the job. An invalid schedule is returned as an error.
func (j *UnnotifiedShipmentsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), unnotifiedRunTimeout)
		defer cancel()

		if _, err := j.Run(ctx); err != nil {
			j.logger.Error("unnotified shipments report failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("unnotified shipments job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running report to finish.
func (j *UnnotifiedShipmentsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("unnotified shipments job stopped")
}

// Run performs one report and returns how many shipments were flagged.
func (j *UnnotifiedShipmentsJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetUnnotifiedShipmentsQuery(j.now().Add(-unnotifiedGracePeriod), unnotifiedReportLimit)
	if err != nil {
		return 0, err
	}

	shipments, err := j.reader.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, shipment := range shipments {
		j.logger.Warn("customer has not been sent tracking details",
			zap.String("order_id", shipment.ID.String()),
			zap.String("customer_email", shipment.CustomerEmail),
			zap.String("tracking_number", shipment.TrackingNumber),
			zap.String("shipping_carrier", shipment.ShippingCarrier),
			zap.Time("shipped_at", shipment.ShippedAt),
		)
	}
	if len(shipments) == unnotifiedReportLimit {
		j.logger.Warn("unnotified shipments report truncated", zap.Int("limit", unnotifiedReportLimit))
	}

	return len(shipments), nil
}
