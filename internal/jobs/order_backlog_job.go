package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// DefaultBacklogSchedule runs the backlog report at the start of every minute.
const DefaultBacklogSchedule = "0 * * * * *"

type backlogQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.OrderBacklog, error)
}

// OrderBacklogJob periodically reports the number of open orders per status.
type OrderBacklogJob struct {
	handler  backlogQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderBacklogJob(handler backlogQueryHandler, schedule string, logger *slog.Logger) *OrderBacklogJob {
	if schedule == "" {
		schedule = DefaultBacklogSchedule
	}
	return &OrderBacklogJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started", "schedule", j.schedule)
	return nil
}

// Run produces one backlog report.
func (j *OrderBacklogJob) Run(ctx context.Context) {
	backlog, err := j.handler.Handle(ctx, queries.NewGetOrderBacklogQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order backlog",
		"pending", backlog[order.Pending],
		"in_progress", backlog[order.InProgress],
		"open", backlog.Open(),
	)
}

// Stop waits for a running report to finish.
func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
