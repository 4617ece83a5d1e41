package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// KitchenReportJob periodically logs a snapshot of every order still in
// flight. The report gives operators a view of the kitchen load without
// interrupting the console flow; orders in a terminal status are skipped.
type KitchenReportJob struct {
	users  ports.UserRepository
	cron   *cron.Cron
	spec   string
	logger *slog.Logger
}

// NewKitchenReportJob creates a job that reports open orders on the given
// cron spec (with a seconds field, e.g. "*/30 * * * * *").
func NewKitchenReportJob(users ports.UserRepository, spec string, logger *slog.Logger) *KitchenReportJob {
	return &KitchenReportJob{
		users:  users,
		cron:   cron.New(cron.WithSeconds()),
		spec:   spec,
		logger: logger.With("component", "kitchen_report_job"),
	}
}

// Start begins the periodic kitchen report.
func (j *KitchenReportJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen report job started", "spec", j.spec)
	return nil
}

// Stop stops the kitchen report job.
func (j *KitchenReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen report job stopped")
}

func (j *KitchenReportJob) report(ctx context.Context) error {
	users, err := j.users.All(ctx)
	if err != nil {
		return err
	}

	open := 0
	for _, u := range users {
		for _, o := range u.Orders() {
			status := o.Status()
			if status.IsTerminal() {
				continue
			}

			open++
			j.logger.InfoContext(ctx, "Order in flight",
				"order", o.ID().Short(),
				"user", u.Name(),
				"pizza", o.Pizza().Name(),
				"status", status.String())
		}
	}

	j.logger.InfoContext(ctx, "Kitchen report", "open_orders", open)
	return nil
}
