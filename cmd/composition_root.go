package cmd

import (
	"io"
	"log/slog"

	"pizzeria/internal/adapters/in/console"
	"pizzeria/internal/adapters/out/geo"
	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/jobs"
	"pizzeria/internal/scheduler"
)

// CompositionRoot wires every adapter, repository, and handler. The
// long-lived pieces (repositories, registry, scheduler, notifier) are
// created once; handlers are cheap and created per request.
type CompositionRoot struct {
	config    Config
	logger    *slog.Logger
	users     *memory.UserRepository
	feedback  *memory.FeedbackLog
	discounts *discount.Registry
	estimator *geo.Client
	notifier  *console.Notifier
	scheduler *scheduler.Scheduler
}

// NewCompositionRoot builds the object graph. Notifications are printed to
// out, which is also where the console menu writes.
func NewCompositionRoot(config Config, out io.Writer, logger *slog.Logger) CompositionRoot {
	notifier := console.NewNotifier(out)

	return CompositionRoot{
		config:    config,
		logger:    logger,
		users:     memory.NewUserRepository(),
		feedback:  memory.NewFeedbackLog(),
		discounts: discount.NewRegistry(),
		estimator: geo.NewClient(geo.Config{
			NominatimURL: config.NominatimURL,
			OSRMURL:      config.OSRMURL,
			ShopLat:      config.ShopLat,
			ShopLon:      config.ShopLon,
			Timeout:      config.HTTPTimeout,
		}, logger),
		notifier:  notifier,
		scheduler: scheduler.New(config.StatusDelay, notifier, logger),
	}
}

// Scheduler returns the progression scheduler so the caller can stop it at
// shutdown.
func (c *CompositionRoot) Scheduler() *scheduler.Scheduler {
	return c.scheduler
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.users, c.discounts, c.estimator, c.logger)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	return commands.NewCompletePaymentCommandHandler(c.users, c.scheduler, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	return commands.NewReorderCommandHandler(c.users, c.discounts, c.scheduler, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateDefineDiscountCommandHandler() commands.DefineDiscountCommandHandler {
	return commands.NewDefineDiscountCommandHandler(c.discounts, c.logger)
}

func (c *CompositionRoot) CreateRecordFeedbackCommandHandler() commands.RecordFeedbackCommandHandler {
	return commands.NewRecordFeedbackCommandHandler(c.users, c.feedback, c.logger)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.users)
}

func (c *CompositionRoot) CreateGetPriceBreakdownQueryHandler() queries.GetPriceBreakdownQueryHandler {
	return queries.NewGetPriceBreakdownQueryHandler(c.users)
}

func (c *CompositionRoot) CreateListDiscountsQueryHandler() queries.ListDiscountsQueryHandler {
	return queries.NewListDiscountsQueryHandler(c.discounts)
}

func (c *CompositionRoot) CreateListFeedbackQueryHandler() queries.ListFeedbackQueryHandler {
	return queries.NewListFeedbackQueryHandler(c.feedback)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.users, c.config.KitchenReportSpec, c.logger)
}

// CreateConsole wires the interactive menu against in and out.
func (c *CompositionRoot) CreateConsole(in io.Reader, out io.Writer) *console.Console {
	return console.New(in, out, console.Handlers{
		PlaceOrder:      c.CreatePlaceOrderCommandHandler(),
		CompletePayment: c.CreateCompletePaymentCommandHandler(),
		Reorder:         c.CreateReorderCommandHandler(),
		DefineDiscount:  c.CreateDefineDiscountCommandHandler(),
		RecordFeedback:  c.CreateRecordFeedbackCommandHandler(),
		OrderHistory:    c.CreateGetOrderHistoryQueryHandler(),
		PriceBreakdown:  c.CreateGetPriceBreakdownQueryHandler(),
		ListDiscounts:   c.CreateListDiscountsQueryHandler(),
		ListFeedback:    c.CreateListFeedbackQueryHandler(),
	}, c.logger)
}
