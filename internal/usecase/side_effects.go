package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/infrastructure/logging"
	"learnhub_checkout/internal/infrastructure/metrics"
	"learnhub_checkout/internal/usecase/interfaces"
)

var ErrSideEffectFailureNotFound = errors.New("side effect failure not found")

// FulfillmentTask describes the post-grant work for one intent.
type FulfillmentTask struct {
	IntentID  string
	BuyerID   string
	CourseID  string
	GrantedAt time.Time
}

// IFulfillmentDispatcher hands a task off to background execution.
type IFulfillmentDispatcher interface {
	Dispatch(task FulfillmentTask)
}

// SideEffectRunner runs invoice, email and event publication for a granted course.
// A failed step is recorded for manual retry; it never touches the grant.
type SideEffectRunner struct {
	invoices interfaces.IInvoiceGenerator
	email    interfaces.IEmailSender
	events   interfaces.IEventPublisher
	failures interfaces.ISideEffectFailureRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewSideEffectRunner(
	invoices interfaces.IInvoiceGenerator,
	email interfaces.IEmailSender,
	events interfaces.IEventPublisher,
	failures interfaces.ISideEffectFailureRepository,
	logger *slog.Logger,
) *SideEffectRunner {
	return &SideEffectRunner{
		invoices: invoices,
		email:    email,
		events:   events,
		failures: failures,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run executes every step for task.
func (r *SideEffectRunner) Run(ctx context.Context, task FulfillmentTask) error {
	return r.run(ctx, task, entities.SideEffectStageInvoice, "", 0)
}

func (r *SideEffectRunner) run(ctx context.Context, task FulfillmentTask, from entities.SideEffectStage, invoiceRef string, attempts int) error {
	ctx = logging.WithAttrs(ctx, slog.String("intent_id", task.IntentID))

	stage := from
	fail := func(err error) error {
		metrics.SideEffect(string(stage), "failed")
		r.logger.ErrorContext(ctx, "[checkout][side-effects] step failed", "stage", stage, "err", err)
		record := entities.SideEffectFailure{
			IntentID:  task.IntentID,
			BuyerID:   task.BuyerID,
			CourseID:  task.CourseID,
			Stage:     stage,
			Error:     err.Error(),
			Attempts:  attempts + 1,
			FailedAt:  r.now(),
			InvoiceID: invoiceRef,
		}
		if recErr := r.failures.Record(ctx, record); recErr != nil {
			r.logger.ErrorContext(ctx, "[checkout][side-effects] failed recording failure", "stage", stage, "err", recErr)
		}
		return fmt.Errorf("%s: %w", stage, err)
	}

	if stage == entities.SideEffectStageInvoice || invoiceRef == "" {
		stage = entities.SideEffectStageInvoice
		ref, err := r.invoices.GenerateInvoice(ctx, task.IntentID)
		if err != nil {
			return fail(err)
		}
		invoiceRef = ref
		metrics.SideEffect(string(stage), "ok")
		stage = entities.SideEffectStageEmail
	}

	if stage == entities.SideEffectStageEmail {
		if err := r.email.SendConfirmationEmail(ctx, task.BuyerID, task.CourseID, invoiceRef); err != nil {
			return fail(err)
		}
		metrics.SideEffect(string(stage), "ok")
		stage = entities.SideEffectStageEvent
	}

	if r.events != nil {
		err := r.events.PublishAccessGranted(ctx, interfaces.AccessGrantedEvent{
			IntentID:   task.IntentID,
			BuyerID:    task.BuyerID,
			CourseID:   task.CourseID,
			InvoiceRef: invoiceRef,
			GrantedAt:  task.GrantedAt,
		})
		if err != nil {
			return fail(err)
		}
		metrics.SideEffect(string(stage), "ok")
	}

	r.logger.InfoContext(ctx, "[checkout][side-effects] fulfillment completed", "invoice_ref", invoiceRef)
	return nil
}

// dispatchQueuePerWorker sizes the task buffer in front of the worker pool.
const dispatchQueuePerWorker = 64

// AsyncDispatcher runs side effects on a fixed pool of workers, detached from the
// request that produced them. Tasks wait in a bounded queue; Dispatch blocks only
// while that queue is full.
type AsyncDispatcher struct {
	runner  *SideEffectRunner
	tasks   chan FulfillmentTask
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewAsyncDispatcher(runner *SideEffectRunner, parallelism int, timeout time.Duration) *AsyncDispatcher {
	if parallelism <= 0 {
		parallelism = 1
	}
	d := &AsyncDispatcher{
		runner:  runner,
		tasks:   make(chan FulfillmentTask, parallelism*dispatchQueuePerWorker),
		timeout: timeout,
	}
	d.wg.Add(parallelism)
	for range parallelism {
		go d.work()
	}
	return d
}

func (d *AsyncDispatcher) work() {
	defer d.wg.Done()
	for task := range d.tasks {
		d.run(task)
	}
}

func (d *AsyncDispatcher) run(task FulfillmentTask) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	_ = d.runner.Run(ctx, task)
}

func (d *AsyncDispatcher) Dispatch(task FulfillmentTask) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		// The pool is gone; run inline so the task is not lost.
		d.run(task)
		return
	}
	d.tasks <- task
}

// Wait stops accepting queued work and blocks until every queued task finished.
// Used on shutdown.
func (d *AsyncDispatcher) Wait() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.tasks)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// ISideEffectUseCase is the admin surface over failed fulfillment steps.
type ISideEffectUseCase interface {
	ListFailures(ctx context.Context) ([]entities.SideEffectFailure, error)
	Retry(ctx context.Context, intentID string) error
}

type SideEffectUseCase struct {
	runner   *SideEffectRunner
	failures interfaces.ISideEffectFailureRepository
	grants   interfaces.IAccessGrantRepository
}

var _ ISideEffectUseCase = (*SideEffectUseCase)(nil)

func NewSideEffectUseCase(runner *SideEffectRunner, failures interfaces.ISideEffectFailureRepository, grants interfaces.IAccessGrantRepository) *SideEffectUseCase {
	return &SideEffectUseCase{runner: runner, failures: failures, grants: grants}
}

func (u *SideEffectUseCase) ListFailures(ctx context.Context) ([]entities.SideEffectFailure, error) {
	return u.failures.List(ctx)
}

// Retry resumes the fulfillment of intentID from the step that failed. On success the
// failure record is resolved; on failure it is rewritten with the new error.
func (u *SideEffectUseCase) Retry(ctx context.Context, intentID string) error {
	intentID = strings.TrimSpace(intentID)
	if intentID == "" {
		return ErrInvalidIntentID
	}

	f, err := u.failures.Get(ctx, intentID)
	if err != nil {
		return err
	}
	if f.IntentID == "" {
		return ErrSideEffectFailureNotFound
	}

	grant, err := u.grants.GetGrant(ctx, f.BuyerID, f.CourseID)
	if err != nil {
		return err
	}

	task := FulfillmentTask{IntentID: f.IntentID, BuyerID: f.BuyerID, CourseID: f.CourseID, GrantedAt: grant.GrantedAt}
	if err := u.runner.run(ctx, task, f.Stage, f.InvoiceID, f.Attempts); err != nil {
		return err
	}
	return u.failures.Resolve(ctx, intentID)
}
