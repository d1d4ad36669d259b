package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/insuregenius/backend/internal/models"
	"github.com/insuregenius/backend/pkg/queue"
)

// ReportStore persists screening results.
type ReportStore interface {
	Insert(ctx context.Context, report *models.FraudReport) error
}

// Processor consumes fraud screening jobs and persists the scored results
// for underwriter review.
type Processor struct {
	reports ReportStore
	queue   *queue.Queue
	logger  *zap.Logger
}

// NewProcessor creates a fraud screening processor.
func NewProcessor(reports ReportStore, q *queue.Queue, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{reports: reports, queue: q, logger: logger}
}

// Process executes one fraud screening job.
func (p *Processor) Process(ctx context.Context, job *queue.Job) error {
	if job.Type != queue.JobTypeFraudScreening {
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	var payload queue.FraudScreeningPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	risk, reasons := Score(payload.Narrative, payload.Amount)
	report := &models.FraudReport{
		TenantID:    payload.TenantID,
		RequestedBy: payload.RequestedBy,
		Narrative:   payload.Narrative,
		Amount:      payload.Amount,
		Risk:        risk,
		Reasons:     reasons,
	}
	if err := p.reports.Insert(ctx, report); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	p.logger.Info("fraud screening persisted",
		zap.String("report_id", report.ID.String()),
		zap.String("tenant_id", payload.TenantID.String()),
		zap.String("risk", string(risk)))
	return nil
}

// Run starts the worker loop: dequeue, process, retry on error.
func (p *Processor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("fraud screening worker stopping")
			return
		default:
		}

		job, _, err := p.queue.Dequeue(ctx)
		if err != nil {
			p.logger.Warn("dequeue error", zap.Error(err))
			time.Sleep(queue.RetryBackoff)
			continue
		}
		if job == nil {
			continue
		}

		p.logger.Debug("processing job", zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
		if err := p.Process(ctx, job); err != nil {
			p.logger.Error("job failed", zap.String("job_id", job.ID), zap.Error(err))
			if reErr := p.queue.Retry(ctx, job); reErr != nil {
				p.logger.Error("retry enqueue failed", zap.Error(reErr))
			}
			time.Sleep(queue.RetryBackoff)
			continue
		}
	}
}
