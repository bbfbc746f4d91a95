// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"encoding/json"
	"time"

	"acadgrant/internal/common/config"
	"acadgrant/internal/common/errors"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/common/metrics"
	"acadgrant/internal/common/observability"
	"acadgrant/internal/common/validation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

const defaultJobTimeout = 30 * time.Second

// reportTimeout bounds the complete/fail/throw call. It starts after exec
// returns so an expired job deadline cannot drop the report.
const reportTimeout = 10 * time.Second

var defaultObs *observability.Observability

// UseObservability makes processors created afterwards report job
// outcomes to obs as well as to Prometheus.
func UseObservability(obs *observability.Observability) {
	defaultObs = obs
}

// JobProcessor runs the part of every handler that is not business logic:
// input validation and decoding, the execution deadline, completing or
// failing the job, and job metrics.
type JobProcessor struct {
	TaskType string
	Timeout  time.Duration
	Schema   *validation.JSONSchema
	Logger   logger.Logger
	Errors   *errors.ErrorHandler
	Obs      *observability.Observability
}

func NewJobProcessor(taskType string, timeout time.Duration, schema *validation.JSONSchema, log logger.Logger) *JobProcessor {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if timeout <= 0 {
		timeout = defaultJobTimeout
	}
	log = log.WithFields(map[string]interface{}{"taskType": taskType})
	return &JobProcessor{
		TaskType: taskType,
		Timeout:  timeout,
		Schema:   schema,
		Logger:   log,
		Errors:   errors.NewErrorHandler(log),
		Obs:      defaultObs,
	}
}

// Decode validates the job variables against the schema and unmarshals
// them into input.
func (p *JobProcessor) Decode(variables string, input interface{}) error {
	if p.Schema != nil {
		result, err := validation.ValidateJSON(variables, *p.Schema)
		if err != nil {
			return errors.NewValidationFailedError(err.Error())
		}
		if !result.Valid {
			return errors.NewValidationFailedError(result.Summary()).
				WithMetadata("validationErrors", result.Errors)
		}
	}
	if err := json.Unmarshal([]byte(variables), input); err != nil {
		return errors.NewValidationFailedError("parse input: " + err.Error())
	}
	return nil
}

// Process decodes the job into input, runs exec and reports the outcome
// to the broker.
func (p *JobProcessor) Process(client worker.JobClient, job entities.Job, input interface{}, exec func(ctx context.Context) (interface{}, error)) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(p.TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(p.TaskType).Dec()

	p.Logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
		"retries":            job.Retries,
	})

	ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
	defer cancel()

	output, err := p.run(ctx, job, input, exec)

	reportCtx, cancelReport := context.WithTimeout(context.Background(), reportTimeout)
	defer cancelReport()

	if err != nil {
		code := p.Errors.HandleJobError(reportCtx, client, job, err)
		p.finish(reportCtx, start, "failed")
		metrics.WorkerJobsFailed.WithLabelValues(p.TaskType, string(code)).Inc()
		return
	}

	if err := p.complete(reportCtx, client, job, output); err != nil {
		p.Logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err,
		})
		p.finish(reportCtx, start, "complete_failed")
		return
	}

	p.finish(reportCtx, start, "completed")
	metrics.WorkerJobsCompleted.WithLabelValues(p.TaskType).Inc()
}

func (p *JobProcessor) run(ctx context.Context, job entities.Job, input interface{}, exec func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if err := p.Decode(job.Variables, input); err != nil {
		return nil, err
	}
	return exec(ctx)
}

func (p *JobProcessor) complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return err
	}
	if _, err := cmd.Send(ctx); err != nil {
		return err
	}
	p.Logger.Info("job completed successfully", map[string]interface{}{
		"jobKey": job.Key,
	})
	return nil
}

func (p *JobProcessor) finish(ctx context.Context, start time.Time, status string) {
	elapsed := time.Since(start)
	metrics.WorkerJobDuration.WithLabelValues(p.TaskType).Observe(elapsed.Seconds())
	p.Obs.RecordJobProcessed(ctx, p.TaskType, status)
	p.Obs.RecordJobDuration(ctx, p.TaskType, elapsed, status)
}

// StartWorker opens a job worker for taskType unless it is disabled.
func StartWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler worker.JobHandler, log logger.Logger) worker.JobWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return nil
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return jobWorker
}
