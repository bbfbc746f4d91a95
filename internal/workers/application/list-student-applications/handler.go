// internal/workers/application/list-student-applications/handler.go
package liststudentapplications

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "list-student-applications"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	ledger   records.ApplicationLedger
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, ledger records.ApplicationLedger, log logger.Logger) *Handler {
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, nil, log)
	return &Handler{
		config:   config,
		accounts: accounts,
		ledger:   ledger,
		proc:     proc,
		logger:   proc.Logger,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	var input Input
	h.proc.Process(client, job, &input, func(ctx context.Context) (interface{}, error) {
		return h.Execute(ctx, &input)
	})
}

func (h *Handler) Execute(ctx context.Context, _ *Input) (*Output, error) {
	identity, err := h.accounts.RequireSession(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	summaries, err := h.ledger.StudentApplications(ctx, identity.Email)
	if err != nil {
		return nil, err
	}

	out := &Output{Email: identity.Email, Applications: summaries, Count: len(summaries)}
	for _, s := range summaries {
		switch s.Status {
		case models.StatusAccepted:
			out.Accepted++
		case models.StatusRejected:
			out.Rejected++
		default:
			out.Pending++
		}
	}
	return out, nil
}
