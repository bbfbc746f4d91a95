// internal/workers/accounts/register-contributor/handler.go
package registercontributor

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "register-contributor"

type Handler struct {
	config   *Config
	accounts records.AccountRecords
	proc     *camunda.JobProcessor
	logger   logger.Logger
}

func NewHandler(config *Config, accounts records.AccountRecords, log logger.Logger) *Handler {
	schema := InputSchema()
	proc := camunda.NewJobProcessor(TaskType, config.Timeout, &schema, log)
	return &Handler{
		config:   config,
		accounts: accounts,
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

// Execute replaces the stored contributor account. There is one account
// per role; registering again overwrites it.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	identity, err := h.accounts.RegisterContributor(ctx, input.Email, input.Password, input.OrganizationName)
	if err != nil {
		return nil, err
	}

	return &Output{
		Registered:       true,
		Email:            identity.Email,
		OrganizationName: identity.OrganizationName,
	}, nil
}
