// internal/workers/accounts/account-logout/handler.go
package accountlogout

import (
	"context"

	"acadgrant/internal/common/camunda"
	"acadgrant/internal/common/logger"
	"acadgrant/internal/models"
	"acadgrant/internal/records"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "account-logout"

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

// Execute clears the session flag. Logging out twice is not an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := h.accounts.Logout(ctx, models.Role(input.Role)); err != nil {
		return nil, err
	}
	h.logger.Info("logged out", map[string]interface{}{"role": input.Role})
	return &Output{LoggedOut: true, Role: input.Role}, nil
}
